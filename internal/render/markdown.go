// internal/render/markdown.go
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newMDLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(
			// Template helpers emit raw anchors that must survive conversion.
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// convertMarkdown turns an already templated Markdown body into HTML,
// sanitized unless unsafe is set.
func convertMarkdown(body []byte, unsafe bool) ([]byte, error) {
	var htmlBuffer bytes.Buffer
	if err := markdownRenderer.Convert(body, &htmlBuffer); err != nil {
		return nil, fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	if unsafe {
		return htmlBuffer.Bytes(), nil
	}
	return htmlSanitizer.SanitizeBytes(htmlBuffer.Bytes()), nil
}
