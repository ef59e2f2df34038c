// internal/render/goldmark_extensions.go
package render

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// mdLinkTransformer rewrites links to sibling Markdown sources so they point
// at the generated HTML page instead.
type mdLinkTransformer struct{}

func newMDLinkTransformer() parser.ASTTransformer {
	return &mdLinkTransformer{}
}

// Transform walks the document and rewrites "x.md" and "x.md#frag"
// destinations to "x.html". Absolute URLs are left alone.
func (t *mdLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		link.Destination = rewriteMDLink(link.Destination)
		return ast.WalkContinue, nil
	})
}

func rewriteMDLink(dest []byte) []byte {
	if bytes.Contains(dest, []byte("://")) {
		return dest
	}
	target, fragment := dest, []byte(nil)
	if i := bytes.IndexByte(dest, '#'); i >= 0 {
		target, fragment = dest[:i], dest[i:]
	}
	if !bytes.HasSuffix(target, []byte(".md")) {
		return dest
	}
	out := make([]byte, 0, len(dest)+2)
	out = append(out, bytes.TrimSuffix(target, []byte(".md"))...)
	out = append(out, ".html"...)
	return append(out, fragment...)
}
