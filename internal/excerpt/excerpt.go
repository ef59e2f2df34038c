// Package excerpt derives a short plain-text summary from rendered HTML.
package excerpt

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	// DefaultBudget is the number of characters an excerpt may hold before
	// it is cut.
	DefaultBudget = 256
	// Ellipsis marks a cut excerpt.
	Ellipsis = "..."
)

// skipped elements do not carry prose; their whole content is dropped.
var skipped = map[string]bool{
	"nav":    true,
	"script": true,
	"style":  true,
	"h1":     true,
	"h2":     true,
	"h3":     true,
	"footer": true,
	"aside":  true,
}

// Extract returns the visible text of src, one trimmed line after the
// other, joined with single spaces. Lines are taken whole while they fit in
// budget characters; the first line that does not fit is replaced by
// Ellipsis and ends the excerpt.
func Extract(src []byte, budget int) string {
	chunks, _ := summarize(visibleText(src), budget)
	return strings.Join(chunks, " ")
}

// summarize splits text into trimmed, non-blank lines and keeps them while
// they fit in budget. count is the number of characters kept, Ellipsis
// excluded.
func summarize(text string, budget int) (chunks []string, count int) {
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n := utf8.RuneCountInString(line)
		if count+n > budget {
			chunks = append(chunks, Ellipsis)
			break
		}
		chunks = append(chunks, line)
		count += n
	}
	return chunks, count
}

// isLineBreak reports whether r ends a line, carriage returns and Unicode
// separators included.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// visibleText concatenates the unescaped text nodes of src that are not
// nested in a skipped element.
func visibleText(src []byte) string {
	var text strings.Builder
	depth := 0
	tokenizer := html.NewTokenizer(bytes.NewReader(src))
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			// io.EOF, or a read error that a byte reader never returns.
			return text.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skipped[string(name)] {
				depth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skipped[string(name)] && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth == 0 {
				text.Write(tokenizer.Text())
			}
		}
	}
}
