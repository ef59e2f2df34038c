// Package feed writes the site-wide XML documents: the sitemap, the RSS
// feed and the Atom feed.
package feed

import (
	"io"

	"wwwgen/internal/content"
)

// Renderer renders one inline template against a page.
type Renderer interface {
	Render(name, src string, page *content.Page) ([]byte, error)
}

// Published filters out draft pages.
func Published(pages []*content.Page) []*content.Page {
	out := make([]*content.Page, 0, len(pages))
	for _, p := range pages {
		if !p.Draft {
			out = append(out, p)
		}
	}
	return out
}

// writeEntries renders tmpl once per page, between header and footer.
func writeEntries(w io.Writer, r Renderer, name string, header []byte, tmpl string, pages []*content.Page, footer string) (int, error) {
	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	n := 0
	for _, page := range pages {
		entry, err := r.Render(name, tmpl, page)
		if err != nil {
			return n, err
		}
		if _, err := w.Write(entry); err != nil {
			return n, err
		}
		n++
	}
	_, err := io.WriteString(w, footer)
	return n, err
}
