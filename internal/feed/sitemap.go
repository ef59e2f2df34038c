package feed

import (
	"io"

	"wwwgen/internal/content"
)

const (
	sitemapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	sitemapEntry = `<url>
    <loc>{{ .Page.URL }}</loc>
    <changefreq>weekly</changefreq>
    <priority>1.0</priority>
    <lastmod>{{ .Page.DateString }}</lastmod>
  </url>`
	sitemapFooter = "\n</urlset>"
)

// WriteSitemap writes one <url> entry per non-draft page, in the given
// order, and returns the number of entries.
func WriteSitemap(w io.Writer, r Renderer, pages []*content.Page) (int, error) {
	return writeEntries(w, r, "sitemap.xml", []byte(sitemapHeader), sitemapEntry, Published(pages), sitemapFooter)
}
