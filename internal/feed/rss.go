package feed

import (
	"io"

	"wwwgen/internal/content"
)

const (
	rssHeader = `<?xml version="1.0" encoding="UTF-8" ?>
<rss version="2.0">
  <channel>
    <title>{{ .Site.Title }}</title>
    <link>{{ .Site.BaseURL }}</link>
    <description>{{ .Site.Description }}</description>`
	rssItem = `<item>
      <title>{{ .Page.Title }}</title>
      <link>{{ .Page.URL }}</link>
      <description>{{ .Page.Description }}</description>
    </item>`
	rssFooter = "\n  </channel>\n</rss>"
)

// WriteRSS writes an RSS 2.0 channel described by the site configuration,
// with one <item> per non-draft post, and returns the number of items.
func WriteRSS(w io.Writer, r Renderer, posts []*content.Page) (int, error) {
	header, err := r.Render("feed.xml", rssHeader, nil)
	if err != nil {
		return 0, err
	}
	return writeEntries(w, r, "feed.xml", header, rssItem, Published(posts), rssFooter)
}
