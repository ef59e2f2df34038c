package feed

import (
	"io"
	"time"

	atom "github.com/thomas11/atomgenerator"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
)

// AtomFileName is the Atom feed written next to the RSS feed.
const AtomFileName = "atom.xml"

// WriteAtom writes an Atom feed of the non-draft posts. bodies maps a post
// key to its rendered HTML and fills the entry content when present. The
// feed is dated by its newest post so that unchanged sources give an
// unchanged feed. It returns the number of entries.
func WriteAtom(w io.Writer, site *config.SiteConfig, posts []*content.Page, bodies map[string]string) (int, error) {
	posts = Published(posts)

	feed := atom.Feed{
		Title:   site.Title,
		Link:    site.URLFor(""),
		PubDate: newest(posts),
	}
	feed.AddAuthor(atom.Author{
		Name: site.Author,
		Uri:  site.URLFor(content.AuthorAnchorPage),
	})
	for _, post := range posts {
		feed.AddEntry(entryForPost(post, bodies))
	}

	if errs := feed.Validate(); len(errs) > 0 {
		return 0, errs[0]
	}
	data, err := feed.GenXml()
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	return len(posts), nil
}

func entryForPost(post *content.Page, bodies map[string]string) *atom.Entry {
	e := &atom.Entry{
		Title:       post.Title,
		Description: post.Excerpt,
		Link:        post.URL,
		PubDate:     post.Date,
	}
	if body, ok := bodies[post.Key]; ok {
		e.Content = body
	}
	return e
}

func newest(posts []*content.Page) time.Time {
	var t time.Time
	for _, p := range posts {
		if p.Date.After(t) {
			t = p.Date
		}
	}
	return t
}
