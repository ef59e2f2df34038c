package content

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	t     *testing.T
	src   string
	dst   string
	pages *Collection
}

func newFixture(t *testing.T) *fixture {
	dst := t.TempDir()
	return &fixture{
		t:     t,
		src:   t.TempDir(),
		dst:   dst,
		pages: NewCollection(NewLoader(testSite(), dst)),
	}
}

func (f *fixture) site(key, content string) {
	f.t.Helper()
	src := writeFile(f.t, filepath.Join(f.src, key), content)
	require.NoError(f.t, f.pages.LoadSite(key, src, filepath.Join(f.dst, key)))
}

func (f *fixture) blog(name, date string) {
	f.t.Helper()
	src := writeFile(f.t, filepath.Join(f.src, "_posts", name), fmt.Sprintf("---\ntitle: %s\ndate: %s\n---\n", name, date))
	key := "blog/" + name
	require.NoError(f.t, f.pages.LoadBlog(key, src, filepath.Join(f.dst, key)))
}

func keys(pages []*Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Key)
	}
	return out
}

func TestCollection_Site_KeepsLoadOrder(t *testing.T) {
	f := newFixture(t)
	f.site("index.html", "")
	f.site("about.html", "")
	f.site("docs/api.html", "")

	require.Equal(t, []string{"index.html", "about.html", "docs/api.html"}, keys(f.pages.Site()))
	require.Equal(t, 3, f.pages.Len())
}

func TestCollection_Blog_SortedByDateDescending(t *testing.T) {
	f := newFixture(t)
	f.blog("old.html", "2019-01-01")
	f.blog("new.html", "2021-06-01")
	f.blog("mid.html", "2020-05-05")

	require.Equal(t, []string{"blog/new.html", "blog/mid.html", "blog/old.html"}, keys(f.pages.Blog()))
}

func TestCollection_Blog_TiesKeepLoadOrder(t *testing.T) {
	f := newFixture(t)
	f.blog("first.html", "2020-01-01")
	f.blog("second.html", "2020-01-01")
	f.blog("newest.html", "2020-01-02")

	require.Equal(t, []string{"blog/newest.html", "blog/first.html", "blog/second.html"}, keys(f.pages.Blog()))
}

func TestCollection_All_SiteThenBlog(t *testing.T) {
	f := newFixture(t)
	f.blog("a.html", "2020-01-01")
	f.site("index.html", "")
	f.blog("b.html", "2021-01-01")

	require.Equal(t, []string{"index.html", "blog/b.html", "blog/a.html"}, keys(f.pages.All()))
}

func TestCollection_Get_MissingKey_ReturnsNotFound(t *testing.T) {
	f := newFixture(t)
	f.site("index.html", "")

	page, err := f.pages.Get("index.html")
	require.NoError(t, err)
	require.Equal(t, "index.html", page.Key)

	_, err = f.pages.Get("nope.html")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, f.pages.Has("nope.html"))
}

func TestCollection_DuplicateKey_ReturnsError(t *testing.T) {
	f := newFixture(t)
	f.blog("a.html", "2020-01-01")

	src := writeFile(t, filepath.Join(f.src, "blog", "a.html"), "")
	err := f.pages.LoadSite("blog/a.html", src, filepath.Join(f.dst, "blog", "a.html"))
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Equal(t, 1, f.pages.Len())
	require.Empty(t, f.pages.Site())
}

func TestCollection_Pages_AreShared(t *testing.T) {
	f := newFixture(t)
	f.blog("a.html", "2020-01-01")

	f.pages.Blog()[0].Excerpt = "set through blog"
	page, err := f.pages.Get("blog/a.html")
	require.NoError(t, err)
	require.Equal(t, "set through blog", page.Excerpt)
}

func TestCollection_Blog_MixedOffsets_SortedByWrittenDate(t *testing.T) {
	f := newFixture(t)
	f.blog("a.html", "2021-01-02T00:30:00+05:00")
	f.blog("b.html", "2021-01-01T20:00:00Z")

	require.Equal(t, []string{"blog/a.html", "blog/b.html"}, keys(f.pages.Blog()))
}

func TestCollection_Blog_SameDay_LaterInstantFirst(t *testing.T) {
	f := newFixture(t)
	f.blog("morning.html", "2021-01-01T08:00:00Z")
	f.blog("evening.html", "2021-01-01T20:00:00Z")

	require.Equal(t, []string{"blog/evening.html", "blog/morning.html"}, keys(f.pages.Blog()))
}
