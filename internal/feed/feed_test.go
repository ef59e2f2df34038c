package feed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
	"wwwgen/internal/render"
)

type fixture struct {
	t     *testing.T
	site  *config.SiteConfig
	src   string
	dst   string
	pages *content.Collection
}

func newFixture(t *testing.T) *fixture {
	site := &config.SiteConfig{
		Title:       "Hegemonie",
		Name:        "hegemonie.be",
		Description: "A strategy game",
		Author:      "jfs",
		BaseURL:     "https://www.hegemonie.be",
		Prev:        "index.html",
		Next:        "index.html",
	}
	dst := t.TempDir()
	return &fixture{
		t:     t,
		site:  site,
		src:   t.TempDir(),
		dst:   dst,
		pages: content.NewCollection(content.NewLoader(site, dst)),
	}
}

func (f *fixture) file(rel, data string) string {
	f.t.Helper()
	path := filepath.Join(f.src, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(f.t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func (f *fixture) addSite(key, data string) {
	f.t.Helper()
	require.NoError(f.t, f.pages.LoadSite(key, f.file(key, data), filepath.Join(f.dst, key)))
}

func (f *fixture) addBlog(name, data string) {
	f.t.Helper()
	key := "blog/" + name
	require.NoError(f.t, f.pages.LoadBlog(key, f.file(filepath.Join("_posts", name), data), filepath.Join(f.dst, key)))
}

func (f *fixture) renderer() *render.Renderer {
	f.t.Helper()
	r, err := render.New(f.site, f.pages, content.People{}, render.Options{})
	require.NoError(f.t, err)
	return r
}

func TestWriteSitemap_OneEntryPerPublishedPage(t *testing.T) {
	f := newFixture(t)
	f.addSite("index.html", "---\ntitle: Home\ndate: 2020-05-01\n---\n")
	f.addSite("hidden.html", "---\ndraft: yes\n---\n")
	f.addBlog("post.html", "---\ntitle: Post\ndate: 2021-02-03\n---\n")

	var buf bytes.Buffer
	n, err := WriteSitemap(&buf, f.renderer(), f.pages.All())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.True(t, strings.HasSuffix(out, "\n</urlset>"))
	require.Equal(t, 2, strings.Count(out, "<url>"))
	require.Contains(t, out, "<loc>https://www.hegemonie.be/index.html</loc>")
	require.Contains(t, out, "<lastmod>2020-05-01</lastmod>")
	require.Contains(t, out, "<loc>https://www.hegemonie.be/blog/post.html</loc>")
	require.NotContains(t, out, "hidden.html")
	require.Less(t, strings.Index(out, "index.html"), strings.Index(out, "blog/post.html"))
}

func TestWriteSitemap_NoPages_HeaderAndFooterOnly(t *testing.T) {
	f := newFixture(t)

	var buf bytes.Buffer
	n, err := WriteSitemap(&buf, f.renderer(), nil)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, sitemapHeader+sitemapFooter, buf.String())
}

func TestWriteRSS_ChannelAndItems(t *testing.T) {
	f := newFixture(t)
	f.addBlog("a.html", "---\ntitle: First & foremost\ndescription: about a\ndate: 2021-01-01\n---\n")
	f.addBlog("b.html", "---\ntitle: Second\ndate: 2022-01-01\n---\n")
	f.addBlog("c.html", "---\ntitle: Draft\ndraft: true\n---\n")

	var buf bytes.Buffer
	n, err := WriteRSS(&buf, f.renderer(), f.pages.Blog())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	out := buf.String()
	require.Contains(t, out, "<title>Hegemonie</title>")
	require.Contains(t, out, "<link>https://www.hegemonie.be</link>")
	require.Contains(t, out, "<description>A strategy game</description>")
	require.Contains(t, out, "<title>First &amp; foremost</title>")
	require.Contains(t, out, "<description>about a</description>")
	require.NotContains(t, out, "Draft")
	require.Less(t, strings.Index(out, "Second"), strings.Index(out, "First"))
	require.True(t, strings.HasSuffix(out, "\n  </channel>\n</rss>"))
}

func TestWriteAtom_EntriesAndContent(t *testing.T) {
	f := newFixture(t)
	f.addBlog("a.html", "---\ntitle: Alpha\ndate: 2021-01-01\n---\n")
	f.addBlog("b.html", "---\ntitle: Beta\ndate: 2022-06-01\n---\n")
	f.addBlog("c.html", "---\ntitle: Gamma\ndraft: true\n---\n")

	var buf bytes.Buffer
	n, err := WriteAtom(&buf, f.site, f.pages.Blog(), map[string]string{"blog/a.html": "alpha body"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	out := buf.String()
	require.Contains(t, out, "Alpha")
	require.Contains(t, out, "Beta")
	require.Contains(t, out, "alpha body")
	require.Contains(t, out, "https://www.hegemonie.be/blog/b.html")
	require.NotContains(t, out, "Gamma")
}

func TestWriteAtom_IsStableAcrossRuns(t *testing.T) {
	f := newFixture(t)
	f.addBlog("a.html", "---\ntitle: Alpha\ndate: 2021-01-01\n---\n")

	var first, second bytes.Buffer
	_, err := WriteAtom(&first, f.site, f.pages.Blog(), nil)
	require.NoError(t, err)
	_, err = WriteAtom(&second, f.site, f.pages.Blog(), nil)
	require.NoError(t, err)
	require.Equal(t, first.String(), second.String())
}

func TestPublished_DropsDrafts(t *testing.T) {
	pages := []*content.Page{{Key: "a"}, {Key: "b", Draft: true}, {Key: "c"}}
	out := Published(pages)
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].Key)
	require.Equal(t, "c", out[1].Key)
}
