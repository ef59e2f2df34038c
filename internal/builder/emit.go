package builder

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
	"wwwgen/internal/excerpt"
	"wwwgen/internal/feed"
	"wwwgen/internal/render"
)

const (
	sitemapFile = "sitemap.xml"
	rssFile     = "feed.xml"
	staticDir   = "static"
)

// rootFiles are copied as is into the output root.
var rootFiles = []string{"robots.txt"}

// renderPosts writes every blog post, newest first, and records its excerpt
// for the pages rendered afterwards. It returns the rendered bodies by key.
func renderPosts(r *render.Renderer, pages *content.Collection) (map[string]string, error) {
	bodies := make(map[string]string)
	for _, post := range pages.Blog() {
		out, err := r.RenderPage(post)
		if err != nil {
			return nil, err
		}
		if err := writePage(post, out); err != nil {
			return nil, err
		}
		post.Excerpt = excerpt.Extract(out, excerpt.DefaultBudget)
		bodies[post.Key] = string(out)
	}
	return bodies, nil
}

func renderSitePages(r *render.Renderer, pages *content.Collection) error {
	for _, page := range pages.Site() {
		out, err := r.RenderPage(page)
		if err != nil {
			return err
		}
		if err := writePage(page, out); err != nil {
			return err
		}
	}
	return nil
}

func writePage(page *content.Page, out []byte) error {
	if err := os.MkdirAll(filepath.Dir(page.Dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(page.Dst, out, 0o644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", page.Dst, err)
	}
	return nil
}

// writeFeeds writes the sitemap, the RSS feed and, when there is at least
// one published post, the Atom feed.
func writeFeeds(dst string, site *config.SiteConfig, r *render.Renderer, pages *content.Collection, bodies map[string]string, logger *zap.SugaredLogger) error {
	if err := writeDocument(filepath.Join(dst, sitemapFile), func(w io.Writer) (int, error) {
		return feed.WriteSitemap(w, r, pages.All())
	}, logger); err != nil {
		return err
	}
	if err := writeDocument(filepath.Join(dst, rssFile), func(w io.Writer) (int, error) {
		return feed.WriteRSS(w, r, pages.Blog())
	}, logger); err != nil {
		return err
	}
	if len(feed.Published(pages.Blog())) == 0 {
		logger.Debugw("no published post, skipping atom feed")
		return nil
	}
	return writeDocument(filepath.Join(dst, feed.AtomFileName), func(w io.Writer) (int, error) {
		return feed.WriteAtom(w, site, pages.Blog(), bodies)
	}, logger)
}

// writeDocument buffers the whole document so a failed render leaves no
// partial file behind.
func writeDocument(path string, write func(io.Writer) (int, error), logger *zap.SugaredLogger) error {
	var buf bytes.Buffer
	n, err := write(&buf)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debugw("wrote document", "path", path, "entries", n)
	return nil
}

// copyAssets copies the static tree and the fixed root files. Both are
// required.
func copyAssets(src, dst string) error {
	for _, name := range append([]string{staticDir}, rootFiles...) {
		from := filepath.Join(src, name)
		if _, err := os.Stat(from); err != nil {
			return fmt.Errorf("failed to copy %s: %w", from, err)
		}
		if err := cp.Copy(from, filepath.Join(dst, name)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", from, err)
		}
	}
	return nil
}

// dumpPages logs the resolved metadata of every page, without its body.
func dumpPages(pages *content.Collection, logger *zap.SugaredLogger) {
	for _, page := range pages.All() {
		meta := *page
		meta.Body = ""
		out, err := yaml.Marshal(&meta)
		if err != nil {
			logger.Debugw("failed to dump page", "key", page.Key, "error", err)
			continue
		}
		logger.Debugf("page %s\n%s", page.Key, out)
	}
}
