// internal/builder/builder.go
package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
	"wwwgen/internal/render"
)

// ErrSameDirectory is returned when the output would overwrite the sources.
var ErrSameDirectory = errors.New("source and destination overlap")

// TemplatesDir holds the templates shared by every page.
const TemplatesDir = "_templates"

type BuildOptions struct {
	// Unsafe keeps raw HTML in Markdown pages.
	Unsafe bool
	// Debug dumps the metadata of every page once references are resolved.
	Debug bool
}

// Stats summarizes a build.
type Stats struct {
	Pages  int
	Posts  int
	People int
	Dest   string
}

// BuildSite renders the source tree at src into dst. The destination is
// wiped first. An empty dst builds into a fresh temporary directory whose
// path is reported in the returned Stats.
func BuildSite(src, dst string, opts BuildOptions, logger *zap.SugaredLogger) (Stats, error) {
	dst, err := prepareDestination(src, dst)
	if err != nil {
		return Stats{}, err
	}
	logger.Infow("building site", "source", src, "destination", dst)

	if err := config.LoadEnvFile(src); err != nil {
		return Stats{}, err
	}
	site, err := config.LoadSiteConfig(filepath.Join(src, config.FileName))
	if err != nil {
		return Stats{}, err
	}

	people, err := loadPeople(src)
	if err != nil {
		return Stats{}, err
	}
	pages := content.NewCollection(content.NewLoader(site, dst))
	if err := loadPosts(pages, src, dst); err != nil {
		return Stats{}, err
	}
	if err := loadSitePages(pages, src, dst, logger); err != nil {
		return Stats{}, err
	}
	stats := Stats{
		Pages:  len(pages.Site()),
		Posts:  len(pages.Blog()),
		People: len(people),
		Dest:   dst,
	}
	logger.Infow("loaded pages", "pages", stats.Pages, "posts", stats.Posts, "people", stats.People)

	if err := content.Resolve(pages); err != nil {
		return Stats{}, err
	}
	if opts.Debug {
		dumpPages(pages, logger)
	}

	renderer, err := render.New(site, pages, people, render.Options{
		LookupDir: filepath.Join(src, TemplatesDir),
		Unsafe:    opts.Unsafe,
	})
	if err != nil {
		return Stats{}, err
	}
	bodies, err := renderPosts(renderer, pages)
	if err != nil {
		return Stats{}, err
	}
	if err := renderSitePages(renderer, pages); err != nil {
		return Stats{}, err
	}
	logger.Infow("rendered", "pages", stats.Pages, "posts", stats.Posts)

	if err := writeFeeds(dst, site, renderer, pages, bodies, logger); err != nil {
		return Stats{}, err
	}
	if err := copyAssets(src, dst); err != nil {
		return Stats{}, err
	}
	logger.Infow("copied static assets", "destination", dst)
	return stats, nil
}

// prepareDestination recreates dst with its fixed subdirectories and
// returns its final path.
func prepareDestination(src, dst string) (string, error) {
	if dst == "" {
		tmp, err := os.MkdirTemp("", "wwwgen-")
		if err != nil {
			return "", fmt.Errorf("failed to create temporary destination: %w", err)
		}
		dst = tmp
	}
	if err := checkOverlap(src, dst); err != nil {
		return "", err
	}
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("failed to clean destination %s: %w", dst, err)
	}
	for _, dir := range []string{dst, filepath.Join(dst, "blog"), filepath.Join(dst, "docs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return dst, nil
}

// checkOverlap rejects a destination equal to the source or containing it,
// since the destination is wiped before every build.
func checkOverlap(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absDst, absSrc)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: %s and %s", ErrSameDirectory, src, dst)
	}
	return nil
}
