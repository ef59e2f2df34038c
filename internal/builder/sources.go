package builder

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"wwwgen/internal/content"
)

const (
	peopleDir = "_people"
	postsDir  = "_posts"
	blogDir   = "blog"
)

// sitePatterns lists the structural pages, in load order.
var sitePatterns = []string{"*.html", "blog/*.html", "docs/*.html"}

func glob(root, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", pattern, err)
	}
	return matches, nil
}

func loadPeople(src string) (content.People, error) {
	files, err := glob(src, peopleDir+"/*.html")
	if err != nil {
		return nil, err
	}
	return content.LoadPeople(files)
}

// loadPosts loads every post under _posts as blog/<name>.
func loadPosts(pages *content.Collection, src, dst string) error {
	files, err := glob(src, postsDir+"/*.html")
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Base(file)
		key := blogDir + "/" + name
		if err := pages.LoadBlog(key, file, filepath.Join(dst, blogDir, name)); err != nil {
			return fmt.Errorf("failed to load post %s: %w", file, err)
		}
	}
	return nil
}

// loadSitePages loads the structural pages. A blog/ page whose key a post
// already owns is skipped with a warning: keys stay unique and the post
// wins, where earlier releases silently replaced the post with the page.
func loadSitePages(pages *content.Collection, src, dst string, logger *zap.SugaredLogger) error {
	for _, pattern := range sitePatterns {
		files, err := glob(src, pattern)
		if err != nil {
			return err
		}
		for _, file := range files {
			rel, err := filepath.Rel(src, file)
			if err != nil {
				return err
			}
			key := filepath.ToSlash(rel)
			if pages.Has(key) {
				logger.Warnw("blog page and post share a key, keeping the post; previous wwwgen releases let the blog/ page win",
					"key", key, "skipped", file)
				continue
			}
			if err := pages.LoadSite(key, file, filepath.Join(dst, rel)); err != nil {
				return fmt.Errorf("failed to load page %s: %w", file, err)
			}
		}
	}
	return nil
}
