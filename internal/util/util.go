package util

import (
	"path"
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^\w- ]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// ComputeBaseHref calculates the relative path to the site root
// so that CSS/JS links work correctly for pages at any depth.
// For example, a page at posts/a/b.html would get a BaseHref of "../../".
// relPath is slash-separated, relative to the output root.
func ComputeBaseHref(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" {
		return ""
	}
	depth := strings.Count(strings.Trim(dir, "/"), "/") + 1
	return strings.Repeat("../", depth)
}

// Slugify turns a title into a file-name friendly slug:
// "Hello, World!" becomes "hello-world".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
