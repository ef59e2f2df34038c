// internal/scaffold/scaffold.go
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
	"wwwgen/internal/util"
)

// ErrNotEmpty is returned when a new site would overwrite existing files.
var ErrNotEmpty = errors.New("directory is not empty")

// ErrExists is returned when a new post would overwrite another one.
var ErrExists = errors.New("file already exists")

// DefaultAuthor is the nickname of the profile written with a new site.
const DefaultAuthor = "me"

// siteConfigFile is the configuration of a new site.
type siteConfigFile struct {
	Title       string `yaml:"title"`
	Name        string `yaml:"name"`
	BaseURL     string `yaml:"baseurl"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Prev        string `yaml:"prev"`
	Next        string `yaml:"next"`
}

// postFrontMatter is the header of a new post.
type postFrontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Author      string `yaml:"author,omitempty"`
	Description string `yaml:"description"`
}

// CreateNewSite writes a source tree that builds as is: configuration,
// shared templates, structural pages, one post, one profile and a style
// sheet. name must not exist or be an empty directory.
func CreateNewSite(name string) error {
	entries, err := os.ReadDir(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, name)
	}

	siteConfig, err := yaml.Marshal(siteConfigFile{
		Title:       siteTitle(name),
		Name:        "example.org",
		BaseURL:     "https://example.org",
		Author:      DefaultAuthor,
		Description: "A new site built with wwwgen.",
		Prev:        "index.html",
		Next:        "index.html",
	})
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	files := map[string]string{
		config.FileName:                      string(siteConfig),
		"_templates/header.html":             templateHeaderContent,
		"_templates/footer.html":             templateFooterContent,
		"_people/" + DefaultAuthor + ".html": personContent,
		"index.html":                         indexContent,
		"about.html":                         aboutContent,
		"blog/index.html":                    blogIndexContent,
		"docs/index.html":                    docsIndexContent,
		"static/css/style.css":               staticCSSContent,
		"robots.txt":                         robotsContent,
	}
	for rel, data := range files {
		if err := writeFile(filepath.Join(name, filepath.FromSlash(rel)), []byte(data)); err != nil {
			return err
		}
	}

	_, err = writePost(name, "Hello, World", DefaultAuthor, time.Now())
	return err
}

// siteTitle derives a title from a directory name: "my-blog" becomes
// "My Blog".
func siteTitle(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	words := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(words)
}

// CreateNewPost writes _posts/<slug>.html in srcDir, dated now and signed
// by the configured author. It returns the path of the new file.
func CreateNewPost(srcDir, title string, now time.Time) (string, error) {
	site, err := config.LoadSiteConfig(filepath.Join(srcDir, config.FileName))
	if err != nil {
		return "", err
	}
	return writePost(srcDir, title, site.Author, now)
}

func writePost(srcDir, title, author string, now time.Time) (string, error) {
	slug := util.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q gives an empty file name", title)
	}
	path := filepath.Join(srcDir, "_posts", slug+".html")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}

	header, err := yaml.Marshal(postFrontMatter{
		Title:  title,
		Date:   now.Format(content.DateLayout),
		Author: author,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.WriteString(postBodyContent)
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
