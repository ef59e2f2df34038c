// Package render executes page bodies and small inline documents as Go
// templates against an explicit, read-only context.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"wwwgen/internal/config"
	"wwwgen/internal/content"
)

// Options tune a Renderer.
type Options struct {
	// LookupDir holds templates reachable with {{ template "name" . }},
	// named by their slash-separated path relative to the directory.
	LookupDir string
	// Unsafe disables sanitization of Markdown output.
	Unsafe bool
}

// Context is the data every template is executed against. Page is nil for
// site-level documents such as the feed header.
type Context struct {
	Site   *config.SiteConfig
	Page   *content.Page
	Pages  *content.Collection
	People content.People
}

// Renderer renders template sources. It is built once per build, after
// every page has been loaded.
type Renderer struct {
	site   *config.SiteConfig
	pages  *content.Collection
	people content.People
	base   *template.Template
	opts   Options
}

// New parses the lookup templates and returns a Renderer exposing pages and
// people to every template.
func New(site *config.SiteConfig, pages *content.Collection, people content.People, opts Options) (*Renderer, error) {
	base := template.New("").Funcs(Funcs(site)).Option("missingkey=error")
	if opts.LookupDir != "" {
		if err := parseLookupDir(base, opts.LookupDir); err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
	}
	return &Renderer{
		site:   site,
		pages:  pages,
		people: people,
		base:   base,
		opts:   opts,
	}, nil
}

// parseLookupDir adds every file under dir to base. A missing directory
// is not an error: sites without shared templates are valid.
func parseLookupDir(base *template.Template, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := base.New(filepath.ToSlash(rel)).Parse(string(src)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		return nil
	})
}

// Render executes src, named name in error messages, with page as the
// current page. Undefined fields, missing map keys and syntax errors are
// all reported as errors.
func (r *Renderer) Render(name, src string, page *content.Page) ([]byte, error) {
	set, err := r.base.Clone()
	if err != nil {
		return nil, err
	}
	// Clone does not carry template options over.
	set.Option("missingkey=error")
	tmpl, err := set.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	ctx := Context{
		Site:   r.site,
		Page:   page,
		Pages:  r.pages,
		People: r.people,
	}
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderPage renders the body of page, converting it from Markdown when
// the page asks for it.
func (r *Renderer) RenderPage(page *content.Page) ([]byte, error) {
	out, err := r.Render(page.Key, page.Body, page)
	if err != nil {
		return nil, err
	}
	if !page.IsMarkdown() {
		return out, nil
	}
	return convertMarkdown(out, r.opts.Unsafe)
}
