package content

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"wwwgen/internal/config"
	"wwwgen/internal/util"
)

// frontMatterFormats restricts detection to YAML blocks, so a body opening
// with a template action is never mistaken for a JSON block.
var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("---yaml", "---", yaml.Unmarshal),
}

// Loader turns source files into pages, seeded with the site configuration.
type Loader struct {
	site     *config.SiteConfig
	destRoot string
}

// NewLoader returns a Loader computing output paths relative to destRoot.
func NewLoader(site *config.SiteConfig, destRoot string) *Loader {
	return &Loader{site: site, destRoot: destRoot}
}

// Load reads src and builds the page known as key, to be written at dst.
// Configuration values come first, then positional fields, then the front
// matter, which wins on conflict.
func (l *Loader) Load(key, src, dst string) (*Page, error) {
	raw, err := readSource(src)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	fields, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter of %s: %w", src, err)
	}

	rel, err := filepath.Rel(l.destRoot, dst)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	p := &Page{
		Title:       l.site.Title,
		Description: l.site.Description,
		Author:      l.site.Author,
		Next:        l.site.Next,
		Prev:        l.site.Prev,
		Params:      maps.Clone(l.site.Params),
		Key:         key,
		Src:         src,
		Dst:         dst,
		Path:        rel,
		URL:         l.site.URLFor(rel),
		BaseHref:    util.ComputeBaseHref(rel),
		Body:        body,
	}
	if p.Params == nil {
		p.Params = make(map[string]any)
	}

	res, err := p.applyFrontMatter(fields)
	if err != nil {
		return nil, fmt.Errorf("invalid front matter in %s: %w", src, err)
	}
	if !res.hasDate {
		p.Date = dayOf(info.ModTime())
	}
	if !res.hasBanner {
		p.Banner = p.Title
	}
	return p, nil
}

func readSource(src string) ([]byte, error) {
	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", src, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("content file is not valid UTF-8: %s", src)
	}
	return raw, nil
}

// splitFrontMatter separates an optional YAML block from the body. Without
// a block the whole input is the body and the fields are empty.
func splitFrontMatter(raw []byte) (map[string]any, string, error) {
	fields := make(map[string]any)
	rest, err := frontmatter.Parse(bytes.NewReader(raw), &fields, frontMatterFormats...)
	if err != nil {
		return nil, "", err
	}
	if fields == nil {
		fields = make(map[string]any)
	}
	return fields, string(rest), nil
}

// dayOf truncates t to midnight, local time.
func dayOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
