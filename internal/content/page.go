package content

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the string form of a page date.
const DateLayout = "2006-01-02"

// dateLayouts are accepted for a front-matter date given as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Page is a unit of content: a structural site page or a blog post.
type Page struct {
	// Positional fields, computed from where the page is read and written.
	Key      string // relative path, unique across the collection
	Src      string
	Dst      string
	Path     string // destination relative to the output root, slash-separated
	URL      string
	BaseHref string

	Title       string
	Description string
	Author      string
	Banner      string
	Date        time.Time
	Draft       bool
	Next        string
	Prev        string
	Markup      string

	// Filled by Resolve unless set in the front matter.
	NextTitle string
	NextURL   string
	PrevTitle string
	PrevURL   string
	AuthorURL string

	// Filled once the page has been rendered.
	Excerpt string

	// Params holds configuration params overlaid by any front-matter key
	// that is not a well-known field.
	Params map[string]any
	Body   string
}

// DateString returns the page date as YYYY-MM-DD.
func (p *Page) DateString() string {
	return p.Date.Format(DateLayout)
}

// IsMarkdown reports whether the rendered body must go through Markdown.
func (p *Page) IsMarkdown() bool {
	m := strings.ToLower(p.Markup)
	return m == "markdown" || m == "md"
}

// frontMatterResult records which defaulted fields the front matter set.
type frontMatterResult struct {
	hasDate   bool
	hasBanner bool
}

// lowerKeys returns fields keyed by their trimmed, lower-cased names. Two
// keys that only differ by case are an error.
func lowerKeys(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	seen := make(map[string]string, len(fields))
	for rawKey, value := range fields {
		key := strings.ToLower(strings.TrimSpace(rawKey))
		if prev, ok := seen[key]; ok {
			first, second := prev, rawKey
			if second < first {
				first, second = second, first
			}
			return nil, fmt.Errorf("front-matter fields %q and %q collide", first, second)
		}
		seen[key] = rawKey
		out[key] = value
	}
	return out, nil
}

// applyFrontMatter overlays front-matter fields on p. Keys are matched
// lower-cased; unknown keys land in p.Params.
func (p *Page) applyFrontMatter(fields map[string]any) (frontMatterResult, error) {
	var res frontMatterResult
	fields, err := lowerKeys(fields)
	if err != nil {
		return res, err
	}
	for key, value := range fields {
		var err error
		switch key {
		case "key", "src", "dst", "path":
			return res, fmt.Errorf("front-matter field %q is reserved", key)
		case "url":
			p.URL, err = asString(key, value)
		case "title":
			p.Title, err = asString(key, value)
		case "description":
			p.Description, err = asString(key, value)
		case "author":
			p.Author, err = asString(key, value)
		case "banner":
			p.Banner, err = asString(key, value)
			res.hasBanner = true
		case "date":
			p.Date, err = asDate(value)
			res.hasDate = true
		case "draft":
			p.Draft = asDraft(value)
		case "next":
			p.Next, err = asString(key, value)
		case "prev":
			p.Prev, err = asString(key, value)
		case "markup":
			p.Markup, err = asString(key, value)
		case "next_title":
			p.NextTitle, err = asString(key, value)
		case "next_url":
			p.NextURL, err = asString(key, value)
		case "prev_title":
			p.PrevTitle, err = asString(key, value)
		case "prev_url":
			p.PrevURL, err = asString(key, value)
		case "author_url":
			p.AuthorURL, err = asString(key, value)
		case "excerpt":
			p.Excerpt, err = asString(key, value)
		default:
			p.Params[key] = value
		}
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func asString(key string, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case time.Time:
		return v.Format(DateLayout), nil
	case []any, map[string]any, map[any]any:
		return "", fmt.Errorf("front-matter field %q must be a scalar, got %T", key, value)
	default:
		return fmt.Sprint(v), nil
	}
}

func asDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("could not parse date %q, use YYYY-MM-DD or RFC3339", v)
	default:
		return time.Time{}, fmt.Errorf("front-matter field \"date\" must be a date, got %T", value)
	}
}

// asDraft treats the mere presence of the field as a draft flag, except for
// an explicit boolean false.
func asDraft(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}
