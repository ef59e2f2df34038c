package content

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned when a key does not name a loaded entry.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a key is loaded twice.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Collection owns every page. Site pages keep their load order; blog posts
// are iterated newest first. Both partitions share one key namespace so
// references can cross them.
type Collection struct {
	loader *Loader
	pages  map[string]*Page
	site   []string
	blog   []string
}

// NewCollection returns an empty collection loading pages with loader.
func NewCollection(loader *Loader) *Collection {
	return &Collection{
		loader: loader,
		pages:  make(map[string]*Page),
	}
}

// LoadSite loads a structural page and appends it to the site order.
func (c *Collection) LoadSite(key, src, dst string) error {
	if err := c.load(key, src, dst); err != nil {
		return err
	}
	c.site = append(c.site, key)
	return nil
}

// LoadBlog loads a blog post.
func (c *Collection) LoadBlog(key, src, dst string) error {
	if err := c.load(key, src, dst); err != nil {
		return err
	}
	c.blog = append(c.blog, key)
	return nil
}

func (c *Collection) load(key, src, dst string) error {
	if _, ok := c.pages[key]; ok {
		return fmt.Errorf("%w: page %q (%s)", ErrDuplicateKey, key, src)
	}
	page, err := c.loader.Load(key, src, dst)
	if err != nil {
		return err
	}
	c.pages[key] = page
	return nil
}

// Has reports whether key names a loaded page.
func (c *Collection) Has(key string) bool {
	_, ok := c.pages[key]
	return ok
}

// Get returns the page known as key.
func (c *Collection) Get(key string) (*Page, error) {
	page, ok := c.pages[key]
	if !ok {
		return nil, fmt.Errorf("%w: page %q", ErrNotFound, key)
	}
	return page, nil
}

// Site returns the site pages in load order.
func (c *Collection) Site() []*Page {
	out := make([]*Page, 0, len(c.site))
	for _, key := range c.site {
		out = append(out, c.pages[key])
	}
	return out
}

// Blog returns the blog posts, newest first by calendar date as written.
// Within a day, the later instant comes first; exact ties keep their load
// order.
func (c *Collection) Blog() []*Page {
	out := make([]*Page, 0, len(c.blog))
	for _, key := range c.blog {
		out = append(out, c.pages[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DateString(), out[j].DateString()
		if di != dj {
			return di > dj
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// All returns the site pages followed by the blog posts.
func (c *Collection) All() []*Page {
	return append(c.Site(), c.Blog()...)
}

// Len returns the number of pages.
func (c *Collection) Len() int {
	return len(c.pages)
}
