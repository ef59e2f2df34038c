package content

import "fmt"

// AuthorAnchorPage is the page hosting one anchor per person.
const AuthorAnchorPage = "/about.html"

// Resolve fills the navigation and author links of every page. Fields
// already set by the front matter are kept. A next or prev key that names
// no page is an error.
func Resolve(pages *Collection) error {
	for _, page := range pages.All() {
		next, err := pages.Get(page.Next)
		if err != nil {
			return fmt.Errorf("failed to resolve next of %s: %w", page.Key, err)
		}
		prev, err := pages.Get(page.Prev)
		if err != nil {
			return fmt.Errorf("failed to resolve prev of %s: %w", page.Key, err)
		}

		if page.NextTitle == "" {
			page.NextTitle = next.Title
		}
		if page.NextURL == "" {
			page.NextURL = "/" + next.Key
		}
		if page.PrevTitle == "" {
			page.PrevTitle = prev.Title
		}
		if page.PrevURL == "" {
			page.PrevURL = "/" + prev.Key
		}
		if page.AuthorURL == "" {
			page.AuthorURL = AuthorAnchorPage + "#" + page.Author
		}
	}
	return nil
}
