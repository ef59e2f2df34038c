package render

import (
	"fmt"
	"html/template"

	"wwwgen/internal/config"
)

// WikiBase prefixes the pages built by the wiki helper.
const WikiBase = "https://en.wikipedia.org/wiki/"

// Funcs returns the fixed helper registry installed in every template.
// here is bound to the site configuration; the others are plain functions.
func Funcs(site *config.SiteConfig) template.FuncMap {
	return template.FuncMap{
		"anchor": Anchor,
		"ref":    Ref,
		"link":   Link,
		"wiki":   Wiki,
		"here": func() template.HTML {
			return Anchor(site.BaseURL, site.Name)
		},
	}
}

// Anchor links to a trusted page. The label defaults to the URL.
func Anchor(url string, name ...string) template.HTML {
	label := url
	if len(name) > 0 && name[0] != "" {
		label = name[0]
	}
	return hyperlink(url, label, "", "noopener")
}

// Ref links to a third-party page worth citing, in a new tab.
func Ref(url, name string) template.HTML {
	return hyperlink(url, name, "_blank", "noopener nofollow")
}

// Link links to an untrusted third-party page, in a new tab.
func Link(url, name string) template.HTML {
	return hyperlink(url, name, "_blank", "noopener noreferrer nofollow")
}

// Wiki links to an encyclopedia article.
func Wiki(page, name string) template.HTML {
	return Link(WikiBase+page, name)
}

// hyperlink escapes the URL; the label is markup and is kept as is.
func hyperlink(url, label, target, rel string) template.HTML {
	href := template.HTMLEscapeString(url)
	if target == "" {
		return template.HTML(fmt.Sprintf(`<a rel="%s" href="%s">%s</a>`, rel, href, label))
	}
	return template.HTML(fmt.Sprintf(`<a target="%s" rel="%s" href="%s">%s</a>`, target, rel, href, label))
}
