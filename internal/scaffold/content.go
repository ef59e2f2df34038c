package scaffold

// Default file contents of a new site.

const templateHeaderContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Page.Title }} | {{ .Site.Title }}</title>
  <meta name="description" content="{{ .Page.Description }}">
  <link rel="stylesheet" href="{{ .Page.BaseHref }}static/css/style.css">
</head>
<body>
<nav class="header-line">
  <div class="site-name">{{ here }}</div>
  <div class="banner">{{ .Page.Banner }}</div>
  <div class="menu">
    <a href="{{ .Page.BaseHref }}blog/index.html">blog</a>
    <a href="{{ .Page.BaseHref }}docs/index.html">docs</a>
    <a href="{{ .Page.BaseHref }}about.html">about</a>
  </div>
</nav>
<main>
`

const templateFooterContent = `</main>
<footer>
  <nav>
    <a href="{{ .Page.PrevURL }}">&larr; {{ .Page.PrevTitle }}</a>
    <a href="{{ .Page.BaseHref }}index.html">home</a>
    <a href="{{ .Page.NextURL }}">{{ .Page.NextTitle }} &rarr;</a>
  </nav>
  <div class="copyright">&copy; {{ .Site.Title }}</div>
</footer>
</body>
</html>
`

const personContent = `---
nickname: ` + DefaultAuthor + `
name: Your Name
---
Tell your readers who you are.
`

const indexContent = `---
title: Home
---
{{ template "header.html" . }}
<h1>{{ .Site.Title }}</h1>
<p>{{ .Site.Description }}</p>
<h2>Latest posts</h2>
{{ range .Pages.Blog }}{{ if not .Draft }}
<article>
  <h3><a href="{{ .URL }}">{{ .Title }}</a></h3>
  <p class="date">{{ .DateString }}</p>
  <p>{{ .Excerpt }}</p>
</article>
{{ end }}{{ end }}
{{ template "footer.html" . }}
`

const aboutContent = `---
title: About
---
{{ template "header.html" . }}
<h1>About</h1>
{{ range .People.Sorted }}
<section id="{{ .Nickname }}">
  <h2>{{ .Name }}</h2>
  <p>{{ .Body }}</p>
</section>
{{ end }}
{{ template "footer.html" . }}
`

const blogIndexContent = `---
title: Blog
---
{{ template "header.html" . }}
<h1>All posts</h1>
<ul>
{{ range .Pages.Blog }}{{ if not .Draft }}
  <li>{{ .DateString }} <a href="{{ .URL }}">{{ .Title }}</a></li>
{{ end }}{{ end }}
</ul>
{{ template "footer.html" . }}
`

const docsIndexContent = `---
title: Documentation
prev: about.html
next: blog/index.html
---
{{ template "header.html" . }}
<h1>Documentation</h1>
<p>Pages are templates: {{ anchor "https://pkg.go.dev/html/template" "Go templates" }} with the site, the page, all pages and all people in scope.</p>
<p>Add <code>markup: markdown</code> to the front matter to write a page in Markdown.</p>
{{ template "footer.html" . }}
`

const postBodyContent = `{{ template "header.html" . }}
<article>
<h1>{{ .Page.Title }}</h1>
<p class="byline">{{ .Page.DateString }}, <a href="{{ .Page.AuthorURL }}">{{ .Page.Author }}</a></p>
<p>Write something meaningful here.</p>
</article>
{{ template "footer.html" . }}
`

const robotsContent = `User-agent: *
Allow: /
`

const staticCSSContent = `body {
  font-family: sans-serif;
  max-width: 700px;
  margin: 2em auto;
  padding: 0 1em;
  line-height: 1.6;
  color: #222;
  background: #fdfdfd;
}
.header-line {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
  gap: 1em;
  margin-bottom: 2em;
  flex-wrap: wrap;
}
.site-name { font-size: 0.9em; color: #777; font-style: italic; }
.banner { font-size: 1.2em; flex-grow: 1; text-align: center; }
.menu a { margin: 0 0.3em; }
.date, .byline { font-size: 0.9em; color: #777; }
main { margin-bottom: 3em; }
footer { text-align: center; font-size: 0.9em; color: #555; }
footer nav a { color: #444; text-decoration: none; margin: 0 0.5em; }
footer nav a:hover { text-decoration: underline; }
`
