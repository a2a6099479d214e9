// Package views holds the stock templ components for a folio site.
package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Views renders every page with the site settings it was built from.
type Views struct {
	cfg folio.SiteConfig
}

// New returns the stock components bound to cfg, ready for folio.New.
func New(cfg folio.SiteConfig) folio.ViewFuncs {
	v := Views{cfg: cfg}
	return folio.ViewFuncs{
		Home:        v.Home,
		BlogSection: v.BlogSection,
		Post:        v.Post,
		NotFound:    v.NotFound,
		ServerError: v.ServerError,
	}
}

// Home renders the full listing page with the search box.
func (v Views) Home(posts []folio.BlogPost, query string, total int) templ.Component {
	meta := folio.PageMeta{
		Title:       v.cfg.Name,
		Description: v.cfg.Description,
		URL:         folio.BuildURL(v.cfg.URL),
		OGType:      "website",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<header class="header"><h1 class="title">`)
		b.WriteString(esc(v.cfg.Name))
		b.WriteString(`</h1></header>`)
		b.WriteString(`<div class="search-container"><input id="search" type="text" class="search-input" placeholder="Search blogs..." aria-label="Search blogs" autocomplete="off" value="`)
		b.WriteString(esc(query))
		b.WriteString(`"/></div><div id="posts">`)
		writeBlogSection(&b, posts, query, total)
		b.WriteString(`</div>`)
		b.WriteString(searchScript)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(v.cfg, meta, WebsiteJsonLD(v.cfg), body)
}

// BlogSection renders only the post list and its notice. It is the fragment
// swapped into #posts while searching.
func (v Views) BlogSection(posts []folio.BlogPost, query string, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeBlogSection(&b, posts, query, total)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeBlogSection(b *strings.Builder, posts []folio.BlogPost, query string, total int) {
	b.WriteString(`<ul class="blog-list">`)
	for _, p := range posts {
		b.WriteString(`<li class="blog-item"><a class="blog-link" href="`)
		b.WriteString(esc(p.Path()))
		b.WriteString(`">`)
		writeImage(b, p, "blog-image", "350", "200", `loading="lazy"`)
		b.WriteString(`<div class="blog-content"><h2 class="blog-title">`)
		b.WriteString(esc(p.Title))
		b.WriteString(`</h2><p class="blog-meta">`)
		b.WriteString(esc(p.Date))
		b.WriteString(` by `)
		b.WriteString(esc(p.Author))
		b.WriteString(`</p></div></a></li>`)
	}
	b.WriteString(`</ul>`)
	if msg := folio.ListingMessage(query, len(posts), total); msg != "" {
		b.WriteString(`<p class="no-results">`)
		b.WriteString(esc(msg))
		b.WriteString(`</p>`)
	}
}

// Post renders the detail page for one post.
func (v Views) Post(post folio.BlogPost) templ.Component {
	meta := folio.PageMeta{
		Title:       post.Title + " | " + v.cfg.Name,
		Description: folio.Excerpt(post.Content, 160),
		URL:         folio.PostURL(v.cfg.URL, post),
		OGType:      "article",
		Image:       post.Image,
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="post">`)
		writeImage(&b, post, "post-image", "800", "400", `fetchpriority="high"`)
		b.WriteString(`<h1 class="title">`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</h1><p class="meta">By `)
		b.WriteString(esc(post.Author))
		b.WriteString(` on `)
		b.WriteString(esc(post.Date))
		b.WriteString(`</p>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := Content(post.Content).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<a href="/" class="back-link">Back to Home</a></article>`)
		return err
	})
	return Layout(v.cfg, meta, BlogPostingJsonLD(v.cfg, post), body)
}

// NotFound renders the 404 page.
func (v Views) NotFound() templ.Component {
	return v.errorPage("Not Found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func (v Views) ServerError() templ.Component {
	return v.errorPage("Something went wrong", "Please try again in a moment.")
}

func (v Views) errorPage(title, text string) templ.Component {
	meta := folio.PageMeta{
		Title:  title + " | " + v.cfg.Name,
		URL:    folio.BuildURL(v.cfg.URL),
		OGType: "website",
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="error"><h1 class="title">`+esc(title)+
			`</h1><p>`+esc(text)+`</p><a href="/" class="back-link">Back to Home</a></section>`)
		return err
	})
	return Layout(v.cfg, meta, "", body)
}

func writeImage(b *strings.Builder, p folio.BlogPost, class, width, height, loadAttr string) {
	src := safeURL(p.Image)
	if src == "" {
		return
	}
	b.WriteString(`<img class="` + class + `" src="` + src + `" alt="` + esc(p.Title) +
		`" width="` + width + `" height="` + height + `" ` + loadAttr + ` decoding="async"/>`)
}

func esc(s string) string {
	return html.EscapeString(s)
}

// searchScript refetches the #posts fragment on every keystroke. Responses
// that arrive after a newer request was sent are dropped.
const searchScript = `<script>
(function () {
  var input = document.getElementById("search");
  var target = document.getElementById("posts");
  if (!input || !target) return;
  var seq = 0;
  input.addEventListener("input", function () {
    var mine = ++seq;
    fetch("/?partial=blog&q=" + encodeURIComponent(input.value), {
      headers: { "HX-Request": "true" }
    })
      .then(function (r) { return r.text(); })
      .then(function (html) { if (mine === seq) target.innerHTML = html; });
  });
})();
</script>`
