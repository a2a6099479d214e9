package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Layout wraps body in the shared document shell: <head> metadata, JSON-LD
// and the stylesheet. jsonLD may be empty.
func Layout(cfg folio.SiteConfig, meta folio.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<title>` + esc(meta.Title) + `</title>`)
		if meta.Description != "" {
			b.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
			b.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `"/>`)
		}
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `"/>`)
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
		b.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
		if src := safeURL(meta.Image); src != "" {
			b.WriteString(`<meta property="og:image" content="` + src + `"/>`)
		}
		b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
		if jsonLD != "" {
			b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		b.WriteString(stylesheet)
		b.WriteString(`</head><body><main class="container">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

const stylesheet = `<style>
body{margin:0;font-family:system-ui,sans-serif;color:#222;background:#fafafa}
.container{max-width:800px;margin:0 auto;padding:2rem 1rem}
.header{text-align:center;margin-bottom:2rem}
.title{font-size:2rem;margin:0 0 .5rem}
.search-container{margin-bottom:2rem}
.search-input{width:100%;padding:.75rem 1rem;font-size:1rem;border:1px solid #ccc;border-radius:8px;box-sizing:border-box}
.blog-list{list-style:none;padding:0;display:grid;gap:1.5rem}
.blog-item{background:#fff;border-radius:8px;overflow:hidden;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.blog-link{display:block;color:inherit;text-decoration:none}
.blog-image,.post-image{width:100%;height:auto;display:block;object-fit:cover}
.blog-content{padding:1rem}
.blog-title{font-size:1.25rem;margin:0 0 .25rem}
.blog-meta,.meta{color:#666;font-size:.9rem;margin:0}
.post-image{border-radius:8px;margin-bottom:1.5rem}
.content{line-height:1.7}
.no-results{text-align:center;color:#666}
.back-link{display:inline-block;margin-top:2rem;color:#0070f3;text-decoration:none}
</style>`
