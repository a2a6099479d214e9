package folio_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newTestApp(t *testing.T, posts []folio.BlogPost) *folio.App {
	t.Helper()
	repo, err := folio.NewRepository(posts)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}
	cfg := folio.SiteConfig{URL: "https://blog.example.com"}.WithDefaults()
	app := folio.New(cfg, views.New(cfg),
		folio.WithRepository(repo),
		folio.WithLogger(zap.NewNop()))
	if err := app.Setup(context.Background()); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	return app
}

func get(app *folio.App, target string, partial bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if partial {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeListsAllPosts(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/", false)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("home should be a full page")
	}
	if !strings.Contains(body, `placeholder="Search blogs..."`) {
		t.Error("home should contain the search input")
	}
	last := -1
	for _, p := range folio.DefaultPosts() {
		i := strings.Index(body, `href="`+p.Path()+`"`)
		if i < 0 {
			t.Fatalf("home is missing a link to post %d", p.ID)
		}
		if i < last {
			t.Errorf("post %d rendered out of order", p.ID)
		}
		last = i
	}
	if strings.Contains(body, "No blogs found") {
		t.Error("home should not show a no-results notice")
	}
}

func TestHomeIgnoresQueryOnFullPage(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	body := get(app, "/?q=ZZZ", false).Body.String()
	if strings.Contains(body, "No blogs found") {
		t.Error("full page render should not bind the query string")
	}
	if !strings.Contains(body, `href="/blog/4/"`) {
		t.Error("full page render should list every post")
	}
}

func TestSearchPartial(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())

	rec := get(app, "/?partial=blog&q=next", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("partial should not contain the page shell")
	}
	if !strings.Contains(body, `href="/blog/2/"`) {
		t.Error("partial should contain post 2")
	}
	for _, other := range []string{"/blog/1/", "/blog/3/", "/blog/4/"} {
		if strings.Contains(body, `href="`+other+`"`) {
			t.Errorf("partial should not contain %s", other)
		}
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestSearchPartialNoResults(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	body := get(app, "/?partial=blog&q=ZZZ", true).Body.String()
	if !strings.Contains(body, "No blogs found matching &#34;ZZZ&#34;") {
		t.Errorf("missing no-results notice in %q", body)
	}
	if strings.Contains(body, "<li") {
		t.Error("no posts should be listed")
	}
}

func TestSearchPartialEscapesQuery(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	body := get(app, "/?partial=blog&q=%3Cscript%3E", true).Body.String()
	if strings.Contains(body, "<script>") {
		t.Error("query must be escaped in the notice")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("escaped query missing in %q", body)
	}
}

func TestHomeEmptyRepository(t *testing.T) {
	app := newTestApp(t, nil)
	body := get(app, "/", false).Body.String()
	if !strings.Contains(body, "No posts yet.") {
		t.Error("empty repository should say so")
	}
	body = get(app, "/?partial=blog&q=abc", true).Body.String()
	if !strings.Contains(body, "No blogs found matching &#34;abc&#34;") {
		t.Error("search on an empty repository should report no results")
	}
}

func TestPostFound(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/blog/2/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Learning Next.js",
		"By Alex Johnson on 2024-10-05",
		`href="/"`,
		"Back to Home",
		`"@type":"BlogPosting"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("post page missing %q", want)
		}
	}
}

func TestPostNotFound(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	for _, target := range []string{"/blog/99/", "/blog/abc/", "/blog/0/", "/blog/x2/"} {
		rec := get(app, target, false)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Not Found") {
			t.Errorf("GET %s should render the not found page", target)
		}
	}
}

func TestPostIDTrailingText(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	for target, title := range map[string]string{
		"/blog/2abc/": "Learning Next.js",
		"/blog/1.5/":  "Welcome to My Blog",
	} {
		rec := get(app, target, false)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", target, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), title) {
			t.Errorf("GET %s should render %q", target, title)
		}
	}
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/nope/", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found") {
		t.Error("unknown route should render the not found page")
	}
}

func TestRedirects(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	tests := []struct {
		target   string
		location string
	}{
		{"/blog/2", "/blog/2/"},
		{"/blog", "/"},
	}
	for _, tt := range tests {
		rec := get(app, tt.target, false)
		if rec.Code != http.StatusMovedPermanently {
			t.Errorf("GET %s status = %d, want 301", tt.target, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tt.location {
			t.Errorf("GET %s Location = %q, want %q", tt.target, got, tt.location)
		}
	}
}

func TestSitemap(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/sitemap.xml", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if n := strings.Count(body, "<loc>"); n != 5 {
		t.Errorf("sitemap has %d URLs, want 5", n)
	}
	if !strings.Contains(body, "<loc>https://blog.example.com/blog/3/</loc>") {
		t.Error("sitemap missing post 3")
	}
	if !strings.Contains(body, "<lastmod>2024-12-15</lastmod>") {
		t.Error("sitemap missing lastmod")
	}
}

func TestFeed(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/feed.xml", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if n := strings.Count(body, "<item>"); n != 4 {
		t.Errorf("feed has %d items, want 4", n)
	}
	if !strings.Contains(body, "<guid>https://blog.example.com/blog/1/</guid>") {
		t.Error("feed missing guid for post 1")
	}
}

func TestRobotsAndHealth(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	robots := get(app, "/robots.txt", false).Body.String()
	if !strings.Contains(robots, "Sitemap: https://blog.example.com/sitemap.xml") {
		t.Errorf("robots.txt = %q", robots)
	}
	rec := get(app, "/healthz", false)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t, folio.DefaultPosts())
	rec := get(app, "/", false)
	if id := rec.Header().Get("X-Request-Id"); len(id) != 36 {
		t.Errorf("X-Request-Id = %q, want a uuid", id)
	}
}

func TestSetupLoadsConfiguredSource(t *testing.T) {
	cfg := folio.SiteConfig{PostsSource: "builtin"}.WithDefaults()
	app := folio.New(cfg, views.New(cfg), folio.WithLogger(zap.NewNop()))
	if err := app.Setup(context.Background()); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if app.Repo.Len() != 4 {
		t.Errorf("Repo.Len = %d, want 4", app.Repo.Len())
	}
}

func TestSetupRejectsUnknownSource(t *testing.T) {
	cfg := folio.SiteConfig{PostsSource: "ftp:somewhere"}
	app := folio.New(cfg, views.New(cfg), folio.WithLogger(zap.NewNop()))
	if err := app.Setup(context.Background()); err == nil {
		t.Fatal("expected Setup to fail for an unknown posts source")
	}
}

func TestRenderErrorBecomesServerError(t *testing.T) {
	cfg := folio.SiteConfig{}.WithDefaults()
	vf := views.New(cfg)
	vf.Post = func(folio.BlogPost) templ.Component {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return errors.New("boom")
		})
	}
	app := folio.New(cfg, vf, folio.WithLogger(zap.NewNop()))
	if err := app.Setup(context.Background()); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	rec := get(app, "/blog/1/", false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Error("expected the server error page")
	}
}
