// Package folio is a small personal blog server built with Go, Echo, and templ.
// It serves a searchable post listing and one page per post from a read-only
// post set loaded once at startup.
//
// Users provide the templ components via the ViewFuncs struct (see the views
// package for the stock ones), and folio handles routing, middleware, search
// and lookup.
package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ViewFuncs holds the templ components the handlers render. query is the
// request's search text, total the size of the whole repository.
type ViewFuncs struct {
	Home        func(posts []BlogPost, query string, total int) templ.Component
	BlogSection func(posts []BlogPost, query string, total int) templ.Component
	Post        func(post BlogPost) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central folio application. It wires together the repository,
// logger, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Repo   *Repository
	Logger *zap.Logger
	Views  ViewFuncs

	customRoutes []func(*App)
	ready        bool
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Views:  views,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup loads the post set and installs middleware and routes. Start calls
// it; tests call it directly to drive App.Echo with httptest.
func (a *App) Setup(ctx context.Context) error {
	if a.ready {
		return nil
	}
	if a.Logger == nil {
		logger, err := NewLogger(a.Config.Log)
		if err != nil {
			return fmt.Errorf("folio: init logger: %w", err)
		}
		a.Logger = logger
	}
	if a.Repo == nil {
		posts, err := LoadPosts(ctx, a.Config.PostsSource)
		if err != nil {
			return fmt.Errorf("folio: load posts: %w", err)
		}
		repo, err := NewRepository(posts)
		if err != nil {
			return fmt.Errorf("folio: load posts: %w", err)
		}
		a.Repo = repo
	}
	a.Logger.Info("posts loaded",
		zap.String("source", a.Config.PostsSource),
		zap.Int("count", a.Repo.Len()))

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until ctx is cancelled, then shuts the
// server down within Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/:id/", a.handlePost)
}

// Close flushes the logger. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}
