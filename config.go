package folio

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "My Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Site owner for JSON-LD

	Addr        string // Listen address (default ":3000")
	PostsSource string // "builtin", "yaml:<path>" or "sqlite:<path>" (default "builtin")
	StaticDir   string // Directory served under /public (default "public")

	Log LogConfig

	ShutdownTimeout time.Duration // Graceful shutdown budget (default 10s)
}

// LogConfig controls the zap logger built by NewLogger.
type LogConfig struct {
	Level      string // debug, info, warn, error (default "info")
	Path       string // Optional rolling log file; stdout only when empty
	MaxSizeMB  int    // default 100
	MaxBackups int    // default 3
	MaxAgeDays int    // default 7
	Compress   bool
}

// WithDefaults returns a copy of c with every unset field defaulted, the same
// way New does.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "My Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsSource == "" {
		c.PostsSource = SourceBuiltin
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// ConfigFromEnv builds a SiteConfig from SITE_*, ADDR, POSTS_SOURCE and LOG_*
// environment variables. Unset values are left for setDefaults.
func ConfigFromEnv() SiteConfig {
	return SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         os.Getenv("SITE_URL"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),
		Addr:        os.Getenv("ADDR"),
		PostsSource: os.Getenv("POSTS_SOURCE"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		Log: LogConfig{
			Level:    os.Getenv("LOG_LEVEL"),
			Path:     os.Getenv("LOG_PATH"),
			Compress: strings.EqualFold(os.Getenv("LOG_COMPRESS"), "true"),
		},
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the logger App.Setup would otherwise build from Config.Log.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithRepository serves repo instead of loading Config.PostsSource.
func WithRepository(repo *Repository) Option {
	return func(a *App) {
		a.Repo = repo
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
