package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newServeCmd() *cobra.Command {
	cfg := folio.ConfigFromEnv()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			site := cfg.WithDefaults()
			app := folio.New(site, views.New(site))
			defer app.Close()
			if err := app.Start(ctx); err != nil {
				if app.Logger != nil {
					app.Logger.Error("server stopped", zap.Error(err))
				}
				return err
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address (env ADDR)")
	f.StringVar(&cfg.PostsSource, "posts", cfg.PostsSource, `posts source: builtin, yaml:<path> or sqlite:<path> (env POSTS_SOURCE)`)
	f.StringVar(&cfg.URL, "site-url", cfg.URL, "canonical site URL (env SITE_URL)")
	f.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error (env LOG_LEVEL)")
	f.StringVar(&cfg.Log.Path, "log-path", cfg.Log.Path, "rolling log file, stdout only when empty (env LOG_PATH)")
	return cmd
}
