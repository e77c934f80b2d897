// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/folio/internal/blog"
	"github.com/starford/folio/internal/contact"
	"github.com/starford/folio/internal/content"
	"github.com/starford/folio/internal/kv"
	"github.com/starford/folio/internal/likes"
	"github.com/starford/folio/internal/mcpserver"
	"github.com/starford/folio/internal/render"
	"github.com/starford/folio/internal/sse"
	"github.com/starford/folio/internal/storage"
	"github.com/starford/folio/internal/web"
)

// catalogThrottle bounds how often catalog.updated is emitted.
const catalogThrottle = 2 * time.Second

// Run starts the site server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := newApplication(opts)
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := newLogger(os.Stdout, cfg.App.LogLevel)
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("site_root", cfg.Site.Root),
		slog.String("blog_source", cfg.Blog.Source),
		slog.String("contact_mode", cfg.Contact.Mode),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	db, err := kv.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init kv: %w", err)
	}
	defer db.Close()

	counter, err := likes.Load(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("load likes: %w", err)
	}

	broker := sse.NewBroker(catalogThrottle)
	defer broker.Close()

	site, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return fmt.Errorf("init site storage: %w", err)
	}

	posts, err := newBlog(cfg, site, counter, logger, blog.WithNotifier(broker))
	if err != nil {
		return err
	}
	if err := posts.Load(ctx); err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	submitter, err := newSubmitter(cfg.Contact, logger)
	if err != nil {
		return err
	}

	router, err := web.NewRouter(web.Deps{
		Blog:           posts,
		Likes:          counter,
		Broker:         broker,
		Submitter:      submitter,
		SiteRoot:       cfg.Site.Root,
		PostDir:        cfg.Blog.Dir,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Ready:          db.Ping,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Only local post assets can be watched.
	if cfg.Site.Watch && cfg.Blog.Source == BlogSourceFS {
		g.Go(func() error {
			if err := blog.Watch(gCtx, posts, site, logger); err != nil {
				logger.Warn("watcher stopped", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group so the watcher stops with the server.
var errShutdown = errors.New("shutdown")

// RunMCP serves the blog catalog and site content over MCP on stdio.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := newApplication(opts)
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	// Stdout carries the protocol.
	logger := newLogger(os.Stderr, cfg.App.LogLevel)
	slog.SetDefault(logger)

	db, err := kv.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init kv: %w", err)
	}
	defer db.Close()

	counter, err := likes.Load(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("load likes: %w", err)
	}

	site, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return fmt.Errorf("init site storage: %w", err)
	}

	posts, err := newBlog(cfg, site, counter, logger)
	if err != nil {
		return err
	}
	if err := posts.Load(ctx); err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	logger.Info("Starting MCP server on stdio", slog.String("version", app.version))
	return mcpserver.New(posts, app.version).ServeStdio()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// newBlog picks the post store for cfg.Blog.Source.
func newBlog(cfg *Config, site *storage.FS, counter *likes.Counter, logger *slog.Logger, opts ...blog.Option) (*blog.Service, error) {
	var store storage.Provider = site
	if cfg.Blog.Source == BlogSourceHTTP {
		remote, err := storage.NewHTTP(cfg.Blog.BaseURL, cfg.Blog.Timeout)
		if err != nil {
			return nil, fmt.Errorf("init blog storage: %w", err)
		}
		store = remote
	}
	opts = append(opts, blog.WithDir(cfg.Blog.Dir), blog.WithLogger(logger))
	return blog.New(store, render.New(), counter, content.Posts, opts...), nil
}

func newSubmitter(cfg ContactConfig, logger *slog.Logger) (contact.Submitter, error) {
	switch cfg.Mode {
	case ContactModeRelay:
		return contact.NewRelaySubmitter(cfg.Endpoint, cfg.Timeout), nil
	case ContactModeSMTP:
		s := cfg.SMTP
		return contact.NewMailSubmitter(s.Host, s.Port, s.Username, s.Password, s.To), nil
	case ContactModeLog, "":
		return contact.LogSubmitter{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown contact mode %q", cfg.Mode)
	}
}
