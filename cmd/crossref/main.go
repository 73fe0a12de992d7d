package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sydlexius/crossref/internal/api"
	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/config"
	"github.com/sydlexius/crossref/internal/database"
	"github.com/sydlexius/crossref/internal/logging"
	"github.com/sydlexius/crossref/internal/provider/builtin"
	"github.com/sydlexius/crossref/internal/seeder"
	"github.com/sydlexius/crossref/internal/settings"
	"github.com/sydlexius/crossref/internal/version"
	"github.com/sydlexius/crossref/internal/watcher"
)

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	// Handle subcommands before starting the server
	if len(os.Args) > 1 {
		var err error
		handled := true
		switch os.Args[1] {
		case "resolve":
			err = runResolve(os.Stdout, builtin.Default(), seeder.Default(), os.Args[2:])
		case "url":
			err = runURL(os.Stdout, builtin.Default(), os.Args[2:])
		case "version":
			fmt.Printf("crossref %s (%s)\n", version.Version, version.Commit)
		case "serve":
			handled = false
		default:
			err = fmt.Errorf("unknown command %q\n%s", os.Args[1], usage)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if handled {
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configPath() string {
	if p := os.Getenv("CR_CONFIG_PATH"); p != "" {
		return p
	}
	return "/data/config.yaml"
}

func run() error {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logManager, logger := logging.NewManager(cfg.Logging)
	defer logManager.Close() //nolint:errcheck
	slog.SetDefault(logger)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("closing database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("database ready", slog.String("path", cfg.Database.Path))

	store := catalog.NewStore(nil)
	if n, err := store.Reload(cfg.Catalog.Path); err != nil {
		// The server is still useful for URL work without a catalog.
		logger.Warn("catalog not loaded", "path", cfg.Catalog.Path, "error", err)
	} else {
		logger.Info("catalog loaded", "path", cfg.Catalog.Path, "entries", n)
	}

	logger.Info("starting crossref",
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(api.RouterDeps{
		Registry:    builtin.Default(),
		Seeders:     seeder.Default(),
		Catalog:     store,
		CatalogPath: cfg.Catalog.Path,
		Settings:    settings.NewService(db),
		Logger:      logger,
		BasePath:    cfg.Server.BasePath,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(ctx),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	reloadCatalog := func(context.Context) error {
		n, err := store.Reload(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		logger.Info("catalog loaded", "entries", n)
		return nil
	}
	if cfg.Catalog.Watch {
		go watcher.NewService(cfg.Catalog.Path, reloadCatalog, logger).Start(ctx)
	}

	// SIGHUP re-reads logging settings and the catalog file.
	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if next, err := config.Load(path); err != nil {
					logger.Error("reloading config", "error", err)
				} else {
					logManager.Reconfigure(next.Logging)
				}
				if err := reloadCatalog(ctx); err != nil {
					logger.Error("reloading catalog", "error", err)
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("base_path", cfg.Server.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
