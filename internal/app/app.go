// Package app is the composition root: it wires configuration, storage,
// services and transport together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/entry"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/journal"
	"github.com/glyphdict/glyphdict-backend/internal/auth"
	"github.com/glyphdict/glyphdict-backend/internal/config"
	"github.com/glyphdict/glyphdict-backend/internal/service/catalog"
	"github.com/glyphdict/glyphdict-backend/internal/transport/middleware"
	"github.com/glyphdict/glyphdict-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, builds the service graph and serves HTTP
// until the context is cancelled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	entryRepo := entry.New(pool)
	journalRepo := journal.New(pool)
	txManager := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(logger, entryRepo, journalRepo, txManager)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	allowlist := auth.NewAllowlist(cfg.Auth.AdminLogins())

	logger.Info("admin allowlist loaded", slog.Int("logins", allowlist.Len()))

	router := rest.NewRouter(rest.RouterDeps{
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		Admin:   rest.NewAdminHandler(catalogSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Logger:  logger,
		CORS:    cfg.CORS,
		Auth:    middleware.Auth(tokenManager, allowlist),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
