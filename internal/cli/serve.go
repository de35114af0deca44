package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/app"
	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/db"
	"github.com/abuelosolos/Fara/internal/logger"
	"github.com/abuelosolos/Fara/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(parent context.Context, migrate bool) error {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	ctx = logger.WithContext(ctx, log)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.FromAppConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer pool.Close()

	if migrate {
		if _, err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}

	container, err := app.NewContainer(cfg, pool, log)
	if err != nil {
		return err
	}
	defer func() { _ = container.Close() }()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(container.Router, "fara"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Run server in separate goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.HTTPAddr), zap.String("timezone", cfg.BusinessLocation.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for Ctrl+C or a listener failure
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}

	log.Info("server exited gracefully")
	return nil
}
