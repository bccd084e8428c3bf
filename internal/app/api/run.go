package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersworkflows "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/workflows"
	ordersports "github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/platform/config"
	"github.com/Apurer/go-persistence-examples/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-persistence-examples/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-persistence-examples/internal/platform/postgres"
	platformtemporal "github.com/Apurer/go-persistence-examples/internal/platform/temporal"
)

const serviceName = "daoex-api"

// Run boots the HTTP API with observability, repositories, and workflows wired.
// It returns when ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg config.Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: cfg.Telemetry.OTLPInsecure,
		LogLevel:     cfg.Telemetry.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectWithFallback(ctx, cfg.Database.DSN, DatabaseOptions(cfg.Database), logger)
	defer cleanupDB()
	if db != nil && cfg.Database.AutoMigrate {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	repos := NewRepositories(db)
	daos := NewDAOs(repos, instruments)

	var approvals ordersports.ApprovalOrchestrator = ordersworkflows.NewInlineApprovalWorkflows(daos.OrderHeaders)
	if temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, approving orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		approvals = ordersworkflows.NewTemporalApprovalWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Temporal.Namespace))
	}

	router := NewRouter(cfg.HTTP.BasePath, []gin.HandlerFunc{otelgin.Middleware(serviceName)}, Handlers(daos, approvals)...)
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down API")
		return server.Shutdown(shutdownCtx)
	}
}

// DatabaseOptions maps the database config onto connection pool options.
func DatabaseOptions(cfg config.DatabaseConfig) platformpostgres.Options {
	opts := platformpostgres.DefaultOptions()
	opts.MaxOpenConns = cfg.MaxOpenConns
	opts.MaxIdleConns = cfg.MaxIdleConns
	opts.ConnMaxLifetime = cfg.ConnMaxLifetime
	opts.TraceQueryVariables = cfg.TraceQueryVariables
	return opts
}
