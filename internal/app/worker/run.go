// Package worker hosts the order approval workflow on its Temporal task queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	ordersmemory "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/platform/config"
	platformobservability "github.com/Apurer/go-persistence-examples/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-persistence-examples/internal/platform/postgres"
	platformtemporal "github.com/Apurer/go-persistence-examples/internal/platform/temporal"
	orderactivities "github.com/Apurer/go-persistence-examples/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-persistence-examples/internal/platform/temporal/workflows/orders"
)

const serviceName = "daoex-worker"

// Registrar is the subset of worker.Worker used to register workflows and activities.
type Registrar interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register binds the approval workflow and its activity under their stable names.
func Register(r Registrar, orders ordersports.OrderHeaderDAO) {
	activities := orderactivities.NewActivities(orders)
	r.RegisterWorkflowWithOptions(orderworkflows.ApprovalWorkflow, workflow.RegisterOptions{Name: orderworkflows.ApprovalWorkflowName})
	r.RegisterActivityWithOptions(activities.ApproveOrder, activity.RegisterOptions{Name: orderactivities.ApproveOrderActivityName})
}

// Run polls the approval task queue until the process is interrupted.
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
	if cfg.Temporal.Disabled {
		return platformtemporal.ErrDisabled
	}

	opts := platformpostgres.DefaultOptions()
	opts.MaxOpenConns = cfg.Database.MaxOpenConns
	opts.MaxIdleConns = cfg.Database.MaxIdleConns
	opts.ConnMaxLifetime = cfg.Database.ConnMaxLifetime
	db, cleanupDB := platformpostgres.ConnectWithFallback(ctx, cfg.Database.DSN, opts, logger)
	defer cleanupDB()
	var repo ordersports.OrderHeaderRepository
	if db == nil {
		logger.Warn("worker running on in-memory orders; approvals will not reach the API process")
		repo = ordersmemory.NewStore().OrderHeaders()
	} else {
		repo = orderspostgres.NewOrderHeaderRepository(db)
	}
	orders := ordersobs.NewOrderHeaderDAO(
		ordersapp.NewOrderHeaderDAO(repo),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	return serve(ctx, temporalClient, orders, cfg.Temporal.Namespace, logger)
}

func serve(ctx context.Context, c client.Client, orders ordersports.OrderHeaderDAO, namespace string, logger *slog.Logger) error {
	w := worker.New(c, orderworkflows.ApprovalTaskQueue, worker.Options{})
	Register(w, orders)

	interrupt := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(interrupt)
	}()
	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.ApprovalTaskQueue), slog.String("namespace", namespace))
	if err := w.Run(interrupt); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Temporal worker stopped")
	return nil
}
