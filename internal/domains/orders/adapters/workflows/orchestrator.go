package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-persistence-examples/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-persistence-examples/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.ApprovalOrchestrator = (*TemporalApprovalWorkflows)(nil)
	_ ports.ApprovalOrchestrator = (*InlineApprovalWorkflows)(nil)
)

// TemporalApprovalWorkflows starts order approvals on a Temporal cluster.
type TemporalApprovalWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalApprovalWorkflows wires a Temporal client into the orchestrator.
func NewTemporalApprovalWorkflows(c client.Client) *TemporalApprovalWorkflows {
	return &TemporalApprovalWorkflows{client: c, taskQueue: orderworkflows.ApprovalTaskQueue}
}

// ApproveOrder starts the approval workflow and waits for its result.
// A repeated idempotency key joins the run that is already in flight.
func (o *TemporalApprovalWorkflows) ApproveOrder(ctx context.Context, input orderstypes.ApproveOrderInput) (*orderstypes.ApprovalProjection, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal approval workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildApprovalWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.ApprovalWorkflowName,
		orderworkflows.ApprovalWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var projection orderstypes.ApprovalProjection
			if err := existingRun.Get(ctx, &projection); err != nil {
				return nil, translateWorkflowError(err)
			}
			return &projection, nil
		}
		return nil, err
	}
	var projection orderstypes.ApprovalProjection
	if err := run.Get(ctx, &projection); err != nil {
		return nil, translateWorkflowError(err)
	}
	return &projection, nil
}

// translateWorkflowError restores the sentinel errors the HTTP layer maps.
func translateWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case orderactivities.ErrTypeOrderNotFound:
		return fmt.Errorf("%w: %s", ports.ErrNotFound, appErr.Message())
	case orderactivities.ErrTypeInvalidApproval:
		return fmt.Errorf("%w: %s", ordersapp.ErrInvalidInput, appErr.Message())
	}
	return err
}

// InlineApprovalWorkflows approves through the DAO without Temporal, for tests and dev fallbacks.
type InlineApprovalWorkflows struct {
	orders ports.OrderHeaderDAO
}

func NewInlineApprovalWorkflows(orders ports.OrderHeaderDAO) *InlineApprovalWorkflows {
	return &InlineApprovalWorkflows{orders: orders}
}

func (o *InlineApprovalWorkflows) ApproveOrder(ctx context.Context, input orderstypes.ApproveOrderInput) (*orderstypes.ApprovalProjection, error) {
	if o == nil || o.orders == nil {
		return nil, errors.New("inline approval workflows not configured")
	}
	header, err := o.orders.Approve(ctx, input.OrderID, input.ApprovedBy)
	if err != nil {
		return nil, err
	}
	return orderstypes.FromApprovedOrder(header), nil
}

func buildApprovalWorkflowID(input orderstypes.ApproveOrderInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("order-approval-idem-%s", hashIdempotencyKey(key))
	}
	return fmt.Sprintf("order-approval-%d-%s", input.OrderID, traceComponent)
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	// First 16 hex chars keep workflow IDs readable and deterministic.
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return "fallback-" + uuid.NewString()
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
