package orders

import (
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
	"github.com/Apurer/go-persistence-examples/internal/platform/temporal/sequences"
)

const (
	// ApprovalWorkflowName is the public identifier for registering the workflow.
	ApprovalWorkflowName = "orders.workflows.Approval"
	// ApprovalTaskQueue is the queue consumed by the worker processing order approvals.
	ApprovalTaskQueue = "ORDER_APPROVAL"
)

// ApprovalWorkflowInput captures the approval command plus the caller's trace.
type ApprovalWorkflowInput struct {
	Command orderstypes.ApproveOrderInput
	TraceID string
}

// ApprovalWorkflow approves an order header durably.
func ApprovalWorkflow(ctx workflow.Context, input ApprovalWorkflowInput) (*orderstypes.ApprovalProjection, error) {
	logger := workflow.GetLogger(ctx)
	orderID := input.Command.OrderID
	logger.Info("ApprovalWorkflow started", withTraceID(input.TraceID, "orderId", orderID)...)
	projection, err := sequences.RunOrderApprovalSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ApprovalWorkflow failed", withTraceID(input.TraceID, "orderId", orderID, "error", err)...)
		return nil, err
	}
	logger.Info("ApprovalWorkflow completed", withTraceID(input.TraceID, "orderId", projection.OrderID, "version", projection.Version)...)
	return projection, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
