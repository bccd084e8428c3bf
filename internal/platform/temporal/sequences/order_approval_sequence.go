package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
	orderactivities "github.com/Apurer/go-persistence-examples/internal/platform/temporal/activities/orders"
)

// ApprovalRetryPolicy retries transient failures such as optimistic lock conflicts.
var ApprovalRetryPolicy = &temporal.RetryPolicy{
	InitialInterval:    time.Second,
	BackoffCoefficient: 2.0,
	MaximumInterval:    10 * time.Second,
	MaximumAttempts:    5,
	NonRetryableErrorTypes: []string{
		orderactivities.ErrTypeOrderNotFound,
		orderactivities.ErrTypeInvalidApproval,
	},
}

// RunOrderApprovalSequence executes the activities that approve an order header.
func RunOrderApprovalSequence(ctx workflow.Context, input orderstypes.ApproveOrderInput) (*orderstypes.ApprovalProjection, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order approval sequence started", "orderId", input.OrderID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         ApprovalRetryPolicy,
	}

	var projection orderstypes.ApprovalProjection
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), orderactivities.ApproveOrderActivityName, input).Get(ctx, &projection)
	if err != nil {
		logger.Error("order approval sequence failed", "orderId", input.OrderID, "error", err)
		return nil, err
	}
	logger.Info("order approval sequence approved", "orderId", projection.OrderID, "approvalId", projection.ApprovalID)
	return &projection, nil
}
