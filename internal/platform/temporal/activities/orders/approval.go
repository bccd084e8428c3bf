package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
	ordersports "github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

const (
	// ApproveOrderActivityName records an approval on an existing order header.
	ApproveOrderActivityName = "orders.activities.ApproveOrder"

	// ErrTypeOrderNotFound marks an application error for a missing order header.
	ErrTypeOrderNotFound = "OrderNotFound"
	// ErrTypeInvalidApproval marks an application error for an approval the domain rejected.
	ErrTypeInvalidApproval = "InvalidApproval"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	orders ordersports.OrderHeaderDAO
}

// NewActivities wires the order header DAO into the Temporal activities bundle.
func NewActivities(orders ordersports.OrderHeaderDAO) *Activities {
	return &Activities{orders: orders}
}

// ApproveOrder loads the order, applies the approval and saves it.
// Stale versions are retried; missing orders and invalid approvers are not.
func (a *Activities) ApproveOrder(ctx context.Context, input orderstypes.ApproveOrderInput) (*orderstypes.ApprovalProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.orders == nil {
		logger.Error("approve order activity not initialized", "orderId", input.OrderID)
		return nil, errors.New("approve order activity not initialized")
	}
	logger.Info("ApproveOrder activity started", "orderId", input.OrderID, "attempt", activity.GetInfo(ctx).Attempt)
	header, err := a.orders.Approve(ctx, input.OrderID, input.ApprovedBy)
	switch {
	case err == nil:
	case errors.Is(err, ordersports.ErrNotFound):
		logger.Error("ApproveOrder activity found no order", "orderId", input.OrderID)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOrderNotFound, err)
	case errors.Is(err, ordersapp.ErrInvalidInput):
		logger.Error("ApproveOrder activity rejected approval", "orderId", input.OrderID, "error", err)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidApproval, err)
	default:
		logger.Warn("ApproveOrder activity failed", "orderId", input.OrderID, "error", err)
		return nil, err
	}
	projection := orderstypes.FromApprovedOrder(header)
	logger.Info("ApproveOrder activity completed", "orderId", projection.OrderID, "version", projection.Version)
	return projection, nil
}
