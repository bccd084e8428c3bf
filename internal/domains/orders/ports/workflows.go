package ports

import (
	"context"

	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
)

// ApprovalOrchestrator runs order approvals, either inline or as a durable workflow.
type ApprovalOrchestrator interface {
	ApproveOrder(ctx context.Context, input orderstypes.ApproveOrderInput) (*orderstypes.ApprovalProjection, error)
}
