package types

import "github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"

// FromApprovedOrder projects an approved order header.
func FromApprovedOrder(header *domain.OrderHeader) *ApprovalProjection {
	if header == nil {
		return nil
	}
	projection := &ApprovalProjection{
		OrderID:     header.ID,
		OrderStatus: string(header.OrderStatus),
		Version:     header.Version,
	}
	if approval := header.OrderApproval; approval != nil {
		projection.ApprovalID = approval.ID
		projection.ApprovedBy = approval.ApprovedBy
		projection.ApprovedAt = approval.LastModifiedDate
	}
	return projection
}
