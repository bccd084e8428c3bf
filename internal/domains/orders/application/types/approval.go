package types

import "time"

// ApproveOrderInput carries an approval request through inline or durable execution.
type ApproveOrderInput struct {
	OrderID        int64  `json:"orderId"`
	ApprovedBy     string `json:"approvedBy"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// ApprovalProjection is the flat, serialisable outcome of an approval.
type ApprovalProjection struct {
	OrderID     int64     `json:"orderId"`
	ApprovalID  int64     `json:"approvalId"`
	ApprovedBy  string    `json:"approvedBy"`
	OrderStatus string    `json:"orderStatus"`
	Version     int       `json:"version"`
	ApprovedAt  time.Time `json:"approvedAt"`
}
