package domain

import (
	"errors"
	"strings"
)

// OrderStatus enumerates order progression.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusInProcess OrderStatus = "IN_PROCESS"
	OrderStatusComplete  OrderStatus = "COMPLETE"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

var (
	ErrInvalidOrderStatus = errors.New("order status is invalid")
	ErrInvalidQuantity    = errors.New("quantity ordered must be greater than zero")
	ErrEmptyApprover      = errors.New("approved by is required")
	ErrMissingProduct     = errors.New("order line requires a persisted product")
)

// OrderHeader is the order aggregate root. Version guards concurrent updates.
type OrderHeader struct {
	BaseEntity
	Customer        *Customer
	ShippingAddress *Address
	BillingAddress  *Address
	OrderStatus     OrderStatus
	OrderLines      []*OrderLine
	OrderApproval   *OrderApproval
	Version         int
}

// OrderLine is a single product position of an order.
type OrderLine struct {
	BaseEntity
	QuantityOrdered int32
	OrderHeader     *OrderHeader
	Product         *Product
}

// OrderApproval records who approved an order.
type OrderApproval struct {
	BaseEntity
	ApprovedBy  string
	OrderHeader *OrderHeader
}

// SetCustomer assigns the customer and registers the order on it.
func (o *OrderHeader) SetCustomer(customer *Customer) {
	o.Customer = customer
	if customer != nil {
		customer.AddOrderHeader(o)
	}
}

// AddOrderLine appends the line and points it back at this order.
func (o *OrderHeader) AddOrderLine(line *OrderLine) {
	if line == nil {
		return
	}
	line.OrderHeader = o
	for _, existing := range o.OrderLines {
		if existing == line {
			return
		}
	}
	o.OrderLines = append(o.OrderLines, line)
}

// SetOrderApproval links both sides of the approval association.
func (o *OrderHeader) SetOrderApproval(approval *OrderApproval) {
	if approval != nil {
		approval.OrderHeader = o
	}
	o.OrderApproval = approval
}

// Approve attaches an approval and moves a new order into processing.
func (o *OrderHeader) Approve(approvedBy string) error {
	approvedBy = strings.TrimSpace(approvedBy)
	if approvedBy == "" {
		return ErrEmptyApprover
	}
	if o.OrderApproval != nil {
		o.OrderApproval.ApprovedBy = approvedBy
	} else {
		o.SetOrderApproval(&OrderApproval{ApprovedBy: approvedBy})
	}
	if o.OrderStatus == "" || o.OrderStatus == OrderStatusNew {
		o.OrderStatus = OrderStatusInProcess
	}
	return nil
}

// ApplyDefaults sets the status to NEW when it is absent.
func (o *OrderHeader) ApplyDefaults() {
	if o.OrderStatus == "" {
		o.OrderStatus = OrderStatusNew
	}
}

// Validate enforces status and line invariants.
func (o *OrderHeader) Validate() error {
	switch o.OrderStatus {
	case "", OrderStatusNew, OrderStatusInProcess, OrderStatusComplete, OrderStatusDelivered:
	default:
		return ErrInvalidOrderStatus
	}
	for _, line := range o.OrderLines {
		if line == nil {
			continue
		}
		if line.QuantityOrdered <= 0 {
			return ErrInvalidQuantity
		}
		if line.Product == nil || line.Product.IsNew() {
			return ErrMissingProduct
		}
	}
	if o.OrderApproval != nil && strings.TrimSpace(o.OrderApproval.ApprovedBy) == "" {
		return ErrEmptyApprover
	}
	return nil
}

// CustomerID returns the owning customer's ID, or zero when unset.
func (o *OrderHeader) CustomerID() int64 {
	if o.Customer == nil {
		return 0
	}
	return o.Customer.ID
}

// Equal compares orders by persistent identity.
func (o *OrderHeader) Equal(other *OrderHeader) bool {
	if o == nil || other == nil {
		return false
	}
	return o.SameIdentity(other.BaseEntity)
}

// Equal compares order lines by persistent identity.
func (l *OrderLine) Equal(other *OrderLine) bool {
	if l == nil || other == nil {
		return false
	}
	return l.SameIdentity(other.BaseEntity)
}

// Equal compares approvals by persistent identity.
func (a *OrderApproval) Equal(other *OrderApproval) bool {
	if a == nil || other == nil {
		return false
	}
	return a.SameIdentity(other.BaseEntity)
}

// Clone deep-copies the order graph. The customer is copied without its other orders.
func (o *OrderHeader) Clone() *OrderHeader {
	if o == nil {
		return nil
	}
	var customer *Customer
	if o.Customer != nil {
		customer = o.Customer.shallowClone()
	}
	clone := o.cloneWith(customer)
	if customer != nil {
		customer.OrderHeaders = append(customer.OrderHeaders, clone)
	}
	return clone
}

func (o *OrderHeader) cloneWith(customer *Customer) *OrderHeader {
	clone := *o
	clone.Customer = customer
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		clone.ShippingAddress = &addr
	}
	if o.BillingAddress != nil {
		addr := *o.BillingAddress
		clone.BillingAddress = &addr
	}
	clone.OrderLines = nil
	for _, line := range o.OrderLines {
		if line == nil {
			continue
		}
		l := *line
		l.OrderHeader = &clone
		l.Product = line.Product.Clone()
		clone.OrderLines = append(clone.OrderLines, &l)
	}
	clone.OrderApproval = nil
	if o.OrderApproval != nil {
		approval := *o.OrderApproval
		approval.OrderHeader = &clone
		clone.OrderApproval = &approval
	}
	return &clone
}
