package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetCustomer_LinksBothSides(t *testing.T) {
	customer := &Customer{CustomerName: "Acme"}
	header := &OrderHeader{}

	header.SetCustomer(customer)
	header.SetCustomer(customer)

	require.Same(t, customer, header.Customer)
	require.Len(t, customer.OrderHeaders, 1)
	require.Same(t, header, customer.OrderHeaders[0])
}

func TestAddOrderLine_SetsBackReference(t *testing.T) {
	header := &OrderHeader{}
	line := &OrderLine{QuantityOrdered: 3, Product: &Product{BaseEntity: BaseEntity{ID: 1}}}

	header.AddOrderLine(line)
	header.AddOrderLine(nil)

	require.Len(t, header.OrderLines, 1)
	require.Same(t, header, line.OrderHeader)
}

func TestApprove_MovesNewOrderIntoProcess(t *testing.T) {
	header := &OrderHeader{}
	header.ApplyDefaults()

	require.NoError(t, header.Approve("  Joe  "))
	require.Equal(t, OrderStatusInProcess, header.OrderStatus)
	require.NotNil(t, header.OrderApproval)
	require.Equal(t, "Joe", header.OrderApproval.ApprovedBy)
	require.Same(t, header, header.OrderApproval.OrderHeader)

	header.OrderStatus = OrderStatusComplete
	require.NoError(t, header.Approve("Ann"))
	require.Equal(t, OrderStatusComplete, header.OrderStatus)
	require.Equal(t, "Ann", header.OrderApproval.ApprovedBy)
}

func TestApprove_RequiresApprover(t *testing.T) {
	header := &OrderHeader{}
	require.ErrorIs(t, header.Approve(" "), ErrEmptyApprover)
	require.Nil(t, header.OrderApproval)
}

func TestValidate(t *testing.T) {
	product := &Product{BaseEntity: BaseEntity{ID: 7}}

	header := &OrderHeader{OrderStatus: "SHIPPED"}
	require.ErrorIs(t, header.Validate(), ErrInvalidOrderStatus)

	header = &OrderHeader{}
	header.AddOrderLine(&OrderLine{QuantityOrdered: 0, Product: product})
	require.ErrorIs(t, header.Validate(), ErrInvalidQuantity)

	header = &OrderHeader{}
	header.AddOrderLine(&OrderLine{QuantityOrdered: 1, Product: &Product{}})
	require.ErrorIs(t, header.Validate(), ErrMissingProduct)

	header = &OrderHeader{OrderStatus: OrderStatusDelivered}
	header.AddOrderLine(&OrderLine{QuantityOrdered: 2, Product: product})
	require.NoError(t, header.Validate())
}

func TestEquality_RequiresPersistedIdentity(t *testing.T) {
	require.False(t, (&OrderHeader{}).Equal(&OrderHeader{}))
	require.True(t, (&OrderHeader{BaseEntity: BaseEntity{ID: 4}}).Equal(&OrderHeader{BaseEntity: BaseEntity{ID: 4}}))
	require.False(t, (&OrderHeader{BaseEntity: BaseEntity{ID: 4}}).Equal(&OrderHeader{BaseEntity: BaseEntity{ID: 5}}))
	require.False(t, (&OrderHeader{BaseEntity: BaseEntity{ID: 4}}).Equal(nil))

	require.True(t, (&Customer{BaseEntity: BaseEntity{ID: 1}}).Equal(&Customer{BaseEntity: BaseEntity{ID: 1}, CustomerName: "other"}))
	require.False(t, (&OrderLine{}).Equal(&OrderLine{}))
	require.False(t, (&OrderApproval{}).Equal(&OrderApproval{}))
}

func TestClone_DoesNotShareGraph(t *testing.T) {
	customer := &Customer{BaseEntity: BaseEntity{ID: 1}, CustomerName: "Acme"}
	header := &OrderHeader{BaseEntity: BaseEntity{ID: 2}, ShippingAddress: &Address{City: "Oslo"}}
	header.SetCustomer(customer)
	header.AddOrderLine(&OrderLine{QuantityOrdered: 1, Product: &Product{BaseEntity: BaseEntity{ID: 3}}})
	require.NoError(t, header.Approve("Joe"))

	clone := header.Clone()
	clone.ShippingAddress.City = "Bergen"
	clone.OrderLines[0].QuantityOrdered = 9
	clone.Customer.CustomerName = "Changed"

	require.Equal(t, "Oslo", header.ShippingAddress.City)
	require.Equal(t, int32(1), header.OrderLines[0].QuantityOrdered)
	require.Equal(t, "Acme", customer.CustomerName)
	require.Same(t, clone, clone.OrderLines[0].OrderHeader)
	require.Same(t, clone, clone.OrderApproval.OrderHeader)
	require.Len(t, clone.Customer.OrderHeaders, 1)
	require.Same(t, clone, clone.Customer.OrderHeaders[0])
}
