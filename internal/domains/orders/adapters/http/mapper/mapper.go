package mapper

import (
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
)

// Address is the transport shape of an embedded address.
type Address struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Category is the transport shape of a product category.
type Category struct {
	ID          int64  `json:"id,omitempty"`
	Description string `json:"description" binding:"required"`
}

// ProductRequest is accepted by product create and update.
type ProductRequest struct {
	Description   string     `json:"description" binding:"required"`
	ProductStatus string     `json:"productStatus,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}

// Product is returned for product lookups.
type Product struct {
	ID               int64      `json:"id"`
	Description      string     `json:"description"`
	ProductStatus    string     `json:"productStatus"`
	Categories       []Category `json:"categories"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate time.Time  `json:"lastModifiedDate"`
}

// CustomerRequest is accepted by customer create and update.
type CustomerRequest struct {
	CustomerName string  `json:"customerName" binding:"required,max=50"`
	Address      Address `json:"address"`
	Phone        string  `json:"phone,omitempty" binding:"max=20"`
	Email        string  `json:"email,omitempty" binding:"omitempty,email"`
}

// CustomerOrder summarises an order inside a customer response.
type CustomerOrder struct {
	ID          int64  `json:"id"`
	OrderStatus string `json:"orderStatus"`
}

// Customer is returned for customer lookups.
type Customer struct {
	ID               int64           `json:"id"`
	CustomerName     string          `json:"customerName"`
	Address          Address         `json:"address"`
	Phone            string          `json:"phone,omitempty"`
	Email            string          `json:"email,omitempty"`
	Orders           []CustomerOrder `json:"orders"`
	CreatedDate      time.Time       `json:"createdDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate"`
}

// OrderLineRequest references an existing product by ID.
type OrderLineRequest struct {
	ID              int64 `json:"id,omitempty"`
	ProductID       int64 `json:"productId" binding:"required"`
	QuantityOrdered int32 `json:"quantityOrdered" binding:"required"`
}

// OrderRequest is accepted by order create and update. Version is required on update.
type OrderRequest struct {
	CustomerID      int64              `json:"customerId,omitempty"`
	ShippingAddress *Address           `json:"shippingAddress,omitempty"`
	BillingAddress  *Address           `json:"billingAddress,omitempty"`
	OrderStatus     string             `json:"orderStatus,omitempty"`
	Version         int                `json:"version"`
	OrderLines      []OrderLineRequest `json:"orderLines" binding:"dive"`
}

// OrderLine is returned inside an order.
type OrderLine struct {
	ID                 int64  `json:"id"`
	ProductID          int64  `json:"productId"`
	ProductDescription string `json:"productDescription,omitempty"`
	QuantityOrdered    int32  `json:"quantityOrdered"`
}

// Approval is returned inside an order.
type Approval struct {
	ID         int64  `json:"id"`
	ApprovedBy string `json:"approvedBy"`
}

// OrderCustomer is the customer reference inside an order.
type OrderCustomer struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName,omitempty"`
}

// Order is returned for order lookups.
type Order struct {
	ID               int64          `json:"id"`
	Customer         *OrderCustomer `json:"customer,omitempty"`
	ShippingAddress  *Address       `json:"shippingAddress,omitempty"`
	BillingAddress   *Address       `json:"billingAddress,omitempty"`
	OrderStatus      string         `json:"orderStatus"`
	Version          int            `json:"version"`
	OrderLines       []OrderLine    `json:"orderLines"`
	Approval         *Approval      `json:"approval,omitempty"`
	CreatedDate      time.Time      `json:"createdDate"`
	LastModifiedDate time.Time      `json:"lastModifiedDate"`
}

// ApprovalRequest starts an order approval.
type ApprovalRequest struct {
	ApprovedBy     string `json:"approvedBy" binding:"required"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

func toDomainAddress(a Address) domain.Address {
	return domain.Address{Address: a.Address, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func toOptionalDomainAddress(a *Address) *domain.Address {
	if a == nil {
		return nil
	}
	address := toDomainAddress(*a)
	if address.IsZero() {
		return nil
	}
	return &address
}

func fromDomainAddress(a domain.Address) Address {
	return Address{Address: a.Address, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func fromOptionalDomainAddress(a *domain.Address) *Address {
	if a == nil {
		return nil
	}
	address := fromDomainAddress(*a)
	return &address
}

// ToDomainProduct converts a transport product into the domain model.
func ToDomainProduct(id int64, req ProductRequest) *domain.Product {
	product := &domain.Product{
		BaseEntity:    domain.BaseEntity{ID: id},
		Description:   req.Description,
		ProductStatus: domain.ProductStatus(req.ProductStatus),
	}
	for _, c := range req.Categories {
		product.Categories = append(product.Categories, &domain.Category{
			BaseEntity:  domain.BaseEntity{ID: c.ID},
			Description: c.Description,
		})
	}
	return product
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *domain.Product) Product {
	if product == nil {
		return Product{}
	}
	out := Product{
		ID:               product.ID,
		Description:      product.Description,
		ProductStatus:    string(product.ProductStatus),
		Categories:       []Category{},
		CreatedDate:      product.CreatedDate,
		LastModifiedDate: product.LastModifiedDate,
	}
	for _, c := range product.Categories {
		out.Categories = append(out.Categories, Category{ID: c.ID, Description: c.Description})
	}
	return out
}

// ToDomainCustomer converts a transport customer into the domain model.
func ToDomainCustomer(id int64, req CustomerRequest) *domain.Customer {
	return &domain.Customer{
		BaseEntity:   domain.BaseEntity{ID: id},
		CustomerName: req.CustomerName,
		Address:      toDomainAddress(req.Address),
		Phone:        req.Phone,
		Email:        req.Email,
	}
}

// FromDomainCustomer converts a domain customer to the transport representation.
func FromDomainCustomer(customer *domain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	out := Customer{
		ID:               customer.ID,
		CustomerName:     customer.CustomerName,
		Address:          fromDomainAddress(customer.Address),
		Phone:            customer.Phone,
		Email:            customer.Email,
		Orders:           []CustomerOrder{},
		CreatedDate:      customer.CreatedDate,
		LastModifiedDate: customer.LastModifiedDate,
	}
	for _, h := range customer.OrderHeaders {
		out.Orders = append(out.Orders, CustomerOrder{ID: h.ID, OrderStatus: string(h.OrderStatus)})
	}
	return out
}

// ToDomainOrder converts a transport order into the domain aggregate.
// Customer and products are referenced by ID only.
func ToDomainOrder(id int64, req OrderRequest) *domain.OrderHeader {
	header := &domain.OrderHeader{
		BaseEntity:      domain.BaseEntity{ID: id},
		ShippingAddress: toOptionalDomainAddress(req.ShippingAddress),
		BillingAddress:  toOptionalDomainAddress(req.BillingAddress),
		OrderStatus:     domain.OrderStatus(req.OrderStatus),
		Version:         req.Version,
	}
	if req.CustomerID != 0 {
		header.SetCustomer(&domain.Customer{BaseEntity: domain.BaseEntity{ID: req.CustomerID}})
	}
	for _, line := range req.OrderLines {
		header.AddOrderLine(&domain.OrderLine{
			BaseEntity:      domain.BaseEntity{ID: line.ID},
			QuantityOrdered: line.QuantityOrdered,
			Product:         &domain.Product{BaseEntity: domain.BaseEntity{ID: line.ProductID}},
		})
	}
	return header
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(header *domain.OrderHeader) Order {
	if header == nil {
		return Order{}
	}
	out := Order{
		ID:               header.ID,
		ShippingAddress:  fromOptionalDomainAddress(header.ShippingAddress),
		BillingAddress:   fromOptionalDomainAddress(header.BillingAddress),
		OrderStatus:      string(header.OrderStatus),
		Version:          header.Version,
		OrderLines:       []OrderLine{},
		CreatedDate:      header.CreatedDate,
		LastModifiedDate: header.LastModifiedDate,
	}
	if c := header.Customer; c != nil {
		out.Customer = &OrderCustomer{ID: c.ID, CustomerName: c.CustomerName}
	}
	for _, line := range header.OrderLines {
		l := OrderLine{ID: line.ID, QuantityOrdered: line.QuantityOrdered}
		if line.Product != nil {
			l.ProductID = line.Product.ID
			l.ProductDescription = line.Product.Description
		}
		out.OrderLines = append(out.OrderLines, l)
	}
	if a := header.OrderApproval; a != nil {
		out.Approval = &Approval{ID: a.ID, ApprovedBy: a.ApprovedBy}
	}
	return out
}
