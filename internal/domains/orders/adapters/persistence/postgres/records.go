package postgres

import (
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
)

// addressColumns is embedded with a prefix for each address role.
type addressColumns struct {
	Address string `gorm:"column:address"`
	City    string `gorm:"column:city"`
	State   string `gorm:"column:state"`
	ZipCode string `gorm:"column:zip_code"`
}

type customerRecord struct {
	ID               int64               `gorm:"primaryKey;column:id"`
	CustomerName     string              `gorm:"column:customer_name"`
	Address          addressColumns      `gorm:"embedded"`
	Phone            string              `gorm:"column:phone"`
	Email            string              `gorm:"column:email"`
	OrderHeaders     []orderHeaderRecord `gorm:"foreignKey:CustomerID"`
	CreatedDate      time.Time           `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time           `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (customerRecord) TableName() string { return "customer" }

type categoryRecord struct {
	ID               int64     `gorm:"primaryKey;column:id"`
	Description      string    `gorm:"column:description"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (categoryRecord) TableName() string { return "category" }

type productRecord struct {
	ID               int64            `gorm:"primaryKey;column:id"`
	Description      string           `gorm:"column:description"`
	ProductStatus    string           `gorm:"column:product_status"`
	Categories       []categoryRecord `gorm:"many2many:product_category;joinForeignKey:ProductID;joinReferences:CategoryID"`
	CreatedDate      time.Time        `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time        `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (productRecord) TableName() string { return "product" }

type orderHeaderRecord struct {
	ID               int64                `gorm:"primaryKey;column:id"`
	CustomerID       *int64               `gorm:"column:customer_id"`
	Customer         *customerRecord      `gorm:"foreignKey:CustomerID"`
	ShippingAddress  addressColumns       `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress   addressColumns       `gorm:"embedded;embeddedPrefix:billing_"`
	OrderStatus      string               `gorm:"column:order_status"`
	OrderLines       []orderLineRecord    `gorm:"foreignKey:OrderHeaderID"`
	OrderApproval    *orderApprovalRecord `gorm:"foreignKey:OrderHeaderID"`
	Version          int                  `gorm:"column:version"`
	CreatedDate      time.Time            `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time            `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (orderHeaderRecord) TableName() string { return "order_header" }

type orderLineRecord struct {
	ID               int64          `gorm:"primaryKey;column:id"`
	QuantityOrdered  int32          `gorm:"column:quantity_ordered"`
	OrderHeaderID    int64          `gorm:"column:order_header_id"`
	ProductID        *int64         `gorm:"column:product_id"`
	Product          *productRecord `gorm:"foreignKey:ProductID"`
	CreatedDate      time.Time      `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time      `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (orderLineRecord) TableName() string { return "order_line" }

type orderApprovalRecord struct {
	ID               int64     `gorm:"primaryKey;column:id"`
	ApprovedBy       string    `gorm:"column:approved_by"`
	OrderHeaderID    int64     `gorm:"column:order_header_id"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date;autoUpdateTime"`
}

func (orderApprovalRecord) TableName() string { return "order_approval" }

func toAddressColumns(address *domain.Address) addressColumns {
	if address == nil {
		return addressColumns{}
	}
	return addressColumns{
		Address: address.Address,
		City:    address.City,
		State:   address.State,
		ZipCode: address.ZipCode,
	}
}

func (c addressColumns) toDomain() domain.Address {
	return domain.Address{Address: c.Address, City: c.City, State: c.State, ZipCode: c.ZipCode}
}

// toOptionalAddress maps all-empty columns back to a nil address.
func (c addressColumns) toOptionalAddress() *domain.Address {
	address := c.toDomain()
	if address.IsZero() {
		return nil
	}
	return &address
}

func baseEntity(id int64, created, modified time.Time) domain.BaseEntity {
	return domain.BaseEntity{ID: id, CreatedDate: created, LastModifiedDate: modified}
}

func toCustomerRecord(customer *domain.Customer) customerRecord {
	return customerRecord{
		ID:           customer.ID,
		CustomerName: customer.CustomerName,
		Address:      toAddressColumns(&customer.Address),
		Phone:        customer.Phone,
		Email:        customer.Email,
		CreatedDate:  customer.CreatedDate,
	}
}

// toDomain maps the customer; loaded order headers are attached without their lines.
func (r customerRecord) toDomain() *domain.Customer {
	customer := &domain.Customer{
		BaseEntity:   baseEntity(r.ID, r.CreatedDate, r.LastModifiedDate),
		CustomerName: r.CustomerName,
		Address:      r.Address.toDomain(),
		Phone:        r.Phone,
		Email:        r.Email,
	}
	for i := range r.OrderHeaders {
		header := r.OrderHeaders[i]
		header.Customer = nil
		header.CustomerID = nil
		customer.AddOrderHeader(header.toDomain())
	}
	return customer
}

func toProductRecord(product *domain.Product) productRecord {
	rec := productRecord{
		ID:            product.ID,
		Description:   product.Description,
		ProductStatus: string(product.ProductStatus),
		CreatedDate:   product.CreatedDate,
	}
	for _, category := range product.Categories {
		if category == nil {
			continue
		}
		rec.Categories = append(rec.Categories, categoryRecord{
			ID:          category.ID,
			Description: category.Description,
			CreatedDate: category.CreatedDate,
		})
	}
	return rec
}

func (r productRecord) toDomain() *domain.Product {
	product := &domain.Product{
		BaseEntity:    baseEntity(r.ID, r.CreatedDate, r.LastModifiedDate),
		Description:   r.Description,
		ProductStatus: domain.ProductStatus(r.ProductStatus),
	}
	for _, category := range r.Categories {
		product.Categories = append(product.Categories, &domain.Category{
			BaseEntity:  baseEntity(category.ID, category.CreatedDate, category.LastModifiedDate),
			Description: category.Description,
		})
	}
	return product
}

// toOrderHeaderRecord flattens the aggregate. Customer and products are referenced by ID only
// so that saving an order never writes to the customer or product tables.
func toOrderHeaderRecord(header *domain.OrderHeader) orderHeaderRecord {
	rec := orderHeaderRecord{
		ID:              header.ID,
		ShippingAddress: toAddressColumns(header.ShippingAddress),
		BillingAddress:  toAddressColumns(header.BillingAddress),
		OrderStatus:     string(header.OrderStatus),
		Version:         header.Version,
		CreatedDate:     header.CreatedDate,
	}
	if id := header.CustomerID(); id != 0 {
		rec.CustomerID = &id
	}
	for _, line := range header.OrderLines {
		if line == nil {
			continue
		}
		lineRec := orderLineRecord{
			ID:              line.ID,
			QuantityOrdered: line.QuantityOrdered,
			OrderHeaderID:   header.ID,
			CreatedDate:     line.CreatedDate,
		}
		if line.Product != nil && line.Product.ID != 0 {
			productID := line.Product.ID
			lineRec.ProductID = &productID
		}
		rec.OrderLines = append(rec.OrderLines, lineRec)
	}
	if approval := header.OrderApproval; approval != nil {
		rec.OrderApproval = &orderApprovalRecord{
			ID:            approval.ID,
			ApprovedBy:    approval.ApprovedBy,
			OrderHeaderID: header.ID,
			CreatedDate:   approval.CreatedDate,
		}
	}
	return rec
}

func (r orderHeaderRecord) toDomain() *domain.OrderHeader {
	header := &domain.OrderHeader{
		BaseEntity:      baseEntity(r.ID, r.CreatedDate, r.LastModifiedDate),
		ShippingAddress: r.ShippingAddress.toOptionalAddress(),
		BillingAddress:  r.BillingAddress.toOptionalAddress(),
		OrderStatus:     domain.OrderStatus(r.OrderStatus),
		Version:         r.Version,
	}
	if r.Customer != nil {
		customer := r.Customer.toDomain()
		customer.OrderHeaders = nil
		header.SetCustomer(customer)
	} else if r.CustomerID != nil {
		header.SetCustomer(&domain.Customer{BaseEntity: domain.BaseEntity{ID: *r.CustomerID}})
	}
	for _, lineRec := range r.OrderLines {
		line := &domain.OrderLine{
			BaseEntity:      baseEntity(lineRec.ID, lineRec.CreatedDate, lineRec.LastModifiedDate),
			QuantityOrdered: lineRec.QuantityOrdered,
		}
		if lineRec.Product != nil {
			line.Product = lineRec.Product.toDomain()
		} else if lineRec.ProductID != nil {
			line.Product = &domain.Product{BaseEntity: domain.BaseEntity{ID: *lineRec.ProductID}}
		}
		header.AddOrderLine(line)
	}
	if a := r.OrderApproval; a != nil {
		header.SetOrderApproval(&domain.OrderApproval{
			BaseEntity: baseEntity(a.ID, a.CreatedDate, a.LastModifiedDate),
			ApprovedBy: a.ApprovedBy,
		})
	}
	return header
}
