package domain

import "errors"

// ProductStatus tracks the catalog lifecycle of a product.
type ProductStatus string

const (
	ProductStatusNew          ProductStatus = "NEW"
	ProductStatusInStock      ProductStatus = "IN_STOCK"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
)

var ErrInvalidProductStatus = errors.New("product status is invalid")

// Category groups products through the product_category join table.
type Category struct {
	BaseEntity
	Description string
}

// Product is an orderable catalog item.
type Product struct {
	BaseEntity
	Description   string
	ProductStatus ProductStatus
	Categories    []*Category
}

// ApplyDefaults sets the status to NEW when it is absent.
func (p *Product) ApplyDefaults() {
	if p.ProductStatus == "" {
		p.ProductStatus = ProductStatusNew
	}
}

// Validate rejects unknown statuses.
func (p *Product) Validate() error {
	switch p.ProductStatus {
	case "", ProductStatusNew, ProductStatusInStock, ProductStatusDiscontinued:
		return nil
	default:
		return ErrInvalidProductStatus
	}
}

// Equal requires the same identity, description and status.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.SameIdentity(other.BaseEntity) &&
		p.Description == other.Description &&
		p.ProductStatus == other.ProductStatus
}

// Clone copies the product and its categories.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Categories = nil
	for _, c := range p.Categories {
		if c == nil {
			continue
		}
		cat := *c
		clone.Categories = append(clone.Categories, &cat)
	}
	return &clone
}
