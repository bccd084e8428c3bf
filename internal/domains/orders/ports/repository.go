package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var (
	ErrNotFound     = errors.New("order entity not found")
	ErrStaleVersion = errors.New("order header was modified by another transaction")

	// ErrReferenced is returned when a row cannot be deleted while order lines point at it.
	ErrReferenced = errors.New("order entity is still referenced")
)

// ProductRepository persists products and their category links.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByDescription(ctx context.Context, description string) (*domain.Product, error)
	List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error)
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository persists customers. Lookups include the customer's order headers.
type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// OrderHeaderRepository persists order headers together with lines and approval.
// Save inserts transient headers and performs a version-checked update otherwise.
type OrderHeaderRepository interface {
	Save(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderHeader, error)
	GetByCustomer(ctx context.Context, customerID int64) (*domain.OrderHeader, error)
	List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error)
	Delete(ctx context.Context, id int64) error
}
