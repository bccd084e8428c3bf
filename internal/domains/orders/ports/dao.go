package ports

import (
	"context"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ProductDAO exposes product persistence to adapters.
type ProductDAO interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	FindProductByDescription(ctx context.Context, description string) (*domain.Product, error)
}

// OrderHeaderDAO exposes order persistence to adapters.
type OrderHeaderDAO interface {
	Save(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderHeader, error)
	FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error)
	Update(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error)
	DeleteByID(ctx context.Context, id int64) error
	FindOrderHeaderByCustomer(ctx context.Context, customer *domain.Customer) (*domain.OrderHeader, error)
	Approve(ctx context.Context, orderID int64, approvedBy string) (*domain.OrderHeader, error)
}

// CustomerDAO exposes customer persistence to adapters.
type CustomerDAO interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByName(ctx context.Context, name string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteByID(ctx context.Context, id int64) error
}
