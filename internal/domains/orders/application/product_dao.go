package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ProductDAO forwards product operations to the repository.
type ProductDAO struct {
	repo ports.ProductRepository
}

func NewProductDAO(repo ports.ProductRepository) *ProductDAO {
	return &ProductDAO{repo: repo}
}

func (d *ProductDAO) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	product.ApplyDefaults()
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, product)
}

func (d *ProductDAO) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *ProductDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error) {
	page, err := d.repo.List(ctx, pageable)
	return page, mapError(err)
}

func (d *ProductDAO) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if product.IsNew() {
		return nil, mapError(ErrTransientEntity)
	}
	return d.Save(ctx, product)
}

func (d *ProductDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.repo.Delete(ctx, id)
}

func (d *ProductDAO) FindProductByDescription(ctx context.Context, description string) (*domain.Product, error) {
	return d.repo.GetByDescription(ctx, description)
}

var _ ports.ProductDAO = (*ProductDAO)(nil)
