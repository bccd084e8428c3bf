package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// OrderHeaderDAO forwards order operations to the repository.
type OrderHeaderDAO struct {
	repo ports.OrderHeaderRepository
}

func NewOrderHeaderDAO(repo ports.OrderHeaderRepository) *OrderHeaderDAO {
	return &OrderHeaderDAO{repo: repo}
}

func (d *OrderHeaderDAO) Save(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	if header == nil {
		return nil, errors.New("order header is nil")
	}
	header.ApplyDefaults()
	if err := header.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, header)
}

func (d *OrderHeaderDAO) GetByID(ctx context.Context, id int64) (*domain.OrderHeader, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *OrderHeaderDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error) {
	page, err := d.repo.List(ctx, pageable)
	return page, mapError(err)
}

// Update saves a persisted header; the repository rejects stale versions.
func (d *OrderHeaderDAO) Update(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	if header == nil {
		return nil, errors.New("order header is nil")
	}
	if header.IsNew() {
		return nil, mapError(ErrTransientEntity)
	}
	return d.Save(ctx, header)
}

func (d *OrderHeaderDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.repo.Delete(ctx, id)
}

func (d *OrderHeaderDAO) FindOrderHeaderByCustomer(ctx context.Context, customer *domain.Customer) (*domain.OrderHeader, error) {
	if customer == nil || customer.IsNew() {
		return nil, ports.ErrNotFound
	}
	return d.repo.GetByCustomer(ctx, customer.ID)
}

// Approve records the approver on the order and moves it into processing.
func (d *OrderHeaderDAO) Approve(ctx context.Context, orderID int64, approvedBy string) (*domain.OrderHeader, error) {
	header, err := d.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := header.Approve(approvedBy); err != nil {
		return nil, mapError(err)
	}
	return d.Update(ctx, header)
}

var _ ports.OrderHeaderDAO = (*OrderHeaderDAO)(nil)
