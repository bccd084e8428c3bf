package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

// CustomerDAO forwards customer operations to the repository.
type CustomerDAO struct {
	repo ports.CustomerRepository
}

func NewCustomerDAO(repo ports.CustomerRepository) *CustomerDAO {
	return &CustomerDAO{repo: repo}
}

func (d *CustomerDAO) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if err := customer.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, customer)
}

func (d *CustomerDAO) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *CustomerDAO) FindByName(ctx context.Context, name string) (*domain.Customer, error) {
	return d.repo.GetByName(ctx, name)
}

func (d *CustomerDAO) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if customer.IsNew() {
		return nil, mapError(ErrTransientEntity)
	}
	return d.Save(ctx, customer)
}

func (d *CustomerDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.repo.Delete(ctx, id)
}

var _ ports.CustomerDAO = (*CustomerDAO)(nil)
