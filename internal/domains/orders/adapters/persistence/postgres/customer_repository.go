package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository persists customers in PostgreSQL using GORM.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Save inserts or updates the customer row. Order headers are owned by their own repository.
// Updating an id with no row yields ports.ErrNotFound.
func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := ensureDB(r.db, "customer"); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	record := toCustomerRecord(customer)
	db := r.db.WithContext(ctx)
	if record.ID == 0 {
		if err := db.Omit("OrderHeaders").Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	result := db.Model(&customerRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
		"customer_name":      record.CustomerName,
		"address":            record.Address.Address,
		"city":               record.Address.City,
		"state":              record.Address.State,
		"zip_code":           record.Address.ZipCode,
		"phone":              record.Phone,
		"email":              record.Email,
		"last_modified_date": time.Now().UTC(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a customer with its order headers.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := ensureDB(r.db, "customer"); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.withOrders(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// GetByName returns the lowest-id customer with the given name.
func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	if err := ensureDB(r.db, "customer"); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.withOrders(ctx).Where("customer_name = ?", name).First(&record).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// Delete removes a customer; their orders keep existing with a NULL customer.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "customer"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&customerRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) withOrders(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("OrderHeaders", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}
