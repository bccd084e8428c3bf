package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository persists products and their categories in PostgreSQL using GORM.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Save inserts a new product or updates an existing one, replacing its category links.
// Updating an id with no row yields ports.ErrNotFound.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ensureDB(r.db, "product"); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toProductRecord(product)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.ID == 0 {
			return tx.Create(&record).Error
		}
		result := tx.Model(&productRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
			"description":        record.Description,
			"product_status":     record.ProductStatus,
			"last_modified_date": time.Now().UTC(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return tx.Model(&record).Association("Categories").Replace(record.Categories)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product with its categories.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := ensureDB(r.db, "product"); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).Preload("Categories").First(&record, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// GetByDescription returns the lowest-id product with the given description.
func (r *ProductRepository) GetByDescription(ctx context.Context, description string) (*domain.Product, error) {
	if err := ensureDB(r.db, "product"); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).Preload("Categories").Where("description = ?", description).First(&record).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// List returns one page of products.
func (r *ProductRepository) List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error) {
	if err := ensureDB(r.db, "product"); err != nil {
		return paging.Page[*domain.Product]{}, err
	}
	db := r.db.WithContext(ctx)
	query, err := pageQuery(db.Preload("Categories"), pageable, productColumns)
	if err != nil {
		return paging.Page[*domain.Product]{}, err
	}
	var total int64
	if err := db.Model(&productRecord{}).Count(&total).Error; err != nil {
		return paging.Page[*domain.Product]{}, err
	}
	var records []productRecord
	if err := query.Find(&records).Error; err != nil {
		return paging.Page[*domain.Product]{}, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return paging.NewPage(products, pageable, total), nil
}

// Delete removes a product; category links go with it through the join table FK.
// A product still named by an order line yields ports.ErrReferenced.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "product"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if result.Error != nil {
		return translateReferenced(result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
