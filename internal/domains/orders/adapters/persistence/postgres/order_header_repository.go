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

var _ ports.OrderHeaderRepository = (*OrderHeaderRepository)(nil)

// OrderHeaderRepository persists order headers, their lines and approval in PostgreSQL using GORM.
type OrderHeaderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderHeaderRepository(db *gorm.DB) *OrderHeaderRepository {
	return &OrderHeaderRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Save inserts a transient header with its lines and approval, or updates a persisted one
// guarded by its version.
func (r *OrderHeaderRepository) Save(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	if err := ensureDB(r.db, "order header"); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.New("order header is nil")
	}
	record := toOrderHeaderRecord(header)
	if record.ID == 0 {
		record.Version = 0
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.update(tx, record)
	}); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *OrderHeaderRepository) update(tx *gorm.DB, record orderHeaderRecord) error {
	now := r.now()
	result := tx.Model(&orderHeaderRecord{}).
		Where("id = ? AND version = ?", record.ID, record.Version).
		Updates(map[string]any{
			"customer_id":        record.CustomerID,
			"shipping_address":   record.ShippingAddress.Address,
			"shipping_city":      record.ShippingAddress.City,
			"shipping_state":     record.ShippingAddress.State,
			"shipping_zip_code":  record.ShippingAddress.ZipCode,
			"billing_address":    record.BillingAddress.Address,
			"billing_city":       record.BillingAddress.City,
			"billing_state":      record.BillingAddress.State,
			"billing_zip_code":   record.BillingAddress.ZipCode,
			"order_status":       record.OrderStatus,
			"version":            record.Version + 1,
			"last_modified_date": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&orderHeaderRecord{}).Where("id = ?", record.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ports.ErrNotFound
		}
		return ports.ErrStaleVersion
	}
	for i := range record.OrderLines {
		line := record.OrderLines[i]
		line.OrderHeaderID = record.ID
		if line.ID == 0 {
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			continue
		}
		if err := updateChild(tx, &orderLineRecord{}, line.ID, record.ID, map[string]any{
			"quantity_ordered":   line.QuantityOrdered,
			"product_id":         line.ProductID,
			"last_modified_date": now,
		}); err != nil {
			return err
		}
	}
	if approval := record.OrderApproval; approval != nil {
		approval.OrderHeaderID = record.ID
		if approval.ID == 0 {
			return tx.Create(approval).Error
		}
		return updateChild(tx, &orderApprovalRecord{}, approval.ID, record.ID, map[string]any{
			"approved_by":        approval.ApprovedBy,
			"last_modified_date": now,
		})
	}
	return nil
}

// updateChild rewrites the mutable columns of a line or approval that already belongs to
// the header. Rows owned by another header, or missing rows, are reported as not found.
func updateChild(tx *gorm.DB, model any, id, headerID int64, values map[string]any) error {
	result := tx.Model(model).Where("id = ? AND order_header_id = ?", id, headerID).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// GetByID fetches an order header with customer, lines, products and approval.
func (r *OrderHeaderRepository) GetByID(ctx context.Context, id int64) (*domain.OrderHeader, error) {
	if err := ensureDB(r.db, "order header"); err != nil {
		return nil, err
	}
	var record orderHeaderRecord
	if err := r.withGraph(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// GetByCustomer returns the customer's lowest-id order header.
func (r *OrderHeaderRepository) GetByCustomer(ctx context.Context, customerID int64) (*domain.OrderHeader, error) {
	if err := ensureDB(r.db, "order header"); err != nil {
		return nil, err
	}
	var record orderHeaderRecord
	if err := r.withGraph(ctx).Where("customer_id = ?", customerID).First(&record).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// List returns one page of order headers.
func (r *OrderHeaderRepository) List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error) {
	if err := ensureDB(r.db, "order header"); err != nil {
		return paging.Page[*domain.OrderHeader]{}, err
	}
	query, err := pageQuery(r.withGraph(ctx), pageable, orderHeaderColumns)
	if err != nil {
		return paging.Page[*domain.OrderHeader]{}, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&orderHeaderRecord{}).Count(&total).Error; err != nil {
		return paging.Page[*domain.OrderHeader]{}, err
	}
	var records []orderHeaderRecord
	if err := query.Find(&records).Error; err != nil {
		return paging.Page[*domain.OrderHeader]{}, err
	}
	headers := make([]*domain.OrderHeader, 0, len(records))
	for i := range records {
		headers = append(headers, records[i].toDomain())
	}
	return paging.NewPage(headers, pageable, total), nil
}

// Delete removes an order header. Lines and approval are removed by ON DELETE CASCADE.
func (r *OrderHeaderRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "order header"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderHeaderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *OrderHeaderRepository) withGraph(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("OrderLines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("OrderLines.Product").
		Preload("OrderApproval")
}
