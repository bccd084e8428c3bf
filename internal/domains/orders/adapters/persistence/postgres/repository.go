package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var (
	productColumns = map[string]string{
		"id":            "id",
		"description":   "description",
		"productStatus": "product_status",
		"createdDate":   "created_date",
	}
	orderHeaderColumns = map[string]string{
		"id":          "id",
		"orderStatus": "order_status",
		"createdDate": "created_date",
	}
)

func ensureDB(db *gorm.DB, name string) error {
	if db == nil {
		return errors.New("postgres " + name + " repository not configured")
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	return err
}

// foreignKeyViolation is the SQLSTATE PostgreSQL raises when a delete would orphan referencing rows.
const foreignKeyViolation pq.ErrorCode = "23503"

func translateReferenced(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ports.ErrReferenced, pqErr.Constraint)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ports.ErrReferenced
	}
	return err
}

// pageQuery applies the requested sort, falling back to id, and the limit/offset window.
func pageQuery(db *gorm.DB, pageable paging.Pageable, columns map[string]string) (*gorm.DB, error) {
	orderClause, err := pageable.OrderClause(columns)
	if err != nil {
		return nil, err
	}
	p := pageable.Normalize()
	if orderClause != "" {
		db = db.Order(orderClause)
	}
	return db.Order("id").Limit(p.PageSize).Offset(p.Offset()), nil
}
