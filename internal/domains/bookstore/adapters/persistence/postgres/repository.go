package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var (
	authorColumns = map[string]string{
		"id":        "id",
		"firstName": "first_name",
		"lastName":  "last_name",
		"country":   "country",
	}
	bookColumns = map[string]string{
		"id":        "id",
		"title":     "title",
		"isbn":      "isbn",
		"publisher": "publisher",
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

// findPage counts the filtered rows, then loads the requested window sorted by the allow-listed columns.
func findPage[R any, T any](db *gorm.DB, pageable paging.Pageable, columns map[string]string, toDomain func(R) T) (paging.Page[T], error) {
	orderClause, err := pageable.OrderClause(columns)
	if err != nil {
		return paging.Page[T]{}, err
	}
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return paging.Page[T]{}, err
	}
	p := pageable.Normalize()
	query := db.Session(&gorm.Session{})
	if orderClause != "" {
		query = query.Order(orderClause)
	}
	var records []R
	if err := query.Order("id").Limit(p.PageSize).Offset(p.Offset()).Find(&records).Error; err != nil {
		return paging.Page[T]{}, err
	}
	items := make([]T, 0, len(records))
	for _, record := range records {
		items = append(items, toDomain(record))
	}
	return paging.NewPage(items, p, total), nil
}
