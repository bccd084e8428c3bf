package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.AuthorRepository = (*AuthorRepository)(nil)

// AuthorRepository persists authors in PostgreSQL using GORM.
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// Save inserts a new author or updates an existing row; Books are never written.
func (r *AuthorRepository) Save(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.New("author is nil")
	}
	record := toAuthorRecord(author)
	db := r.db.WithContext(ctx)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
		return record.toDomain(), nil
	}
	result := db.Model(&authorRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
		"first_name": record.FirstName,
		"last_name":  record.LastName,
		"country":    record.Country,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return record.toDomain(), nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return nil, err
	}
	var record authorRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// GetByName returns the lowest-id author with both names matching exactly.
func (r *AuthorRepository) GetByName(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return nil, err
	}
	var record authorRecord
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		First(&record).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

func (r *AuthorRepository) List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return paging.Page[*domain.Author]{}, err
	}
	return findPage(r.db.WithContext(ctx).Model(&authorRecord{}), pageable, authorColumns, authorRecord.toDomain)
}

func (r *AuthorRepository) ListByLastName(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return paging.Page[*domain.Author]{}, err
	}
	db := r.db.WithContext(ctx).Model(&authorRecord{}).Where("last_name = ?", lastName)
	return findPage(db, pageable, authorColumns, authorRecord.toDomain)
}

func (r *AuthorRepository) ListByLastNameLike(ctx context.Context, pattern string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	if err := ensureDB(r.db, "author"); err != nil {
		return paging.Page[*domain.Author]{}, err
	}
	db := r.db.WithContext(ctx).Model(&authorRecord{}).Where("last_name LIKE ?", pattern)
	return findPage(db, pageable, authorColumns, authorRecord.toDomain)
}

func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "author"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&authorRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
