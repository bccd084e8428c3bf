package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.BookRepository = (*BookRepository)(nil)

// BookRepository persists books in PostgreSQL using GORM.
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := ensureDB(r.db, "book"); err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.New("book is nil")
	}
	record := toBookRecord(book)
	db := r.db.WithContext(ctx)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
		return record.toDomain(), nil
	}
	result := db.Model(&bookRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
		"title":     record.Title,
		"isbn":      record.ISBN,
		"publisher": record.Publisher,
		"author_id": record.AuthorID,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return record.toDomain(), nil
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByTitle returns the lowest-id book with the exact title.
func (r *BookRepository) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	return r.first(ctx, "title = ?", title)
}

func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return r.first(ctx, "isbn = ?", isbn)
}

func (r *BookRepository) List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	if err := ensureDB(r.db, "book"); err != nil {
		return paging.Page[*domain.Book]{}, err
	}
	return findPage(r.db.WithContext(ctx).Model(&bookRecord{}), pageable, bookColumns, bookRecord.toDomain)
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "book"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&bookRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *BookRepository) first(ctx context.Context, query string, arg any) (*domain.Book, error) {
	if err := ensureDB(r.db, "book"); err != nil {
		return nil, err
	}
	var record bookRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}
