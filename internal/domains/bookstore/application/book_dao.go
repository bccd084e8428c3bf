package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// BookDAO forwards book operations to the repository.
type BookDAO struct {
	repo ports.BookRepository
}

func NewBookDAO(repo ports.BookRepository) *BookDAO {
	return &BookDAO{repo: repo}
}

func (d *BookDAO) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *BookDAO) FindBookByTitle(ctx context.Context, title string) (*domain.Book, error) {
	return d.repo.GetByTitle(ctx, title)
}

func (d *BookDAO) FindByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return d.repo.GetByISBN(ctx, isbn)
}

func (d *BookDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	page, err := d.repo.List(ctx, pageable)
	return page, mapError(err)
}

// FindAllSortByTitle ignores any requested sort.
func (d *BookDAO) FindAllSortByTitle(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	pageable.Sort = []paging.Order{{Property: "title", Direction: paging.Asc}}
	page, err := d.repo.List(ctx, pageable)
	return page, mapError(err)
}

func (d *BookDAO) SaveNewBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	if !book.IsNew() {
		return nil, mapError(ErrAlreadyPersisted)
	}
	if err := book.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, book)
}

func (d *BookDAO) UpdateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	if book.IsNew() {
		return nil, mapError(ErrTransientEntity)
	}
	if err := book.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, book)
}

func (d *BookDAO) DeleteBookByID(ctx context.Context, id int64) error {
	return d.repo.Delete(ctx, id)
}

var _ ports.BookDAO = (*BookDAO)(nil)
