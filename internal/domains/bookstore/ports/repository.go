package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ErrNotFound is returned when an author or book does not exist.
var ErrNotFound = errors.New("bookstore entity not found")

// AuthorRepository persists authors.
type AuthorRepository interface {
	Save(ctx context.Context, author *domain.Author) (*domain.Author, error)
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	GetByName(ctx context.Context, firstName, lastName string) (*domain.Author, error)
	List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	// ListByLastName matches last names exactly.
	ListByLastName(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	// ListByLastNameLike matches last names against a LIKE pattern.
	ListByLastNameLike(ctx context.Context, pattern string, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	Delete(ctx context.Context, id int64) error
}

// BookRepository persists books.
type BookRepository interface {
	Save(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	GetByTitle(ctx context.Context, title string) (*domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	List(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error)
	Delete(ctx context.Context, id int64) error
}
