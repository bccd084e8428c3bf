package ports

import (
	"context"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// AuthorDAO exposes author persistence to adapters.
type AuthorDAO interface {
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	FindAuthorByName(ctx context.Context, firstName, lastName string) (*domain.Author, error)
	FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	FindAllByLastNameSortByFirstName(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	FindAllByLastNameLike(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error)
	SaveNewAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error)
	UpdateAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error)
	DeleteByID(ctx context.Context, id int64) error
}

// BookDAO exposes book persistence to adapters.
type BookDAO interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	FindBookByTitle(ctx context.Context, title string) (*domain.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error)
	FindAllSortByTitle(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error)
	SaveNewBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	UpdateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	DeleteBookByID(ctx context.Context, id int64) error
}
