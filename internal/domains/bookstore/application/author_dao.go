package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// AuthorDAO forwards author operations to the repository.
type AuthorDAO struct {
	repo ports.AuthorRepository
}

func NewAuthorDAO(repo ports.AuthorRepository) *AuthorDAO {
	return &AuthorDAO{repo: repo}
}

func (d *AuthorDAO) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *AuthorDAO) FindAuthorByName(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	return d.repo.GetByName(ctx, firstName, lastName)
}

func (d *AuthorDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	page, err := d.repo.List(ctx, pageable)
	return page, mapError(err)
}

// FindAllByLastNameSortByFirstName ignores any requested sort.
func (d *AuthorDAO) FindAllByLastNameSortByFirstName(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	pageable.Sort = []paging.Order{{Property: "firstName", Direction: paging.Asc}}
	page, err := d.repo.ListByLastName(ctx, lastName, pageable)
	return page, mapError(err)
}

// FindAllByLastNameLike treats lastName as a prefix unless it carries its own % wildcard.
func (d *AuthorDAO) FindAllByLastNameLike(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	pattern := lastName
	if !strings.Contains(pattern, "%") {
		pattern += "%"
	}
	page, err := d.repo.ListByLastNameLike(ctx, pattern, pageable)
	return page, mapError(err)
}

func (d *AuthorDAO) SaveNewAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, errors.New("author is nil")
	}
	if !author.IsNew() {
		return nil, mapError(ErrAlreadyPersisted)
	}
	if err := author.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, author)
}

func (d *AuthorDAO) UpdateAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, errors.New("author is nil")
	}
	if author.IsNew() {
		return nil, mapError(ErrTransientEntity)
	}
	if err := author.Validate(); err != nil {
		return nil, mapError(err)
	}
	return d.repo.Save(ctx, author)
}

func (d *AuthorDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.repo.Delete(ctx, id)
}

var _ ports.AuthorDAO = (*AuthorDAO)(nil)
