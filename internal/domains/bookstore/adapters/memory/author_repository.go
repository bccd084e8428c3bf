package memory

import (
	"cmp"
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.AuthorRepository = (*AuthorRepository)(nil)

var authorComparators = map[string]func(a, b *domain.Author) int{
	"id":        func(a, b *domain.Author) int { return cmp.Compare(a.ID, b.ID) },
	"firstName": func(a, b *domain.Author) int { return cmp.Compare(a.FirstName, b.FirstName) },
	"lastName":  func(a, b *domain.Author) int { return cmp.Compare(a.LastName, b.LastName) },
	"country":   func(a, b *domain.Author) int { return cmp.Compare(a.Country, b.Country) },
}

// AuthorRepository is an in-memory author persistence adapter.
type AuthorRepository struct {
	store *Store
}

func (r *AuthorRepository) Save(_ context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, errors.New("author is nil")
	}
	clone := *author
	clone.Books = nil
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if clone.ID == 0 {
		s.nextAuthor++
		clone.ID = s.nextAuthor
	} else if _, ok := s.authors[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	s.authors[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *AuthorRepository) GetByID(_ context.Context, id int64) (*domain.Author, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	author, ok := s.authors[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *author
	return &clone, nil
}

func (r *AuthorRepository) GetByName(_ context.Context, firstName, lastName string) (*domain.Author, error) {
	matches, err := r.filter(func(a *domain.Author) bool {
		return a.FirstName == firstName && a.LastName == lastName
	}, paging.Pageable{})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ports.ErrNotFound
	}
	return matches[0], nil
}

func (r *AuthorRepository) List(_ context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	return r.page(func(*domain.Author) bool { return true }, pageable)
}

func (r *AuthorRepository) ListByLastName(_ context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	return r.page(func(a *domain.Author) bool { return a.LastName == lastName }, pageable)
}

func (r *AuthorRepository) ListByLastNameLike(_ context.Context, pattern string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	matcher, err := likeMatcher(pattern)
	if err != nil {
		return paging.Page[*domain.Author]{}, err
	}
	return r.page(func(a *domain.Author) bool { return matcher.MatchString(a.LastName) }, pageable)
}

func (r *AuthorRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.authors[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.authors, id)
	return nil
}

func (r *AuthorRepository) page(keep func(*domain.Author) bool, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	list, err := r.filter(keep, pageable)
	if err != nil {
		return paging.Page[*domain.Author]{}, err
	}
	return paging.Slice(list, pageable), nil
}

func (r *AuthorRepository) filter(keep func(*domain.Author) bool, pageable paging.Pageable) ([]*domain.Author, error) {
	s := r.store
	s.mu.RLock()
	list := make([]*domain.Author, 0, len(s.authors))
	for _, author := range s.authors {
		if keep(author) {
			clone := *author
			list = append(list, &clone)
		}
	}
	s.mu.RUnlock()
	sortByID(list, func(a *domain.Author) int64 { return a.ID })
	if err := paging.SortSlice(list, pageable, authorComparators); err != nil {
		return nil, err
	}
	return list, nil
}
