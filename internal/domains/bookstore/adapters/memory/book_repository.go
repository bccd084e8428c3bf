package memory

import (
	"cmp"
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.BookRepository = (*BookRepository)(nil)

var bookComparators = map[string]func(a, b *domain.Book) int{
	"id":        func(a, b *domain.Book) int { return cmp.Compare(a.ID, b.ID) },
	"title":     func(a, b *domain.Book) int { return cmp.Compare(a.Title, b.Title) },
	"isbn":      func(a, b *domain.Book) int { return cmp.Compare(a.ISBN, b.ISBN) },
	"publisher": func(a, b *domain.Book) int { return cmp.Compare(a.Publisher, b.Publisher) },
}

// BookRepository is an in-memory book persistence adapter.
type BookRepository struct {
	store *Store
}

func (r *BookRepository) Save(_ context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	clone := copyBook(book)
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if clone.ID == 0 {
		s.nextBook++
		clone.ID = s.nextBook
	} else if _, ok := s.books[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	s.books[clone.ID] = clone
	return copyBook(clone), nil
}

func (r *BookRepository) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return copyBook(book), nil
}

func (r *BookRepository) GetByTitle(_ context.Context, title string) (*domain.Book, error) {
	return r.first(func(b *domain.Book) bool { return b.Title == title })
}

func (r *BookRepository) GetByISBN(_ context.Context, isbn string) (*domain.Book, error) {
	return r.first(func(b *domain.Book) bool { return b.ISBN == isbn })
}

func (r *BookRepository) List(_ context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	s := r.store
	s.mu.RLock()
	list := make([]*domain.Book, 0, len(s.books))
	for _, book := range s.books {
		list = append(list, copyBook(book))
	}
	s.mu.RUnlock()
	sortByID(list, func(b *domain.Book) int64 { return b.ID })
	if err := paging.SortSlice(list, pageable, bookComparators); err != nil {
		return paging.Page[*domain.Book]{}, err
	}
	return paging.Slice(list, pageable), nil
}

func (r *BookRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func (r *BookRepository) first(match func(*domain.Book) bool) (*domain.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.Book
	for _, book := range s.books {
		if match(book) && (found == nil || book.ID < found.ID) {
			found = book
		}
	}
	if found == nil {
		return nil, ports.ErrNotFound
	}
	return copyBook(found), nil
}

func copyBook(book *domain.Book) *domain.Book {
	clone := *book
	if book.AuthorID != nil {
		id := *book.AuthorID
		clone.AuthorID = &id
	}
	return &clone
}
