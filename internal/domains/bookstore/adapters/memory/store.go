package memory

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
)

// Store keeps authors and books behind one lock.
type Store struct {
	mu         sync.RWMutex
	authors    map[int64]*domain.Author
	books      map[int64]*domain.Book
	nextAuthor int64
	nextBook   int64
}

func NewStore() *Store {
	return &Store{
		authors: map[int64]*domain.Author{},
		books:   map[int64]*domain.Book{},
	}
}

// Authors returns the author repository view of the store.
func (s *Store) Authors() *AuthorRepository { return &AuthorRepository{store: s} }

// Books returns the book repository view of the store.
func (s *Store) Books() *BookRepository { return &BookRepository{store: s} }

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

// likeMatcher compiles a SQL LIKE pattern; % matches any run and _ one character.
func likeMatcher(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
