package domain

import (
	"errors"
	"strings"
)

// ErrEmptyTitle rejects books without a title.
var ErrEmptyTitle = errors.New("book title is required")

// Book references its author by ID only.
type Book struct {
	ID        int64
	Title     string
	ISBN      string
	Publisher string
	AuthorID  *int64
}

func (b *Book) IsNew() bool { return b.ID == 0 }

func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Equal compares persisted identity only.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return false
	}
	return b.ID != 0 && b.ID == other.ID
}

// WrittenBy links the book to author.
func (b *Book) WrittenBy(author *Author) {
	if author == nil || author.IsNew() {
		b.AuthorID = nil
		return
	}
	id := author.ID
	b.AuthorID = &id
}
