package domain

import (
	"errors"
	"strings"
)

// ErrEmptyAuthorName rejects authors without a first or last name.
var ErrEmptyAuthorName = errors.New("author name is required")

// Author writes books. Books is filled by callers and never persisted with the author.
type Author struct {
	ID        int64
	FirstName string
	LastName  string
	Country   string
	Books     []Book
}

func (a *Author) IsNew() bool { return a.ID == 0 }

func (a *Author) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" && strings.TrimSpace(a.LastName) == "" {
		return ErrEmptyAuthorName
	}
	return nil
}

// Equal compares persisted identity only.
func (a *Author) Equal(other *Author) bool {
	if a == nil || other == nil {
		return false
	}
	return a.ID != 0 && a.ID == other.ID
}

// FullName joins first and last name.
func (a *Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
