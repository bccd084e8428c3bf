package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyTermName rejects terms without a name.
	ErrEmptyTermName = errors.New("term name is required")
	// ErrMissingTerm rejects metadata that does not point at a saved term.
	ErrMissingTerm = errors.New("term meta requires a saved term")
	// ErrEmptyMetaKey rejects metadata without a key.
	ErrEmptyMetaKey = errors.New("meta key is required")
)

// Term is a WordPress taxonomy term (category, tag, ...).
type Term struct {
	ID        int64
	Name      string
	Slug      string
	TermGroup int64
}

func (t *Term) IsNew() bool { return t == nil || t.ID == 0 }

func (t *Term) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTermName
	}
	return nil
}

// ApplyDefaults derives the slug from the name when none was given.
func (t *Term) ApplyDefaults() {
	if strings.TrimSpace(t.Slug) == "" {
		t.Slug = Slugify(t.Name)
	}
}

// Slugify lower-cases s and joins its words with hyphens.
func Slugify(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
