package domain

import "strings"

// Meta is the key/value pair shared by the WordPress *meta tables.
type Meta struct {
	MetaKey   string
	MetaValue string
}

// TermMeta attaches one Meta entry to a term.
type TermMeta struct {
	ID   int64
	Term *Term
	Meta
}

func (m *TermMeta) IsNew() bool { return m.ID == 0 }

func (m *TermMeta) Validate() error {
	if m.Term.IsNew() {
		return ErrMissingTerm
	}
	if strings.TrimSpace(m.MetaKey) == "" {
		return ErrEmptyMetaKey
	}
	return nil
}

// TermID returns the owning term's ID, or zero when unset.
func (m *TermMeta) TermID() int64 {
	if m.Term == nil {
		return 0
	}
	return m.Term.ID
}
