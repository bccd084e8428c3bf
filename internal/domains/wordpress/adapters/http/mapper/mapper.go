package mapper

import "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"

// TermRequest creates or renames a term. An empty slug is derived from the name.
type TermRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Slug      string `json:"slug,omitempty" binding:"max=200"`
	TermGroup int64  `json:"termGroup,omitempty"`
}

type Term struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	TermGroup int64  `json:"termGroup"`
}

// TermMetaRequest is the body of meta create and update. The term comes from the path on create.
type TermMetaRequest struct {
	TermID    int64  `json:"termId,omitempty"`
	MetaKey   string `json:"metaKey" binding:"required,max=255"`
	MetaValue string `json:"metaValue"`
}

type TermMeta struct {
	ID        int64  `json:"id"`
	Term      Term   `json:"term"`
	MetaKey   string `json:"metaKey"`
	MetaValue string `json:"metaValue"`
}

func ToDomainTerm(id int64, req TermRequest) *domain.Term {
	return &domain.Term{ID: id, Name: req.Name, Slug: req.Slug, TermGroup: req.TermGroup}
}

func FromDomainTerm(term *domain.Term) Term {
	if term == nil {
		return Term{}
	}
	return Term{ID: term.ID, Name: term.Name, Slug: term.Slug, TermGroup: term.TermGroup}
}

func ToDomainTermMeta(id, termID int64, req TermMetaRequest) *domain.TermMeta {
	return &domain.TermMeta{
		ID:   id,
		Term: &domain.Term{ID: termID},
		Meta: domain.Meta{MetaKey: req.MetaKey, MetaValue: req.MetaValue},
	}
}

func FromDomainTermMeta(meta *domain.TermMeta) TermMeta {
	return TermMeta{
		ID:        meta.ID,
		Term:      FromDomainTerm(meta.Term),
		MetaKey:   meta.MetaKey,
		MetaValue: meta.MetaValue,
	}
}

func FromDomainTermMetas(metas []*domain.TermMeta) []TermMeta {
	out := make([]TermMeta, 0, len(metas))
	for _, meta := range metas {
		out = append(out, FromDomainTermMeta(meta))
	}
	return out
}
