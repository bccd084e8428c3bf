package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid wordpress input")

// TermMetaDAO forwards term and term meta operations to the repositories.
type TermMetaDAO struct {
	terms ports.TermRepository
	metas ports.TermMetaRepository
}

func NewTermMetaDAO(terms ports.TermRepository, metas ports.TermMetaRepository) *TermMetaDAO {
	return &TermMetaDAO{terms: terms, metas: metas}
}

// Save validates meta and requires its term to exist.
func (d *TermMetaDAO) Save(ctx context.Context, meta *domain.TermMeta) (*domain.TermMeta, error) {
	if meta == nil {
		return nil, errors.New("term meta is nil")
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := d.terms.GetByID(ctx, meta.TermID()); err != nil {
		return nil, err
	}
	return d.metas.Save(ctx, meta)
}

func (d *TermMetaDAO) GetByID(ctx context.Context, id int64) (*domain.TermMeta, error) {
	return d.metas.GetByID(ctx, id)
}

// FindByTerm lists the metadata of a term; an unknown term yields ErrNotFound.
func (d *TermMetaDAO) FindByTerm(ctx context.Context, termID int64) ([]*domain.TermMeta, error) {
	if _, err := d.terms.GetByID(ctx, termID); err != nil {
		return nil, err
	}
	return d.metas.ListByTerm(ctx, termID)
}

func (d *TermMetaDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.metas.Delete(ctx, id)
}

func (d *TermMetaDAO) SaveTerm(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	if term == nil {
		return nil, errors.New("term is nil")
	}
	term.ApplyDefaults()
	if err := term.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return d.terms.Save(ctx, term)
}

func (d *TermMetaDAO) GetTerm(ctx context.Context, id int64) (*domain.Term, error) {
	return d.terms.GetByID(ctx, id)
}

var _ ports.TermMetaDAO = (*TermMetaDAO)(nil)
