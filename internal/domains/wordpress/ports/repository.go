package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
)

// ErrNotFound is returned when a term or term meta row does not exist.
var ErrNotFound = errors.New("wordpress entity not found")

// TermRepository persists taxonomy terms.
type TermRepository interface {
	Save(ctx context.Context, term *domain.Term) (*domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
}

// TermMetaRepository persists term metadata.
type TermMetaRepository interface {
	Save(ctx context.Context, meta *domain.TermMeta) (*domain.TermMeta, error)
	GetByID(ctx context.Context, id int64) (*domain.TermMeta, error)
	ListByTerm(ctx context.Context, termID int64) ([]*domain.TermMeta, error)
	Delete(ctx context.Context, id int64) error
}

// TermMetaDAO exposes term and term meta persistence to adapters.
type TermMetaDAO interface {
	Save(ctx context.Context, meta *domain.TermMeta) (*domain.TermMeta, error)
	GetByID(ctx context.Context, id int64) (*domain.TermMeta, error)
	FindByTerm(ctx context.Context, termID int64) ([]*domain.TermMeta, error)
	DeleteByID(ctx context.Context, id int64) error
	SaveTerm(ctx context.Context, term *domain.Term) (*domain.Term, error)
	GetTerm(ctx context.Context, id int64) (*domain.Term, error)
}
