package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ErrNotFound is returned when no electric guitar has the requested ID.
var ErrNotFound = errors.New("instrument not found")

// ElectricGuitarRepository persists electric guitars across the instrument hierarchy tables.
type ElectricGuitarRepository interface {
	Save(ctx context.Context, guitar *domain.ElectricGuitar) (*domain.ElectricGuitar, error)
	FindByID(ctx context.Context, id int64) (*domain.ElectricGuitar, error)
	FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.ElectricGuitar], error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
