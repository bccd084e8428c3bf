package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid instrument input")

// ElectricGuitars validates guitars before handing them to the repository.
type ElectricGuitars struct {
	repo ports.ElectricGuitarRepository
}

func NewElectricGuitars(repo ports.ElectricGuitarRepository) *ElectricGuitars {
	return &ElectricGuitars{repo: repo}
}

func (s *ElectricGuitars) Save(ctx context.Context, guitar *domain.ElectricGuitar) (*domain.ElectricGuitar, error) {
	if guitar == nil {
		return nil, errors.New("electric guitar is nil")
	}
	if err := guitar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, guitar)
}

func (s *ElectricGuitars) FindByID(ctx context.Context, id int64) (*domain.ElectricGuitar, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ElectricGuitars) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.ElectricGuitar], error) {
	page, err := s.repo.FindAll(ctx, pageable)
	if errors.Is(err, paging.ErrUnknownSortProperty) {
		return page, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return page, err
}

func (s *ElectricGuitars) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *ElectricGuitars) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

var _ ports.ElectricGuitarRepository = (*ElectricGuitars)(nil)
