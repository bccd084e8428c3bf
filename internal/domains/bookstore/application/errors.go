package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid bookstore input")
	// ErrAlreadyPersisted rejects saving an entity as new when it already has an ID.
	ErrAlreadyPersisted = errors.New("entity already has an id")
	// ErrTransientEntity rejects updates of entities that were never saved.
	ErrTransientEntity = errors.New("entity has not been saved yet")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyAuthorName) ||
		errors.Is(err, domain.ErrEmptyTitle) ||
		errors.Is(err, paging.ErrUnknownSortProperty) ||
		errors.Is(err, ErrAlreadyPersisted) ||
		errors.Is(err, ErrTransientEntity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
