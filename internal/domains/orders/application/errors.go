package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrTransientEntity rejects updates of entities that were never saved.
	ErrTransientEntity = errors.New("entity has not been saved yet")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomerName) ||
		errors.Is(err, domain.ErrInvalidOrderStatus) ||
		errors.Is(err, domain.ErrInvalidProductStatus) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyApprover) ||
		errors.Is(err, domain.ErrMissingProduct) ||
		errors.Is(err, paging.ErrUnknownSortProperty) ||
		errors.Is(err, ErrTransientEntity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
