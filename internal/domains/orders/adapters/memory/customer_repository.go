package memory

import (
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository is an in-memory customer persistence adapter.
type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	clone := customer.Clone()
	clone.OrderHeaders = nil
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = s.next("customer")
	} else {
		existing, ok := s.customers[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		clone.CreatedDate = existing.CreatedDate
	}
	touch(&clone.BaseEntity, s.now())
	s.customers[clone.ID] = clone
	return s.hydrateCustomer(clone), nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, ok := s.customers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s.hydrateCustomer(customer), nil
}

func (r *CustomerRepository) GetByName(_ context.Context, name string) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *domain.Customer
	for _, customer := range s.customers {
		if customer.CustomerName == name && (match == nil || customer.ID < match.ID) {
			match = customer
		}
	}
	if match == nil {
		return nil, ports.ErrNotFound
	}
	return s.hydrateCustomer(match), nil
}

func (r *CustomerRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.customers, id)
	// order_header.customer_id is ON DELETE SET NULL in the schema.
	for _, header := range s.headers {
		if header.CustomerID() == id {
			header.Customer = nil
		}
	}
	return nil
}

// hydrateCustomer must be called with at least the read lock held.
func (s *Store) hydrateCustomer(stored *domain.Customer) *domain.Customer {
	clone := stored.Clone()
	clone.OrderHeaders = nil
	var headers []*domain.OrderHeader
	for _, header := range s.headers {
		if header.CustomerID() == stored.ID {
			headers = append(headers, header)
		}
	}
	sortByID(headers, func(h *domain.OrderHeader) int64 { return h.ID })
	for _, header := range headers {
		h := header.Clone()
		h.Customer = nil
		clone.AddOrderHeader(h)
	}
	return clone
}
