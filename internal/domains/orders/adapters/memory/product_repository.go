package memory

import (
	"cmp"
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

var productComparators = map[string]func(a, b *domain.Product) int{
	"id":            func(a, b *domain.Product) int { return cmp.Compare(a.ID, b.ID) },
	"description":   func(a, b *domain.Product) int { return compareFold(a.Description, b.Description) },
	"productStatus": func(a, b *domain.Product) int { return cmp.Compare(a.ProductStatus, b.ProductStatus) },
	"createdDate":   func(a, b *domain.Product) int { return a.CreatedDate.Compare(b.CreatedDate) },
}

// ProductRepository is an in-memory product persistence adapter.
type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := product.Clone()
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = s.next("product")
	} else {
		existing, ok := s.products[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		clone.CreatedDate = existing.CreatedDate
	}
	now := s.now()
	touch(&clone.BaseEntity, now)
	for _, category := range clone.Categories {
		if category.ID == 0 {
			category.ID = s.next("category")
		} else {
			s.observe("category", category.ID)
		}
		touch(&category.BaseEntity, now)
	}
	s.products[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return product.Clone(), nil
}

func (r *ProductRepository) GetByDescription(_ context.Context, description string) (*domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *domain.Product
	for _, product := range s.products {
		if product.Description != description {
			continue
		}
		if match == nil || product.ID < match.ID {
			match = product
		}
	}
	if match == nil {
		return nil, ports.ErrNotFound
	}
	return match.Clone(), nil
}

func (r *ProductRepository) List(_ context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error) {
	s := r.store
	s.mu.RLock()
	list := make([]*domain.Product, 0, len(s.products))
	for _, product := range s.products {
		list = append(list, product.Clone())
	}
	s.mu.RUnlock()
	sortByID(list, func(p *domain.Product) int64 { return p.ID })
	if err := paging.SortSlice(list, pageable, productComparators); err != nil {
		return paging.Page[*domain.Product]{}, err
	}
	return paging.Slice(list, pageable), nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ports.ErrNotFound
	}
	for _, header := range s.headers {
		for _, line := range header.OrderLines {
			if line.Product != nil && line.Product.ID == id {
				return ports.ErrReferenced
			}
		}
	}
	delete(s.products, id)
	return nil
}
