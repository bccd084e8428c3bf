package memory

import (
	"cmp"
	"context"
	"errors"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.OrderHeaderRepository = (*OrderHeaderRepository)(nil)

var orderHeaderComparators = map[string]func(a, b *domain.OrderHeader) int{
	"id":          func(a, b *domain.OrderHeader) int { return cmp.Compare(a.ID, b.ID) },
	"orderStatus": func(a, b *domain.OrderHeader) int { return cmp.Compare(a.OrderStatus, b.OrderStatus) },
	"createdDate": func(a, b *domain.OrderHeader) int { return a.CreatedDate.Compare(b.CreatedDate) },
}

// OrderHeaderRepository is an in-memory order persistence adapter with version checks.
type OrderHeaderRepository struct {
	store *Store
}

func (r *OrderHeaderRepository) Save(_ context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	if header == nil {
		return nil, errors.New("order header is nil")
	}
	clone := header.Clone()
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := &domain.OrderHeader{}
	if clone.ID == 0 {
		clone.ID = s.next("order_header")
		clone.Version = 0
	} else {
		stored, ok := s.headers[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		if stored.Version != clone.Version {
			return nil, ports.ErrStaleVersion
		}
		existing = stored
		clone.CreatedDate = existing.CreatedDate
		clone.Version++
	}
	now := s.now()
	touch(&clone.BaseEntity, now)
	for _, line := range clone.OrderLines {
		if line.ID == 0 {
			line.ID = s.next("order_line")
		} else {
			// order_line rows can only be rewritten by the header that owns them
			owned := findLine(existing, line.ID)
			if owned == nil {
				return nil, ports.ErrNotFound
			}
			line.CreatedDate = owned.CreatedDate
		}
		touch(&line.BaseEntity, now)
	}
	if approval := clone.OrderApproval; approval != nil {
		if approval.ID == 0 {
			approval.ID = s.next("order_approval")
		} else {
			if existing.OrderApproval == nil || existing.OrderApproval.ID != approval.ID {
				return nil, ports.ErrNotFound
			}
			approval.CreatedDate = existing.OrderApproval.CreatedDate
		}
		touch(&approval.BaseEntity, now)
	}
	s.headers[clone.ID] = clone
	return s.hydrateHeader(clone), nil
}

func findLine(header *domain.OrderHeader, id int64) *domain.OrderLine {
	for _, line := range header.OrderLines {
		if line.ID == id {
			return line
		}
	}
	return nil
}

func (r *OrderHeaderRepository) GetByID(_ context.Context, id int64) (*domain.OrderHeader, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	header, ok := s.headers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s.hydrateHeader(header), nil
}

func (r *OrderHeaderRepository) GetByCustomer(_ context.Context, customerID int64) (*domain.OrderHeader, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *domain.OrderHeader
	for _, header := range s.headers {
		if header.CustomerID() == customerID && (match == nil || header.ID < match.ID) {
			match = header
		}
	}
	if match == nil {
		return nil, ports.ErrNotFound
	}
	return s.hydrateHeader(match), nil
}

func (r *OrderHeaderRepository) List(_ context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error) {
	s := r.store
	s.mu.RLock()
	list := make([]*domain.OrderHeader, 0, len(s.headers))
	for _, header := range s.headers {
		list = append(list, s.hydrateHeader(header))
	}
	s.mu.RUnlock()
	sortByID(list, func(h *domain.OrderHeader) int64 { return h.ID })
	if err := paging.SortSlice(list, pageable, orderHeaderComparators); err != nil {
		return paging.Page[*domain.OrderHeader]{}, err
	}
	return paging.Slice(list, pageable), nil
}

func (r *OrderHeaderRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.headers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.headers, id)
	return nil
}
