package memory

import (
	"cmp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
)

// Store keeps every orders table in memory behind a single lock so that
// cross-entity reads (customers with their orders, lines with products) stay consistent.
type Store struct {
	mu        sync.RWMutex
	products  map[int64]*domain.Product
	customers map[int64]*domain.Customer
	headers   map[int64]*domain.OrderHeader
	sequences map[string]int64
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		products:  map[int64]*domain.Product{},
		customers: map[int64]*domain.Customer{},
		headers:   map[int64]*domain.OrderHeader{},
		sequences: map[string]int64{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Products returns a product repository view of the store.
func (s *Store) Products() *ProductRepository { return &ProductRepository{store: s} }

// Customers returns a customer repository view of the store.
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{store: s} }

// OrderHeaders returns an order header repository view of the store.
func (s *Store) OrderHeaders() *OrderHeaderRepository { return &OrderHeaderRepository{store: s} }

// next must be called with the write lock held.
func (s *Store) next(sequence string) int64 {
	s.sequences[sequence]++
	return s.sequences[sequence]
}

// observe keeps a sequence ahead of caller-assigned IDs.
func (s *Store) observe(sequence string, id int64) {
	if id > s.sequences[sequence] {
		s.sequences[sequence] = id
	}
}

func touch(entity *domain.BaseEntity, now time.Time) {
	if entity.CreatedDate.IsZero() {
		entity.CreatedDate = now
	}
	entity.LastModifiedDate = now
}

// hydrateHeader must be called with at least the read lock held.
func (s *Store) hydrateHeader(stored *domain.OrderHeader) *domain.OrderHeader {
	clone := stored.Clone()
	if clone.Customer != nil {
		if customer, ok := s.customers[clone.Customer.ID]; ok {
			fresh := customer.Clone()
			fresh.AddOrderHeader(clone)
		}
	}
	for _, line := range clone.OrderLines {
		if line.Product == nil {
			continue
		}
		if product, ok := s.products[line.Product.ID]; ok {
			line.Product = product.Clone()
		}
	}
	return clone
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
