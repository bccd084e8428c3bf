package memory

import (
	"cmp"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.ElectricGuitarRepository = (*Repository)(nil)

var comparators = map[string]func(a, b *domain.ElectricGuitar) int{
	"id":              func(a, b *domain.ElectricGuitar) int { return cmp.Compare(a.ID, b.ID) },
	"numberOfStrings": func(a, b *domain.ElectricGuitar) int { return cmp.Compare(a.NumberOfStrings, b.NumberOfStrings) },
	"numberOfPickups": func(a, b *domain.ElectricGuitar) int { return cmp.Compare(a.NumberOfPickups, b.NumberOfPickups) },
	"createdDate":     func(a, b *domain.ElectricGuitar) int { return a.CreatedDate.Compare(b.CreatedDate) },
}

// Repository is an in-memory electric guitar persistence adapter.
type Repository struct {
	mu      sync.RWMutex
	guitars map[int64]*domain.ElectricGuitar
	nextID  int64
	now     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{guitars: map[int64]*domain.ElectricGuitar{}, now: time.Now}
}

func (r *Repository) Save(_ context.Context, guitar *domain.ElectricGuitar) (*domain.ElectricGuitar, error) {
	if guitar == nil {
		return nil, errors.New("electric guitar is nil")
	}
	clone := *guitar
	now := r.now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
		clone.CreatedDate = now
	} else {
		existing, ok := r.guitars[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		clone.CreatedDate = existing.CreatedDate
	}
	clone.LastModifiedDate = now
	r.guitars[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) FindByID(_ context.Context, id int64) (*domain.ElectricGuitar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guitar, ok := r.guitars[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *guitar
	return &clone, nil
}

func (r *Repository) FindAll(_ context.Context, pageable paging.Pageable) (paging.Page[*domain.ElectricGuitar], error) {
	r.mu.RLock()
	list := make([]*domain.ElectricGuitar, 0, len(r.guitars))
	for _, guitar := range r.guitars {
		clone := *guitar
		list = append(list, &clone)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if err := paging.SortSlice(list, pageable, comparators); err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, err
	}
	return paging.Slice(list, pageable), nil
}

func (r *Repository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.guitars)), nil
}

func (r *Repository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.guitars[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.guitars, id)
	return nil
}
