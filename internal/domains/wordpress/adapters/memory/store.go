package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

var (
	_ ports.TermRepository     = (*TermRepository)(nil)
	_ ports.TermMetaRepository = (*TermMetaRepository)(nil)
)

// Store holds wp_terms and wp_termmeta behind one lock so metadata always sees its term.
type Store struct {
	mu       sync.RWMutex
	terms    map[int64]domain.Term
	metas    map[int64]domain.TermMeta
	nextTerm int64
	nextMeta int64
}

func NewStore() *Store {
	return &Store{
		terms: map[int64]domain.Term{},
		metas: map[int64]domain.TermMeta{},
	}
}

func (s *Store) Terms() *TermRepository { return &TermRepository{store: s} }

func (s *Store) TermMetas() *TermMetaRepository { return &TermMetaRepository{store: s} }

// TermRepository is an in-memory wp_terms adapter.
type TermRepository struct {
	store *Store
}

func (r *TermRepository) Save(_ context.Context, term *domain.Term) (*domain.Term, error) {
	if term == nil {
		return nil, errors.New("term is nil")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *term
	if stored.ID == 0 {
		s.nextTerm++
		stored.ID = s.nextTerm
	} else if _, ok := s.terms[stored.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	s.terms[stored.ID] = stored
	return &stored, nil
}

func (r *TermRepository) GetByID(_ context.Context, id int64) (*domain.Term, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	term, ok := s.terms[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &term, nil
}

// TermMetaRepository is an in-memory wp_termmeta adapter. Reads attach a copy of the current term.
type TermMetaRepository struct {
	store *Store
}

func (r *TermMetaRepository) Save(_ context.Context, meta *domain.TermMeta) (*domain.TermMeta, error) {
	if meta == nil {
		return nil, errors.New("term meta is nil")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	// term_id is a foreign key on wp_termmeta
	if _, ok := s.terms[meta.TermID()]; !ok {
		return nil, ports.ErrNotFound
	}
	stored := domain.TermMeta{ID: meta.ID, Term: &domain.Term{ID: meta.TermID()}, Meta: meta.Meta}
	if stored.ID == 0 {
		s.nextMeta++
		stored.ID = s.nextMeta
	} else if _, ok := s.metas[stored.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	s.metas[stored.ID] = stored
	return s.hydrate(stored), nil
}

func (r *TermMetaRepository) GetByID(_ context.Context, id int64) (*domain.TermMeta, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.metas[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s.hydrate(meta), nil
}

func (r *TermMetaRepository) ListByTerm(_ context.Context, termID int64) ([]*domain.TermMeta, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	metas := make([]*domain.TermMeta, 0)
	for _, meta := range s.metas {
		if meta.TermID() == termID {
			metas = append(metas, s.hydrate(meta))
		}
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })
	return metas, nil
}

func (r *TermMetaRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.metas[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.metas, id)
	return nil
}

// hydrate must be called with at least the read lock held.
func (s *Store) hydrate(meta domain.TermMeta) *domain.TermMeta {
	if term, ok := s.terms[meta.TermID()]; ok {
		meta.Term = &term
	}
	return &meta
}
