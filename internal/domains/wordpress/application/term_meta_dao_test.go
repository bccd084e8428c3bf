package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

type termStub struct {
	saved []*domain.Term
	known map[int64]*domain.Term
}

func (s *termStub) Save(_ context.Context, term *domain.Term) (*domain.Term, error) {
	clone := *term
	if clone.ID == 0 {
		clone.ID = int64(len(s.saved) + 1)
	}
	s.saved = append(s.saved, &clone)
	return &clone, nil
}

func (s *termStub) GetByID(_ context.Context, id int64) (*domain.Term, error) {
	if term, ok := s.known[id]; ok {
		return term, nil
	}
	return nil, ports.ErrNotFound
}

type metaStub struct {
	listed []int64
	saves  int
}

func (s *metaStub) Save(_ context.Context, meta *domain.TermMeta) (*domain.TermMeta, error) {
	s.saves++
	return meta, nil
}

func (s *metaStub) GetByID(context.Context, int64) (*domain.TermMeta, error) {
	return nil, ports.ErrNotFound
}

func (s *metaStub) ListByTerm(_ context.Context, termID int64) ([]*domain.TermMeta, error) {
	s.listed = append(s.listed, termID)
	return []*domain.TermMeta{}, nil
}

func (s *metaStub) Delete(context.Context, int64) error { return nil }

func TestTermMetaDAO_SaveTermDerivesSlug(t *testing.T) {
	terms := &termStub{}
	dao := NewTermMetaDAO(terms, &metaStub{})

	term, err := dao.SaveTerm(context.Background(), &domain.Term{Name: "Hello World"})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", term.Slug)

	_, err = dao.SaveTerm(context.Background(), &domain.Term{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyTermName)
	assert.Len(t, terms.saved, 1)
}

func TestTermMetaDAO_SaveRejectsInvalidMeta(t *testing.T) {
	metas := &metaStub{}
	dao := NewTermMetaDAO(&termStub{}, metas)

	_, err := dao.Save(context.Background(), &domain.TermMeta{Meta: domain.Meta{MetaKey: "k"}})
	require.ErrorIs(t, err, domain.ErrMissingTerm)

	_, err = dao.Save(context.Background(), &domain.TermMeta{Term: &domain.Term{ID: 1}})
	require.ErrorIs(t, err, domain.ErrEmptyMetaKey)

	_, err = dao.Save(context.Background(), &domain.TermMeta{Term: &domain.Term{ID: 1}, Meta: domain.Meta{MetaKey: "k"}})
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.Zero(t, metas.saves)
}

func TestTermMetaDAO_SaveForKnownTerm(t *testing.T) {
	metas := &metaStub{}
	dao := NewTermMetaDAO(&termStub{known: map[int64]*domain.Term{1: {ID: 1, Name: "x"}}}, metas)

	_, err := dao.Save(context.Background(), &domain.TermMeta{Term: &domain.Term{ID: 1}, Meta: domain.Meta{MetaKey: "k"}})
	require.NoError(t, err)
	assert.Equal(t, 1, metas.saves)
}

func TestTermMetaDAO_FindByTermRequiresTerm(t *testing.T) {
	metas := &metaStub{}
	dao := NewTermMetaDAO(&termStub{known: map[int64]*domain.Term{4: {ID: 4, Name: "x"}}}, metas)

	_, err := dao.FindByTerm(context.Background(), 5)
	require.ErrorIs(t, err, ports.ErrNotFound)

	result, err := dao.FindByTerm(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, []int64{4}, metas.listed)
}
