package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

func TestStore_TermMetaLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	terms, metas := store.Terms(), store.TermMetas()

	term, err := terms.Save(ctx, &domain.Term{Name: "News", Slug: "news"})
	require.NoError(t, err)
	require.Equal(t, int64(1), term.ID)

	first, err := metas.Save(ctx, &domain.TermMeta{Term: term, Meta: domain.Meta{MetaKey: "color", MetaValue: "red"}})
	require.NoError(t, err)
	second, err := metas.Save(ctx, &domain.TermMeta{Term: &domain.Term{ID: term.ID}, Meta: domain.Meta{MetaKey: "order", MetaValue: "2"}})
	require.NoError(t, err)
	require.Equal(t, "News", second.Term.Name)

	term.Name = "Headlines"
	_, err = terms.Save(ctx, term)
	require.NoError(t, err)

	fetched, err := metas.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Headlines", fetched.Term.Name)
	require.Equal(t, "red", fetched.MetaValue)

	listed, err := metas.ListByTerm(ctx, term.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, first.ID, listed[0].ID)
	require.Equal(t, second.ID, listed[1].ID)

	require.NoError(t, metas.Delete(ctx, first.ID))
	require.ErrorIs(t, metas.Delete(ctx, first.ID), ports.ErrNotFound)
	_, err = metas.GetByID(ctx, first.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStore_RejectsUnknownRows(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Terms().Save(ctx, &domain.Term{ID: 9, Name: "ghost"})
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = store.TermMetas().Save(ctx, &domain.TermMeta{Term: &domain.Term{ID: 9}, Meta: domain.Meta{MetaKey: "k"}})
	require.ErrorIs(t, err, ports.ErrNotFound)

	term, err := store.Terms().Save(ctx, &domain.Term{Name: "real"})
	require.NoError(t, err)
	_, err = store.TermMetas().Save(ctx, &domain.TermMeta{ID: 5, Term: term, Meta: domain.Meta{MetaKey: "k"}})
	require.ErrorIs(t, err, ports.ErrNotFound)
}
