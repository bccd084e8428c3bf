package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func newGuitar(strings, pickups int) *domain.ElectricGuitar {
	return &domain.ElectricGuitar{Guitar: domain.Guitar{NumberOfStrings: strings}, NumberOfPickups: pickups}
}

func TestRepository_SaveKeepsCreatedDate(t *testing.T) {
	repo := NewRepository()
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	ctx := context.Background()

	saved, err := repo.Save(ctx, newGuitar(6, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, clock, saved.CreatedDate)

	clock = clock.Add(time.Hour)
	saved.NumberOfPickups = 2
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, clock.Add(-time.Hour), updated.CreatedDate)
	assert.Equal(t, clock, updated.LastModifiedDate)
	assert.Equal(t, 2, updated.NumberOfPickups)

	missing := newGuitar(6, 1)
	missing.ID = 99
	_, err = repo.Save(ctx, missing)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_FindAllCountAndDelete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for _, strings := range []int{7, 6, 12} {
		_, err := repo.Save(ctx, newGuitar(strings, 2))
		require.NoError(t, err)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := repo.FindAll(ctx, paging.Of(0, 2, paging.Order{Property: "numberOfStrings", Direction: paging.Desc}))
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, 12, page.Content[0].NumberOfStrings)
	assert.Equal(t, 7, page.Content[1].NumberOfStrings)
	assert.Equal(t, 2, page.TotalPages)

	_, err = repo.FindAll(ctx, paging.Of(0, 2, paging.Order{Property: "brand"}))
	require.ErrorIs(t, err, paging.ErrUnknownSortProperty)

	require.NoError(t, repo.DeleteByID(ctx, 1))
	require.ErrorIs(t, repo.DeleteByID(ctx, 1), ports.ErrNotFound)
	_, err = repo.FindByID(ctx, 1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
