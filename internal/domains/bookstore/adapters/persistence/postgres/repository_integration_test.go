//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/platform/postgres/postgrestest"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func TestBookstoreRepositories_Postgres(t *testing.T) {
	db := postgrestest.Start(t)
	ctx := context.Background()
	authors := NewAuthorRepository(db)
	books := NewBookRepository(db)

	author, err := authors.Save(ctx, &domain.Author{FirstName: "Joshua", LastName: "Bloch"})
	require.NoError(t, err)

	book := &domain.Book{Title: "Effective Java", ISBN: "978-0134685991", Publisher: "AW"}
	book.WrittenBy(author)
	saved, err := books.Save(ctx, book)
	require.NoError(t, err)

	found, err := books.GetByTitle(ctx, "Effective Java")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	page, err := authors.ListByLastNameLike(ctx, "Blo%", paging.Of(0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)

	require.NoError(t, books.Delete(ctx, saved.ID))
	require.NoError(t, authors.Delete(ctx, author.ID))
	_, err = authors.GetByID(ctx, author.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
