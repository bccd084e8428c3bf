package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func seedAuthors(t *testing.T, repo *AuthorRepository, names ...[2]string) {
	t.Helper()
	for _, n := range names {
		_, err := repo.Save(context.Background(), &domain.Author{FirstName: n[0], LastName: n[1]})
		require.NoError(t, err)
	}
}

func TestAuthorRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Authors()
	seedAuthors(t, repo, [2]string{"Zoe", "Smith"}, [2]string{"Adam", "Smith"}, [2]string{"Bob", "Smithers"}, [2]string{"Eve", "Jones"})

	found, err := repo.GetByName(ctx, "Adam", "Smith")
	require.NoError(t, err)
	require.Equal(t, int64(2), found.ID)

	_, err = repo.GetByName(ctx, "Adam", "Jones")
	require.ErrorIs(t, err, ports.ErrNotFound)

	byLast, err := repo.ListByLastName(ctx, "Smith", paging.Of(0, 10, paging.Order{Property: "firstName", Direction: paging.Asc}))
	require.NoError(t, err)
	require.EqualValues(t, 2, byLast.TotalElements)
	require.Equal(t, "Adam", byLast.Content[0].FirstName)
	require.Equal(t, "Zoe", byLast.Content[1].FirstName)

	like, err := repo.ListByLastNameLike(ctx, "Smith%", paging.Of(0, 2))
	require.NoError(t, err)
	require.EqualValues(t, 3, like.TotalElements)
	require.Len(t, like.Content, 2)
	require.Equal(t, 2, like.TotalPages)

	_, err = repo.List(ctx, paging.Of(0, 10, paging.Order{Property: "age"}))
	require.ErrorIs(t, err, paging.ErrUnknownSortProperty)
}

func TestAuthorRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Authors()
	saved, err := repo.Save(ctx, &domain.Author{FirstName: "Ann", LastName: "Lee", Books: []domain.Book{{Title: "x"}}})
	require.NoError(t, err)
	require.Empty(t, saved.Books)

	saved.Country = "NZ"
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)
	loaded, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "NZ", loaded.Country)

	_, err = repo.Save(ctx, &domain.Author{ID: 42, LastName: "Ghost"})
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	require.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}

func TestBookRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Books()
	authorID := int64(5)
	for _, title := range []string{"Kotlin", "Go", "Rust"} {
		_, err := repo.Save(ctx, &domain.Book{Title: title, ISBN: "isbn-" + title, AuthorID: &authorID})
		require.NoError(t, err)
	}

	book, err := repo.GetByISBN(ctx, "isbn-Go")
	require.NoError(t, err)
	require.Equal(t, "Go", book.Title)
	*book.AuthorID = 99
	again, err := repo.GetByTitle(ctx, "Go")
	require.NoError(t, err)
	require.Equal(t, int64(5), *again.AuthorID)

	page, err := repo.List(ctx, paging.Of(0, 10, paging.Order{Property: "title", Direction: paging.Asc}))
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Kotlin", "Rust"}, []string{page.Content[0].Title, page.Content[1].Title, page.Content[2].Title})

	_, err = repo.GetByTitle(ctx, "Java")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestLikeMatcher(t *testing.T) {
	m, err := likeMatcher("Sm_th%")
	require.NoError(t, err)
	require.True(t, m.MatchString("Smith"))
	require.True(t, m.MatchString("Smythe"))
	require.False(t, m.MatchString("Smiith"))

	m, err = likeMatcher("a.b")
	require.NoError(t, err)
	require.False(t, m.MatchString("axb"))
}
