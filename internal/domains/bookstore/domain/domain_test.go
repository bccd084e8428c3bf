package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthor_Validate(t *testing.T) {
	require.ErrorIs(t, (&Author{}).Validate(), ErrEmptyAuthorName)
	require.NoError(t, (&Author{LastName: "Evans"}).Validate())
	require.Equal(t, "Eric Evans", (&Author{FirstName: "Eric", LastName: "Evans"}).FullName())
}

func TestEquality_RequiresPersistedIdentity(t *testing.T) {
	require.False(t, (&Author{}).Equal(&Author{}))
	require.True(t, (&Author{ID: 3, FirstName: "a"}).Equal(&Author{ID: 3, FirstName: "b"}))
	require.False(t, (&Book{}).Equal(&Book{}))
	require.True(t, (&Book{ID: 1, Title: "x"}).Equal(&Book{ID: 1, Title: "y"}))
}

func TestBook_WrittenBy(t *testing.T) {
	book := &Book{Title: "DDD"}
	book.WrittenBy(&Author{ID: 9})
	require.NotNil(t, book.AuthorID)
	require.Equal(t, int64(9), *book.AuthorID)

	book.WrittenBy(&Author{})
	require.Nil(t, book.AuthorID)
	require.ErrorIs(t, (&Book{}).Validate(), ErrEmptyTitle)
}
