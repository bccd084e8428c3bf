package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "hello-world", Slugify("Hello, World!"))
	require.Equal(t, "go-1-24", Slugify("  Go 1.24 "))
	require.Equal(t, "", Slugify("!!"))
}

func TestTerm_ApplyDefaults(t *testing.T) {
	term := &Term{Name: "Spring Data"}
	term.ApplyDefaults()
	require.Equal(t, "spring-data", term.Slug)

	custom := &Term{Name: "Spring Data", Slug: "sd"}
	custom.ApplyDefaults()
	require.Equal(t, "sd", custom.Slug)
	require.ErrorIs(t, (&Term{}).Validate(), ErrEmptyTermName)
}

func TestTermMeta_Validate(t *testing.T) {
	require.ErrorIs(t, (&TermMeta{Meta: Meta{MetaKey: "k"}}).Validate(), ErrMissingTerm)
	require.ErrorIs(t, (&TermMeta{Term: &Term{}, Meta: Meta{MetaKey: "k"}}).Validate(), ErrMissingTerm)
	require.ErrorIs(t, (&TermMeta{Term: &Term{ID: 1}}).Validate(), ErrEmptyMetaKey)
	require.NoError(t, (&TermMeta{Term: &Term{ID: 1}, Meta: Meta{MetaKey: "color"}}).Validate())
	require.Zero(t, (&TermMeta{}).TermID())
}
