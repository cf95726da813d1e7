package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"cleaning":    "Cleaning",
		"  PLUMBING ": "Plumbing",
		"Fitness":     "Fitness",
		"astrology":   CategoryOther,
		"":            CategoryOther,
		"other":       CategoryOther,
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeCategory(in), in)
	}
}

func TestCategoriesAreCanonical(t *testing.T) {
	assert.Len(t, Categories, 11)
	for _, c := range Categories {
		assert.Equal(t, c, NormalizeCategory(c))
	}
}

func TestLookupCategory(t *testing.T) {
	got, ok := LookupCategory(" music ")
	assert.True(t, ok)
	assert.Equal(t, "Music", got)

	_, ok = LookupCategory("astrology")
	assert.False(t, ok)

	got, ok = LookupCategory("OTHER")
	assert.True(t, ok)
	assert.Equal(t, CategoryOther, got)
}
