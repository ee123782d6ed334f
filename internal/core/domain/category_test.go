package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarCategories(t *testing.T) {
	pairs := DefaultCategoryMap()

	assert.Equal(t, []string{"cafe", "barista", "serving", "bakery"},
		SimilarCategories(pairs, "cafe"))

	// Self-pairs are not duplicated.
	assert.Equal(t, []string{"delivery", "logistics"}, SimilarCategories(pairs, "delivery"))

	// Similar-only categories map to themselves.
	assert.Equal(t, []string{"serving"}, SimilarCategories(pairs, "serving"))
	assert.Equal(t, []string{"unknown"}, SimilarCategories(pairs, "unknown"))
}

func TestCategoriesDistinct(t *testing.T) {
	cats := Categories(DefaultCategoryMap())
	seen := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
	assert.Contains(t, cats, "cafe")
	assert.Contains(t, cats, "barista")
	assert.Contains(t, cats, "it")
}

func TestEventKindOrder(t *testing.T) {
	assert.Less(t, EventView.Order(), EventClick.Order())
	assert.Less(t, EventClick.Order(), EventSubmit.Order())
	assert.Equal(t, 3, EventKind("install").Order())
}
