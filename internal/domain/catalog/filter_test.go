package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter keeps catalog order", Filter{}, []string{"h1", "t1", "h2", "s1", "a1"}},
		{"all category", Filter{Category: CategoryAll}, []string{"h1", "t1", "h2", "s1", "a1"}},
		{"category", Filter{Category: "Hoodies"}, []string{"h1", "h2"}},
		{"category is case insensitive", Filter{Category: "hoodies"}, []string{"h1", "h2"}},
		{"collection", Filter{Collection: "Signature"}, []string{"h1", "s1"}},
		{"gender", Filter{Gender: "women"}, []string{"s1"}},
		{"max price", Filter{MaxPrice: 16000}, []string{"t1", "s1", "a1"}},
		{"conjunction", Filter{Category: "Hoodies", MaxPrice: 20000}, []string{"h1"}},
		{"query matches tags", Filter{Query: "zip"}, []string{"h2"}},
		{"empty result", Filter{Category: "Tees", Gender: "men"}, []string{}},
		{"price ascending", Filter{Sort: SortPriceAsc}, []string{"a1", "t1", "s1", "h1", "h2"}},
		{"price descending", Filter{Category: "Hoodies", Sort: SortPriceDesc}, []string{"h2", "h1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(store.Filter(tt.filter)))
		})
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	all := ids(store.Products())
	position := map[string]int{}
	for i, id := range all {
		position[id] = i
	}

	got := ids(store.Filter(Filter{MaxPrice: 20000}))
	for i := 1; i < len(got); i++ {
		assert.Less(t, position[got[i-1]], position[got[i]])
	}
}
