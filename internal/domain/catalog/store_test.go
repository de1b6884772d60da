package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	products := store.Products()
	require.Len(t, products, 5)
	assert.Equal(t, "h1", products[0].ID)

	hoodie, err := store.Product("h1")
	require.NoError(t, err)
	assert.Equal(t, "The Zyra Hoodie", hoodie.Name)
	assert.Equal(t, int64(18500), hoodie.Price)
	assert.Equal(t, []string{"S", "M", "L", "XL", "XXL"}, hoodie.Sizes)
	assert.Equal(t, 450, hoodie.Fabric.GSM)
	assert.True(t, hoodie.Customizable)

	opts := store.Options()
	assert.Equal(t, "#D4AF37", opts.ThreadColors[0].Hex)
	assert.Equal(t, "Playfair Display", opts.Fonts[0])
	assert.Equal(t, "Tone-on-tone", opts.DefaultStitching())
	assert.Equal(t, int64(2500), opts.Fees.Embroidery)
	assert.Equal(t, int64(1500), opts.Fees.Stitching)
	assert.Equal(t, 12, opts.Fees.TextMaxLength)

	cashmere, ok := opts.Fabric("Cashmere Blend")
	require.True(t, ok)
	assert.Equal(t, int64(8500), cashmere.Surcharge)
	assert.True(t, cashmere.Premium())
}

func TestProductNotFound(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	_, err = store.Product("nope")
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestReturnedProductsAreCopies(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	p, err := store.Product("h1")
	require.NoError(t, err)
	p.Sizes[0] = "XS"
	p.Colors = append(p.Colors, "#FFFFFF")

	again, err := store.Product("h1")
	require.NoError(t, err)
	assert.Equal(t, "S", again.Sizes[0])
	assert.Len(t, again.Colors, 4)

	opts := store.Options()
	opts.Fonts[0] = "Comic Sans"
	assert.Equal(t, "Playfair Display", store.Options().Fonts[0])
}

func TestCategories(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"All", "Hoodies", "Tees", "Sweatshirts", "Accessories"}, store.Categories())
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "products: [\n"},
		{"duplicate ids", `
products:
  - {id: a, name: A, price: 100}
  - {id: a, name: B, price: 100}
`},
		{"zero price", `
products:
  - {id: a, name: A, price: 0}
`},
		{"empty options", `
products:
  - {id: a, name: A, price: 100}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
