// internal/domain/cart/cart.go
package cart

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
)

var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

// Cart is an ordered list of line items. Methods never modify the
// receiver; they return the next cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends a line for p with quantity 1. A non-nil customization is
// copied, so later edits to the caller's design do not reach the cart.
func (c Cart) Add(p catalog.Product, customization *studio.State) (Cart, CartItem) {
	item := CartItem{
		ID:       newID(),
		Product:  p.Clone(),
		Quantity: 1,
		AddedAt:  now(),
	}
	if customization != nil {
		item.Customization = studio.ToCartSnapshot(*customization)
	}

	items := make([]CartItem, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	items = append(items, item)

	return Cart{Items: items}, item
}

// Remove drops the first line with the given id. Removing an unknown id
// returns an equal cart.
func (c Cart) Remove(id string) Cart {
	i := slices.IndexFunc(c.Items, func(item CartItem) bool { return item.ID == id })
	if i < 0 {
		return Cart{Items: slices.Clone(c.Items)}
	}

	items := make([]CartItem, 0, len(c.Items)-1)
	items = append(items, c.Items[:i]...)
	items = append(items, c.Items[i+1:]...)

	return Cart{Items: items}
}

// Find returns the line with the given id
func (c Cart) Find(id string) (CartItem, bool) {
	i := slices.IndexFunc(c.Items, func(item CartItem) bool { return item.ID == id })
	if i < 0 {
		return CartItem{}, false
	}
	return c.Items[i], true
}

// Subtotal sums every line's unit price times quantity
func (c Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// Totals summarizes the cart
func (c Cart) Totals() CartTotals {
	totals := CartTotals{
		ItemCount: len(c.Items),
		SubTotal:  c.Subtotal(),
	}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
	}
	return totals
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = item.Clone()
	}
	return Cart{Items: items}
}
