// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
)

// CartItem is one line of the cart. It is never mutated after creation;
// it is only appended or removed.
type CartItem struct {
	ID            string          `json:"id"`
	Product       catalog.Product `json:"product"`
	Customization *studio.State   `json:"customization,omitempty"`
	Quantity      int             `json:"quantity"`
	AddedAt       time.Time       `json:"added_at"`
}

// UnitPrice is the customization's derived price when present, else the
// product price
func (i CartItem) UnitPrice() int64 {
	if i.Customization != nil {
		return i.Customization.Price
	}
	return i.Product.Price
}

// LineTotal is the unit price times quantity
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
}

// Clone returns a copy sharing no memory with i
func (i CartItem) Clone() CartItem {
	i.Product = i.Product.Clone()
	if i.Customization != nil {
		i.Customization = studio.ToCartSnapshot(*i.Customization)
	}
	return i
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int   `json:"item_count"`     // Number of lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`
}
