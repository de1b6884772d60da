// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"github.com/zyra-atelier/storefront/internal/domain/cart"
)

// Step is the checkout screen currently shown
type Step int

const (
	StepAddress  Step = 1
	StepShipping Step = 2
	StepPayment  Step = 3
)

// Address is the shipping address collected on the first step
type Address struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	City         string `json:"city" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
}

// ShippingMethod represents a shipping option
type ShippingMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"` // Price in cents
	EstimatedDays string `json:"estimated_days"`
}

// ShippingMethods are the options offered on the second step
var ShippingMethods = []ShippingMethod{
	{ID: "atelier-express", Name: "Atelier Express", Price: 0, EstimatedDays: "3-5 Business Days"},
	{ID: "white-glove", Name: "White Glove Priority", Price: 4500, EstimatedDays: "Next Day Delivery"},
}

// FindShippingMethod looks up a shipping option by id
func FindShippingMethod(id string) (ShippingMethod, bool) {
	for _, m := range ShippingMethods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}

// Payment holds the card fields of the third step. Only presence is
// checked; nothing but the last four digits is kept.
type Payment struct {
	CardNumber string `json:"card_number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// Progress is the checkout state carried in the shopper session
type Progress struct {
	Step           Step            `json:"step"`
	Address        *Address        `json:"address,omitempty"`
	ShippingMethod *ShippingMethod `json:"shipping_method,omitempty"`
	CardLast4      string          `json:"card_last4,omitempty"`
	PaymentReady   bool            `json:"payment_ready"`
}

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusReceived OrderStatus = "received"
)

// Order is a placed (simulated) order kept in the session history
type Order struct {
	Number          string          `json:"number"`
	Items           []cart.CartItem `json:"items"`
	Subtotal        int64           `json:"subtotal"`
	ShippingAmount  int64           `json:"shipping_amount"`
	Total           int64           `json:"total"`
	ShippingAddress Address         `json:"shipping_address"`
	ShippingMethod  ShippingMethod  `json:"shipping_method"`
	CardLast4       string          `json:"card_last4"`
	Status          OrderStatus     `json:"status"`
	PlacedAt        time.Time       `json:"placed_at"`
}

// Pricing represents the order summary sidebar
type Pricing struct {
	Subtotal       int64 `json:"subtotal"`
	ShippingAmount int64 `json:"shipping_amount"`
	Total          int64 `json:"total"`
}
