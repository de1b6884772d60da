// internal/domain/checkout/flow.go
package checkout

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/zyra-atelier/storefront/internal/domain/cart"
)

var (
	// ErrEmptyCart means there is nothing to check out
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStepOutOfOrder means an earlier step has not been completed
	ErrStepOutOfOrder = errors.New("checkout step completed out of order")
	// ErrUnknownShippingMethod means the shipping method id is not offered
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
)

// MissingFieldError means a required form field was left blank
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Begin returns progress positioned on the address step
func Begin() Progress {
	return Progress{Step: StepAddress}
}

// SubmitAddress records the shipping address and moves to the shipping step.
// It can be resubmitted from any later step; payment must then be entered
// again.
func (p Progress) SubmitAddress(addr Address) (Progress, error) {
	fields := []struct{ name, value string }{
		{"first_name", addr.FirstName},
		{"last_name", addr.LastName},
		{"address_line1", addr.AddressLine1},
		{"city", addr.City},
		{"zip_code", addr.ZipCode},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return p, &MissingFieldError{Field: f.name}
		}
	}

	next := p.clone()
	next.Address = &addr
	next.Step = StepShipping
	next.clearPayment()
	return next, nil
}

// SelectShipping records the shipping method and moves to the payment step
func (p Progress) SelectShipping(methodID string) (Progress, error) {
	if p.Address == nil {
		return p, fmt.Errorf("%w: shipping address first", ErrStepOutOfOrder)
	}

	method, ok := FindShippingMethod(methodID)
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrUnknownShippingMethod, methodID)
	}

	next := p.clone()
	next.ShippingMethod = &method
	next.Step = StepPayment
	next.clearPayment()
	return next, nil
}

// SubmitPayment checks the card fields are present and marks the order
// ready to place
func (p Progress) SubmitPayment(payment Payment) (Progress, error) {
	if p.ShippingMethod == nil {
		return p, fmt.Errorf("%w: shipping method first", ErrStepOutOfOrder)
	}

	fields := []struct{ name, value string }{
		{"card_number", payment.CardNumber},
		{"expiry", payment.Expiry},
		{"cvv", payment.CVV},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return p, &MissingFieldError{Field: f.name}
		}
	}

	next := p.clone()
	next.CardLast4 = lastFourDigits(payment.CardNumber)
	next.PaymentReady = true
	return next, nil
}

// Price computes the order summary for c under the selected shipping method
func (p Progress) Price(c cart.Cart) Pricing {
	pricing := Pricing{Subtotal: c.Subtotal()}
	if p.ShippingMethod != nil {
		pricing.ShippingAmount = p.ShippingMethod.Price
	}
	pricing.Total = pricing.Subtotal + pricing.ShippingAmount
	return pricing
}

// PlaceOrder turns a completed checkout into an order. No payment is taken.
func (p Progress) PlaceOrder(c cart.Cart, placedAt time.Time) (Order, error) {
	if c.IsEmpty() {
		return Order{}, ErrEmptyCart
	}
	if p.Step != StepPayment || !p.PaymentReady || p.Address == nil || p.ShippingMethod == nil {
		return Order{}, fmt.Errorf("%w: payment details first", ErrStepOutOfOrder)
	}

	pricing := p.Price(c)
	return Order{
		Number:          newOrderNumber(),
		Items:           c.Clone().Items,
		Subtotal:        pricing.Subtotal,
		ShippingAmount:  pricing.ShippingAmount,
		Total:           pricing.Total,
		ShippingAddress: *p.Address,
		ShippingMethod:  *p.ShippingMethod,
		CardLast4:       p.CardLast4,
		Status:          OrderStatusReceived,
		PlacedAt:        placedAt,
	}, nil
}

func (p Progress) clone() Progress {
	if p.Address != nil {
		a := *p.Address
		p.Address = &a
	}
	if p.ShippingMethod != nil {
		m := *p.ShippingMethod
		p.ShippingMethod = &m
	}
	return p
}

func (p *Progress) clearPayment() {
	p.PaymentReady = false
	p.CardLast4 = ""
}

func lastFourDigits(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}

// newOrderNumber formats numbers like ZZ-98231-A
func newOrderNumber() string {
	return fmt.Sprintf("ZZ-%05d-%c", rand.IntN(100000), 'A'+rune(rand.IntN(26)))
}
