package checkout

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-atelier/storefront/internal/domain/cart"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
)

var address = Address{
	FirstName:    "Alexander",
	LastName:     "Zyra",
	AddressLine1: "12 Rue du Faubourg",
	City:         "Paris",
	ZipCode:      "75008",
}

func filledCart() cart.Cart {
	hoodie := catalog.Product{ID: "h1", Price: 18500}
	tee := catalog.Product{ID: "t1", Price: 9500}

	c, _ := cart.Cart{}.Add(hoodie, &studio.State{ProductID: "h1", Text: "ZYRA", Price: 21000})
	c, _ = c.Add(tee, nil)
	return c
}

func completed(t *testing.T, shipping string) Progress {
	t.Helper()
	p, err := Begin().SubmitAddress(address)
	require.NoError(t, err)
	p, err = p.SelectShipping(shipping)
	require.NoError(t, err)
	p, err = p.SubmitPayment(Payment{CardNumber: "4242 4242 4242 4242", Expiry: "12/28", CVV: "123"})
	require.NoError(t, err)
	return p
}

func TestStepsAdvanceInOrder(t *testing.T) {
	p := Begin()
	assert.Equal(t, StepAddress, p.Step)

	p, err := p.SubmitAddress(address)
	require.NoError(t, err)
	assert.Equal(t, StepShipping, p.Step)

	p, err = p.SelectShipping("atelier-express")
	require.NoError(t, err)
	assert.Equal(t, StepPayment, p.Step)
	assert.False(t, p.PaymentReady)

	p, err = p.SubmitPayment(Payment{CardNumber: "4242 4242 4242 4242", Expiry: "12/28", CVV: "123"})
	require.NoError(t, err)
	assert.True(t, p.PaymentReady)
	assert.Equal(t, "4242", p.CardLast4)
}

func TestStepsOutOfOrder(t *testing.T) {
	_, err := Begin().SelectShipping("atelier-express")
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))

	_, err = Begin().SubmitPayment(Payment{CardNumber: "1", Expiry: "1", CVV: "1"})
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))

	_, err = Begin().PlaceOrder(filledCart(), time.Now())
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))
}

func TestRequiredFields(t *testing.T) {
	blank := address
	blank.City = "   "

	p := Begin()
	next, err := p.SubmitAddress(blank)
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "city", missing.Field)
	assert.Equal(t, p, next, "prior progress is kept")

	p, err = p.SubmitAddress(address)
	require.NoError(t, err)
	p, err = p.SelectShipping("white-glove")
	require.NoError(t, err)

	_, err = p.SubmitPayment(Payment{CardNumber: "4242", Expiry: "12/28"})
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "cvv", missing.Field)
}

func TestUnknownShippingMethod(t *testing.T) {
	p, err := Begin().SubmitAddress(address)
	require.NoError(t, err)

	_, err = p.SelectShipping("drone")
	assert.True(t, errors.Is(err, ErrUnknownShippingMethod))
}

func TestTransitionsDoNotShareState(t *testing.T) {
	p, err := Begin().SubmitAddress(address)
	require.NoError(t, err)

	next, err := p.SelectShipping("white-glove")
	require.NoError(t, err)
	next.Address.City = "Lyon"

	assert.Equal(t, "Paris", p.Address.City)
	assert.Nil(t, p.ShippingMethod)
}

func TestPlaceOrder(t *testing.T) {
	placedAt := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)
	c := filledCart()

	order, err := completed(t, "white-glove").PlaceOrder(c, placedAt)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ZZ-\d{5}-[A-Z]$`), order.Number)
	assert.Equal(t, int64(30500), order.Subtotal)
	assert.Equal(t, int64(4500), order.ShippingAmount)
	assert.Equal(t, int64(35000), order.Total)
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Equal(t, placedAt, order.PlacedAt)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "4242", order.CardLast4)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	_, err := completed(t, "atelier-express").PlaceOrder(cart.Cart{}, time.Now())
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestPriceWithoutShippingMethod(t *testing.T) {
	pricing := Begin().Price(filledCart())
	assert.Equal(t, Pricing{Subtotal: 30500, Total: 30500}, pricing)
}

func TestResubmittingEarlierStepRequiresPaymentAgain(t *testing.T) {
	p, err := completed(t, "white-glove").SubmitAddress(address)
	require.NoError(t, err)
	assert.Equal(t, StepShipping, p.Step)
	assert.False(t, p.PaymentReady)
	assert.Empty(t, p.CardLast4)

	_, err = p.PlaceOrder(filledCart(), time.Now())
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))

	p, err = completed(t, "white-glove").SelectShipping("atelier-express")
	require.NoError(t, err)
	assert.Equal(t, StepPayment, p.Step)
	assert.False(t, p.PaymentReady)

	_, err = p.PlaceOrder(filledCart(), time.Now())
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))

	p, err = p.SubmitPayment(Payment{CardNumber: "5555 4444 3333 1111", Expiry: "01/29", CVV: "321"})
	require.NoError(t, err)
	order, err := p.PlaceOrder(filledCart(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "1111", order.CardLast4)
	assert.Equal(t, int64(0), order.ShippingAmount)
}
