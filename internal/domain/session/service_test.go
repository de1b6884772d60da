package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
	"github.com/zyra-atelier/storefront/internal/pkg/logger"
)

func newTestService(t *testing.T, delay time.Duration) *Service {
	t.Helper()
	store, err := catalog.Default()
	require.NoError(t, err)
	return NewService(NewMemoryStore(time.Hour), store, logger.Discard(), delay)
}

func TestServiceStudioFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	s, err = svc.OpenStudio(ctx, s.ID, "h2")
	require.NoError(t, err)
	assert.Equal(t, int64(23500), s.Studio.Price)

	s, err = svc.ApplyStudioOption(ctx, s.ID, studio.KindFabric, "Merino Blend")
	require.NoError(t, err)
	assert.Equal(t, int64(28000), s.Studio.Price)

	s, item, err := svc.AddStudioDesignToCart(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(28000), item.UnitPrice())
	assert.Equal(t, PageCart, s.Page)

	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(28000), got.Cart.Subtotal())
}

func TestServiceRejectedOptionKeepsStoredState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	s, err := svc.Start(ctx)
	require.NoError(t, err)
	s, err = svc.OpenStudio(ctx, s.ID, "h1")
	require.NoError(t, err)

	_, err = svc.ApplyStudioOption(ctx, s.ID, studio.KindPlacement, "hood")
	var invalid *studio.InvalidOptionError
	require.True(t, errors.As(err, &invalid))

	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "chest", got.Studio.Placement)
}

func TestServiceUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	_, _, err = svc.AddToCart(ctx, s.ID, "zz")
	assert.True(t, errors.Is(err, catalog.ErrProductNotFound))

	_, err = svc.Navigate(ctx, s.ID, PagePDP, "zz")
	assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
}

func TestServiceUnknownSession(t *testing.T) {
	_, err := newTestService(t, 0).Navigate(context.Background(), "missing", PageShop, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServiceSaveDesignWaitsAndCompletes(t *testing.T) {
	svc := newTestService(t, 20*time.Millisecond)

	s, err := svc.Start(context.Background())
	require.NoError(t, err)
	s, err = svc.OpenStudio(context.Background(), s.ID, "t1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := time.Now()
	s, saved, err := svc.SaveDesign(ctx, s.ID)
	require.NoError(t, err, "cancellation does not abort the save")
	assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
	assert.Equal(t, "t1", saved.Product.ID)
	assert.Len(t, s.SavedDesigns, 1)
}

func TestServiceSaveDesignKeepsDesignAsClicked(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 200*time.Millisecond)

	s, err := svc.Start(ctx)
	require.NoError(t, err)
	s, err = svc.OpenStudio(ctx, s.ID, "h1")
	require.NoError(t, err)

	type result struct {
		saved SavedDesign
		err   error
	}
	done := make(chan result, 1)
	go func() {
		_, saved, err := svc.SaveDesign(ctx, s.ID)
		done <- result{saved, err}
	}()

	time.Sleep(50 * time.Millisecond)
	_, err = svc.ApplyStudioOption(ctx, s.ID, studio.KindText, "edited")
	require.NoError(t, err)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "ZYRA", res.saved.Design.Text)

	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.SavedDesigns, 1)
	assert.Equal(t, "ZYRA", got.SavedDesigns[0].Design.Text)
	assert.Equal(t, "EDITED", got.Studio.Text, "the live design keeps the edit")
}

func TestServiceSaveDesignWithoutDesignFailsFast(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Second)

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	started := time.Now()
	_, _, err = svc.SaveDesign(ctx, s.ID)
	assert.True(t, errors.Is(err, ErrNoDesign))
	assert.Less(t, time.Since(started), 500*time.Millisecond)
}

func TestServiceCheckout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitAddress(ctx, s.ID, shippingAddress)
	require.True(t, errors.Is(err, checkout.ErrEmptyCart))

	s, _, err = svc.AddToCart(ctx, s.ID, "t1")
	require.NoError(t, err)
	s, err = svc.SubmitAddress(ctx, s.ID, shippingAddress)
	require.NoError(t, err)
	s, err = svc.SelectShipping(ctx, s.ID, "atelier-express")
	require.NoError(t, err)
	s, err = svc.SubmitPayment(ctx, s.ID, checkout.Payment{CardNumber: "5555 4444 3333 1111", Expiry: "02/29", CVV: "321"})
	require.NoError(t, err)

	s, order, err := svc.PlaceOrder(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9500), order.Total)
	assert.Equal(t, "1111", order.CardLast4)
	assert.Equal(t, PageSuccess, s.Page)
	assert.True(t, s.Cart.IsEmpty())

	_, _, err = svc.PlaceOrder(ctx, s.ID)
	assert.True(t, errors.Is(err, checkout.ErrEmptyCart))
}
