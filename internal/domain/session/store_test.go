package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClockedStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: t0}
	store := NewMemoryStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)

	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)

	_, err = store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	updated, err := store.Update(ctx, "s-1", func(s State) (State, error) {
		return s.Navigate(PageShop, nil), nil
	})
	require.NoError(t, err)
	assert.Equal(t, PageShop, updated.Page)

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, PageShop, got.Page)
}

func TestMemoryStoreUpdateErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	boom := errors.New("boom")
	_, err := store.Update(ctx, "s-1", func(s State) (State, error) {
		return s.Navigate(PageCart, nil), boom
	})
	assert.True(t, errors.Is(err, boom))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, PageHome, got.Page)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	got.SavedDesigns = append(got.SavedDesigns, SavedDesign{ID: "x"})
	got.SelectedProduct = &catalog.Product{ID: "t1"}

	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, again.SavedDesigns)
	assert.Nil(t, again.SelectedProduct)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))
	require.NoError(t, store.Create(ctx, New("s-2", t0)))

	clock.Advance(59 * time.Minute)
	_, err := store.Update(ctx, "s-2", func(s State) (State, error) { return s, nil })
	require.NoError(t, err, "write renews the TTL")

	clock.Advance(2 * time.Minute)
	_, err = store.Get(ctx, "s-1")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.Get(ctx, "s-2")
	assert.NoError(t, err)

	clock.Advance(time.Hour)
	assert.Equal(t, 1, store.PurgeExpired())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err := store.Get(ctx, "s-1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreSerializesUpdates(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Hour)
	require.NoError(t, store.Create(ctx, New("s-1", t0)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "s-1", func(s State) (State, error) {
				s.SavedDesigns = append(s.SavedDesigns, SavedDesign{ID: "d"})
				return s, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, got.SavedDesigns, 50)
}
