package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/maraval/boutique-be/internal/adapters/redis_adapter"
	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/test/helpers"
)

func newTestCartStore(t *testing.T) (ports.CartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redis_a.NewCartStore(client, 12*time.Hour, helpers.TestLogger()), mr
}

func sampleCart() *domain.Cart {
	return &domain.Cart{
		Lines: []domain.CartLine{
			{
				ProductID: uuid.New(),
				SizeID:    uuid.New(),
				Reference: "MAISON_ETE2026_ROBELONGUE_BLEU",
				Name:      "Robe longue",
				SizeName:  "38",
				Quantity:  2,
				UnitPrice: decimal.NewFromFloat(49.00),
			},
		},
		BasketDiscountPercent: 10,
		Voucher:               20,
		LocationID:            uuid.New(),
	}
}

func TestCartStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCartStore(t)

	cart := sampleCart()
	require.NoError(t, store.Store(ctx, "register-1", cart))

	loaded, err := store.Load(ctx, "register-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, cart.Lines[0].Reference, loaded.Lines[0].Reference)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	assert.True(t, cart.Lines[0].UnitPrice.Equal(loaded.Lines[0].UnitPrice))
	assert.Equal(t, 10, loaded.BasketDiscountPercent)
	assert.Equal(t, int64(20), loaded.Voucher)
	assert.Equal(t, cart.LocationID, loaded.LocationID)
}

func TestCartStore_MissingCartLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCartStore(t)

	cart, err := store.Load(ctx, "register-never-seen")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Voucher)
}

func TestCartStore_RegistersAreIsolated(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCartStore(t)

	require.NoError(t, store.Store(ctx, "register-1", sampleCart()))

	other, err := store.Load(ctx, "register-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCartStore(t)

	require.NoError(t, store.Store(ctx, "register-1", sampleCart()))
	require.NoError(t, store.Clear(ctx, "register-1"))

	cart, err := store.Load(ctx, "register-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestCartStore(t)

	require.NoError(t, store.Store(ctx, "register-1", sampleCart()))

	mr.FastForward(13 * time.Hour)

	cart, err := store.Load(ctx, "register-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
