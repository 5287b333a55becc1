// internal/adapters/redis_adapter/cart_store.go
package redis_a

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

const cartKeyPrefix = "cart:"

// CartStore keeps one in-progress cart per register, serialized as JSON.
// Every write refreshes the TTL so an active register never loses its
// basket mid-sale.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CartStore = (*CartStore)(nil)

// NewCartStore creates a new cart store
func NewCartStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) ports.CartStore {
	return &CartStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cart_store")),
	}
}

func cartKey(registerID string) string {
	return cartKeyPrefix + registerID
}

// Load retrieves the cart of a register. A register with no stored cart
// gets a fresh empty one.
func (s *CartStore) Load(ctx context.Context, registerID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(registerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			s.logger.DebugContext(ctx, "no stored cart, starting empty",
				slog.String("register", registerID))
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	cart := &domain.Cart{}
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return cart, nil
}

// Store persists the cart of a register and refreshes its TTL.
func (s *CartStore) Store(ctx context.Context, registerID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(registerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "cart stored",
		slog.String("register", registerID),
		slog.Int("lines", len(cart.Lines)))
	return nil
}

// Clear drops the cart of a register.
func (s *CartStore) Clear(ctx context.Context, registerID string) error {
	if err := s.client.Del(ctx, cartKey(registerID)).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}

	s.logger.DebugContext(ctx, "cart cleared", slog.String("register", registerID))
	return nil
}
