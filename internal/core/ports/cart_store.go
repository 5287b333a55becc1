// internal/core/ports/cart_store.go
package ports

import (
	"context"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// CartStore holds the in-progress cart for each register. Implemented by
// the Redis adapter; a missing cart loads as an empty one.
type CartStore interface {
	Load(ctx context.Context, registerID string) (*domain.Cart, error)
	Store(ctx context.Context, registerID string, cart *domain.Cart) error
	Clear(ctx context.Context, registerID string) error
}
