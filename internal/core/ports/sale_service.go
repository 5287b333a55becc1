// internal/core/ports/sale_service.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// AddToCartParams identifies what a register is adding to its cart.
type AddToCartParams struct {
	RegisterID      string
	LocationID      uuid.UUID
	ProductID       uuid.UUID
	SizeID          uuid.UUID
	Quantity        int
	DiscountPercent int
}

// CartView is a cart plus its authoritative totals, recomputed on read.
type CartView struct {
	Cart           domain.Cart   `json:"cart"`
	Totals         domain.Totals `json:"totals"`
	SaleModeActive bool          `json:"sale_mode_active"`
}

// CheckoutResult summarizes a committed sale.
type CheckoutResult struct {
	Totals        domain.Totals `json:"totals"`
	MovementCount int           `json:"movement_count"`
}

// SaleModeUpdate carries new settings for the discount gate singleton.
type SaleModeUpdate struct {
	DiscountEnabled bool       `json:"discount_enabled"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
}

// SaleService is the application port for the register sale workflow.
type SaleService interface {
	GetCart(ctx context.Context, registerID string) (*CartView, error)
	AddToCart(ctx context.Context, params AddToCartParams) (*CartView, error)
	RemoveFromCart(ctx context.Context, registerID string, productID, sizeID uuid.UUID) (*CartView, error)
	SetLineDiscount(ctx context.Context, registerID string, productID, sizeID uuid.UUID, percent int) (*CartView, error)
	SetBasketDiscount(ctx context.Context, registerID string, percent int) (*CartView, error)
	SetVoucher(ctx context.Context, registerID string, amount int64) (*CartView, error)
	ClearCart(ctx context.Context, registerID string) error
	Checkout(ctx context.Context, registerID string, userID uuid.UUID) (*CheckoutResult, error)

	GetSaleMode(ctx context.Context) (*domain.SaleMode, error)
	SetSaleMode(ctx context.Context, update SaleModeUpdate) (*domain.SaleMode, error)
}
