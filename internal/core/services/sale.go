// internal/core/services/sale.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// SaleService drives the register sale workflow: cart mutations in the
// cart store, pricing via the cart value object, and an all-or-nothing
// checkout against stock.
type SaleService struct {
	carts     ports.CartStore
	catalog   ports.CatalogRepository
	stock     ports.StockRepository
	movements ports.MovementRepository
	saleModes ports.SaleModeRepository
	db        ports.Database
	logger    *slog.Logger
}

var _ ports.SaleService = (*SaleService)(nil)

// NewSaleService creates a new sale service.
func NewSaleService(
	carts ports.CartStore,
	catalog ports.CatalogRepository,
	stock ports.StockRepository,
	movements ports.MovementRepository,
	saleModes ports.SaleModeRepository,
	db ports.Database,
	logger *slog.Logger,
) *SaleService {
	return &SaleService{
		carts:     carts,
		catalog:   catalog,
		stock:     stock,
		movements: movements,
		saleModes: saleModes,
		db:        db,
		logger:    logger.With(slog.String("service", "sale")),
	}
}

func (s *SaleService) saleModeActive(ctx context.Context) (bool, error) {
	mode, err := s.saleModes.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load sale mode: %w", err)
	}
	return mode.IsActive(time.Now()), nil
}

func (s *SaleService) view(ctx context.Context, cart *domain.Cart) (*ports.CartView, error) {
	active, err := s.saleModeActive(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.CartView{
		Cart:           *cart,
		Totals:         cart.Totals(active),
		SaleModeActive: active,
	}, nil
}

// GetCart returns the register's cart with totals recomputed.
func (s *SaleService) GetCart(ctx context.Context, registerID string) (*ports.CartView, error) {
	cart, err := s.carts.Load(ctx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.view(ctx, cart)
}

// AddToCart validates the product, size and availability, then merges the
// line into the register's cart.
func (s *SaleService) AddToCart(ctx context.Context, params ports.AddToCartParams) (*ports.CartView, error) {
	if params.Quantity <= 0 {
		return nil, domain.ErrNonPositiveQuantity
	}

	product, err := s.catalog.FindProductByID(ctx, params.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrMissingProductOrSize
	}
	if product.Archived {
		return nil, domain.ErrProductArchived
	}

	size, err := s.catalog.FindSizeByID(ctx, params.SizeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load size: %w", err)
	}
	if size == nil {
		return nil, domain.ErrMissingProductOrSize
	}
	inSet := false
	for _, id := range product.SizeIDs {
		if id == params.SizeID {
			inSet = true
			break
		}
	}
	if !inSet {
		return nil, domain.ErrSizeNotInProductSet
	}

	if params.DiscountPercent != 0 {
		active, err := s.saleModeActive(ctx)
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, domain.ErrDiscountsDisabled
		}
	}

	stock, err := s.stock.Find(ctx, params.ProductID, params.SizeID, params.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	available := 0
	if stock != nil {
		available = stock.Quantity
	}

	cart, err := s.carts.Load(ctx, params.RegisterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	inCart := 0
	for _, l := range cart.Lines {
		if l.ProductID == params.ProductID && l.SizeID == params.SizeID {
			inCart = l.Quantity
		}
	}
	if available < inCart+params.Quantity {
		return nil, &domain.ErrInsufficientStock{
			ProductID: params.ProductID,
			SizeID:    params.SizeID,
			Requested: inCart + params.Quantity,
			Available: available,
		}
	}

	line := domain.CartLine{
		ProductID:       params.ProductID,
		SizeID:          params.SizeID,
		Reference:       product.Reference,
		Name:            product.Name,
		SizeName:        size.Name,
		Quantity:        params.Quantity,
		UnitPrice:       product.Price,
		DiscountPercent: params.DiscountPercent,
	}
	if err := cart.AddLine(line); err != nil {
		return nil, err
	}
	cart.LocationID = params.LocationID

	if err := s.carts.Store(ctx, params.RegisterID, cart); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}
	return s.view(ctx, cart)
}

// RemoveFromCart drops a line from the register's cart.
func (s *SaleService) RemoveFromCart(ctx context.Context, registerID string, productID, sizeID uuid.UUID) (*ports.CartView, error) {
	return s.mutate(ctx, registerID, func(cart *domain.Cart) error {
		return cart.RemoveLine(productID, sizeID)
	})
}

// SetLineDiscount applies a per-article discount, rejected when the sale
// mode is inactive or the percent is outside the enumerated set.
func (s *SaleService) SetLineDiscount(ctx context.Context, registerID string, productID, sizeID uuid.UUID, percent int) (*ports.CartView, error) {
	if percent != 0 {
		active, err := s.saleModeActive(ctx)
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, domain.ErrDiscountsDisabled
		}
	}
	return s.mutate(ctx, registerID, func(cart *domain.Cart) error {
		return cart.SetLineDiscount(productID, sizeID, percent)
	})
}

// SetBasketDiscount applies the whole-basket discount (0 or 10).
func (s *SaleService) SetBasketDiscount(ctx context.Context, registerID string, percent int) (*ports.CartView, error) {
	return s.mutate(ctx, registerID, func(cart *domain.Cart) error {
		return cart.SetBasketDiscount(percent)
	})
}

// SetVoucher stores the voucher, clamped against the current total.
func (s *SaleService) SetVoucher(ctx context.Context, registerID string, amount int64) (*ports.CartView, error) {
	active, err := s.saleModeActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, registerID, func(cart *domain.Cart) error {
		return cart.SetVoucher(amount, active)
	})
}

// GetSaleMode returns the discount gate singleton.
func (s *SaleService) GetSaleMode(ctx context.Context) (*domain.SaleMode, error) {
	mode, err := s.saleModes.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale mode: %w", err)
	}
	return mode, nil
}

// SetSaleMode rewrites the discount gate. Per-article discounts are
// accepted only while the gate is on and inside its optional window.
func (s *SaleService) SetSaleMode(ctx context.Context, update ports.SaleModeUpdate) (*domain.SaleMode, error) {
	if update.StartsAt != nil && update.EndsAt != nil && !update.EndsAt.After(*update.StartsAt) {
		return nil, domain.ErrInvalidSaleWindow
	}

	mode := &domain.SaleMode{
		DiscountEnabled: update.DiscountEnabled,
		StartsAt:        update.StartsAt,
		EndsAt:          update.EndsAt,
	}
	if err := s.saleModes.Update(ctx, mode); err != nil {
		return nil, fmt.Errorf("failed to update sale mode: %w", err)
	}

	s.logger.InfoContext(ctx, "sale mode updated",
		slog.Bool("discount_enabled", mode.DiscountEnabled),
		slog.Bool("active", mode.IsActive(time.Now())))
	return mode, nil
}

// ClearCart abandons the sale in progress.
func (s *SaleService) ClearCart(ctx context.Context, registerID string) error {
	if err := s.carts.Clear(ctx, registerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *SaleService) mutate(ctx context.Context, registerID string, fn func(*domain.Cart) error) (*ports.CartView, error) {
	cart, err := s.carts.Load(ctx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := s.carts.Store(ctx, registerID, cart); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}
	return s.view(ctx, cart)
}

// Checkout materializes the sale. All lines are verified against locked
// stock rows before any decrement happens; any shortfall aborts the whole
// transaction. The cart is cleared only after a successful commit.
func (s *SaleService) Checkout(ctx context.Context, registerID string, userID uuid.UUID) (*ports.CheckoutResult, error) {
	cart, err := s.carts.Load(ctx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	active, err := s.saleModeActive(ctx)
	if err != nil {
		return nil, err
	}
	totals := cart.Totals(active)

	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		// First pass: verify every line against a locked stock row.
		stocks := make([]*domain.Stock, len(cart.Lines))
		for i, line := range cart.Lines {
			stock, err := s.stock.FindForUpdateTx(ctx, tx, line.ProductID, line.SizeID, cart.LocationID)
			if err != nil {
				return fmt.Errorf("failed to lock stock row: %w", err)
			}
			if stock == nil {
				return &domain.ErrInsufficientStock{
					ProductID: line.ProductID,
					SizeID:    line.SizeID,
					Requested: line.Quantity,
					Available: 0,
				}
			}
			if stock.Quantity < line.Quantity {
				return &domain.ErrInsufficientStock{
					ProductID: line.ProductID,
					SizeID:    line.SizeID,
					Requested: line.Quantity,
					Available: stock.Quantity,
				}
			}
			stocks[i] = stock
		}

		// Second pass: apply every decrement and ledger entry.
		for i, line := range cart.Lines {
			if err := s.stock.DecrementTx(ctx, tx, stocks[i].ID, line.Quantity); err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}

			pct := domain.EffectiveLinePercent(line.DiscountPercent, active)
			original := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			final := line.LineFinal(active)
			if cart.BasketDiscountPercent == 10 {
				final = final.Mul(decimal.NewFromInt(90)).Div(decimal.NewFromInt(100))
			}

			movement := &domain.StockMovement{
				Type:          domain.MovementSale,
				ProductID:     line.ProductID,
				SizeID:        line.SizeID,
				LocationID:    cart.LocationID,
				UserID:        userID,
				Quantity:      line.Quantity,
				OriginalPrice: &original,
				FinalPrice:    &final,
				VoucherAmount: &totals.Voucher,
				Comment: domain.SaleComment(line.UnitPrice, pct, cart.BasketDiscountPercent,
					totals.TotalAfterDiscount, totals.Voucher, totals.CashAmount),
			}
			if pct > 0 || cart.BasketDiscountPercent == 10 {
				movement.IsDiscounted = true
				movement.DiscountPercent = &pct
				movement.DiscountLabel = domain.DiscountLabel(pct, cart.BasketDiscountPercent)
			}
			movement.PrepareForStorage()
			if err := movement.Validate(); err != nil {
				return fmt.Errorf("invalid sale movement: %w", err)
			}
			if err := s.movements.SaveTx(ctx, tx, movement); err != nil {
				return fmt.Errorf("failed to record sale movement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, registerID); err != nil {
		// sale already committed, do not fail the request
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("register_id", registerID), "err", err)
	}

	s.logger.InfoContext(ctx, "sale committed",
		slog.String("register_id", registerID),
		slog.Int("lines", len(cart.Lines)),
		slog.String("total", totals.TotalAfterDiscount.String()),
		slog.Int64("voucher", totals.Voucher))

	return &ports.CheckoutResult{
		Totals:        totals,
		MovementCount: len(cart.Lines),
	}, nil
}
