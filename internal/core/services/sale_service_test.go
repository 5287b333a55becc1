// internal/core/services/sale_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

type saleMocks struct {
	carts     *mocks.MockCartStore
	catalog   *mocks.MockCatalogRepository
	stock     *mocks.MockStockRepository
	movements *mocks.MockMovementRepository
	saleModes *mocks.MockSaleModeRepository
	db        *mocks.MockDatabase
}

func newSaleService(t *testing.T) (*services.SaleService, *saleMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &saleMocks{
		carts:     mocks.NewMockCartStore(ctrl),
		catalog:   mocks.NewMockCatalogRepository(ctrl),
		stock:     mocks.NewMockStockRepository(ctrl),
		movements: mocks.NewMockMovementRepository(ctrl),
		saleModes: mocks.NewMockSaleModeRepository(ctrl),
		db:        mocks.NewMockDatabase(ctrl),
	}
	svc := services.NewSaleService(m.carts, m.catalog, m.stock, m.movements, m.saleModes, m.db, helpers.TestLogger())
	return svc, m
}

func TestSaleService_AddToCart(t *testing.T) {
	product := helpers.CreateTestProduct()
	sizeID := product.SizeIDs[0]
	locationID := uuid.New()
	size := &domain.Size{ID: sizeID, Name: "38"}

	tests := []struct {
		name          string
		params        ports.AddToCartParams
		setupMocks    func(*saleMocks)
		expectedError error
		errorContains string
	}{
		{
			name: "adds_line_when_stock_available",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				LocationID: locationID,
				ProductID:  product.ID,
				SizeID:     sizeID,
				Quantity:   2,
			},
			setupMocks: func(m *saleMocks) {
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
				m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)
				m.stock.EXPECT().Find(gomock.Any(), product.ID, sizeID, locationID).
					Return(helpers.CreateTestStock(product.ID, sizeID, locationID, 5), nil)
				m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(&domain.Cart{}, nil)
				m.carts.EXPECT().Store(gomock.Any(), "caisse-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, cart *domain.Cart) error {
						require.Len(t, cart.Lines, 1)
						assert.Equal(t, 2, cart.Lines[0].Quantity)
						assert.Equal(t, locationID, cart.LocationID)
						return nil
					})
				m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)
			},
		},
		{
			name: "rejects_non_positive_quantity",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				ProductID:  product.ID,
				SizeID:     sizeID,
				Quantity:   0,
			},
			setupMocks:    func(m *saleMocks) {},
			expectedError: domain.ErrNonPositiveQuantity,
		},
		{
			name: "rejects_archived_product",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				LocationID: locationID,
				ProductID:  product.ID,
				SizeID:     sizeID,
				Quantity:   1,
			},
			setupMocks: func(m *saleMocks) {
				archived := helpers.CreateTestProduct(func(p *domain.Product) {
					p.ID = product.ID
					p.Archived = true
				})
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(archived, nil)
			},
			expectedError: domain.ErrProductArchived,
		},
		{
			name: "rejects_size_outside_product_set",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				LocationID: locationID,
				ProductID:  product.ID,
				SizeID:     uuid.New(),
				Quantity:   1,
			},
			setupMocks: func(m *saleMocks) {
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
				m.catalog.EXPECT().FindSizeByID(gomock.Any(), gomock.Any()).
					Return(&domain.Size{ID: uuid.New(), Name: "44"}, nil)
			},
			expectedError: domain.ErrSizeNotInProductSet,
		},
		{
			name: "rejects_discount_when_sale_mode_inactive",
			params: ports.AddToCartParams{
				RegisterID:      "caisse-1",
				LocationID:      locationID,
				ProductID:       product.ID,
				SizeID:          sizeID,
				Quantity:        1,
				DiscountPercent: 20,
			},
			setupMocks: func(m *saleMocks) {
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
				m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)
				m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{DiscountEnabled: false}, nil)
			},
			expectedError: domain.ErrDiscountsDisabled,
		},
		{
			name: "rejects_when_cart_quantity_exceeds_stock",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				LocationID: locationID,
				ProductID:  product.ID,
				SizeID:     sizeID,
				Quantity:   2,
			},
			setupMocks: func(m *saleMocks) {
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
				m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)
				m.stock.EXPECT().Find(gomock.Any(), product.ID, sizeID, locationID).
					Return(helpers.CreateTestStock(product.ID, sizeID, locationID, 3), nil)
				// two units already in the cart, so 2 more exceed the 3 on hand
				m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(&domain.Cart{
					Lines: []domain.CartLine{{
						ProductID: product.ID,
						SizeID:    sizeID,
						Quantity:  2,
						UnitPrice: product.Price,
					}},
				}, nil)
			},
			errorContains: "insufficient stock",
		},
		{
			name: "rejects_unknown_product",
			params: ports.AddToCartParams{
				RegisterID: "caisse-1",
				LocationID: locationID,
				ProductID:  product.ID,
				SizeID:     sizeID,
				Quantity:   1,
			},
			setupMocks: func(m *saleMocks) {
				m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(nil, nil)
			},
			expectedError: domain.ErrMissingProductOrSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSaleService(t)
			tt.setupMocks(m)

			view, err := svc.AddToCart(context.Background(), tt.params)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Len(t, view.Cart.Lines, 1)
		})
	}
}

func TestSaleService_SetLineDiscount(t *testing.T) {
	product := helpers.CreateTestProduct()
	sizeID := product.SizeIDs[0]

	t.Run("applies_discount_when_sale_mode_active", func(t *testing.T) {
		svc, m := newSaleService(t)
		active := &domain.SaleMode{DiscountEnabled: true}
		cart := helpers.CreateTestCart(product, 1)

		m.saleModes.EXPECT().Get(gomock.Any()).Return(active, nil).Times(2)
		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.carts.EXPECT().Store(gomock.Any(), "caisse-1", gomock.Any()).Return(nil)

		view, err := svc.SetLineDiscount(context.Background(), "caisse-1", product.ID, sizeID, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, view.Cart.Lines[0].DiscountPercent)
	})

	t.Run("rejects_discount_when_sale_mode_inactive", func(t *testing.T) {
		svc, m := newSaleService(t)
		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)

		_, err := svc.SetLineDiscount(context.Background(), "caisse-1", product.ID, sizeID, 20)
		require.ErrorIs(t, err, domain.ErrDiscountsDisabled)
	})

	t.Run("clearing_discount_needs_no_active_sale_mode", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 1, func(c *domain.Cart) {
			c.Lines[0].DiscountPercent = 20
		})

		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.carts.EXPECT().Store(gomock.Any(), "caisse-1", gomock.Any()).Return(nil)
		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)

		view, err := svc.SetLineDiscount(context.Background(), "caisse-1", product.ID, sizeID, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, view.Cart.Lines[0].DiscountPercent)
	})
}

func TestSaleService_SaleMode(t *testing.T) {
	product := helpers.CreateTestProduct()
	sizeID := product.SizeIDs[0]

	t.Run("enabling_the_gate_makes_line_discounts_reachable", func(t *testing.T) {
		svc, m := newSaleService(t)

		stored := &domain.SaleMode{}
		m.saleModes.EXPECT().Get(gomock.Any()).
			DoAndReturn(func(context.Context) (*domain.SaleMode, error) {
				return stored, nil
			}).AnyTimes()
		m.saleModes.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mode *domain.SaleMode) error {
				stored = mode
				return nil
			})

		_, err := svc.SetLineDiscount(context.Background(), "caisse-1", product.ID, sizeID, 20)
		require.ErrorIs(t, err, domain.ErrDiscountsDisabled)

		mode, err := svc.SetSaleMode(context.Background(), ports.SaleModeUpdate{DiscountEnabled: true})
		require.NoError(t, err)
		assert.True(t, mode.DiscountEnabled)

		cart := helpers.CreateTestCart(product, 1)
		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.carts.EXPECT().Store(gomock.Any(), "caisse-1", gomock.Any()).Return(nil)

		view, err := svc.SetLineDiscount(context.Background(), "caisse-1", product.ID, sizeID, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, view.Cart.Lines[0].DiscountPercent)
		assert.True(t, view.SaleModeActive)
	})

	t.Run("rejects_window_ending_before_it_starts", func(t *testing.T) {
		svc, _ := newSaleService(t)
		start := time.Now()
		end := start.Add(-time.Hour)

		_, err := svc.SetSaleMode(context.Background(), ports.SaleModeUpdate{
			DiscountEnabled: true,
			StartsAt:        &start,
			EndsAt:          &end,
		})
		require.ErrorIs(t, err, domain.ErrInvalidSaleWindow)
	})

	t.Run("get_returns_the_singleton", func(t *testing.T) {
		svc, m := newSaleService(t)
		m.saleModes.EXPECT().Get(gomock.Any()).
			Return(&domain.SaleMode{DiscountEnabled: true}, nil)

		mode, err := svc.GetSaleMode(context.Background())
		require.NoError(t, err)
		assert.True(t, mode.DiscountEnabled)
	})
}

func TestSaleService_Checkout(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) {
		p.Price = decimal.NewFromFloat(49.00)
	})
	sizeID := product.SizeIDs[0]
	userID := uuid.New()

	t.Run("rejects_empty_cart", func(t *testing.T) {
		svc, m := newSaleService(t)
		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(&domain.Cart{}, nil)

		_, err := svc.Checkout(context.Background(), "caisse-1", userID)
		require.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("commits_sale_and_clears_cart", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 2, func(c *domain.Cart) {
			c.BasketDiscountPercent = 10
			c.Voucher = 100
		})
		locationID := cart.LocationID
		stock := helpers.CreateTestStock(product.ID, sizeID, locationID, 5)

		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)
		m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		m.stock.EXPECT().FindForUpdateTx(gomock.Any(), gomock.Any(), product.ID, sizeID, locationID).
			Return(stock, nil)
		m.stock.EXPECT().DecrementTx(gomock.Any(), gomock.Any(), stock.ID, 2).Return(nil)
		m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, mv *domain.StockMovement) error {
				assert.Equal(t, domain.MovementSale, mv.Type)
				assert.Equal(t, 2, mv.Quantity)
				assert.Equal(t, userID, mv.UserID)
				// 2 x 49.00 with the 10% basket discount, rounded up to 89
				require.NotNil(t, mv.OriginalPrice)
				require.NotNil(t, mv.FinalPrice)
				assert.True(t, mv.OriginalPrice.Equal(decimal.NewFromFloat(98.00)))
				assert.True(t, mv.FinalPrice.Equal(decimal.NewFromFloat(88.20)))
				assert.True(t, mv.IsDiscounted)
				assert.Equal(t, "Remise panier 10%", mv.DiscountLabel)
				require.NotNil(t, mv.VoucherAmount)
				assert.Equal(t, int64(89), *mv.VoucherAmount)
				assert.Contains(t, mv.Comment, "Bon d'achat utilisé: 89")
				assert.Contains(t, mv.Comment, "Montant payé réellement: 0.00")
				return nil
			})
		m.carts.EXPECT().Clear(gomock.Any(), "caisse-1").Return(nil)

		result, err := svc.Checkout(context.Background(), "caisse-1", userID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.MovementCount)
		assert.True(t, result.Totals.TotalAfterDiscount.Equal(decimal.NewFromInt(89)))
		assert.Equal(t, int64(89), result.Totals.Voucher)
		assert.True(t, result.Totals.CashAmount.IsZero())
	})

	t.Run("aborts_whole_sale_on_insufficient_stock", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 3)
		locationID := cart.LocationID

		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)
		m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		m.stock.EXPECT().FindForUpdateTx(gomock.Any(), gomock.Any(), product.ID, sizeID, locationID).
			Return(helpers.CreateTestStock(product.ID, sizeID, locationID, 1), nil)
		// no DecrementTx, no SaveTx, no Clear: the verification pass failed

		_, err := svc.Checkout(context.Background(), "caisse-1", userID)
		require.Error(t, err)
		var insufficient *domain.ErrInsufficientStock
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 3, insufficient.Requested)
		assert.Equal(t, 1, insufficient.Available)
	})

	t.Run("succeeds_even_if_cart_clear_fails_after_commit", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 1)
		locationID := cart.LocationID
		stock := helpers.CreateTestStock(product.ID, sizeID, locationID, 2)

		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)
		m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		m.stock.EXPECT().FindForUpdateTx(gomock.Any(), gomock.Any(), product.ID, sizeID, locationID).
			Return(stock, nil)
		m.stock.EXPECT().DecrementTx(gomock.Any(), gomock.Any(), stock.ID, 1).Return(nil)
		m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.carts.EXPECT().Clear(gomock.Any(), "caisse-1").Return(errors.New("redis gone"))

		result, err := svc.Checkout(context.Background(), "caisse-1", userID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.MovementCount)
	})
}

func TestSaleService_SetVoucher(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) {
		p.Price = decimal.NewFromFloat(49.00)
	})

	t.Run("clamps_voucher_to_basket_total", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 1)

		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil).Times(2)
		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)
		m.carts.EXPECT().Store(gomock.Any(), "caisse-1", gomock.Any()).Return(nil)

		view, err := svc.SetVoucher(context.Background(), "caisse-1", 500)
		require.NoError(t, err)
		assert.Equal(t, int64(49), view.Totals.Voucher)
		assert.True(t, view.Totals.CashAmount.IsZero())
	})

	t.Run("rejects_negative_voucher", func(t *testing.T) {
		svc, m := newSaleService(t)
		cart := helpers.CreateTestCart(product, 1)

		m.saleModes.EXPECT().Get(gomock.Any()).Return(&domain.SaleMode{}, nil)
		m.carts.EXPECT().Load(gomock.Any(), "caisse-1").Return(cart, nil)

		_, err := svc.SetVoucher(context.Background(), "caisse-1", -5)
		require.ErrorIs(t, err, domain.ErrNegativeVoucher)
	})
}
