package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraval/boutique-be/internal/core/domain"
)

func line(price string, qty, pct int) domain.CartLine {
	return domain.CartLine{
		ProductID:       uuid.New(),
		SizeID:          uuid.New(),
		Quantity:        qty,
		UnitPrice:       decimal.RequireFromString(price),
		DiscountPercent: pct,
	}
}

func TestCart_Totals(t *testing.T) {
	tests := []struct {
		name           string
		lines          []domain.CartLine
		basketPercent  int
		voucher        int64
		saleModeActive bool
		wantTotal      string
		wantVoucher    int64
		wantCash       string
	}{
		{
			name:           "basket_discount_rounds_up_and_clamps_voucher",
			lines:          []domain.CartLine{line("49.00", 2, 0)},
			basketPercent:  10,
			voucher:        100,
			saleModeActive: true,
			wantTotal:      "89",
			wantVoucher:    89,
			wantCash:       "0",
		},
		{
			name:           "half_price_line_already_integral",
			lines:          []domain.CartLine{line("20.00", 1, 50)},
			basketPercent:  0,
			voucher:        0,
			saleModeActive: true,
			wantTotal:      "10",
			wantVoucher:    0,
			wantCash:       "10",
		},
		{
			name:           "inactive_sale_mode_forces_line_discount_to_zero",
			lines:          []domain.CartLine{line("20.00", 1, 50)},
			basketPercent:  0,
			voucher:        0,
			saleModeActive: false,
			wantTotal:      "20",
			wantVoucher:    0,
			wantCash:       "20",
		},
		{
			name:           "voucher_partially_covers_total",
			lines:          []domain.CartLine{line("35.50", 1, 0)},
			basketPercent:  0,
			voucher:        10,
			saleModeActive: true,
			wantTotal:      "36",
			wantVoucher:    10,
			wantCash:       "26",
		},
		{
			name:           "negative_voucher_clamped_to_zero",
			lines:          []domain.CartLine{line("15.00", 1, 0)},
			basketPercent:  0,
			voucher:        -5,
			saleModeActive: true,
			wantTotal:      "15",
			wantVoucher:    0,
			wantCash:       "15",
		},
		{
			name:           "empty_cart_totals_are_zero",
			lines:          nil,
			basketPercent:  0,
			voucher:        20,
			saleModeActive: true,
			wantTotal:      "0",
			wantVoucher:    0,
			wantCash:       "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &domain.Cart{
				Lines:                 tt.lines,
				BasketDiscountPercent: tt.basketPercent,
				Voucher:               tt.voucher,
			}

			totals := cart.Totals(tt.saleModeActive)

			assert.True(t, totals.TotalAfterDiscount.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total_after_discount = %s", totals.TotalAfterDiscount)
			assert.Equal(t, tt.wantVoucher, totals.Voucher)
			assert.True(t, totals.CashAmount.Equal(decimal.RequireFromString(tt.wantCash)),
				"cash_amount = %s", totals.CashAmount)
		})
	}
}

func TestCart_Totals_MonotoneInDiscounts(t *testing.T) {
	base := []domain.CartLine{line("33.30", 2, 0), line("12.90", 1, 0)}

	prev := decimal.NewFromInt(1 << 30)
	for _, pct := range []int{0, 10, 20, 30, 40, 50} {
		cart := &domain.Cart{Lines: append([]domain.CartLine(nil), base...)}
		for i := range cart.Lines {
			cart.Lines[i].DiscountPercent = pct
		}
		total := cart.Totals(true).TotalAfterDiscount
		assert.True(t, total.LessThanOrEqual(prev),
			"total must not increase as line discount grows: pct=%d total=%s", pct, total)
		prev = total
	}

	noBasket := (&domain.Cart{Lines: base}).Totals(true).TotalAfterDiscount
	withBasket := (&domain.Cart{Lines: base, BasketDiscountPercent: 10}).Totals(true).TotalAfterDiscount
	assert.True(t, withBasket.LessThanOrEqual(noBasket))
}

func TestCart_Totals_CashNeverNegative(t *testing.T) {
	cart := &domain.Cart{
		Lines:   []domain.CartLine{line("9.99", 1, 0)},
		Voucher: 1000,
	}
	totals := cart.Totals(true)
	assert.False(t, totals.CashAmount.IsNegative())
	assert.True(t, totals.CashAmount.Equal(totals.TotalAfterDiscount.Sub(decimal.NewFromInt(totals.Voucher))))
}

func TestCart_SetLineDiscount(t *testing.T) {
	l := line("10.00", 1, 0)
	cart := &domain.Cart{Lines: []domain.CartLine{l}}

	err := cart.SetLineDiscount(l.ProductID, l.SizeID, 25)
	require.ErrorIs(t, err, domain.ErrInvalidLineDiscount)
	assert.Equal(t, 0, cart.Lines[0].DiscountPercent, "state unchanged after rejection")

	require.NoError(t, cart.SetLineDiscount(l.ProductID, l.SizeID, 40))
	assert.Equal(t, 40, cart.Lines[0].DiscountPercent)

	err = cart.SetLineDiscount(uuid.New(), uuid.New(), 10)
	require.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestCart_SetBasketDiscount(t *testing.T) {
	cart := &domain.Cart{}

	require.ErrorIs(t, cart.SetBasketDiscount(20), domain.ErrInvalidBasketDiscount)
	require.NoError(t, cart.SetBasketDiscount(10))
	assert.Equal(t, 10, cart.BasketDiscountPercent)
	require.NoError(t, cart.SetBasketDiscount(0))
}

func TestCart_SetVoucher_ReclampsOnWrite(t *testing.T) {
	cart := &domain.Cart{Lines: []domain.CartLine{line("30.00", 1, 0)}}

	require.ErrorIs(t, cart.SetVoucher(-1, true), domain.ErrNegativeVoucher)

	require.NoError(t, cart.SetVoucher(45, true))
	assert.Equal(t, int64(30), cart.Voucher)

	require.NoError(t, cart.SetVoucher(12, true))
	assert.Equal(t, int64(12), cart.Voucher)
}

func TestCart_AddLine_MergesSameProductAndSize(t *testing.T) {
	l := line("10.00", 1, 0)
	cart := &domain.Cart{}

	require.NoError(t, cart.AddLine(l))
	l2 := l
	l2.Quantity = 2
	require.NoError(t, cart.AddLine(l2))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	require.ErrorIs(t, cart.AddLine(line("5.00", 0, 0)), domain.ErrNonPositiveQuantity)
}

func TestCart_Clear(t *testing.T) {
	cart := &domain.Cart{
		Lines:                 []domain.CartLine{line("10.00", 1, 10)},
		BasketDiscountPercent: 10,
		Voucher:               5,
	}
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.BasketDiscountPercent)
	assert.Equal(t, int64(0), cart.Voucher)
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "", domain.DiscountLabel(0, 0))
	assert.Equal(t, "Remise article 30%", domain.DiscountLabel(30, 0))
	assert.Equal(t, "Remise panier 10%", domain.DiscountLabel(0, 10))
	assert.Equal(t, "Remise article 20% + Remise panier 10%", domain.DiscountLabel(20, 10))
}

func TestSaleComment(t *testing.T) {
	comment := domain.SaleComment(
		decimal.RequireFromString("49.00"), 20, 10,
		decimal.NewFromInt(71), 15, decimal.NewFromInt(56),
	)
	assert.Equal(t,
		"Vente. PU: 49.00. Remise article: 20%. Remise panier: 10%. "+
			"Total panier après toutes remises: 71.00. Bon d'achat utilisé: 15. "+
			"Montant payé réellement: 56.00.",
		comment)
}
