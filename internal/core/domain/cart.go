// internal/core/domain/cart.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pricing errors surfaced as business-rule violations.
var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidLineDiscount   = errors.New("line discount must be one of 0, 10, 20, 30, 40, 50")
	ErrInvalidBasketDiscount = errors.New("basket discount must be 0 or 10")
	ErrNegativeVoucher       = errors.New("voucher amount cannot be negative")
	ErrLineNotFound          = errors.New("cart line not found")
	ErrNonPositiveQuantity   = errors.New("quantity must be positive")
	ErrDiscountsDisabled     = errors.New("article discounts are currently disabled")
	ErrProductArchived       = errors.New("product is archived")
	ErrSizeNotInProductSet   = errors.New("size does not belong to the product's size set")
	ErrMissingProductOrSize  = errors.New("cart line references a missing product or size")
)

// AllowedLineDiscount reports whether pct is in the enumerated set for
// per-article discounts.
func AllowedLineDiscount(pct int) bool {
	switch pct {
	case 0, 10, 20, 30, 40, 50:
		return true
	}
	return false
}

// AllowedBasketDiscount reports whether pct is valid for the whole basket.
func AllowedBasketDiscount(pct int) bool {
	return pct == 0 || pct == 10
}

// CartLine is one candidate sale line. Reference and display names are
// denormalized at add time so the register keeps working if the catalog
// row is edited mid-sale.
type CartLine struct {
	ProductID       uuid.UUID       `json:"product_id"`
	SizeID          uuid.UUID       `json:"size_id"`
	Reference       string          `json:"reference"`
	Name            string          `json:"name"`
	SizeName        string          `json:"size_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent int             `json:"discount_percent"`
}

// Cart is the register-scoped sale in progress. It is a plain value
// object: pricing is a pure function of its fields, and mutation helpers
// re-clamp the voucher so its invariant holds after every write.
type Cart struct {
	Lines                 []CartLine `json:"lines"`
	BasketDiscountPercent int        `json:"basket_discount_percent"`
	Voucher               int64      `json:"voucher"`
	LocationID            uuid.UUID  `json:"location_id"`
}

// Totals is the authoritative pricing breakdown of a cart.
type Totals struct {
	TotalGross         decimal.Decimal `json:"total_gross"`
	TotalAfterLine     decimal.Decimal `json:"total_after_line"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
	Voucher            int64           `json:"voucher"`
	CashAmount         decimal.Decimal `json:"cash_amount"`
}

var (
	hundred = decimal.NewFromInt(100)
	ninety  = decimal.NewFromInt(90)
)

// EffectiveLinePercent applies the sale-mode gate and the [0,50] clamp.
// An inactive sale mode forces the discount to zero regardless of what
// the line carries.
func EffectiveLinePercent(pct int, saleModeActive bool) int {
	if !saleModeActive {
		return 0
	}
	if pct < 0 {
		return 0
	}
	if pct > 50 {
		return 50
	}
	return pct
}

// LineFinal returns the line total after the per-article discount.
func (l CartLine) LineFinal(saleModeActive bool) decimal.Decimal {
	original := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	pct := EffectiveLinePercent(l.DiscountPercent, saleModeActive)
	if pct == 0 {
		return original
	}
	return original.Mul(hundred.Sub(decimal.NewFromInt(int64(pct)))).Div(hundred)
}

// Totals computes the pricing breakdown. The basket total is rounded up
// to the next whole currency unit, and the voucher is clamped to
// [0, total_after_discount] on every call. Cash is never negative.
func (c *Cart) Totals(saleModeActive bool) Totals {
	var gross, afterLine decimal.Decimal
	for _, l := range c.Lines {
		gross = gross.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		afterLine = afterLine.Add(l.LineFinal(saleModeActive))
	}

	afterBasket := afterLine
	if c.BasketDiscountPercent == 10 {
		afterBasket = afterLine.Mul(ninety).Div(hundred)
	}
	total := afterBasket.Ceil()

	voucher := clampVoucher(c.Voucher, total)
	cash := total.Sub(decimal.NewFromInt(voucher))
	if cash.IsNegative() {
		cash = decimal.Zero
	}

	return Totals{
		TotalGross:         gross,
		TotalAfterLine:     afterLine,
		TotalAfterDiscount: total,
		Voucher:            voucher,
		CashAmount:         cash,
	}
}

func clampVoucher(voucher int64, total decimal.Decimal) int64 {
	if voucher < 0 {
		return 0
	}
	// total is integral after Ceil
	max := total.IntPart()
	if voucher > max {
		return max
	}
	return voucher
}

// AddLine merges the quantity into an existing line for the same
// (product, size) or appends a new one.
func (c *Cart) AddLine(line CartLine) error {
	if line.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if !AllowedLineDiscount(line.DiscountPercent) {
		return ErrInvalidLineDiscount
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID && c.Lines[i].SizeID == line.SizeID {
			c.Lines[i].Quantity += line.Quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// RemoveLine drops the line for (product, size) if present.
func (c *Cart) RemoveLine(productID, sizeID uuid.UUID) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].SizeID == sizeID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// SetLineDiscount validates pct against the enumerated set and stores it.
// The cart state is left unchanged on rejection.
func (c *Cart) SetLineDiscount(productID, sizeID uuid.UUID, pct int) error {
	if !AllowedLineDiscount(pct) {
		return ErrInvalidLineDiscount
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].SizeID == sizeID {
			c.Lines[i].DiscountPercent = pct
			return nil
		}
	}
	return ErrLineNotFound
}

// SetBasketDiscount validates pct against {0, 10} and stores it.
func (c *Cart) SetBasketDiscount(pct int) error {
	if !AllowedBasketDiscount(pct) {
		return ErrInvalidBasketDiscount
	}
	c.BasketDiscountPercent = pct
	return nil
}

// SetVoucher stores the voucher amount, re-clamped against the current
// basket total.
func (c *Cart) SetVoucher(amount int64, saleModeActive bool) error {
	if amount < 0 {
		return ErrNegativeVoucher
	}
	c.Voucher = amount
	c.Voucher = c.Totals(saleModeActive).Voucher
	return nil
}

// Clear empties the cart, the basket discount and the voucher together.
func (c *Cart) Clear() {
	c.Lines = nil
	c.BasketDiscountPercent = 0
	c.Voucher = 0
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// DiscountLabel builds the human-readable label recorded on a SALE
// movement when any discount applied, combining the article and basket
// parts with " + ".
func DiscountLabel(linePercent, basketPercent int) string {
	var parts []string
	if linePercent > 0 {
		parts = append(parts, fmt.Sprintf("Remise article %d%%", linePercent))
	}
	if basketPercent == 10 {
		parts = append(parts, "Remise panier 10%")
	}
	if len(parts) == 0 {
		return ""
	}
	label := parts[0]
	for _, p := range parts[1:] {
		label += " + " + p
	}
	return label
}

// SaleComment renders the fixed audit sentence stored on each SALE
// movement. Reporting also reads the structured voucher_amount column;
// the sentence stays for operators and for legacy reconciliation.
func SaleComment(unitPrice decimal.Decimal, linePercent, basketPercent int, basketTotal decimal.Decimal, voucher int64, cash decimal.Decimal) string {
	linePart := "0%"
	if linePercent > 0 {
		linePart = fmt.Sprintf("%d%%", linePercent)
	}
	basketPart := "0%"
	if basketPercent == 10 {
		basketPart = "10%"
	}
	return fmt.Sprintf(
		"Vente. PU: %s. Remise article: %s. Remise panier: %s. Total panier après toutes remises: %s. Bon d'achat utilisé: %d. Montant payé réellement: %s.",
		unitPrice.StringFixed(2), linePart, basketPart,
		basketTotal.StringFixed(2), voucher, cash.StringFixed(2),
	)
}
