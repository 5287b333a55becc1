// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType classifies the reason for a stock quantity change.
type MovementType string

const (
	MovementAdd         MovementType = "ADD"
	MovementReturn      MovementType = "RETURN"
	MovementSale        MovementType = "SALE"
	MovementTransferOut MovementType = "TRANSFER_OUT"
	MovementTransferIn  MovementType = "TRANSFER_IN"

	// Reservations flag stock without moving it, so nothing writes these
	// two types. They stay to mirror the ledger's schema enum.
	MovementReservationOut MovementType = "RESERVATION_OUT"
	MovementReservationIn  MovementType = "RESERVATION_IN"

	MovementManualDecrement MovementType = "MANUAL_DECREMENT"
	MovementClearance       MovementType = "CLEARANCE"
	MovementReassort        MovementType = "REASSORT"
)

// ValidMovementType reports whether t is one of the known movement types.
func ValidMovementType(t MovementType) bool {
	switch t {
	case MovementAdd, MovementReturn, MovementSale,
		MovementTransferOut, MovementTransferIn,
		MovementReservationOut, MovementReservationIn,
		MovementManualDecrement, MovementClearance, MovementReassort:
		return true
	}
	return false
}

// Stock is the on-hand quantity for one (product, size, location) triple.
// Rows are created lazily on first addition and never deleted. The
// quantity >= 0 invariant is enforced by services before every decrement,
// not by the storage layer.
type Stock struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	SizeID     uuid.UUID `json:"size_id"`
	LocationID uuid.UUID `json:"location_id"`
	Quantity   int       `json:"quantity"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StockMovement is one entry of the append-only quantity ledger.
// Movements are never updated or deleted.
type StockMovement struct {
	ID              uuid.UUID        `json:"id"`
	Type            MovementType     `json:"type"`
	ProductID       uuid.UUID        `json:"product_id"`
	SizeID          uuid.UUID        `json:"size_id"`
	LocationID      uuid.UUID        `json:"location_id"`
	UserID          uuid.UUID        `json:"user_id"`
	Quantity        int              `json:"quantity"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	FinalPrice      *decimal.Decimal `json:"final_price,omitempty"`
	IsDiscounted    bool             `json:"is_discounted"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
	DiscountLabel   string           `json:"discount_label,omitempty"`
	VoucherAmount   *int64           `json:"voucher_amount,omitempty"`
	Comment         string           `json:"comment,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Validate performs domain validation on the movement.
func (m *StockMovement) Validate() error {
	if !ValidMovementType(m.Type) {
		return fmt.Errorf("unknown movement type %q", m.Type)
	}
	if m.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if m.SizeID == uuid.Nil {
		return fmt.Errorf("size_id is required")
	}
	if m.LocationID == uuid.Nil {
		return fmt.Errorf("location_id is required")
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// PrepareForStorage assigns the identifier and timestamp before persisting.
func (m *StockMovement) PrepareForStorage() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
}

// ErrInsufficientStock is returned when a decrement would drive a stock
// row negative. It carries enough context for a user-facing message.
type ErrInsufficientStock struct {
	ProductID uuid.UUID
	SizeID    uuid.UUID
	Requested int
	Available int
}

func (e *ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock for product %s size %s: requested %d, available %d",
		e.ProductID, e.SizeID, e.Requested, e.Available)
}
