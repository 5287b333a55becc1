// internal/core/ports/stock_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// StockEntry is one (product, size, quantity) in a batch stock action.
type StockEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	SizeID    uuid.UUID `json:"size_id"`
	Quantity  int       `json:"quantity"`
}

// AddStockResult reports what each entry of a batch turned into. Entries
// matching a PREPARED incoming transfer complete that transfer and book a
// TRANSFER_IN instead of an ADD.
type AddStockResult struct {
	Entries []AddStockEntryResult `json:"entries"`
}

// AddStockEntryResult is the per-entry outcome of an addition batch.
type AddStockEntryResult struct {
	StockEntry
	MovementType        domain.MovementType `json:"movement_type"`
	CompletedTransferID *uuid.UUID          `json:"completed_transfer_id,omitempty"`
}

// DecrementReason selects the movement type for an admin decrement.
type DecrementReason string

const (
	DecrementManual    DecrementReason = "MANUAL"
	DecrementClearance DecrementReason = "CLEARANCE"
)

// StockLevel pairs a stock row with its display context.
type StockLevel struct {
	Stock        domain.Stock `json:"stock"`
	ProductName  string       `json:"product_name"`
	Reference    string       `json:"reference"`
	SizeName     string       `json:"size_name"`
	LocationName string       `json:"location_name"`
}

// StockService is the application port for non-sale stock mutations and
// stock lookups.
type StockService interface {
	AddStock(ctx context.Context, locationID, userID uuid.UUID, entries []StockEntry) (*AddStockResult, error)
	ReturnStock(ctx context.Context, locationID, userID uuid.UUID, entries []StockEntry) error
	Decrement(ctx context.Context, locationID, userID uuid.UUID, entry StockEntry, reason DecrementReason, comment string) error
	Reassort(ctx context.Context, locationID, userID uuid.UUID, entries []StockEntry) error
	CheckStock(ctx context.Context, productID uuid.UUID) ([]StockLevel, error)
	LocationStock(ctx context.Context, locationID uuid.UUID) ([]StockLevel, error)
}
