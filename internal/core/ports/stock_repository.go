// internal/core/ports/stock_repository.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// StockRepository is the persistence port for on-hand quantities.
// Tx-suffixed methods run inside a caller-owned transaction so checkout
// and transfer preparation stay all-or-nothing; ForUpdate variants take a
// row lock to close the check-then-decrement race.
type StockRepository interface {
	Find(ctx context.Context, productID, sizeID, locationID uuid.UUID) (*domain.Stock, error)
	FindForProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Stock, error)
	FindForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Stock, error)

	TotalUnits(ctx context.Context) (int64, error)

	FindForUpdateTx(ctx context.Context, tx pgx.Tx, productID, sizeID, locationID uuid.UUID) (*domain.Stock, error)
	UpsertAddTx(ctx context.Context, tx pgx.Tx, productID, sizeID, locationID uuid.UUID, quantity int) error
	DecrementTx(ctx context.Context, tx pgx.Tx, stockID uuid.UUID, quantity int) error
}

// MovementFilter narrows movement ledger queries.
type MovementFilter struct {
	ProductID  uuid.UUID
	LocationID uuid.UUID
	Type       domain.MovementType
	From       time.Time
	To         time.Time
	Page       int
	PageSize   int
}

// MovementRepository is the persistence port for the append-only ledger.
// There are deliberately no update or delete methods.
type MovementRepository interface {
	Save(ctx context.Context, m *domain.StockMovement) error
	SaveTx(ctx context.Context, tx pgx.Tx, m *domain.StockMovement) error
	List(ctx context.Context, filter MovementFilter) ([]*domain.StockMovement, int64, error)
	ListSales(ctx context.Context, from, to time.Time) ([]*domain.StockMovement, error)
}

// SaleModeRepository is the persistence port for the discount gate
// singleton.
type SaleModeRepository interface {
	Get(ctx context.Context) (*domain.SaleMode, error)
	Update(ctx context.Context, mode *domain.SaleMode) error
}
