// internal/core/ports/workflow_repository.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// ReservationRepository is the persistence port for reservations.
type ReservationRepository interface {
	Save(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Reservation, error)
	ListDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
	CountOpen(ctx context.Context) (int64, error)
}

// TransferRepository is the persistence port for transfer requests.
// FindPreparedIncoming backs the receipt flow: an addition at the
// destination looks up a matching PREPARED transfer before booking the
// movement.
type TransferRepository interface {
	Save(ctx context.Context, t *domain.TransferRequest) error
	Update(ctx context.Context, t *domain.TransferRequest) error
	UpdateTx(ctx context.Context, tx pgx.Tx, t *domain.TransferRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TransferRequest, error)
	ListForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.TransferRequest, error)
	FindPreparedIncomingTx(ctx context.Context, tx pgx.Tx, productID, sizeID, toLocationID uuid.UUID) (*domain.TransferRequest, error)
	CountOpen(ctx context.Context) (int64, error)
}

// LabelStateRepository is the persistence port for the shared sheet
// cursor and print jobs. Allocate reads the cursor under a row lock,
// advances it by count mod 56 and returns the starting cell, all inside
// the given transaction. The job insert runs in the same transaction so
// a failed insert rolls the cursor back instead of stranding cells.
type LabelStateRepository interface {
	AllocateTx(ctx context.Context, tx pgx.Tx, count int) (lastPosition int, err error)
	Get(ctx context.Context) (*domain.LabelPrintState, error)

	SavePrintJobTx(ctx context.Context, tx pgx.Tx, job *domain.PrintJob) error
	UpdatePrintJob(ctx context.Context, job *domain.PrintJob) error
	FindPrintJobByID(ctx context.Context, id uuid.UUID) (*domain.PrintJob, error)
}
