// internal/core/ports/workflow_service.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// CreateReservationParams describes a new reservation request.
type CreateReservationParams struct {
	ProductID          uuid.UUID
	SizeID             uuid.UUID
	LocationID         uuid.UUID
	RequestingLocation uuid.UUID
	Quantity           int
	CreatedBy          uuid.UUID
	ExpiresAt          *time.Time
}

// CreateTransferParams describes a new transfer request.
type CreateTransferParams struct {
	ProductID      uuid.UUID
	SizeID         uuid.UUID
	FromLocationID uuid.UUID
	ToLocationID   uuid.UUID
	Quantity       int
	CreatedBy      uuid.UUID
}

// TransitionResult reports a workflow transition. Informational is set
// when the record was already terminal and nothing changed.
type TransitionResult struct {
	Informational bool   `json:"informational"`
	Message       string `json:"message,omitempty"`
}

// WorkflowService is the application port for reservation and transfer
// state machines.
type WorkflowService interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*domain.Reservation, error)
	ConfirmReservation(ctx context.Context, id, actingLocation uuid.UUID) (*TransitionResult, error)
	CompleteReservation(ctx context.Context, id, actingLocation uuid.UUID) (*TransitionResult, error)
	CancelReservation(ctx context.Context, id, actingLocation uuid.UUID) (*TransitionResult, error)
	ExpireDueReservations(ctx context.Context, now time.Time) (int, error)
	ListReservations(ctx context.Context, locationID uuid.UUID) ([]*domain.Reservation, error)

	CreateTransfer(ctx context.Context, params CreateTransferParams) (*domain.TransferRequest, error)
	PrepareTransfer(ctx context.Context, id, actingLocation, userID uuid.UUID) (*TransitionResult, error)
	CancelTransfer(ctx context.Context, id, actingLocation uuid.UUID) (*TransitionResult, error)
	ListTransfers(ctx context.Context, locationID uuid.UUID) ([]*domain.TransferRequest, error)
}
