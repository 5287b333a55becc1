// internal/core/domain/transfer.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransferStatus is the lifecycle state of a stock transfer request.
type TransferStatus string

const (
	TransferRequested TransferStatus = "REQUESTED"
	TransferPrepared  TransferStatus = "PREPARED"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferCancelled TransferStatus = "CANCELLED"
)

// transferTransitions is the allowed-transition table. PREPARED cannot be
// cancelled: the source decrement already happened, and reversing it
// requires a compensating REASSORT adjustment by an admin.
var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferRequested: {TransferPrepared, TransferCancelled},
	TransferPrepared:  {TransferCompleted},
}

// Terminal reports whether s absorbs all further transitions.
func (s TransferStatus) Terminal() bool {
	return s == TransferCompleted || s == TransferCancelled
}

// TransferRequest asks one location to ship stock to another. PREPARE is
// the single effectful step: it decrements the source stock and writes a
// TRANSFER_OUT movement.
type TransferRequest struct {
	ID             uuid.UUID      `json:"id"`
	ProductID      uuid.UUID      `json:"product_id"`
	SizeID         uuid.UUID      `json:"size_id"`
	FromLocationID uuid.UUID      `json:"from_location_id"`
	ToLocationID   uuid.UUID      `json:"to_location_id"`
	Quantity       int            `json:"quantity"`
	Status         TransferStatus `json:"status"`
	CreatedBy      uuid.UUID      `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Validate performs domain validation on a new transfer request.
func (t *TransferRequest) Validate() error {
	if t.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if t.SizeID == uuid.Nil {
		return fmt.Errorf("size_id is required")
	}
	if t.FromLocationID == uuid.Nil || t.ToLocationID == uuid.Nil {
		return fmt.Errorf("from_location_id and to_location_id are required")
	}
	if t.FromLocationID == t.ToLocationID {
		return fmt.Errorf("source and destination locations must differ")
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// PrepareForStorage assigns the identifier, initial status and timestamps.
func (t *TransferRequest) PrepareForStorage() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TransferRequested
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// TransitionTo moves the transfer to the target status if the transition
// table allows it. Terminal records return ErrAlreadyTerminal.
func (t *TransferRequest) TransitionTo(target TransferStatus) error {
	if t.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	for _, allowed := range transferTransitions[t.Status] {
		if allowed == target {
			t.Status = target
			t.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, target)
}
