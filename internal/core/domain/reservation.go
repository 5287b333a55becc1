// internal/core/domain/reservation.go
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

// Workflow errors. ErrAlreadyTerminal marks a transition attempted on a
// terminal record; callers answer informationally rather than with an
// error status.
var (
	ErrAlreadyTerminal     = errors.New("record is already in a terminal state")
	ErrInvalidTransition   = errors.New("transition not allowed from current state")
	ErrWrongLocation       = errors.New("operation not allowed from this location")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrTransferNotFound    = errors.New("transfer request not found")
)

// reservationTransitions is the allowed-transition table. Anything not
// listed is rejected.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled, ReservationExpired},
	ReservationConfirmed: {ReservationCompleted, ReservationCancelled, ReservationExpired},
}

// Terminal reports whether s absorbs all further transitions.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationCompleted, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

// Reservation sets stock aside at a source location on behalf of a
// requesting location. No quantity moves until the pickup happens.
type Reservation struct {
	ID                 uuid.UUID         `json:"id"`
	ProductID          uuid.UUID         `json:"product_id"`
	SizeID             uuid.UUID         `json:"size_id"`
	LocationID         uuid.UUID         `json:"location_id"`
	RequestingLocation uuid.UUID         `json:"requesting_location_id"`
	Quantity           int               `json:"quantity"`
	Status             ReservationStatus `json:"status"`
	CreatedBy          uuid.UUID         `json:"created_by"`
	ExpiresAt          *time.Time        `json:"expires_at,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// Validate performs domain validation on a new reservation.
func (r *Reservation) Validate() error {
	if r.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if r.SizeID == uuid.Nil {
		return fmt.Errorf("size_id is required")
	}
	if r.LocationID == uuid.Nil {
		return fmt.Errorf("location_id is required")
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// PrepareForStorage assigns the identifier, initial status and timestamps.
func (r *Reservation) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ReservationPending
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// TransitionTo moves the reservation to the target status if the
// transition table allows it. Terminal records return ErrAlreadyTerminal.
func (r *Reservation) TransitionTo(target ReservationStatus) error {
	if r.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	for _, allowed := range reservationTransitions[r.Status] {
		if allowed == target {
			r.Status = target
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, target)
}

// Due reports whether an expiry sweep should expire this reservation.
func (r *Reservation) Due(now time.Time) bool {
	return !r.Status.Terminal() && r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}
