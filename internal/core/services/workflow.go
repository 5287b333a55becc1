// internal/core/services/workflow.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// WorkflowService drives the reservation and transfer state machines.
// Transfer preparation is the only step that touches stock, and it runs
// inside one transaction with the row lock and re-check.
type WorkflowService struct {
	reservations ports.ReservationRepository
	transfers    ports.TransferRepository
	stock        ports.StockRepository
	movements    ports.MovementRepository
	db           ports.Database
	logger       *slog.Logger
}

var _ ports.WorkflowService = (*WorkflowService)(nil)

// NewWorkflowService creates a new workflow service.
func NewWorkflowService(
	reservations ports.ReservationRepository,
	transfers ports.TransferRepository,
	stock ports.StockRepository,
	movements ports.MovementRepository,
	db ports.Database,
	logger *slog.Logger,
) *WorkflowService {
	return &WorkflowService{
		reservations: reservations,
		transfers:    transfers,
		stock:        stock,
		movements:    movements,
		db:           db,
		logger:       logger.With(slog.String("service", "workflow")),
	}
}

// CreateReservation records a PENDING reservation after checking the
// source location actually holds the requested quantity.
func (s *WorkflowService) CreateReservation(ctx context.Context, params ports.CreateReservationParams) (*domain.Reservation, error) {
	r := &domain.Reservation{
		ProductID:          params.ProductID,
		SizeID:             params.SizeID,
		LocationID:         params.LocationID,
		RequestingLocation: params.RequestingLocation,
		Quantity:           params.Quantity,
		CreatedBy:          params.CreatedBy,
		ExpiresAt:          params.ExpiresAt,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	stock, err := s.stock.Find(ctx, params.ProductID, params.SizeID, params.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	available := 0
	if stock != nil {
		available = stock.Quantity
	}
	if available < params.Quantity {
		return nil, &domain.ErrInsufficientStock{
			ProductID: params.ProductID,
			SizeID:    params.SizeID,
			Requested: params.Quantity,
			Available: available,
		}
	}

	r.PrepareForStorage()
	if err := s.reservations.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}

	s.logger.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", r.ID.String()),
		slog.String("location_id", r.LocationID.String()))
	return r, nil
}

// ConfirmReservation marks the stock as set aside. No quantity moves.
func (s *WorkflowService) ConfirmReservation(ctx context.Context, id, actingLocation uuid.UUID) (*ports.TransitionResult, error) {
	return s.transitionReservation(ctx, id, actingLocation, domain.ReservationConfirmed)
}

// CompleteReservation closes a reservation after the pickup happened.
func (s *WorkflowService) CompleteReservation(ctx context.Context, id, actingLocation uuid.UUID) (*ports.TransitionResult, error) {
	return s.transitionReservation(ctx, id, actingLocation, domain.ReservationCompleted)
}

// CancelReservation releases a reservation before pickup.
func (s *WorkflowService) CancelReservation(ctx context.Context, id, actingLocation uuid.UUID) (*ports.TransitionResult, error) {
	return s.transitionReservation(ctx, id, actingLocation, domain.ReservationCancelled)
}

func (s *WorkflowService) transitionReservation(ctx context.Context, id, actingLocation uuid.UUID, target domain.ReservationStatus) (*ports.TransitionResult, error) {
	r, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	if r == nil {
		return nil, domain.ErrReservationNotFound
	}
	if r.LocationID != actingLocation {
		return nil, domain.ErrWrongLocation
	}

	if err := r.TransitionTo(target); err != nil {
		if errors.Is(err, domain.ErrAlreadyTerminal) {
			return &ports.TransitionResult{
				Informational: true,
				Message:       fmt.Sprintf("reservation already %s", r.Status),
			}, nil
		}
		return nil, err
	}

	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.logger.InfoContext(ctx, "reservation transitioned",
		slog.String("reservation_id", r.ID.String()),
		slog.String("status", string(r.Status)))
	return &ports.TransitionResult{}, nil
}

// ExpireDueReservations sweeps reservations past their expiry and returns
// how many were expired.
func (s *WorkflowService) ExpireDueReservations(ctx context.Context, now time.Time) (int, error) {
	due, err := s.reservations.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list due reservations: %w", err)
	}

	expired := 0
	for _, r := range due {
		if err := r.TransitionTo(domain.ReservationExpired); err != nil {
			continue
		}
		if err := s.reservations.Update(ctx, r); err != nil {
			return expired, fmt.Errorf("failed to expire reservation %s: %w", r.ID, err)
		}
		expired++
	}

	if expired > 0 {
		s.logger.InfoContext(ctx, "reservations expired", slog.Int("count", expired))
	}
	return expired, nil
}

// ListReservations returns reservations owned by or requested for a
// location.
func (s *WorkflowService) ListReservations(ctx context.Context, locationID uuid.UUID) ([]*domain.Reservation, error) {
	reservations, err := s.reservations.ListForLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// CreateTransfer records a REQUESTED transfer. Nothing moves until the
// source location prepares it.
func (s *WorkflowService) CreateTransfer(ctx context.Context, params ports.CreateTransferParams) (*domain.TransferRequest, error) {
	t := &domain.TransferRequest{
		ProductID:      params.ProductID,
		SizeID:         params.SizeID,
		FromLocationID: params.FromLocationID,
		ToLocationID:   params.ToLocationID,
		Quantity:       params.Quantity,
		CreatedBy:      params.CreatedBy,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	t.PrepareForStorage()
	if err := s.transfers.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer requested",
		slog.String("transfer_id", t.ID.String()),
		slog.String("from", t.FromLocationID.String()),
		slog.String("to", t.ToLocationID.String()))
	return t, nil
}

// PrepareTransfer decrements the source stock and books the TRANSFER_OUT
// movement, all in one transaction. The quantity is re-checked under a
// row lock at prepare time; a shortfall leaves the transfer REQUESTED.
// Preparing an already-PREPARED transfer is an informational no-op.
func (s *WorkflowService) PrepareTransfer(ctx context.Context, id, actingLocation, userID uuid.UUID) (*ports.TransitionResult, error) {
	var result *ports.TransitionResult

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		t, err := s.transfers.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load transfer: %w", err)
		}
		if t == nil {
			return domain.ErrTransferNotFound
		}
		if t.FromLocationID != actingLocation {
			return domain.ErrWrongLocation
		}
		if t.Status == domain.TransferPrepared {
			result = &ports.TransitionResult{
				Informational: true,
				Message:       "transfer already prepared",
			}
			return nil
		}
		if t.Status.Terminal() {
			result = &ports.TransitionResult{
				Informational: true,
				Message:       fmt.Sprintf("transfer already %s", t.Status),
			}
			return nil
		}

		stock, err := s.stock.FindForUpdateTx(ctx, tx, t.ProductID, t.SizeID, t.FromLocationID)
		if err != nil {
			return fmt.Errorf("failed to lock stock row: %w", err)
		}
		available := 0
		if stock != nil {
			available = stock.Quantity
		}
		if stock == nil || available < t.Quantity {
			return &domain.ErrInsufficientStock{
				ProductID: t.ProductID,
				SizeID:    t.SizeID,
				Requested: t.Quantity,
				Available: available,
			}
		}

		if err := t.TransitionTo(domain.TransferPrepared); err != nil {
			return err
		}
		if err := s.stock.DecrementTx(ctx, tx, stock.ID, t.Quantity); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		movement := &domain.StockMovement{
			Type:       domain.MovementTransferOut,
			ProductID:  t.ProductID,
			SizeID:     t.SizeID,
			LocationID: t.FromLocationID,
			UserID:     userID,
			Quantity:   t.Quantity,
		}
		movement.PrepareForStorage()
		if err := s.movements.SaveTx(ctx, tx, movement); err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}

		if err := s.transfers.UpdateTx(ctx, tx, t); err != nil {
			return fmt.Errorf("failed to update transfer: %w", err)
		}

		result = &ports.TransitionResult{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Informational {
		s.logger.InfoContext(ctx, "transfer prepared", slog.String("transfer_id", id.String()))
	}
	return result, nil
}

// CancelTransfer cancels a REQUESTED transfer. PREPARED transfers cannot
// be cancelled; the stock already left the source and only a compensating
// reassort adjustment can bring it back.
func (s *WorkflowService) CancelTransfer(ctx context.Context, id, actingLocation uuid.UUID) (*ports.TransitionResult, error) {
	t, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer: %w", err)
	}
	if t == nil {
		return nil, domain.ErrTransferNotFound
	}
	if actingLocation != t.FromLocationID && actingLocation != t.ToLocationID {
		return nil, domain.ErrWrongLocation
	}

	if err := t.TransitionTo(domain.TransferCancelled); err != nil {
		if errors.Is(err, domain.ErrAlreadyTerminal) {
			return &ports.TransitionResult{
				Informational: true,
				Message:       fmt.Sprintf("transfer already %s", t.Status),
			}, nil
		}
		return nil, err
	}

	if err := s.transfers.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer cancelled", slog.String("transfer_id", t.ID.String()))
	return &ports.TransitionResult{}, nil
}

// ListTransfers returns transfers touching a location, as source or
// destination.
func (s *WorkflowService) ListTransfers(ctx context.Context, locationID uuid.UUID) ([]*domain.TransferRequest, error) {
	transfers, err := s.transfers.ListForLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}
