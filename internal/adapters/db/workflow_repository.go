// internal/adapters/db/workflow_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// reservationRepository implements ports.ReservationRepository
type reservationRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *Database, logger *slog.Logger) ports.ReservationRepository {
	return &reservationRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "reservations")),
	}
}

const reservationColumns = `
	id, product_id, size_id, location_id, requesting_location_id,
	quantity, status, created_by, expires_at, created_at, updated_at`

// Save creates a new reservation.
func (r *reservationRepository) Save(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (
			id, product_id, size_id, location_id, requesting_location_id,
			quantity, status, created_by, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		res.ID, res.ProductID, res.SizeID, res.LocationID, res.RequestingLocation,
		res.Quantity, res.Status, res.CreatedBy, res.ExpiresAt, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}

	r.logger.DebugContext(ctx, "reservation saved",
		slog.String("id", res.ID.String()))
	return nil
}

// Update rewrites the mutable reservation fields.
func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `
		UPDATE reservations SET status = $2, expires_at = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, res.ID, res.Status, res.ExpiresAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation not found: %s", res.ID)
	}
	return nil
}

// FindByID retrieves a reservation by identifier.
func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations WHERE id = $1`

	res := &domain.Reservation{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.ProductID, &res.SizeID, &res.LocationID, &res.RequestingLocation,
		&res.Quantity, &res.Status, &res.CreatedBy, &res.ExpiresAt, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}
	return res, nil
}

// ListForLocation retrieves reservations touching the location from either
// end, newest first.
func (r *reservationRepository) ListForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations
		WHERE location_id = $1 OR requesting_location_id = $1
		ORDER BY created_at DESC`
	return r.queryReservations(ctx, query, locationID)
}

// ListDue retrieves open reservations whose hold window has elapsed.
func (r *reservationRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations
		WHERE status IN ($2, $3) AND expires_at IS NOT NULL AND expires_at < $1
		ORDER BY expires_at`
	return r.queryReservations(ctx, query, now, domain.ReservationPending, domain.ReservationConfirmed)
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*domain.Reservation
	for rows.Next() {
		res := &domain.Reservation{}
		err := rows.Scan(
			&res.ID, &res.ProductID, &res.SizeID, &res.LocationID, &res.RequestingLocation,
			&res.Quantity, &res.Status, &res.CreatedBy, &res.ExpiresAt, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return reservations, nil
}

// CountOpen counts reservations still awaiting an outcome.
func (r *reservationRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE status IN ($1, $2)`,
		domain.ReservationPending, domain.ReservationConfirmed).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open reservations: %w", err)
	}
	return count, nil
}

// transferRepository implements ports.TransferRepository
type transferRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *Database, logger *slog.Logger) ports.TransferRepository {
	return &transferRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "transfers")),
	}
}

const transferColumns = `
	id, product_id, size_id, from_location_id, to_location_id,
	quantity, status, created_by, created_at, updated_at`

// Save creates a new transfer request.
func (r *transferRepository) Save(ctx context.Context, t *domain.TransferRequest) error {
	query := `
		INSERT INTO transfer_requests (
			id, product_id, size_id, from_location_id, to_location_id,
			quantity, status, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.ProductID, t.SizeID, t.FromLocationID, t.ToLocationID,
		t.Quantity, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}

	r.logger.DebugContext(ctx, "transfer saved",
		slog.String("id", t.ID.String()))
	return nil
}

const transferUpdate = `
	UPDATE transfer_requests SET status = $2, updated_at = $3 WHERE id = $1`

// Update rewrites the transfer status.
func (r *transferRepository) Update(ctx context.Context, t *domain.TransferRequest) error {
	tag, err := r.db.Exec(ctx, transferUpdate, t.ID, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer not found: %s", t.ID)
	}
	return nil
}

// UpdateTx rewrites the transfer status inside the caller's transaction.
func (r *transferRepository) UpdateTx(ctx context.Context, tx pgx.Tx, t *domain.TransferRequest) error {
	tag, err := tx.Exec(ctx, transferUpdate, t.ID, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer not found: %s", t.ID)
	}
	return nil
}

// FindByID retrieves a transfer request by identifier.
func (r *transferRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TransferRequest, error) {
	query := `SELECT` + transferColumns + ` FROM transfer_requests WHERE id = $1`

	t := &domain.TransferRequest{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProductID, &t.SizeID, &t.FromLocationID, &t.ToLocationID,
		&t.Quantity, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}
	return t, nil
}

// ListForLocation retrieves transfers touching the location from either
// end, newest first.
func (r *transferRepository) ListForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.TransferRequest, error) {
	query := `SELECT` + transferColumns + ` FROM transfer_requests
		WHERE from_location_id = $1 OR to_location_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*domain.TransferRequest
	for rows.Next() {
		t := &domain.TransferRequest{}
		err := rows.Scan(
			&t.ID, &t.ProductID, &t.SizeID, &t.FromLocationID, &t.ToLocationID,
			&t.Quantity, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return transfers, nil
}

// FindPreparedIncomingTx locks the oldest PREPARED transfer shipping the
// given (product, size) to the location, if any. Backs the receipt flow.
func (r *transferRepository) FindPreparedIncomingTx(ctx context.Context, tx pgx.Tx, productID, sizeID, toLocationID uuid.UUID) (*domain.TransferRequest, error) {
	query := `SELECT` + transferColumns + ` FROM transfer_requests
		WHERE product_id = $1 AND size_id = $2 AND to_location_id = $3 AND status = $4
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE`

	t := &domain.TransferRequest{}
	err := tx.QueryRow(ctx, query, productID, sizeID, toLocationID, domain.TransferPrepared).Scan(
		&t.ID, &t.ProductID, &t.SizeID, &t.FromLocationID, &t.ToLocationID,
		&t.Quantity, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find prepared transfer: %w", err)
	}
	return t, nil
}

// CountOpen counts transfers still awaiting an outcome.
func (r *transferRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transfer_requests WHERE status IN ($1, $2)`,
		domain.TransferRequested, domain.TransferPrepared).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open transfers: %w", err)
	}
	return count, nil
}
