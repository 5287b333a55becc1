// internal/adapters/db/label_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// labelStateRepository implements ports.LabelStateRepository over the
// single-row sheet cursor and the print_jobs table.
type labelStateRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLabelStateRepository creates a new label state repository
func NewLabelStateRepository(db *Database, logger *slog.Logger) ports.LabelStateRepository {
	return &labelStateRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "labels")),
	}
}

// AllocateTx locks the cursor row, advances it by count mod the sheet
// size and returns the position the new labels start at.
func (r *labelStateRepository) AllocateTx(ctx context.Context, tx pgx.Tx, count int) (int, error) {
	var last int
	err := tx.QueryRow(ctx,
		`SELECT last_position FROM label_print_state WHERE id = 1 FOR UPDATE`).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("failed to lock label cursor: %w", err)
	}

	next := (last + count) % domain.SheetCells
	_, err = tx.Exec(ctx,
		`UPDATE label_print_state SET last_position = $1, updated_at = NOW() WHERE id = 1`, next)
	if err != nil {
		return 0, fmt.Errorf("failed to advance label cursor: %w", err)
	}

	return last, nil
}

// Get retrieves the sheet cursor.
func (r *labelStateRepository) Get(ctx context.Context) (*domain.LabelPrintState, error) {
	state := &domain.LabelPrintState{}
	err := r.db.QueryRow(ctx,
		`SELECT last_position, updated_at FROM label_print_state WHERE id = 1`).
		Scan(&state.LastPosition, &state.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &domain.LabelPrintState{}, nil
		}
		return nil, fmt.Errorf("failed to load label state: %w", err)
	}
	return state, nil
}

// SavePrintJobTx creates a new print job record inside the caller's
// transaction, alongside the cursor advance it belongs to.
func (r *labelStateRepository) SavePrintJobTx(ctx context.Context, tx pgx.Tx, job *domain.PrintJob) error {
	query := `
		INSERT INTO print_jobs (
			id, requested_by, label_count, start_cell, status,
			artifact_key, error, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		job.ID, job.RequestedBy, job.LabelCount, job.StartCell, job.Status,
		job.ArtifactKey, job.Error, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save print job: %w", err)
	}

	r.logger.DebugContext(ctx, "print job saved",
		slog.String("id", job.ID.String()),
		slog.Int("labels", job.LabelCount))
	return nil
}

// UpdatePrintJob rewrites a print job's rendering outcome.
func (r *labelStateRepository) UpdatePrintJob(ctx context.Context, job *domain.PrintJob) error {
	query := `
		UPDATE print_jobs SET status = $2, artifact_key = $3, error = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Status, job.ArtifactKey, job.Error, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update print job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("print job not found: %s", job.ID)
	}
	return nil
}

// FindPrintJobByID retrieves a print job by identifier.
func (r *labelStateRepository) FindPrintJobByID(ctx context.Context, id uuid.UUID) (*domain.PrintJob, error) {
	query := `
		SELECT id, requested_by, label_count, start_cell, status,
			artifact_key, error, created_at, updated_at
		FROM print_jobs WHERE id = $1`

	job := &domain.PrintJob{}
	var artifactKey, jobErr sql.NullString
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RequestedBy, &job.LabelCount, &job.StartCell, &job.Status,
		&artifactKey, &jobErr, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find print job: %w", err)
	}

	job.ArtifactKey = artifactKey.String
	job.Error = jobErr.String
	return job, nil
}
