// internal/adapters/db/salemode_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// saleModeRepository implements ports.SaleModeRepository over the
// single-row sale_mode table.
type saleModeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleModeRepository creates a new sale mode repository
func NewSaleModeRepository(db *Database, logger *slog.Logger) ports.SaleModeRepository {
	return &saleModeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sale_mode")),
	}
}

// Get retrieves the discount gate. A missing row reads as disabled.
func (r *saleModeRepository) Get(ctx context.Context) (*domain.SaleMode, error) {
	mode := &domain.SaleMode{}
	err := r.db.QueryRow(ctx,
		`SELECT discount_enabled, starts_at, ends_at, updated_at FROM sale_mode WHERE id = 1`).
		Scan(&mode.DiscountEnabled, &mode.StartsAt, &mode.EndsAt, &mode.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &domain.SaleMode{}, nil
		}
		return nil, fmt.Errorf("failed to load sale mode: %w", err)
	}
	return mode, nil
}

// Update rewrites the discount gate.
func (r *saleModeRepository) Update(ctx context.Context, mode *domain.SaleMode) error {
	mode.UpdatedAt = time.Now()

	query := `
		INSERT INTO sale_mode (id, discount_enabled, starts_at, ends_at, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			discount_enabled = EXCLUDED.discount_enabled,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query, mode.DiscountEnabled, mode.StartsAt, mode.EndsAt, mode.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update sale mode: %w", err)
	}

	r.logger.InfoContext(ctx, "sale mode updated",
		slog.Bool("discount_enabled", mode.DiscountEnabled))
	return nil
}
