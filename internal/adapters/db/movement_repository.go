// internal/adapters/db/movement_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// movementRepository implements ports.MovementRepository. The ledger is
// append-only: there are no update or delete statements in this file.
type movementRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *Database, logger *slog.Logger) ports.MovementRepository {
	return &movementRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "movements")),
	}
}

const movementInsert = `
	INSERT INTO stock_movements (
		id, type, product_id, size_id, location_id, user_id, quantity,
		original_price, final_price, is_discounted, discount_percent,
		discount_label, voucher_amount, comment, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func movementArgs(m *domain.StockMovement) []any {
	return []any{
		m.ID, m.Type, m.ProductID, m.SizeID, m.LocationID, m.UserID, m.Quantity,
		m.OriginalPrice, m.FinalPrice, m.IsDiscounted, m.DiscountPercent,
		m.DiscountLabel, m.VoucherAmount, m.Comment, m.CreatedAt,
	}
}

// Save appends one movement to the ledger.
func (r *movementRepository) Save(ctx context.Context, m *domain.StockMovement) error {
	if _, err := r.db.Exec(ctx, movementInsert, movementArgs(m)...); err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}

	r.logger.DebugContext(ctx, "movement saved",
		slog.String("id", m.ID.String()),
		slog.String("type", string(m.Type)))
	return nil
}

// SaveTx appends one movement inside the caller's transaction.
func (r *movementRepository) SaveTx(ctx context.Context, tx pgx.Tx, m *domain.StockMovement) error {
	if _, err := tx.Exec(ctx, movementInsert, movementArgs(m)...); err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}
	return nil
}

const movementColumns = `
	id, type, product_id, size_id, location_id, user_id, quantity,
	original_price::text, final_price::text, is_discounted, discount_percent,
	discount_label, voucher_amount, comment, created_at`

// List retrieves movements with filtering and pagination, newest first.
func (r *movementRepository) List(ctx context.Context, filter ports.MovementFilter) ([]*domain.StockMovement, int64, error) {
	qb := squirrel.Select(
		"id", "type", "product_id", "size_id", "location_id", "user_id", "quantity",
		"original_price::text", "final_price::text", "is_discounted", "discount_percent",
		"discount_label", "voucher_amount", "comment", "created_at",
	).From("stock_movements").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ProductID != uuid.Nil {
		qb = qb.Where(squirrel.Eq{"product_id": filter.ProductID})
	}
	if filter.LocationID != uuid.Nil {
		qb = qb.Where(squirrel.Eq{"location_id": filter.LocationID})
	}
	if filter.Type != "" {
		qb = qb.Where(squirrel.Eq{"type": filter.Type})
	}
	if !filter.From.IsZero() {
		qb = qb.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		qb = qb.Where("created_at <= ?", filter.To)
	}

	countQb := qb.Column("COUNT(*) OVER()").Limit(1)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	qb = qb.OrderBy("created_at DESC")
	if filter.PageSize > 0 {
		qb = qb.Limit(uint64(filter.PageSize))
		if filter.Page > 1 {
			qb = qb.Offset(uint64((filter.Page - 1) * filter.PageSize))
		}
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements, err := scanMovements(rows)
	if err != nil {
		return nil, 0, err
	}
	return movements, totalCount, nil
}

// ListSales retrieves the SALE movements of a period, oldest first, for
// report aggregation.
func (r *movementRepository) ListSales(ctx context.Context, from, to time.Time) ([]*domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE type = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, domain.MovementSale, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*domain.StockMovement, error) {
	var movements []*domain.StockMovement
	for rows.Next() {
		m := &domain.StockMovement{}
		var originalPrice, finalPrice sql.NullString
		var discountPercent sql.NullInt32
		var voucherAmount sql.NullInt64
		var discountLabel, comment sql.NullString

		err := rows.Scan(
			&m.ID, &m.Type, &m.ProductID, &m.SizeID, &m.LocationID, &m.UserID, &m.Quantity,
			&originalPrice, &finalPrice, &m.IsDiscounted, &discountPercent,
			&discountLabel, &voucherAmount, &comment, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		if originalPrice.Valid {
			d, err := decimal.NewFromString(originalPrice.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse original price: %w", err)
			}
			m.OriginalPrice = &d
		}
		if finalPrice.Valid {
			d, err := decimal.NewFromString(finalPrice.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse final price: %w", err)
			}
			m.FinalPrice = &d
		}
		if discountPercent.Valid {
			pct := int(discountPercent.Int32)
			m.DiscountPercent = &pct
		}
		if voucherAmount.Valid {
			m.VoucherAmount = &voucherAmount.Int64
		}
		m.DiscountLabel = discountLabel.String
		m.Comment = comment.String

		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return movements, nil
}
