// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// stockRepository implements ports.StockRepository
type stockRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *Database, logger *slog.Logger) ports.StockRepository {
	return &stockRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "stock")),
	}
}

const stockColumns = `id, product_id, size_id, location_id, quantity, updated_at`

// Find retrieves the stock row for one (product, size, location) triple.
func (r *stockRepository) Find(ctx context.Context, productID, sizeID, locationID uuid.UUID) (*domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks
		WHERE product_id = $1 AND size_id = $2 AND location_id = $3`

	s := &domain.Stock{}
	err := r.db.QueryRow(ctx, query, productID, sizeID, locationID).Scan(
		&s.ID, &s.ProductID, &s.SizeID, &s.LocationID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stock: %w", err)
	}
	return s, nil
}

// FindForProduct retrieves every stock row of a product across locations.
func (r *stockRepository) FindForProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks
		WHERE product_id = $1 ORDER BY location_id, size_id`
	return r.queryStocks(ctx, query, productID)
}

// FindForLocation retrieves every stock row held at a location.
func (r *stockRepository) FindForLocation(ctx context.Context, locationID uuid.UUID) ([]*domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks
		WHERE location_id = $1 ORDER BY product_id, size_id`
	return r.queryStocks(ctx, query, locationID)
}

func (r *stockRepository) queryStocks(ctx context.Context, query string, arg any) ([]*domain.Stock, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*domain.Stock
	for rows.Next() {
		s := &domain.Stock{}
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SizeID, &s.LocationID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return stocks, nil
}

// TotalUnits returns the grand total of on-hand units.
func (r *stockRepository) TotalUnits(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM stocks`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum stock units: %w", err)
	}
	return total, nil
}

// FindForUpdateTx locks and retrieves the stock row inside the caller's
// transaction, closing the check-then-decrement race.
func (r *stockRepository) FindForUpdateTx(ctx context.Context, tx pgx.Tx, productID, sizeID, locationID uuid.UUID) (*domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks
		WHERE product_id = $1 AND size_id = $2 AND location_id = $3
		FOR UPDATE`

	s := &domain.Stock{}
	err := tx.QueryRow(ctx, query, productID, sizeID, locationID).Scan(
		&s.ID, &s.ProductID, &s.SizeID, &s.LocationID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock stock: %w", err)
	}
	return s, nil
}

// UpsertAddTx adds quantity to the stock row, creating it on first use.
func (r *stockRepository) UpsertAddTx(ctx context.Context, tx pgx.Tx, productID, sizeID, locationID uuid.UUID, quantity int) error {
	query := `
		INSERT INTO stocks (id, product_id, size_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (product_id, size_id, location_id)
		DO UPDATE SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, uuid.New(), productID, sizeID, locationID, quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert stock: %w", err)
	}
	return nil
}

// DecrementTx subtracts quantity from a locked stock row. The quantity
// guard is a backstop: callers check availability under the row lock.
func (r *stockRepository) DecrementTx(ctx context.Context, tx pgx.Tx, stockID uuid.UUID, quantity int) error {
	query := `
		UPDATE stocks SET quantity = quantity - $2, updated_at = NOW()
		WHERE id = $1 AND quantity >= $2`

	tag, err := tx.Exec(ctx, query, stockID, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock %s cannot cover decrement of %d", stockID, quantity)
	}
	return nil
}
