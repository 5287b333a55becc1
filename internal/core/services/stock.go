// internal/core/services/stock.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// StockService handles every stock mutation outside the sale flow:
// additions, returns, admin decrements and replenishment.
type StockService struct {
	stock     ports.StockRepository
	movements ports.MovementRepository
	transfers ports.TransferRepository
	catalog   ports.CatalogRepository
	db        ports.Database
	logger    *slog.Logger
}

var _ ports.StockService = (*StockService)(nil)

// NewStockService creates a new stock service.
func NewStockService(
	stock ports.StockRepository,
	movements ports.MovementRepository,
	transfers ports.TransferRepository,
	catalog ports.CatalogRepository,
	db ports.Database,
	logger *slog.Logger,
) *StockService {
	return &StockService{
		stock:     stock,
		movements: movements,
		transfers: transfers,
		catalog:   catalog,
		db:        db,
		logger:    logger.With(slog.String("service", "stock")),
	}
}

func validateEntries(entries []ports.StockEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries provided")
	}
	for _, e := range entries {
		if e.ProductID == uuid.Nil || e.SizeID == uuid.Nil {
			return fmt.Errorf("product_id and size_id are required")
		}
		if e.Quantity <= 0 {
			return domain.ErrNonPositiveQuantity
		}
	}
	return nil
}

// AddStock books a batch of additions at a location. An entry matching a
// PREPARED incoming transfer completes that transfer and is recorded as
// TRANSFER_IN instead of ADD. Stock rows are created lazily.
func (s *StockService) AddStock(ctx context.Context, locationID, userID uuid.UUID, entries []ports.StockEntry) (*ports.AddStockResult, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	result := &ports.AddStockResult{Entries: make([]ports.AddStockEntryResult, 0, len(entries))}

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, entry := range entries {
			movementType := domain.MovementAdd
			var completedID *uuid.UUID

			transfer, err := s.transfers.FindPreparedIncomingTx(ctx, tx, entry.ProductID, entry.SizeID, locationID)
			if err != nil {
				return fmt.Errorf("failed to look up incoming transfer: %w", err)
			}
			if transfer != nil {
				if err := transfer.TransitionTo(domain.TransferCompleted); err != nil {
					return fmt.Errorf("failed to complete transfer %s: %w", transfer.ID, err)
				}
				if err := s.transfers.UpdateTx(ctx, tx, transfer); err != nil {
					return fmt.Errorf("failed to update transfer %s: %w", transfer.ID, err)
				}
				movementType = domain.MovementTransferIn
				id := transfer.ID
				completedID = &id
			}

			if err := s.applyAdditionTx(ctx, tx, movementType, entry, locationID, userID, ""); err != nil {
				return err
			}

			result.Entries = append(result.Entries, ports.AddStockEntryResult{
				StockEntry:          entry,
				MovementType:        movementType,
				CompletedTransferID: completedID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock added",
		slog.String("location_id", locationID.String()),
		slog.Int("entries", len(entries)))

	return result, nil
}

// ReturnStock books customer returns as RETURN additions.
func (s *StockService) ReturnStock(ctx context.Context, locationID, userID uuid.UUID, entries []ports.StockEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, entry := range entries {
			if err := s.applyAdditionTx(ctx, tx, domain.MovementReturn, entry, locationID, userID, ""); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "returns booked",
		slog.String("location_id", locationID.String()),
		slog.Int("entries", len(entries)))
	return nil
}

// Reassort books replenishment additions as REASSORT movements.
func (s *StockService) Reassort(ctx context.Context, locationID, userID uuid.UUID, entries []ports.StockEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, entry := range entries {
			if err := s.applyAdditionTx(ctx, tx, domain.MovementReassort, entry, locationID, userID, ""); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "reassort booked",
		slog.String("location_id", locationID.String()),
		slog.Int("entries", len(entries)))
	return nil
}

func (s *StockService) applyAdditionTx(ctx context.Context, tx pgx.Tx, movementType domain.MovementType, entry ports.StockEntry, locationID, userID uuid.UUID, comment string) error {
	if err := s.stock.UpsertAddTx(ctx, tx, entry.ProductID, entry.SizeID, locationID, entry.Quantity); err != nil {
		return fmt.Errorf("failed to add stock: %w", err)
	}

	movement := &domain.StockMovement{
		Type:       movementType,
		ProductID:  entry.ProductID,
		SizeID:     entry.SizeID,
		LocationID: locationID,
		UserID:     userID,
		Quantity:   entry.Quantity,
		Comment:    comment,
	}
	movement.PrepareForStorage()
	if err := movement.Validate(); err != nil {
		return fmt.Errorf("invalid movement: %w", err)
	}
	if err := s.movements.SaveTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}
	return nil
}

// Decrement removes quantity from a stock row for an admin reason. The
// row is locked and re-checked so the quantity never goes negative.
func (s *StockService) Decrement(ctx context.Context, locationID, userID uuid.UUID, entry ports.StockEntry, reason ports.DecrementReason, comment string) error {
	if err := validateEntries([]ports.StockEntry{entry}); err != nil {
		return err
	}

	var movementType domain.MovementType
	switch reason {
	case ports.DecrementManual:
		movementType = domain.MovementManualDecrement
	case ports.DecrementClearance:
		movementType = domain.MovementClearance
	default:
		return fmt.Errorf("unknown decrement reason %q", reason)
	}

	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		stock, err := s.stock.FindForUpdateTx(ctx, tx, entry.ProductID, entry.SizeID, locationID)
		if err != nil {
			return fmt.Errorf("failed to lock stock row: %w", err)
		}
		available := 0
		if stock != nil {
			available = stock.Quantity
		}
		if stock == nil || available < entry.Quantity {
			return &domain.ErrInsufficientStock{
				ProductID: entry.ProductID,
				SizeID:    entry.SizeID,
				Requested: entry.Quantity,
				Available: available,
			}
		}

		if err := s.stock.DecrementTx(ctx, tx, stock.ID, entry.Quantity); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		movement := &domain.StockMovement{
			Type:       movementType,
			ProductID:  entry.ProductID,
			SizeID:     entry.SizeID,
			LocationID: locationID,
			UserID:     userID,
			Quantity:   entry.Quantity,
			Comment:    comment,
		}
		movement.PrepareForStorage()
		if err := movement.Validate(); err != nil {
			return fmt.Errorf("invalid movement: %w", err)
		}
		return s.movements.SaveTx(ctx, tx, movement)
	})
}

// CheckStock returns per-location levels for one product across stores.
func (s *StockService) CheckStock(ctx context.Context, productID uuid.UUID) ([]ports.StockLevel, error) {
	stocks, err := s.stock.FindForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	return s.enrich(ctx, stocks)
}

// LocationStock returns every stock row held at a location.
func (s *StockService) LocationStock(ctx context.Context, locationID uuid.UUID) ([]ports.StockLevel, error) {
	stocks, err := s.stock.FindForLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	return s.enrich(ctx, stocks)
}

func (s *StockService) enrich(ctx context.Context, stocks []*domain.Stock) ([]ports.StockLevel, error) {
	products := make(map[uuid.UUID]*domain.Product)
	sizes := make(map[uuid.UUID]*domain.Size)
	locations := make(map[uuid.UUID]*domain.Location)

	levels := make([]ports.StockLevel, 0, len(stocks))
	for _, st := range stocks {
		product, ok := products[st.ProductID]
		if !ok {
			var err error
			product, err = s.catalog.FindProductByID(ctx, st.ProductID)
			if err != nil {
				return nil, fmt.Errorf("failed to load product: %w", err)
			}
			products[st.ProductID] = product
		}
		size, ok := sizes[st.SizeID]
		if !ok {
			var err error
			size, err = s.catalog.FindSizeByID(ctx, st.SizeID)
			if err != nil {
				return nil, fmt.Errorf("failed to load size: %w", err)
			}
			sizes[st.SizeID] = size
		}
		location, ok := locations[st.LocationID]
		if !ok {
			var err error
			location, err = s.catalog.FindLocationByID(ctx, st.LocationID)
			if err != nil {
				return nil, fmt.Errorf("failed to load location: %w", err)
			}
			locations[st.LocationID] = location
		}

		level := ports.StockLevel{Stock: *st}
		if product != nil {
			level.ProductName = product.Name
			level.Reference = product.Reference
		}
		if size != nil {
			level.SizeName = size.Name
		}
		if location != nil {
			level.LocationName = location.Name
		}
		levels = append(levels, level)
	}
	return levels, nil
}
