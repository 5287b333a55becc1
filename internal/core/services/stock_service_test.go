// internal/core/services/stock_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

type stockMocks struct {
	stock     *mocks.MockStockRepository
	movements *mocks.MockMovementRepository
	transfers *mocks.MockTransferRepository
	catalog   *mocks.MockCatalogRepository
	db        *mocks.MockDatabase
}

func newStockService(t *testing.T) (*services.StockService, *stockMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &stockMocks{
		stock:     mocks.NewMockStockRepository(ctrl),
		movements: mocks.NewMockMovementRepository(ctrl),
		transfers: mocks.NewMockTransferRepository(ctrl),
		catalog:   mocks.NewMockCatalogRepository(ctrl),
		db:        mocks.NewMockDatabase(ctrl),
	}
	svc := services.NewStockService(m.stock, m.movements, m.transfers, m.catalog, m.db, helpers.TestLogger())
	return svc, m
}

func inTransaction(m *stockMocks) {
	m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		})
}

func TestStockService_AddStock(t *testing.T) {
	locationID := uuid.New()
	userID := uuid.New()
	entry := ports.StockEntry{ProductID: uuid.New(), SizeID: uuid.New(), Quantity: 3}

	t.Run("books_plain_addition_as_add_movement", func(t *testing.T) {
		svc, m := newStockService(t)
		inTransaction(m)
		m.transfers.EXPECT().FindPreparedIncomingTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID).
			Return(nil, nil)
		m.stock.EXPECT().UpsertAddTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID, 3).
			Return(nil)
		m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, mv *domain.StockMovement) error {
				assert.Equal(t, domain.MovementAdd, mv.Type)
				assert.Equal(t, 3, mv.Quantity)
				return nil
			})

		result, err := svc.AddStock(context.Background(), locationID, userID, []ports.StockEntry{entry})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, domain.MovementAdd, result.Entries[0].MovementType)
		assert.Nil(t, result.Entries[0].CompletedTransferID)
	})

	t.Run("completes_prepared_transfer_and_books_transfer_in", func(t *testing.T) {
		svc, m := newStockService(t)
		transfer := helpers.CreateTestTransfer(func(tr *domain.TransferRequest) {
			tr.ProductID = entry.ProductID
			tr.SizeID = entry.SizeID
			tr.ToLocationID = locationID
			tr.Status = domain.TransferPrepared
		})

		inTransaction(m)
		m.transfers.EXPECT().FindPreparedIncomingTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID).
			Return(transfer, nil)
		m.transfers.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, tr *domain.TransferRequest) error {
				assert.Equal(t, domain.TransferCompleted, tr.Status)
				return nil
			})
		m.stock.EXPECT().UpsertAddTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID, 3).
			Return(nil)
		m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, mv *domain.StockMovement) error {
				assert.Equal(t, domain.MovementTransferIn, mv.Type)
				return nil
			})

		result, err := svc.AddStock(context.Background(), locationID, userID, []ports.StockEntry{entry})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, domain.MovementTransferIn, result.Entries[0].MovementType)
		require.NotNil(t, result.Entries[0].CompletedTransferID)
		assert.Equal(t, transfer.ID, *result.Entries[0].CompletedTransferID)
	})

	t.Run("rejects_empty_entry_list", func(t *testing.T) {
		svc, _ := newStockService(t)
		_, err := svc.AddStock(context.Background(), locationID, userID, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entries")
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		svc, _ := newStockService(t)
		bad := ports.StockEntry{ProductID: uuid.New(), SizeID: uuid.New(), Quantity: 0}
		_, err := svc.AddStock(context.Background(), locationID, userID, []ports.StockEntry{bad})
		require.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	})
}

func TestStockService_ReturnStock(t *testing.T) {
	locationID := uuid.New()
	userID := uuid.New()
	entry := ports.StockEntry{ProductID: uuid.New(), SizeID: uuid.New(), Quantity: 1}

	svc, m := newStockService(t)
	inTransaction(m)
	m.stock.EXPECT().UpsertAddTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID, 1).
		Return(nil)
	m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, mv *domain.StockMovement) error {
			assert.Equal(t, domain.MovementReturn, mv.Type)
			return nil
		})

	require.NoError(t, svc.ReturnStock(context.Background(), locationID, userID, []ports.StockEntry{entry}))
}

func TestStockService_Decrement(t *testing.T) {
	locationID := uuid.New()
	userID := uuid.New()
	entry := ports.StockEntry{ProductID: uuid.New(), SizeID: uuid.New(), Quantity: 2}

	tests := []struct {
		name          string
		reason        ports.DecrementReason
		available     int
		expectedType  domain.MovementType
		expectedError bool
	}{
		{
			name:         "manual_decrement_with_enough_stock",
			reason:       ports.DecrementManual,
			available:    5,
			expectedType: domain.MovementManualDecrement,
		},
		{
			name:         "clearance_decrement_with_enough_stock",
			reason:       ports.DecrementClearance,
			available:    2,
			expectedType: domain.MovementClearance,
		},
		{
			name:          "rejects_when_stock_short",
			reason:        ports.DecrementManual,
			available:     1,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newStockService(t)
			stock := helpers.CreateTestStock(entry.ProductID, entry.SizeID, locationID, tt.available)

			inTransaction(m)
			m.stock.EXPECT().FindForUpdateTx(gomock.Any(), gomock.Any(), entry.ProductID, entry.SizeID, locationID).
				Return(stock, nil)
			if !tt.expectedError {
				m.stock.EXPECT().DecrementTx(gomock.Any(), gomock.Any(), stock.ID, entry.Quantity).Return(nil)
				m.movements.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgx.Tx, mv *domain.StockMovement) error {
						assert.Equal(t, tt.expectedType, mv.Type)
						return nil
					})
			}

			err := svc.Decrement(context.Background(), locationID, userID, entry, tt.reason, "inventaire")
			if tt.expectedError {
				var insufficient *domain.ErrInsufficientStock
				require.ErrorAs(t, err, &insufficient)
				assert.Equal(t, tt.available, insufficient.Available)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("rejects_unknown_reason", func(t *testing.T) {
		svc, _ := newStockService(t)
		err := svc.Decrement(context.Background(), locationID, userID, entry, ports.DecrementReason("OOPS"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown decrement reason")
	})
}

func TestStockService_CheckStock(t *testing.T) {
	svc, m := newStockService(t)
	product := helpers.CreateTestProduct()
	sizeID := product.SizeIDs[0]
	locationID := uuid.New()
	stock := helpers.CreateTestStock(product.ID, sizeID, locationID, 4)

	m.stock.EXPECT().FindForProduct(gomock.Any(), product.ID).Return([]*domain.Stock{stock}, nil)
	m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
	m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(&domain.Size{ID: sizeID, Name: "38"}, nil)
	m.catalog.EXPECT().FindLocationByID(gomock.Any(), locationID).
		Return(&domain.Location{ID: locationID, Name: "Boutique Centre"}, nil)

	levels, err := svc.CheckStock(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, product.Name, levels[0].ProductName)
	assert.Equal(t, "38", levels[0].SizeName)
	assert.Equal(t, "Boutique Centre", levels[0].LocationName)
	assert.Equal(t, 4, levels[0].Stock.Quantity)
}
