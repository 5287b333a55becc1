// internal/core/services/report_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

type reportMocks struct {
	movements    *mocks.MockMovementRepository
	catalog      *mocks.MockCatalogRepository
	stock        *mocks.MockStockRepository
	reservations *mocks.MockReservationRepository
	transfers    *mocks.MockTransferRepository
	cache        *mocks.MockCacheRepository
}

func newReportService(t *testing.T) (*services.ReportService, *reportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &reportMocks{
		movements:    mocks.NewMockMovementRepository(ctrl),
		catalog:      mocks.NewMockCatalogRepository(ctrl),
		stock:        mocks.NewMockStockRepository(ctrl),
		reservations: mocks.NewMockReservationRepository(ctrl),
		transfers:    mocks.NewMockTransferRepository(ctrl),
		cache:        mocks.NewMockCacheRepository(ctrl),
	}
	svc := services.NewReportService(m.movements, m.catalog, m.stock, m.reservations, m.transfers, m.cache, helpers.TestLogger())
	return svc, m
}

func TestReportService_SalesReport(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	t.Run("aggregates_units_and_totals", func(t *testing.T) {
		svc, m := newReportService(t)
		userID := uuid.New()
		locationID := uuid.New()
		soldAt := time.Date(2026, 8, 10, 15, 4, 5, 0, time.UTC)

		// two lines of the same basket share user, location and timestamp
		voucher := int64(20)
		lineA := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.UserID = userID
			mv.LocationID = locationID
			mv.CreatedAt = soldAt
			mv.Quantity = 2
			original := decimal.NewFromFloat(98.00)
			final := decimal.NewFromFloat(88.20)
			mv.OriginalPrice = &original
			mv.FinalPrice = &final
			mv.VoucherAmount = &voucher
		})
		lineB := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.UserID = userID
			mv.LocationID = locationID
			mv.CreatedAt = soldAt
			mv.Quantity = 1
			original := decimal.NewFromFloat(20.00)
			final := decimal.NewFromFloat(10.00)
			mv.OriginalPrice = &original
			mv.FinalPrice = &final
			mv.VoucherAmount = &voucher
		})

		m.movements.EXPECT().ListSales(gomock.Any(), from, to).
			Return([]*domain.StockMovement{lineA, lineB}, nil)

		report, err := svc.SalesReport(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, 3, report.UnitsSold)
		// one basket, so the shared voucher counts once
		assert.Equal(t, 1, report.SaleCount)
		assert.Equal(t, int64(20), report.VoucherTotal)
		assert.True(t, report.GrossTotal.Equal(decimal.NewFromFloat(118.00)))
		assert.True(t, report.NetTotal.Equal(decimal.NewFromFloat(98.20)))
		assert.True(t, report.CashTotal.Equal(decimal.NewFromFloat(78.20)))
	})

	t.Run("recovers_voucher_from_legacy_comment", func(t *testing.T) {
		svc, m := newReportService(t)
		legacy := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.VoucherAmount = nil
			mv.Comment = "Vente. PU: 49.00. Remise article: 0%. Remise panier: 0%. " +
				"Total panier après toutes remises: 49.00. Bon d'achat utilisé: 15. " +
				"Montant payé réellement: 34.00."
		})

		m.movements.EXPECT().ListSales(gomock.Any(), from, to).
			Return([]*domain.StockMovement{legacy}, nil)

		report, err := svc.SalesReport(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(15), report.VoucherTotal)
	})

	t.Run("distinct_baskets_count_their_vouchers_separately", func(t *testing.T) {
		svc, m := newReportService(t)
		v1, v2 := int64(10), int64(5)
		saleOne := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.VoucherAmount = &v1
			mv.CreatedAt = time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC)
		})
		saleTwo := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.VoucherAmount = &v2
			mv.CreatedAt = time.Date(2026, 8, 10, 11, 0, 0, 0, time.UTC)
		})

		m.movements.EXPECT().ListSales(gomock.Any(), from, to).
			Return([]*domain.StockMovement{saleOne, saleTwo}, nil)

		report, err := svc.SalesReport(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, 2, report.SaleCount)
		assert.Equal(t, int64(15), report.VoucherTotal)
	})

	t.Run("cash_total_never_negative", func(t *testing.T) {
		svc, m := newReportService(t)
		voucher := int64(200)
		sale := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
			mv.VoucherAmount = &voucher
		})

		m.movements.EXPECT().ListSales(gomock.Any(), from, to).
			Return([]*domain.StockMovement{sale}, nil)

		report, err := svc.SalesReport(context.Background(), from, to)
		require.NoError(t, err)
		assert.True(t, report.CashTotal.IsZero())
	})
}

func TestReportService_SalesReportXLSX(t *testing.T) {
	svc, m := newReportService(t)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	product := helpers.CreateTestProduct()
	sale := helpers.CreateTestSaleMovement(func(mv *domain.StockMovement) {
		mv.ProductID = product.ID
	})

	m.movements.EXPECT().ListSales(gomock.Any(), from, to).
		Return([]*domain.StockMovement{sale}, nil).Times(2)
	m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)

	data, err := svc.SalesReportXLSX(context.Background(), from, to)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
