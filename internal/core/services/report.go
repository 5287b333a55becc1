// internal/core/services/report.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// legacyVoucherRe recovers the voucher amount from audit comments written
// before the structured voucher_amount column existed. Any wording change
// in the sentence silently breaks this scan, which is why new movements
// carry the column.
var legacyVoucherRe = regexp.MustCompile(`Bon d'achat utilisé:\s*(\d+)`)

const dashboardCacheKey = "dashboard:summary"
const dashboardCacheTTL = time.Minute

// ReportService aggregates the sale ledger and serves the cached
// dashboard snapshot.
type ReportService struct {
	movements    ports.MovementRepository
	catalog      ports.CatalogRepository
	stock        ports.StockRepository
	reservations ports.ReservationRepository
	transfers    ports.TransferRepository
	cache        ports.CacheRepository
	logger       *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service.
func NewReportService(
	movements ports.MovementRepository,
	catalog ports.CatalogRepository,
	stock ports.StockRepository,
	reservations ports.ReservationRepository,
	transfers ports.TransferRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		movements:    movements,
		catalog:      catalog,
		stock:        stock,
		reservations: reservations,
		transfers:    transfers,
		cache:        cache,
		logger:       logger.With(slog.String("service", "report")),
	}
}

// voucherOf extracts the voucher amount recorded on a movement, preferring
// the structured column over the legacy comment scan.
func voucherOf(m *domain.StockMovement) int64 {
	if m.VoucherAmount != nil {
		return *m.VoucherAmount
	}
	if match := legacyVoucherRe.FindStringSubmatch(m.Comment); match != nil {
		if v, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			return v
		}
	}
	return 0
}

// saleKey groups the movements of one basket. Lines of a single sale
// share user, location and commit timestamp; the voucher must count once
// per basket, not once per line.
func saleKey(m *domain.StockMovement) string {
	return fmt.Sprintf("%s|%s|%s", m.CreatedAt.Truncate(time.Second).Format(time.RFC3339), m.UserID, m.LocationID)
}

// SalesReport aggregates SALE movements over [from, to].
func (s *ReportService) SalesReport(ctx context.Context, from, to time.Time) (*ports.SalesReport, error) {
	sales, err := s.movements.ListSales(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	report := &ports.SalesReport{From: from, To: to}
	seenSales := make(map[string]bool)

	for _, m := range sales {
		report.UnitsSold += m.Quantity
		if m.OriginalPrice != nil {
			report.GrossTotal = report.GrossTotal.Add(*m.OriginalPrice)
		}
		if m.FinalPrice != nil {
			report.NetTotal = report.NetTotal.Add(*m.FinalPrice)
		}

		key := saleKey(m)
		if !seenSales[key] {
			seenSales[key] = true
			report.SaleCount++
			report.VoucherTotal += voucherOf(m)
		}
	}

	report.CashTotal = report.NetTotal.Sub(decimal.NewFromInt(report.VoucherTotal))
	if report.CashTotal.IsNegative() {
		report.CashTotal = decimal.Zero
	}

	return report, nil
}

// SalesReportXLSX renders the report plus its sale lines as a workbook.
func (s *ReportService) SalesReportXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	report, err := s.SalesReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.movements.ListSales(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	wb := xlsx.NewFile()

	summary, err := wb.AddSheet("Résumé")
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	addRow(summary, "Période", fmt.Sprintf("%s — %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	addRow(summary, "Ventes", strconv.Itoa(report.SaleCount))
	addRow(summary, "Articles vendus", strconv.Itoa(report.UnitsSold))
	addRow(summary, "Total brut", report.GrossTotal.StringFixed(2))
	addRow(summary, "Total net", report.NetTotal.StringFixed(2))
	addRow(summary, "Bons d'achat", strconv.FormatInt(report.VoucherTotal, 10))
	addRow(summary, "Encaissé", report.CashTotal.StringFixed(2))

	detail, err := wb.AddSheet("Ventes")
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	addRow(detail, "Date", "Produit", "Taille", "Quantité", "Prix original", "Prix final", "Remise", "Bon d'achat")
	products := make(map[string]*domain.Product)
	for _, m := range sales {
		productName := m.ProductID.String()
		if p, ok := products[m.ProductID.String()]; ok {
			if p != nil {
				productName = p.Name
			}
		} else {
			p, err := s.catalog.FindProductByID(ctx, m.ProductID)
			if err == nil {
				products[m.ProductID.String()] = p
				if p != nil {
					productName = p.Name
				}
			}
		}

		original, final := "", ""
		if m.OriginalPrice != nil {
			original = m.OriginalPrice.StringFixed(2)
		}
		if m.FinalPrice != nil {
			final = m.FinalPrice.StringFixed(2)
		}
		addRow(detail,
			m.CreatedAt.Format("2006-01-02 15:04"),
			productName,
			m.SizeID.String(),
			strconv.Itoa(m.Quantity),
			original,
			final,
			m.DiscountLabel,
			strconv.FormatInt(voucherOf(m), 10),
		)
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

// Dashboard returns the cached landing-page snapshot.
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardSummary, error) {
	var summary ports.DashboardSummary
	err := s.cache.GetOrSet(ctx, dashboardCacheKey, &summary, func() (interface{}, error) {
		return s.buildDashboard(ctx)
	}, dashboardCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return &summary, nil
}

func (s *ReportService) buildDashboard(ctx context.Context) (*ports.DashboardSummary, error) {
	_, productCount, err := s.catalog.ListProducts(ctx, ports.ProductFilter{Page: 1, PageSize: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	stockUnits, err := s.stock.TotalUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stock units: %w", err)
	}
	openReservations, err := s.reservations.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	openTransfers, err := s.transfers.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transfers: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.SalesReport(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		ProductCount:     productCount,
		StockUnits:       stockUnits,
		TodaySaleCount:   today.SaleCount,
		TodayNetTotal:    today.NetTotal,
		OpenTransfers:    openTransfers,
		OpenReservations: openReservations,
	}, nil
}
