// internal/core/ports/report_service.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesReport aggregates the SALE ledger over a period. Voucher totals
// prefer the structured column and fall back to parsing legacy audit
// comments, de-duplicated per sale.
type SalesReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	SaleCount    int             `json:"sale_count"`
	UnitsSold    int             `json:"units_sold"`
	GrossTotal   decimal.Decimal `json:"gross_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
	VoucherTotal int64           `json:"voucher_total"`
	CashTotal    decimal.Decimal `json:"cash_total"`
}

// DashboardSummary is the cached landing-page snapshot.
type DashboardSummary struct {
	ProductCount     int64           `json:"product_count"`
	StockUnits       int64           `json:"stock_units"`
	TodaySaleCount   int             `json:"today_sale_count"`
	TodayNetTotal    decimal.Decimal `json:"today_net_total"`
	OpenTransfers    int64           `json:"open_transfers"`
	OpenReservations int64           `json:"open_reservations"`
}

// ReportService is the application port for reporting reads.
type ReportService interface {
	SalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error)
	SalesReportXLSX(ctx context.Context, from, to time.Time) ([]byte, error)
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}
