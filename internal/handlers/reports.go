// internal/handlers/reports.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// ReportHandler serves the dashboard snapshot and sales reports.
type ReportHandler struct {
	service ports.ReportService
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ports.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "reports")),
	}
}

// Dashboard handles GET /api/v1/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build dashboard",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, summary)
}

// SalesReport handles GET /api/v1/reports/sales?from=...&to=...
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parsePeriod(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.service.SalesReport(ctx, from, to)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build sales report",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to build sales report")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, report)
}

// SalesReportXLSX handles GET /api/v1/reports/sales/xlsx?from=...&to=...
func (h *ReportHandler) SalesReportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parsePeriod(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.SalesReportXLSX(ctx, from, to)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render sales workbook",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to render sales workbook")
		return
	}

	filename := fmt.Sprintf("ventes_%s_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write workbook response",
			slog.String("error", err.Error()))
	}
}

// parsePeriod reads the report period. Dates are inclusive days; a
// missing period defaults to the current day.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := now

	if s := q.Get("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %s", s)
		}
		from = parsed
	}
	if s := q.Get("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %s", s)
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date precedes from date")
	}

	return from, to, nil
}
