// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// StockHandler handles non-sale stock mutations and stock lookups.
type StockHandler struct {
	service ports.StockService
	logger  *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.StockService, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stock")),
	}
}

// StockBatchRequest represents a batch of stock entries for one location
type StockBatchRequest struct {
	LocationID uuid.UUID          `json:"location_id"`
	Entries    []ports.StockEntry `json:"entries"`
}

// Validate validates the stock batch request
func (r *StockBatchRequest) Validate() error {
	if r.LocationID == uuid.Nil {
		return errRequired("location_id")
	}
	if len(r.Entries) == 0 {
		return errRequired("entries")
	}
	return nil
}

// DecrementRequest represents an admin decrement of one stock row
type DecrementRequest struct {
	LocationID uuid.UUID             `json:"location_id"`
	Entry      ports.StockEntry      `json:"entry"`
	Reason     ports.DecrementReason `json:"reason"`
	Comment    string                `json:"comment,omitempty"`
}

// AddStock handles POST /api/v1/stock/add
func (h *StockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req StockBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.AddStock(ctx, req.LocationID, userID, req.Entries)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add stock",
			slog.String("location_id", req.LocationID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// ReturnStock handles POST /api/v1/stock/return
func (h *StockHandler) ReturnStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req StockBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ReturnStock(ctx, req.LocationID, userID, req.Entries); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Stock returned"})
}

// Reassort handles POST /api/v1/stock/reassort
func (h *StockHandler) Reassort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req StockBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Reassort(ctx, req.LocationID, userID, req.Entries); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Stock reassorted"})
}

// Decrement handles POST /api/v1/stock/decrement
func (h *StockHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req DecrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Reason != ports.DecrementManual && req.Reason != ports.DecrementClearance {
		respondError(w, h.logger, http.StatusBadRequest, "reason must be MANUAL or CLEARANCE")
		return
	}

	if err := h.service.Decrement(ctx, req.LocationID, userID, req.Entry, req.Reason, req.Comment); err != nil {
		h.logger.ErrorContext(ctx, "failed to decrement stock",
			slog.String("location_id", req.LocationID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Stock decremented"})
}

// CheckStock handles GET /api/v1/stock/product/{id}
func (h *StockHandler) CheckStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	levels, err := h.service.CheckStock(ctx, productID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"levels": levels})
}

// LocationStock handles GET /api/v1/stock/location/{id}
func (h *StockHandler) LocationStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locationID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	levels, err := h.service.LocationStock(ctx, locationID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"levels": levels})
}
