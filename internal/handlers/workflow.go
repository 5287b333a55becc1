// internal/handlers/workflow.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// WorkflowHandler handles reservation and transfer HTTP requests. The
// acting location comes from the request body so that wrong-location
// transitions are rejected server-side.
type WorkflowHandler struct {
	service ports.WorkflowService
	logger  *slog.Logger
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(service ports.WorkflowService, logger *slog.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "workflow")),
	}
}

// CreateReservationRequest represents the request body for a reservation
type CreateReservationRequest struct {
	ProductID          uuid.UUID  `json:"product_id"`
	SizeID             uuid.UUID  `json:"size_id"`
	LocationID         uuid.UUID  `json:"location_id"`
	RequestingLocation uuid.UUID  `json:"requesting_location_id"`
	Quantity           int        `json:"quantity"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}

// CreateTransferRequest represents the request body for a transfer
type CreateTransferRequest struct {
	ProductID      uuid.UUID `json:"product_id"`
	SizeID         uuid.UUID `json:"size_id"`
	FromLocationID uuid.UUID `json:"from_location_id"`
	ToLocationID   uuid.UUID `json:"to_location_id"`
	Quantity       int       `json:"quantity"`
}

// TransitionRequest names the location acting on a workflow record.
type TransitionRequest struct {
	LocationID uuid.UUID `json:"location_id"`
}

// CreateReservation handles POST /api/v1/reservations
func (h *WorkflowHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	reservation, err := h.service.CreateReservation(ctx, ports.CreateReservationParams{
		ProductID:          req.ProductID,
		SizeID:             req.SizeID,
		LocationID:         req.LocationID,
		RequestingLocation: req.RequestingLocation,
		Quantity:           req.Quantity,
		CreatedBy:          userID,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create reservation",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, reservation)
}

// ListReservations handles GET /api/v1/reservations?location_id=...
func (h *WorkflowHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "location_id query parameter is required")
		return
	}

	reservations, err := h.service.ListReservations(ctx, locationID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"reservations": reservations})
}

// ConfirmReservation handles POST /api/v1/reservations/{id}/confirm
func (h *WorkflowHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	h.handleReservationTransition(w, r, h.service.ConfirmReservation)
}

// CompleteReservation handles POST /api/v1/reservations/{id}/complete
func (h *WorkflowHandler) CompleteReservation(w http.ResponseWriter, r *http.Request) {
	h.handleReservationTransition(w, r, h.service.CompleteReservation)
}

// CancelReservation handles POST /api/v1/reservations/{id}/cancel
func (h *WorkflowHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	h.handleReservationTransition(w, r, h.service.CancelReservation)
}

func (h *WorkflowHandler) handleReservationTransition(
	w http.ResponseWriter, r *http.Request,
	transition func(ctx context.Context, id, actingLocation uuid.UUID) (*ports.TransitionResult, error),
) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := transition(ctx, id, req.LocationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "reservation transition rejected",
			slog.String("reservation_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// CreateTransfer handles POST /api/v1/transfers
func (h *WorkflowHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	transfer, err := h.service.CreateTransfer(ctx, ports.CreateTransferParams{
		ProductID:      req.ProductID,
		SizeID:         req.SizeID,
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		Quantity:       req.Quantity,
		CreatedBy:      userID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create transfer",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, transfer)
}

// ListTransfers handles GET /api/v1/transfers?location_id=...
func (h *WorkflowHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "location_id query parameter is required")
		return
	}

	transfers, err := h.service.ListTransfers(ctx, locationID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"transfers": transfers})
}

// PrepareTransfer handles POST /api/v1/transfers/{id}/prepare
func (h *WorkflowHandler) PrepareTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid transfer ID format")
		return
	}
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.PrepareTransfer(ctx, id, req.LocationID, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "transfer prepare rejected",
			slog.String("transfer_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// CancelTransfer handles POST /api/v1/transfers/{id}/cancel
func (h *WorkflowHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid transfer ID format")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CancelTransfer(ctx, id, req.LocationID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
