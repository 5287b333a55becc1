// internal/handlers/labels.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// LabelHandler handles label sheet printing HTTP requests.
type LabelHandler struct {
	service ports.LabelService
	logger  *slog.Logger
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(service ports.LabelService, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "labels")),
	}
}

// PrintRequest represents the request body for queuing a label print
type PrintRequest struct {
	Labels []ports.LabelRequest `json:"labels"`
}

// EnqueuePrint handles POST /api/v1/labels/print
func (h *LabelHandler) EnqueuePrint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req PrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Labels) == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "labels is required")
		return
	}

	job, err := h.service.EnqueuePrint(ctx, userID, req.Labels)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to queue label print",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, job)
}

// GetJob handles GET /api/v1/labels/jobs/{id}
func (h *LabelHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	job, err := h.service.GetJob(ctx, id)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, h.logger, http.StatusOK, job)
}

// State handles GET /api/v1/labels/state
func (h *LabelHandler) State(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := h.service.State(ctx)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, state)
}
