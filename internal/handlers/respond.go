// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// headerRegisterID identifies the register owning the cart on sale
// endpoints. headerUserID carries the acting operator on mutations.
const (
	headerRegisterID = "X-Register-ID"
	headerUserID     = "X-User-ID"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps business-rule and lookup failures onto the
// error taxonomy: 400 for malformed input, 409 for rule violations,
// 404 for missing records, 500 otherwise.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	respondError(w, logger, statusForError(err), err.Error())
}

func statusForError(err error) int {
	var insufficient *domain.ErrInsufficientStock
	switch {
	case errors.As(err, &insufficient),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrWrongLocation),
		errors.Is(err, domain.ErrDiscountsDisabled),
		errors.Is(err, domain.ErrProductArchived):
		return http.StatusConflict
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrTransferNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrMissingProductOrSize):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidLineDiscount),
		errors.Is(err, domain.ErrInvalidBasketDiscount),
		errors.Is(err, domain.ErrInvalidSaleWindow),
		errors.Is(err, domain.ErrNegativeVoucher),
		errors.Is(err, domain.ErrNonPositiveQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrSizeNotInProductSet):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func errNegative(field string) error {
	return fmt.Errorf("%s cannot be negative", field)
}

// registerFrom extracts the register identity header.
func registerFrom(r *http.Request) (string, bool) {
	id := r.Header.Get(headerRegisterID)
	return id, id != ""
}

// userFrom extracts the acting operator header.
func userFrom(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get(headerUserID))
}

// pathUUID parses a UUID path segment.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}
