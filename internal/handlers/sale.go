// internal/handlers/sale.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// SaleHandler handles register cart and checkout HTTP requests. Every
// endpoint requires the X-Register-ID header naming the cart owner.
type SaleHandler struct {
	service ports.SaleService
	logger  *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service ports.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "sale")),
	}
}

// AddToCartRequest represents the request body for adding a cart line
type AddToCartRequest struct {
	LocationID      uuid.UUID `json:"location_id"`
	ProductID       uuid.UUID `json:"product_id"`
	SizeID          uuid.UUID `json:"size_id"`
	Quantity        int       `json:"quantity"`
	DiscountPercent int       `json:"discount_percent"`
}

// DiscountRequest carries a discount percentage for a cart or a line.
type DiscountRequest struct {
	ProductID uuid.UUID `json:"product_id,omitempty"`
	SizeID    uuid.UUID `json:"size_id,omitempty"`
	Percent   int       `json:"percent"`
}

// VoucherRequest carries the voucher amount in whole currency units.
type VoucherRequest struct {
	Amount int64 `json:"amount"`
}

// SaleModeRequest carries the discount gate settings.
type SaleModeRequest struct {
	DiscountEnabled bool       `json:"discount_enabled"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
}

// GetCart handles GET /api/v1/cart
func (h *SaleHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	view, err := h.service.GetCart(ctx, registerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cart",
			slog.String("register", registerID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// AddToCart handles POST /api/v1/cart/lines
func (h *SaleHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.service.AddToCart(ctx, ports.AddToCartParams{
		RegisterID:      registerID,
		LocationID:      req.LocationID,
		ProductID:       req.ProductID,
		SizeID:          req.SizeID,
		Quantity:        req.Quantity,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add to cart",
			slog.String("register", registerID),
			slog.String("product_id", req.ProductID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// RemoveFromCart handles DELETE /api/v1/cart/lines/{productId}/{sizeId}
func (h *SaleHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	productID, err := pathUUID(r, "productId")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	sizeID, err := pathUUID(r, "sizeId")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid size ID format")
		return
	}

	view, err := h.service.RemoveFromCart(ctx, registerID, productID, sizeID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// SetLineDiscount handles POST /api/v1/cart/line-discount
func (h *SaleHandler) SetLineDiscount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	var req DiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.SetLineDiscount(ctx, registerID, req.ProductID, req.SizeID, req.Percent)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// SetBasketDiscount handles POST /api/v1/cart/basket-discount
func (h *SaleHandler) SetBasketDiscount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	var req DiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.SetBasketDiscount(ctx, registerID, req.Percent)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// SetVoucher handles POST /api/v1/cart/voucher
func (h *SaleHandler) SetVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	var req VoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.SetVoucher(ctx, registerID, req.Amount)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, view)
}

// ClearCart handles DELETE /api/v1/cart
func (h *SaleHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}

	if err := h.service.ClearCart(ctx, registerID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// GetSaleMode handles GET /api/v1/sale-mode
func (h *SaleHandler) GetSaleMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode, err := h.service.GetSaleMode(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load sale mode",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, mode)
}

// UpdateSaleMode handles PUT /api/v1/sale-mode
func (h *SaleHandler) UpdateSaleMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaleModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	mode, err := h.service.SetSaleMode(ctx, ports.SaleModeUpdate{
		DiscountEnabled: req.DiscountEnabled,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
	})
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "sale mode updated",
		slog.Bool("discount_enabled", mode.DiscountEnabled))

	respondJSON(w, h.logger, http.StatusOK, mode)
}

// Checkout handles POST /api/v1/checkout
func (h *SaleHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registerID, ok := registerFrom(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "X-Register-ID header is required")
		return
	}
	userID, err := userFrom(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	result, err := h.service.Checkout(ctx, registerID, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "checkout failed",
			slog.String("register", registerID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "sale committed",
		slog.String("register", registerID),
		slog.Int("movements", result.MovementCount))

	respondJSON(w, h.logger, http.StatusOK, result)
}
