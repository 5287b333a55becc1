// internal/handlers/catalog.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// CatalogHandler handles catalog management HTTP requests.
type CatalogHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// ProductRequest represents the request body for creating or updating a
// product. The reference, slug and barcode base are always generated.
type ProductRequest struct {
	Name       string          `json:"name"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	SeasonID   uuid.UUID       `json:"season_id"`
	CategoryID uuid.UUID       `json:"category_id"`
	ColorID    uuid.UUID       `json:"color_id"`
	Price      decimal.Decimal `json:"price"`
	SizeIDs    []uuid.UUID     `json:"size_ids"`
}

// Validate validates the product request
func (r *ProductRequest) Validate() error {
	if r.Name == "" {
		return errRequired("name")
	}
	if r.SupplierID == uuid.Nil {
		return errRequired("supplier_id")
	}
	if r.SeasonID == uuid.Nil {
		return errRequired("season_id")
	}
	if r.CategoryID == uuid.Nil {
		return errRequired("category_id")
	}
	if r.ColorID == uuid.Nil {
		return errRequired("color_id")
	}
	if r.Price.IsNegative() {
		return errNegative("price")
	}
	if len(r.SizeIDs) == 0 {
		return errRequired("size_ids")
	}
	return nil
}

func (r *ProductRequest) toParams() ports.CreateProductParams {
	return ports.CreateProductParams{
		Name:       r.Name,
		SupplierID: r.SupplierID,
		SeasonID:   r.SeasonID,
		CategoryID: r.CategoryID,
		ColorID:    r.ColorID,
		Price:      r.Price,
		SizeIDs:    r.SizeIDs,
	}
}

// LookupRequest represents the request body for a catalog lookup entity
type LookupRequest struct {
	Name      string `json:"name"`
	Year      int    `json:"year,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
	IsStore   *bool  `json:"is_store,omitempty"`
}

// CreateProduct handles POST /api/v1/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.service.CreateProduct(ctx, req.toParams())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product",
			slog.String("name", req.Name),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "product created",
		slog.String("id", product.ID.String()),
		slog.String("reference", product.Reference))

	respondJSON(w, h.logger, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.service.UpdateProduct(ctx, id, req.toParams())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// ArchiveProduct handles POST /api/v1/products/{id}/archive
func (h *CatalogHandler) ArchiveProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ArchiveProduct(ctx, id, req.Archived); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"id":       id.String(),
		"archived": req.Archived,
	})
}

// GetProduct handles GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.ListProducts(ctx, h.parseProductFilter(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, list)
}

// parseProductFilter parses query parameters for listing products
func (h *CatalogHandler) parseProductFilter(r *http.Request) ports.ProductFilter {
	filter := ports.ProductFilter{
		Page:     1,
		PageSize: 50,
	}

	q := r.URL.Query()
	filter.Search = q.Get("search")

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		if limit > 100 {
			limit = 100
		}
		filter.PageSize = limit
	}

	if id, err := uuid.Parse(q.Get("supplier_id")); err == nil {
		filter.SupplierID = id
	}
	if id, err := uuid.Parse(q.Get("season_id")); err == nil {
		filter.SeasonID = id
	}
	if id, err := uuid.Parse(q.Get("category_id")); err == nil {
		filter.CategoryID = id
	}
	if archived := q.Get("archived"); archived != "" {
		if val, err := strconv.ParseBool(archived); err == nil {
			filter.Archived = &val
		}
	}

	return filter
}

// CreateSupplier handles POST /api/v1/suppliers
func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		return h.service.CreateSupplier(ctx, req.Name)
	})
}

// CreateSeason handles POST /api/v1/seasons
func (h *CatalogHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		return h.service.CreateSeason(ctx, req.Name, req.Year)
	})
}

// CreateCategory handles POST /api/v1/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		return h.service.CreateCategory(ctx, req.Name)
	})
}

// CreateColor handles POST /api/v1/colors
func (h *CatalogHandler) CreateColor(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		return h.service.CreateColor(ctx, req.Name)
	})
}

// CreateSize handles POST /api/v1/sizes
func (h *CatalogHandler) CreateSize(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		return h.service.CreateSize(ctx, req.Name, req.SortOrder)
	})
}

// CreateLocation handles POST /api/v1/locations
func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	h.createLookup(w, r, func(ctx context.Context, req LookupRequest) (interface{}, error) {
		isStore := true
		if req.IsStore != nil {
			isStore = *req.IsStore
		}
		return h.service.CreateLocation(ctx, req.Name, isStore)
	})
}

func (h *CatalogHandler) createLookup(
	w http.ResponseWriter, r *http.Request,
	create func(ctx context.Context, req LookupRequest) (interface{}, error),
) {
	ctx := r.Context()

	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, h.logger, http.StatusBadRequest, "name is required")
		return
	}

	entity, err := create(ctx, req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, entity)
}

// ListSuppliers handles GET /api/v1/suppliers
func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "suppliers", func(ctx context.Context) (interface{}, error) {
		return h.service.ListSuppliers(ctx)
	})
}

// ListSeasons handles GET /api/v1/seasons
func (h *CatalogHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "seasons", func(ctx context.Context) (interface{}, error) {
		return h.service.ListSeasons(ctx)
	})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "categories", func(ctx context.Context) (interface{}, error) {
		return h.service.ListCategories(ctx)
	})
}

// ListColors handles GET /api/v1/colors
func (h *CatalogHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "colors", func(ctx context.Context) (interface{}, error) {
		return h.service.ListColors(ctx)
	})
}

// ListSizes handles GET /api/v1/sizes
func (h *CatalogHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "sizes", func(ctx context.Context) (interface{}, error) {
		return h.service.ListSizes(ctx)
	})
}

// ListLocations handles GET /api/v1/locations
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	h.listLookup(w, r, "locations", func(ctx context.Context) (interface{}, error) {
		return h.service.ListLocations(ctx)
	})
}

func (h *CatalogHandler) listLookup(
	w http.ResponseWriter, r *http.Request, key string,
	list func(ctx context.Context) (interface{}, error),
) {
	ctx := r.Context()

	entities, err := list(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list "+key,
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{key: entities})
}
