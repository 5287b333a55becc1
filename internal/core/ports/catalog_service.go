// internal/core/ports/catalog_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// CreateProductParams carries the user input for a new product. The
// reference, slug and barcode base are generated, never supplied.
type CreateProductParams struct {
	Name       string
	SupplierID uuid.UUID
	SeasonID   uuid.UUID
	CategoryID uuid.UUID
	ColorID    uuid.UUID
	Price      decimal.Decimal
	SizeIDs    []uuid.UUID
}

// ProductList is a paginated product listing.
type ProductList struct {
	Products   []*domain.Product `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

// CatalogService is the application port for catalog management.
type CatalogService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params CreateProductParams) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id uuid.UUID, archived bool) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductList, error)

	CreateSupplier(ctx context.Context, name string) (*domain.Supplier, error)
	CreateSeason(ctx context.Context, name string, year int) (*domain.Season, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	CreateColor(ctx context.Context, name string) (*domain.Color, error)
	CreateSize(ctx context.Context, name string, sortOrder int) (*domain.Size, error)
	CreateLocation(ctx context.Context, name string, isStore bool) (*domain.Location, error)

	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	ListSeasons(ctx context.Context) ([]*domain.Season, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListColors(ctx context.Context) ([]*domain.Color, error)
	ListSizes(ctx context.Context) ([]*domain.Size, error)
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}
