// internal/core/ports/catalog_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// ProductFilter narrows product list queries.
type ProductFilter struct {
	Search     string
	SupplierID uuid.UUID
	SeasonID   uuid.UUID
	CategoryID uuid.UUID
	Archived   *bool
	Page       int
	PageSize   int
}

// CatalogRepository is the persistence port for the product catalog and
// its lookup entities. Implemented by the database adapter.
type CatalogRepository interface {
	SaveProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindProductByReference(ctx context.Context, reference string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	BarcodeBaseExists(ctx context.Context, base int) (bool, error)

	SaveSupplier(ctx context.Context, s *domain.Supplier) error
	FindSupplierByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)

	SaveSeason(ctx context.Context, s *domain.Season) error
	FindSeasonByID(ctx context.Context, id uuid.UUID) (*domain.Season, error)
	ListSeasons(ctx context.Context) ([]*domain.Season, error)

	SaveCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	SaveColor(ctx context.Context, c *domain.Color) error
	FindColorByID(ctx context.Context, id uuid.UUID) (*domain.Color, error)
	ListColors(ctx context.Context) ([]*domain.Color, error)

	SaveSize(ctx context.Context, s *domain.Size) error
	FindSizeByID(ctx context.Context, id uuid.UUID) (*domain.Size, error)
	ListSizes(ctx context.Context) ([]*domain.Size, error)

	SaveLocation(ctx context.Context, l *domain.Location) error
	FindLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}
