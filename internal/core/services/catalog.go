// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// CatalogService manages products and the catalog lookup entities.
// References and barcode bases are generated here, never supplied by the
// caller.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// maxBarcodeAttempts bounds the retry loop on barcode base collisions.
const maxBarcodeAttempts = 10

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo ports.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// CreateProduct generates the reference, slug and a unique barcode base,
// then persists the product.
func (s *CatalogService) CreateProduct(ctx context.Context, params ports.CreateProductParams) (*domain.Product, error) {
	supplier, err := s.repo.FindSupplierByID(ctx, params.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier: %w", err)
	}
	season, err := s.repo.FindSeasonByID(ctx, params.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season: %w", err)
	}
	color, err := s.repo.FindColorByID(ctx, params.ColorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load color: %w", err)
	}
	if supplier == nil || season == nil || color == nil {
		return nil, fmt.Errorf("supplier, season and color must exist")
	}

	product := &domain.Product{
		Name:       params.Name,
		SupplierID: params.SupplierID,
		SeasonID:   params.SeasonID,
		CategoryID: params.CategoryID,
		ColorID:    params.ColorID,
		Price:      params.Price,
		SizeIDs:    params.SizeIDs,
		Reference:  domain.BuildReference(supplier.Name, season.Name, season.Year, params.Name, color.Name),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindProductByReference(ctx, product.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to check reference: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("reference %s already exists", product.Reference)
	}

	base, err := s.uniqueBarcodeBase(ctx)
	if err != nil {
		return nil, err
	}
	product.BarcodeBase = base

	product.PrepareForStorage()
	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("reference", product.Reference))
	return product, nil
}

func (s *CatalogService) uniqueBarcodeBase(ctx context.Context) (int, error) {
	for i := 0; i < maxBarcodeAttempts; i++ {
		base := domain.NewBarcodeBase()
		exists, err := s.repo.BarcodeBaseExists(ctx, base)
		if err != nil {
			return 0, fmt.Errorf("failed to check barcode base: %w", err)
		}
		if !exists {
			return base, nil
		}
	}
	return 0, fmt.Errorf("could not allocate a unique barcode base after %d attempts", maxBarcodeAttempts)
}

// UpdateProduct changes the editable fields. Reference and barcode base
// are left untouched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, params ports.CreateProductParams) (*domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found: %s", id)
	}

	product.Name = params.Name
	product.SupplierID = params.SupplierID
	product.SeasonID = params.SeasonID
	product.CategoryID = params.CategoryID
	product.ColorID = params.ColorID
	product.Price = params.Price
	product.SizeIDs = params.SizeIDs
	product.Slug = slug.Make(params.Name)
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// ArchiveProduct toggles the archived flag. Archived products stay in the
// catalog for reporting but cannot be sold.
func (s *CatalogService) ArchiveProduct(ctx context.Context, id uuid.UUID, archived bool) error {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product not found: %s", id)
	}
	product.Archived = archived
	product.UpdatedAt = time.Now()
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product archive flag changed",
		slog.String("product_id", id.String()),
		slog.Bool("archived", archived))
	return nil
}

// GetProduct returns one product by identifier.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found: %s", id)
	}
	return product, nil
}

// ListProducts returns a filtered, paginated product listing.
func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) (*ports.ProductList, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &ports.ProductList{
		Products:   products,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// CreateSupplier adds a vendor.
func (s *CatalogService) CreateSupplier(ctx context.Context, name string) (*domain.Supplier, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	supplier := &domain.Supplier{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}
	return supplier, nil
}

// CreateSeason adds a commercial season.
func (s *CatalogService) CreateSeason(ctx context.Context, name string, year int) (*domain.Season, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year out of range")
	}
	season := &domain.Season{
		ID:        uuid.New(),
		Name:      name,
		Year:      year,
		Slug:      slug.Make(fmt.Sprintf("%s-%d", name, year)),
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveSeason(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to save season: %w", err)
	}
	return season, nil
}

// CreateCategory adds a product family.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	category := &domain.Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

// CreateColor adds a color.
func (s *CatalogService) CreateColor(ctx context.Context, name string) (*domain.Color, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	color := &domain.Color{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveColor(ctx, color); err != nil {
		return nil, fmt.Errorf("failed to save color: %w", err)
	}
	return color, nil
}

// CreateSize adds a size.
func (s *CatalogService) CreateSize(ctx context.Context, name string, sortOrder int) (*domain.Size, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	size := &domain.Size{
		ID:        uuid.New(),
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveSize(ctx, size); err != nil {
		return nil, fmt.Errorf("failed to save size: %w", err)
	}
	return size, nil
}

// CreateLocation adds a store or warehouse.
func (s *CatalogService) CreateLocation(ctx context.Context, name string, isStore bool) (*domain.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	location := &domain.Location{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		IsStore:   isStore,
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	return location, nil
}

// ListSuppliers returns all suppliers.
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

// ListSeasons returns all seasons.
func (s *CatalogService) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	return s.repo.ListSeasons(ctx)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// ListColors returns all colors.
func (s *CatalogService) ListColors(ctx context.Context) ([]*domain.Color, error) {
	return s.repo.ListColors(ctx)
}

// ListSizes returns all sizes.
func (s *CatalogService) ListSizes(ctx context.Context) ([]*domain.Size, error) {
	return s.repo.ListSizes(ctx)
}

// ListLocations returns all locations.
func (s *CatalogService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.repo.ListLocations(ctx)
}
