// internal/core/services/catalog_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

func newCatalogService(t *testing.T) (*services.CatalogService, *mocks.MockCatalogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	return services.NewCatalogService(repo, helpers.TestLogger()), repo
}

func TestCatalogService_CreateProduct(t *testing.T) {
	supplier := &domain.Supplier{ID: uuid.New(), Name: "Maison"}
	season := &domain.Season{ID: uuid.New(), Name: "Été", Year: 2026}
	color := &domain.Color{ID: uuid.New(), Name: "Bleu"}

	params := ports.CreateProductParams{
		Name:       "Robe longue à fleurs",
		SupplierID: supplier.ID,
		SeasonID:   season.ID,
		CategoryID: uuid.New(),
		ColorID:    color.ID,
		Price:      decimal.NewFromFloat(49.00),
		SizeIDs:    []uuid.UUID{uuid.New(), uuid.New()},
	}

	lookups := func(repo *mocks.MockCatalogRepository) {
		repo.EXPECT().FindSupplierByID(gomock.Any(), supplier.ID).Return(supplier, nil)
		repo.EXPECT().FindSeasonByID(gomock.Any(), season.ID).Return(season, nil)
		repo.EXPECT().FindColorByID(gomock.Any(), color.ID).Return(color, nil)
	}

	t.Run("generates_reference_and_barcode_base", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		lookups(repo)
		repo.EXPECT().FindProductByReference(gomock.Any(), "MAISON_ETE2026_ROBELONGUEAFLEURS_BLEU").
			Return(nil, nil)
		repo.EXPECT().BarcodeBaseExists(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				assert.NotEqual(t, uuid.Nil, p.ID)
				assert.Equal(t, "MAISON_ETE2026_ROBELONGUEAFLEURS_BLEU", p.Reference)
				assert.GreaterOrEqual(t, p.BarcodeBase, 100000)
				assert.LessOrEqual(t, p.BarcodeBase, 9999999)
				assert.Equal(t, "robe-longue-a-fleurs", p.Slug)
				return nil
			})

		product, err := svc.CreateProduct(context.Background(), params)
		require.NoError(t, err)
		assert.False(t, product.Archived)
	})

	t.Run("rejects_duplicate_reference", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		lookups(repo)
		repo.EXPECT().FindProductByReference(gomock.Any(), gomock.Any()).
			Return(helpers.CreateTestProduct(), nil)

		_, err := svc.CreateProduct(context.Background(), params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("retries_barcode_base_on_collision", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		lookups(repo)
		repo.EXPECT().FindProductByReference(gomock.Any(), gomock.Any()).Return(nil, nil)
		gomock.InOrder(
			repo.EXPECT().BarcodeBaseExists(gomock.Any(), gomock.Any()).Return(true, nil),
			repo.EXPECT().BarcodeBaseExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		repo.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateProduct(context.Background(), params)
		require.NoError(t, err)
	})

	t.Run("rejects_missing_supplier", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		repo.EXPECT().FindSupplierByID(gomock.Any(), supplier.ID).Return(nil, nil)
		repo.EXPECT().FindSeasonByID(gomock.Any(), season.ID).Return(season, nil)
		repo.EXPECT().FindColorByID(gomock.Any(), color.ID).Return(color, nil)

		_, err := svc.CreateProduct(context.Background(), params)
		require.Error(t, err)
	})

	t.Run("rejects_product_without_sizes", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		lookups(repo)
		bad := params
		bad.SizeIDs = nil

		_, err := svc.CreateProduct(context.Background(), bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size")
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	t.Run("keeps_reference_and_barcode_untouched", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		existing := helpers.CreateTestProduct()
		originalRef := existing.Reference
		originalBase := existing.BarcodeBase

		params := ports.CreateProductParams{
			Name:       "Robe renommée",
			SupplierID: existing.SupplierID,
			SeasonID:   existing.SeasonID,
			CategoryID: existing.CategoryID,
			ColorID:    existing.ColorID,
			Price:      decimal.NewFromFloat(59.00),
			SizeIDs:    existing.SizeIDs,
		}

		repo.EXPECT().FindProductByID(gomock.Any(), existing.ID).Return(existing, nil)
		repo.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				assert.Equal(t, originalRef, p.Reference)
				assert.Equal(t, originalBase, p.BarcodeBase)
				assert.Equal(t, "Robe renommée", p.Name)
				assert.Equal(t, "robe-renommee", p.Slug)
				return nil
			})

		updated, err := svc.UpdateProduct(context.Background(), existing.ID, params)
		require.NoError(t, err)
		assert.True(t, updated.Price.Equal(decimal.NewFromFloat(59.00)))
	})

	t.Run("rejects_unknown_product", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		id := uuid.New()
		repo.EXPECT().FindProductByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.UpdateProduct(context.Background(), id, ports.CreateProductParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCatalogService_ArchiveProduct(t *testing.T) {
	svc, repo := newCatalogService(t)
	existing := helpers.CreateTestProduct()

	repo.EXPECT().FindProductByID(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) error {
			assert.True(t, p.Archived)
			return nil
		})

	require.NoError(t, svc.ArchiveProduct(context.Background(), existing.ID, true))
}

func TestCatalogService_ListProducts(t *testing.T) {
	t.Run("applies_default_pagination", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
				assert.Equal(t, 1, filter.Page)
				assert.Equal(t, 50, filter.PageSize)
				return []*domain.Product{helpers.CreateTestProduct()}, 101, nil
			})

		list, err := svc.ListProducts(context.Background(), ports.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(101), list.TotalCount)
		assert.Equal(t, 3, list.TotalPages)
	})

	t.Run("propagates_repository_error", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("connection refused"))

		_, err := svc.ListProducts(context.Background(), ports.ProductFilter{})
		require.Error(t, err)
	})
}

func TestCatalogService_CreateSeason(t *testing.T) {
	t.Run("creates_season_with_year_slug", func(t *testing.T) {
		svc, repo := newCatalogService(t)
		repo.EXPECT().SaveSeason(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Season) error {
				assert.Equal(t, "ete-2026", s.Slug)
				return nil
			})

		season, err := svc.CreateSeason(context.Background(), "Été", 2026)
		require.NoError(t, err)
		assert.Equal(t, 2026, season.Year)
	})

	t.Run("rejects_out_of_range_year", func(t *testing.T) {
		svc, _ := newCatalogService(t)
		_, err := svc.CreateSeason(context.Background(), "Été", 1990)
		require.Error(t, err)
	})
}
