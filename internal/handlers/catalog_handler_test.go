// internal/handlers/catalog_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/handlers"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

func newCatalogHandler(t *testing.T) (*handlers.CatalogHandler, *mocks.MockCatalogService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCatalogService(ctrl)
	return handlers.NewCatalogHandler(mockService, helpers.TestLogger()), mockService
}

func validProductRequest() handlers.ProductRequest {
	return handlers.ProductRequest{
		Name:       "Robe longue",
		SupplierID: uuid.New(),
		SeasonID:   uuid.New(),
		CategoryID: uuid.New(),
		ColorID:    uuid.New(),
		Price:      decimal.NewFromFloat(49.00),
		SizeIDs:    []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	product := helpers.CreateTestProduct()

	tests := []struct {
		name           string
		mutate         func(*handlers.ProductRequest)
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:   "creates_product_with_generated_reference",
			mutate: func(r *handlers.ProductRequest) {},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.AssignableToTypeOf(ports.CreateProductParams{})).
					Return(product, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var created domain.Product
				require.NoError(t, json.Unmarshal(body, &created))
				assert.NotEmpty(t, created.Reference)
				assert.NotZero(t, created.BarcodeBase)
			},
		},
		{
			name:           "rejects_missing_name",
			mutate:         func(r *handlers.ProductRequest) { r.Name = "" },
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "name is required", response["error"])
			},
		},
		{
			name:           "rejects_negative_price",
			mutate:         func(r *handlers.ProductRequest) { r.Price = decimal.NewFromInt(-1) },
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "price cannot be negative", response["error"])
			},
		},
		{
			name:           "rejects_empty_size_set",
			mutate:         func(r *handlers.ProductRequest) { r.SizeIDs = nil },
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name:   "service_error",
			mutate: func(r *handlers.ProductRequest) {},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newCatalogHandler(t)
			tt.setupMocks(mockService)

			reqBody := validProductRequest()
			tt.mutate(&reqBody)
			payload, err := json.Marshal(reqBody)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewReader(payload))
			w := httptest.NewRecorder()

			handler.CreateProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	supplierID := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name:  "applies_defaults",
			query: "",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					ListProducts(gomock.Any(), gomock.AssignableToTypeOf(ports.ProductFilter{})).
					DoAndReturn(func(_ interface{}, filter ports.ProductFilter) (*ports.ProductList, error) {
						assert.Equal(t, 1, filter.Page)
						assert.Equal(t, 50, filter.PageSize)
						return &ports.ProductList{Page: 1, PageSize: 50}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "caps_page_size_and_parses_filters",
			query: "?limit=500&page=2&search=robe&supplier_id=" + supplierID.String() + "&archived=false",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					ListProducts(gomock.Any(), gomock.AssignableToTypeOf(ports.ProductFilter{})).
					DoAndReturn(func(_ interface{}, filter ports.ProductFilter) (*ports.ProductList, error) {
						assert.Equal(t, 100, filter.PageSize)
						assert.Equal(t, 2, filter.Page)
						assert.Equal(t, "robe", filter.Search)
						assert.Equal(t, supplierID, filter.SupplierID)
						require.NotNil(t, filter.Archived)
						assert.False(t, *filter.Archived)
						return &ports.ProductList{Page: 2, PageSize: 100}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newCatalogHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/products"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListProducts(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCatalogHandler_ArchiveProduct(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name           string
		archived       bool
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name:     "archives_product",
			archived: true,
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					ArchiveProduct(gomock.Any(), productID, true).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "restores_product",
			archived: false,
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					ArchiveProduct(gomock.Any(), productID, false).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newCatalogHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(map[string]bool{"archived": tt.archived})
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/products/"+productID.String()+"/archive", bytes.NewReader(payload))
			req.SetPathValue("id", productID.String())
			w := httptest.NewRecorder()

			handler.ArchiveProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCatalogHandler_CreateLookups(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           handlers.LookupRequest
		setupMocks     func(*mocks.MockCatalogService)
		invoke         func(*handlers.CatalogHandler, http.ResponseWriter, *http.Request)
		expectedStatus int
	}{
		{
			name: "creates_supplier",
			path: "/api/v1/suppliers",
			body: handlers.LookupRequest{Name: "Maison"},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateSupplier(gomock.Any(), "Maison").
					Return(&domain.Supplier{ID: uuid.New(), Name: "Maison", Slug: "maison"}, nil)
			},
			invoke:         (*handlers.CatalogHandler).CreateSupplier,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "creates_season_with_year",
			path: "/api/v1/seasons",
			body: handlers.LookupRequest{Name: "Été", Year: 2026},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateSeason(gomock.Any(), "Été", 2026).
					Return(&domain.Season{ID: uuid.New(), Name: "Été", Year: 2026}, nil)
			},
			invoke:         (*handlers.CatalogHandler).CreateSeason,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "location_defaults_to_store",
			path: "/api/v1/locations",
			body: handlers.LookupRequest{Name: "Boutique Centre"},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateLocation(gomock.Any(), "Boutique Centre", true).
					Return(&domain.Location{ID: uuid.New(), Name: "Boutique Centre", IsStore: true}, nil)
			},
			invoke:         (*handlers.CatalogHandler).CreateLocation,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "warehouse_location",
			path: "/api/v1/locations",
			body: handlers.LookupRequest{Name: "Entrepôt", IsStore: boolPtr(false)},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					CreateLocation(gomock.Any(), "Entrepôt", false).
					Return(&domain.Location{ID: uuid.New(), Name: "Entrepôt", IsStore: false}, nil)
			},
			invoke:         (*handlers.CatalogHandler).CreateLocation,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects_blank_name",
			path:           "/api/v1/colors",
			body:           handlers.LookupRequest{},
			setupMocks:     func(m *mocks.MockCatalogService) {},
			invoke:         (*handlers.CatalogHandler).CreateColor,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newCatalogHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", tt.path, bytes.NewReader(payload))
			w := httptest.NewRecorder()

			tt.invoke(handler, w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func boolPtr(b bool) *bool { return &b }
