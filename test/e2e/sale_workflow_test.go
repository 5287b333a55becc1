//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/maraval/boutique-be/internal/adapters/db"
	redis_a "github.com/maraval/boutique-be/internal/adapters/redis_adapter"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/internal/handlers"
	"github.com/maraval/boutique-be/test/helpers"
)

type SaleE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis

	registerID string
	userID     uuid.UUID
}

func (s *SaleE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"

	s.registerID = "register-e2e"
	s.userID = uuid.New()
}

func (s *SaleE2ESuite) TearDownSuite() {
	s.server.Close()
}

// TestCompleteSaleWorkflow walks the whole retail flow over HTTP: build
// the catalog, receive stock, sell through the register and verify the
// ledger through reporting endpoints.
func (s *SaleE2ESuite) TestCompleteSaleWorkflow() {
	// 1. Catalog lookups
	supplierID := s.createLookup("/suppliers", map[string]interface{}{"name": "Maison E2E"})
	seasonID := s.createLookup("/seasons", map[string]interface{}{"name": "Été", "year": 2026})
	categoryID := s.createLookup("/categories", map[string]interface{}{"name": "Robes"})
	colorID := s.createLookup("/colors", map[string]interface{}{"name": "Bleu"})
	sizeID := s.createLookup("/sizes", map[string]interface{}{"name": "38", "sort_order": 3})
	locationID := s.createLookup("/locations", map[string]interface{}{"name": "Boutique E2E"})

	// 2. Create a product with one size
	resp := s.makeRequest("POST", "/products", map[string]interface{}{
		"name":        "Robe longue",
		"supplier_id": supplierID,
		"season_id":   seasonID,
		"category_id": categoryID,
		"color_id":    colorID,
		"price":       "49.00",
		"size_ids":    []string{sizeID},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var product map[string]interface{}
	s.decodeResponse(resp, &product)
	productID := product["id"].(string)
	s.NotEmpty(product["reference"])

	// 3. Receive five units
	resp = s.makeRequest("POST", "/stock/add", map[string]interface{}{
		"location_id": locationID,
		"entries": []map[string]interface{}{
			{"product_id": productID, "size_id": sizeID, "quantity": 5},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var addResult map[string]interface{}
	s.decodeResponse(resp, &addResult)
	entries := addResult["entries"].([]interface{})
	s.Len(entries, 1)
	s.Equal("ADD", entries[0].(map[string]interface{})["movement_type"])

	// 4. Ring up two units with a line discount
	resp = s.makeRequest("POST", "/cart/lines", map[string]interface{}{
		"location_id": locationID,
		"product_id":  productID,
		"size_id":     sizeID,
		"quantity":    2,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// the discount gate ships disabled, so the discount bounces first
	resp = s.makeRequest("POST", "/cart/line-discount", map[string]interface{}{
		"product_id": productID,
		"size_id":    sizeID,
		"percent":    30,
	})
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp = s.makeRequest("PUT", "/sale-mode", map[string]interface{}{
		"discount_enabled": true,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("POST", "/cart/line-discount", map[string]interface{}{
		"product_id": productID,
		"size_id":    sizeID,
		"percent":    30,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var view map[string]interface{}
	s.decodeResponse(resp, &view)
	totals := view["totals"].(map[string]interface{})
	gross, err := decimal.NewFromString(fmt.Sprint(totals["total_gross"]))
	s.NoError(err)
	s.True(gross.Equal(decimal.NewFromInt(98)), "gross should be 2 x 49.00, got %s", gross)

	// 5. Checkout commits the sale
	resp = s.makeRequest("POST", "/checkout", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var checkout map[string]interface{}
	s.decodeResponse(resp, &checkout)
	s.Equal(float64(1), checkout["movement_count"])

	// 6. Stock is down to three
	resp = s.makeRequest("GET", fmt.Sprintf("/stock/product/%s", productID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var levels []map[string]interface{}
	s.decodeResponse(resp, &levels)
	s.Len(levels, 1)
	stock := levels[0]["stock"].(map[string]interface{})
	s.Equal(float64(3), stock["quantity"])

	// 7. The register cart is empty again
	resp = s.makeRequest("GET", "/cart", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &view)
	cart := view["cart"].(map[string]interface{})
	lines, _ := cart["lines"].([]interface{})
	s.Empty(lines)

	// 8. Today's sales report sees the sale
	resp = s.makeRequest("GET", "/reports/sales", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report map[string]interface{}
	s.decodeResponse(resp, &report)
	s.GreaterOrEqual(report["sale_count"].(float64), float64(1))
}

// TestTransferWorkflow moves one unit between stores through the
// prepare-then-receive handshake.
func (s *SaleE2ESuite) TestTransferWorkflow() {
	fixtures := helpers.SeedCatalogFixtures(s.T(), s.testDB.PgxPool)
	product := helpers.SeedTestProduct(s.T(), s.testDB.PgxPool, fixtures)
	destination := s.createLookup("/locations", map[string]interface{}{"name": "Boutique Gare E2E"})

	resp := s.makeRequest("POST", "/stock/add", map[string]interface{}{
		"location_id": fixtures.LocationID.String(),
		"entries": []map[string]interface{}{
			{"product_id": product.ID.String(), "size_id": fixtures.SizeID.String(), "quantity": 2},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// Request a transfer to the destination store
	resp = s.makeRequest("POST", "/transfers", map[string]interface{}{
		"product_id":       product.ID.String(),
		"size_id":          fixtures.SizeID.String(),
		"from_location_id": fixtures.LocationID.String(),
		"to_location_id":   destination,
		"quantity":         1,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var transfer map[string]interface{}
	s.decodeResponse(resp, &transfer)
	transferID := transfer["id"].(string)

	// Prepare at the source: stock leaves the shelf
	resp = s.makeRequest("POST", fmt.Sprintf("/transfers/%s/prepare", transferID), map[string]interface{}{
		"location_id": fixtures.LocationID.String(),
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// Receiving at the destination completes the transfer instead of
	// booking a plain addition
	resp = s.makeRequest("POST", "/stock/add", map[string]interface{}{
		"location_id": destination,
		"entries": []map[string]interface{}{
			{"product_id": product.ID.String(), "size_id": fixtures.SizeID.String(), "quantity": 1},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var addResult map[string]interface{}
	s.decodeResponse(resp, &addResult)
	entry := addResult["entries"].([]interface{})[0].(map[string]interface{})
	s.Equal("TRANSFER_IN", entry["movement_type"])
	s.Equal(transferID, entry["completed_transfer_id"])

	// One unit left at the source, one at the destination
	resp = s.makeRequest("GET", fmt.Sprintf("/stock/product/%s", product.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var levels []map[string]interface{}
	s.decodeResponse(resp, &levels)
	quantities := map[string]float64{}
	for _, level := range levels {
		stock := level["stock"].(map[string]interface{})
		quantities[stock["location_id"].(string)] = stock["quantity"].(float64)
	}
	s.Equal(float64(1), quantities[fixtures.LocationID.String()])
	s.Equal(float64(1), quantities[destination])
}

// TestConcurrentCheckouts races two registers over a single unit. One
// sale must win and the other must be refused at checkout.
func (s *SaleE2ESuite) TestConcurrentCheckouts() {
	fixtures := helpers.SeedCatalogFixtures(s.T(), s.testDB.PgxPool)
	product := helpers.SeedTestProduct(s.T(), s.testDB.PgxPool, fixtures)

	resp := s.makeRequest("POST", "/stock/add", map[string]interface{}{
		"location_id": fixtures.LocationID.String(),
		"entries": []map[string]interface{}{
			{"product_id": product.ID.String(), "size_id": fixtures.SizeID.String(), "quantity": 1},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	registers := []string{"register-a", "register-b"}
	for _, register := range registers {
		resp := s.makeRequestAs(register, "POST", "/cart/lines", map[string]interface{}{
			"location_id": fixtures.LocationID.String(),
			"product_id":  product.ID.String(),
			"size_id":     fixtures.SizeID.String(),
			"quantity":    1,
		})
		s.Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	results := make(chan int, len(registers))
	for _, register := range registers {
		go func(register string) {
			resp := s.makeRequestAs(register, "POST", "/checkout", nil)
			resp.Body.Close()
			results <- resp.StatusCode
		}(register)
	}

	statuses := []int{<-results, <-results}
	s.Contains(statuses, http.StatusOK)
	s.Contains(statuses, http.StatusConflict)
}

// Helper methods

func (s *SaleE2ESuite) startTestServer() *httptest.Server {
	slogger := helpers.TestLogger()
	database := s.testDB.Database

	cartStore := redis_a.NewCartStore(s.testRedis.Client, 12*time.Hour, slogger)
	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, slogger)

	catalogRepo := db.NewCatalogRepository(database, slogger)
	stockRepo := db.NewStockRepository(database, slogger)
	movementRepo := db.NewMovementRepository(database, slogger)
	saleModeRepo := db.NewSaleModeRepository(database, slogger)
	reservationRepo := db.NewReservationRepository(database, slogger)
	transferRepo := db.NewTransferRepository(database, slogger)

	catalogService := services.NewCatalogService(catalogRepo, slogger)
	saleService := services.NewSaleService(cartStore, catalogRepo, stockRepo, movementRepo, saleModeRepo, database, slogger)
	stockService := services.NewStockService(stockRepo, movementRepo, transferRepo, catalogRepo, database, slogger)
	workflowService := services.NewWorkflowService(reservationRepo, transferRepo, stockRepo, movementRepo, database, slogger)
	reportService := services.NewReportService(movementRepo, catalogRepo, stockRepo, reservationRepo, transferRepo, cache, slogger)

	saleHandler := handlers.NewSaleHandler(saleService, slogger)
	stockHandler := handlers.NewStockHandler(stockService, slogger)
	workflowHandler := handlers.NewWorkflowHandler(workflowService, slogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, slogger)
	reportHandler := handlers.NewReportHandler(reportService, slogger)

	mux := http.NewServeMux()
	apiV1 := "/api/v1"

	mux.HandleFunc("GET "+apiV1+"/cart", saleHandler.GetCart)
	mux.HandleFunc("DELETE "+apiV1+"/cart", saleHandler.ClearCart)
	mux.HandleFunc("POST "+apiV1+"/cart/lines", saleHandler.AddToCart)
	mux.HandleFunc("POST "+apiV1+"/cart/line-discount", saleHandler.SetLineDiscount)
	mux.HandleFunc("POST "+apiV1+"/cart/basket-discount", saleHandler.SetBasketDiscount)
	mux.HandleFunc("POST "+apiV1+"/cart/voucher", saleHandler.SetVoucher)
	mux.HandleFunc("POST "+apiV1+"/checkout", saleHandler.Checkout)
	mux.HandleFunc("GET "+apiV1+"/sale-mode", saleHandler.GetSaleMode)
	mux.HandleFunc("PUT "+apiV1+"/sale-mode", saleHandler.UpdateSaleMode)

	mux.HandleFunc("POST "+apiV1+"/stock/add", stockHandler.AddStock)
	mux.HandleFunc("GET "+apiV1+"/stock/product/{id}", stockHandler.CheckStock)

	mux.HandleFunc("POST "+apiV1+"/transfers", workflowHandler.CreateTransfer)
	mux.HandleFunc("POST "+apiV1+"/transfers/{id}/prepare", workflowHandler.PrepareTransfer)

	mux.HandleFunc("POST "+apiV1+"/products", catalogHandler.CreateProduct)
	mux.HandleFunc("POST "+apiV1+"/suppliers", catalogHandler.CreateSupplier)
	mux.HandleFunc("POST "+apiV1+"/seasons", catalogHandler.CreateSeason)
	mux.HandleFunc("POST "+apiV1+"/categories", catalogHandler.CreateCategory)
	mux.HandleFunc("POST "+apiV1+"/colors", catalogHandler.CreateColor)
	mux.HandleFunc("POST "+apiV1+"/sizes", catalogHandler.CreateSize)
	mux.HandleFunc("POST "+apiV1+"/locations", catalogHandler.CreateLocation)

	mux.HandleFunc("GET "+apiV1+"/dashboard", reportHandler.Dashboard)
	mux.HandleFunc("GET "+apiV1+"/reports/sales", reportHandler.SalesReport)

	return httptest.NewServer(mux)
}

func (s *SaleE2ESuite) createLookup(path string, body map[string]interface{}) string {
	resp := s.makeRequest("POST", path, body)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	id := created["id"].(string)
	s.NotEmpty(id)
	return id
}

func (s *SaleE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	return s.makeRequestAs(s.registerID, method, path, body)
}

func (s *SaleE2ESuite) makeRequestAs(register, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Register-ID", register)
	req.Header.Set("X-User-ID", s.userID.String())

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *SaleE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestSaleE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(SaleE2ESuite))
}
