// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/maraval/boutique-be/internal/adapters/db"
	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_boutique",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_boutique",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_boutique",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Retail: config.RetailConfig{
			CartTTL:                  12 * time.Hour,
			ReservationTTL:           14 * 24 * time.Hour,
			ReservationSweepInterval: time.Hour,
			LabelArtifactPrefix:      "labels/",
			LabelRenderTimeout:       2 * time.Minute,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret",
			JWTExpiration:     24 * time.Hour,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestProduct creates a catalog product with one size
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	product := &domain.Product{
		ID:          uuid.New(),
		Reference:   "MAISON_ETE2026_ROBELONGUE_BLEU",
		Name:        "Robe longue",
		Slug:        "robe-longue",
		SupplierID:  uuid.New(),
		SeasonID:    uuid.New(),
		CategoryID:  uuid.New(),
		ColorID:     uuid.New(),
		Price:       decimal.NewFromFloat(49.00),
		BarcodeBase: 1234567,
		SizeIDs:     []uuid.UUID{uuid.New()},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, override := range overrides {
		override(product)
	}

	return product
}

// CreateTestCart creates a single-line cart for the given product
func CreateTestCart(product *domain.Product, quantity int, overrides ...func(*domain.Cart)) *domain.Cart {
	cart := &domain.Cart{
		Lines: []domain.CartLine{
			{
				ProductID: product.ID,
				SizeID:    product.SizeIDs[0],
				Reference: product.Reference,
				Name:      product.Name,
				SizeName:  "38",
				Quantity:  quantity,
				UnitPrice: product.Price,
			},
		},
		LocationID: uuid.New(),
	}

	for _, override := range overrides {
		override(cart)
	}

	return cart
}

// CreateTestStock creates a stock row holding the given quantity
func CreateTestStock(productID, sizeID, locationID uuid.UUID, quantity int) *domain.Stock {
	return &domain.Stock{
		ID:         uuid.New(),
		ProductID:  productID,
		SizeID:     sizeID,
		LocationID: locationID,
		Quantity:   quantity,
		UpdatedAt:  time.Now(),
	}
}

// CreateTestReservation creates a pending reservation
func CreateTestReservation(overrides ...func(*domain.Reservation)) *domain.Reservation {
	r := &domain.Reservation{
		ID:                 uuid.New(),
		ProductID:          uuid.New(),
		SizeID:             uuid.New(),
		LocationID:         uuid.New(),
		RequestingLocation: uuid.New(),
		Quantity:           1,
		Status:             domain.ReservationPending,
		CreatedBy:          uuid.New(),
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	for _, override := range overrides {
		override(r)
	}

	return r
}

// CreateTestTransfer creates a requested transfer
func CreateTestTransfer(overrides ...func(*domain.TransferRequest)) *domain.TransferRequest {
	tr := &domain.TransferRequest{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		SizeID:         uuid.New(),
		FromLocationID: uuid.New(),
		ToLocationID:   uuid.New(),
		Quantity:       2,
		Status:         domain.TransferRequested,
		CreatedBy:      uuid.New(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	for _, override := range overrides {
		override(tr)
	}

	return tr
}

// CreateTestSaleMovement creates a SALE ledger entry
func CreateTestSaleMovement(overrides ...func(*domain.StockMovement)) *domain.StockMovement {
	original := decimal.NewFromFloat(49.00)
	final := decimal.NewFromFloat(49.00)
	m := &domain.StockMovement{
		ID:            uuid.New(),
		Type:          domain.MovementSale,
		ProductID:     uuid.New(),
		SizeID:        uuid.New(),
		LocationID:    uuid.New(),
		UserID:        uuid.New(),
		Quantity:      1,
		OriginalPrice: &original,
		FinalPrice:    &final,
		CreatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(m)
	}

	return m
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"print_jobs",
		"stock_movements",
		"reservations",
		"transfer_requests",
		"stocks",
		"product_sizes",
		"products",
		"suppliers",
		"seasons",
		"categories",
		"colors",
		"sizes",
		"locations",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedCatalogFixtures inserts the lookup rows a product depends on and
// returns their identifiers.
type CatalogFixtures struct {
	SupplierID uuid.UUID
	SeasonID   uuid.UUID
	CategoryID uuid.UUID
	ColorID    uuid.UUID
	SizeID     uuid.UUID
	LocationID uuid.UUID
}

// SeedCatalogFixtures seeds one row of every catalog lookup table
func SeedCatalogFixtures(t *testing.T, db *pgxpool.Pool) *CatalogFixtures {
	t.Helper()

	ctx := context.Background()
	f := &CatalogFixtures{
		SupplierID: uuid.New(),
		SeasonID:   uuid.New(),
		CategoryID: uuid.New(),
		ColorID:    uuid.New(),
		SizeID:     uuid.New(),
		LocationID: uuid.New(),
	}

	now := time.Now()
	statements := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO suppliers (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
			[]any{f.SupplierID, "Maison Test", "maison-test", now}},
		{`INSERT INTO seasons (id, name, year, slug, created_at) VALUES ($1, $2, $3, $4, $5)`,
			[]any{f.SeasonID, "Été", 2026, "ete-2026", now}},
		{`INSERT INTO categories (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
			[]any{f.CategoryID, "Robes", "robes", now}},
		{`INSERT INTO colors (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
			[]any{f.ColorID, "Bleu", "bleu", now}},
		{`INSERT INTO sizes (id, name, sort_order, created_at) VALUES ($1, $2, $3, $4)`,
			[]any{f.SizeID, "38", 3, now}},
		{`INSERT INTO locations (id, name, slug, is_store, created_at) VALUES ($1, $2, $3, $4, $5)`,
			[]any{f.LocationID, "Boutique Centre", "boutique-centre", true, now}},
	}
	for _, st := range statements {
		_, err := db.Exec(ctx, st.query, st.args...)
		require.NoError(t, err, "Failed to seed catalog fixture")
	}

	return f
}

// SeedTestProduct inserts a product wired to the given fixtures
func SeedTestProduct(t *testing.T, db *pgxpool.Pool, f *CatalogFixtures) *domain.Product {
	t.Helper()

	ctx := context.Background()
	product := CreateTestProduct(func(p *domain.Product) {
		p.SupplierID = f.SupplierID
		p.SeasonID = f.SeasonID
		p.CategoryID = f.CategoryID
		p.ColorID = f.ColorID
		p.SizeIDs = []uuid.UUID{f.SizeID}
	})

	_, err := db.Exec(ctx, `
		INSERT INTO products (
			id, reference, name, slug, supplier_id, season_id, category_id,
			color_id, price, barcode_base, archived, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		product.ID, product.Reference, product.Name, product.Slug,
		product.SupplierID, product.SeasonID, product.CategoryID, product.ColorID,
		product.Price, product.BarcodeBase, product.Archived,
		product.CreatedAt, product.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed test product")

	for i, sizeID := range product.SizeIDs {
		_, err := db.Exec(ctx,
			`INSERT INTO product_sizes (product_id, size_id, position) VALUES ($1, $2, $3)`,
			product.ID, sizeID, i)
		require.NoError(t, err, "Failed to seed product size")
	}

	return product
}
