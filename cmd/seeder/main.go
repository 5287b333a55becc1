package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// Lookup rows created on every run. Inserts are idempotent on slug.
var (
	defaultSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "34", "36", "38", "40", "42", "44", "TU"}

	defaultLocations = []struct {
		Name    string
		IsStore bool
	}{
		{"Boutique Centre", true},
		{"Boutique Gare", true},
		{"Entrepôt", false},
	}

	defaultCategories = []string{"Robes", "Hauts", "Pantalons", "Vestes", "Accessoires", "Chaussures"}
	defaultColors     = []string{"Noir", "Blanc", "Rouge", "Bleu", "Vert", "Beige", "Rose", "Gris"}
)

// catalogRow is one product line from the import workbook.
type catalogRow struct {
	Name     string
	Supplier string
	Season   string
	Year     int
	Category string
	Color    string
	Price    decimal.Decimal
	Sizes    []string
	Quantity int
}

// Seeder loads lookups and a starter catalog into an empty database.
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	dryRun bool

	// slug -> id caches so products can reference rows created this run
	suppliers  map[string]uuid.UUID
	seasons    map[string]uuid.UUID
	categories map[string]uuid.UUID
	colors     map[string]uuid.UUID
	sizes      map[string]uuid.UUID
	locations  map[string]uuid.UUID
}

func NewSeeder(db *pgxpool.Pool, dryRun bool, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		logger:     logger,
		dryRun:     dryRun,
		suppliers:  make(map[string]uuid.UUID),
		seasons:    make(map[string]uuid.UUID),
		categories: make(map[string]uuid.UUID),
		colors:     make(map[string]uuid.UUID),
		sizes:      make(map[string]uuid.UUID),
		locations:  make(map[string]uuid.UUID),
	}
}

// SeedLookups inserts sizes, locations, categories and colors, then loads
// every lookup id into the caches, including rows from previous runs.
func (s *Seeder) SeedLookups(ctx context.Context) error {
	if s.dryRun {
		s.logger.Info("dry run, skipping lookup inserts")
		return nil
	}

	batch := &pgx.Batch{}
	for i, name := range defaultSizes {
		batch.Queue(`
			INSERT INTO sizes (id, name, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name, i)
	}
	for _, loc := range defaultLocations {
		batch.Queue(`
			INSERT INTO locations (id, name, slug, is_store)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), loc.Name, slug.Make(loc.Name), loc.IsStore)
	}
	for _, name := range defaultCategories {
		batch.Queue(`
			INSERT INTO categories (id, name, slug)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), name, slug.Make(name))
	}
	for _, name := range defaultColors {
		batch.Queue(`
			INSERT INTO colors (id, name, slug)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), name, slug.Make(name))
	}

	br := s.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert lookup row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close lookup batch: %w", err)
	}

	if err := s.loadLookupCaches(ctx); err != nil {
		return err
	}

	s.logger.Info("lookups seeded",
		slog.Int("sizes", len(s.sizes)),
		slog.Int("locations", len(s.locations)),
		slog.Int("categories", len(s.categories)),
		slog.Int("colors", len(s.colors)))
	return nil
}

func (s *Seeder) loadLookupCaches(ctx context.Context) error {
	load := func(query string, dest map[string]uuid.UUID) error {
		rows, err := s.db.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var key string
			var id uuid.UUID
			if err := rows.Scan(&key, &id); err != nil {
				return err
			}
			dest[key] = id
		}
		return rows.Err()
	}

	if err := load(`SELECT slug, id FROM suppliers`, s.suppliers); err != nil {
		return fmt.Errorf("failed to load suppliers: %w", err)
	}
	if err := load(`SELECT slug, id FROM seasons`, s.seasons); err != nil {
		return fmt.Errorf("failed to load seasons: %w", err)
	}
	if err := load(`SELECT slug, id FROM categories`, s.categories); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if err := load(`SELECT slug, id FROM colors`, s.colors); err != nil {
		return fmt.Errorf("failed to load colors: %w", err)
	}
	if err := load(`SELECT name, id FROM sizes`, s.sizes); err != nil {
		return fmt.Errorf("failed to load sizes: %w", err)
	}
	if err := load(`SELECT slug, id FROM locations`, s.locations); err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	return nil
}

// LoadCatalog reads product rows from the import workbook. Expected
// columns: name, supplier, season, year, category, color, price,
// sizes (comma separated), quantity per size per store.
func (s *Seeder) LoadCatalog(path string) ([]catalogRow, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in catalog file")
	}
	sheet := file.Sheets[0]

	var out []catalogRow
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if v, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(v)
			}
			return strings.TrimSpace(c.String())
		}

		name := get(0)
		if name == "" {
			return nil
		}

		year, _ := strconv.Atoi(get(3))
		price, err := decimal.NewFromString(strings.ReplaceAll(get(6), ",", "."))
		if err != nil {
			s.logger.Warn("skipping row with bad price",
				slog.Int("row", rowIdx),
				slog.String("name", name),
				slog.String("price", get(6)))
			return nil
		}
		quantity, _ := strconv.Atoi(get(8))

		var sizeNames []string
		for _, sz := range strings.Split(get(7), ",") {
			if sz = strings.TrimSpace(sz); sz != "" {
				sizeNames = append(sizeNames, strings.ToUpper(sz))
			}
		}
		if len(sizeNames) == 0 {
			sizeNames = []string{"TU"}
		}

		out = append(out, catalogRow{
			Name:     name,
			Supplier: get(1),
			Season:   get(2),
			Year:     year,
			Category: get(4),
			Color:    get(5),
			Price:    price,
			Sizes:    sizeNames,
			Quantity: quantity,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	s.logger.Info("loaded catalog rows", slog.Int("count", len(out)))
	return out, nil
}

// SeedProducts inserts catalog rows with their size grid and opening
// stock at every store. Each opening quantity is also written to the
// movement ledger so reports see seeded stock as a plain addition.
func (s *Seeder) SeedProducts(ctx context.Context, rows []catalogRow, operator uuid.UUID) (int, error) {
	created := 0
	for _, row := range rows {
		if err := s.seedProduct(ctx, row, operator); err != nil {
			return created, fmt.Errorf("product %q: %w", row.Name, err)
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedProduct(ctx context.Context, row catalogRow, operator uuid.UUID) error {
	if s.dryRun {
		s.logger.Info("would create product",
			slog.String("reference", domain.BuildReference(row.Supplier, row.Season, row.Year, row.Name, row.Color)),
			slog.String("name", row.Name),
			slog.Int("sizes", len(row.Sizes)))
		return nil
	}

	supplierID, err := s.ensureSupplier(ctx, row.Supplier)
	if err != nil {
		return err
	}
	seasonID, err := s.ensureSeason(ctx, row.Season, row.Year)
	if err != nil {
		return err
	}
	categoryID, ok := s.lookupOrAny(s.categories, slug.Make(row.Category))
	if !ok {
		return fmt.Errorf("no categories available")
	}
	colorID, ok := s.lookupOrAny(s.colors, slug.Make(row.Color))
	if !ok {
		return fmt.Errorf("no colors available")
	}

	reference := domain.BuildReference(row.Supplier, row.Season, row.Year, row.Name, row.Color)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	productID := uuid.New()
	tag, err := tx.Exec(ctx, `
		INSERT INTO products (
			id, reference, name, slug, supplier_id, season_id,
			category_id, color_id, price, barcode_base
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (reference) DO NOTHING`,
		productID, reference, row.Name, slug.Make(row.Name),
		supplierID, seasonID, categoryID, colorID,
		row.Price, domain.NewBarcodeBase())
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Info("product already exists, skipping",
			slog.String("reference", reference))
		return tx.Commit(ctx)
	}

	batch := &pgx.Batch{}
	for position, sizeName := range row.Sizes {
		sizeID, ok := s.sizes[sizeName]
		if !ok {
			return fmt.Errorf("unknown size %q", sizeName)
		}
		batch.Queue(`
			INSERT INTO product_sizes (product_id, size_id, position)
			VALUES ($1, $2, $3)`,
			productID, sizeID, position)

		if row.Quantity <= 0 {
			continue
		}
		for locSlug, locationID := range s.locations {
			if !s.isStore(ctx, locSlug) {
				continue
			}
			batch.Queue(`
				INSERT INTO stocks (id, product_id, size_id, location_id, quantity)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (product_id, size_id, location_id)
				DO UPDATE SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = NOW()`,
				uuid.New(), productID, sizeID, locationID, row.Quantity)
			batch.Queue(`
				INSERT INTO stock_movements (
					id, type, product_id, size_id, location_id,
					user_id, quantity, comment
				) VALUES ($1, 'ADD', $2, $3, $4, $5, $6, 'seed')`,
				uuid.New(), productID, sizeID, locationID, operator, row.Quantity)
		}
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert size or stock row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close product batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}

	s.logger.Info("product created",
		slog.String("reference", reference),
		slog.Int("sizes", len(row.Sizes)),
		slog.Int("opening_quantity", row.Quantity))
	return nil
}

func (s *Seeder) ensureSupplier(ctx context.Context, name string) (uuid.UUID, error) {
	key := slug.Make(name)
	if id, ok := s.suppliers[key]; ok {
		return id, nil
	}
	id := uuid.New()
	if _, err := s.db.Exec(ctx, `
		INSERT INTO suppliers (id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO NOTHING`,
		id, name, key); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert supplier: %w", err)
	}
	if err := s.db.QueryRow(ctx, `SELECT id FROM suppliers WHERE slug = $1`, key).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to reload supplier: %w", err)
	}
	s.suppliers[key] = id
	return id, nil
}

func (s *Seeder) ensureSeason(ctx context.Context, name string, year int) (uuid.UUID, error) {
	key := fmt.Sprintf("%s-%d", slug.Make(name), year)
	if id, ok := s.seasons[key]; ok {
		return id, nil
	}
	id := uuid.New()
	if _, err := s.db.Exec(ctx, `
		INSERT INTO seasons (id, name, year, slug)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO NOTHING`,
		id, name, year, key); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert season: %w", err)
	}
	if err := s.db.QueryRow(ctx, `SELECT id FROM seasons WHERE slug = $1`, key).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to reload season: %w", err)
	}
	s.seasons[key] = id
	return id, nil
}

// lookupOrAny resolves a slug against the cache, falling back to an
// arbitrary entry when the workbook names something unseeded.
func (s *Seeder) lookupOrAny(cache map[string]uuid.UUID, key string) (uuid.UUID, bool) {
	if id, ok := cache[key]; ok {
		return id, true
	}
	for _, id := range cache {
		return id, true
	}
	return uuid.Nil, false
}

func (s *Seeder) isStore(ctx context.Context, locSlug string) bool {
	for _, loc := range defaultLocations {
		if slug.Make(loc.Name) == locSlug {
			return loc.IsStore
		}
	}
	var isStore bool
	if err := s.db.QueryRow(ctx,
		`SELECT is_store FROM locations WHERE slug = $1`, locSlug).Scan(&isStore); err != nil {
		return false
	}
	return isStore
}

func main() {
	var (
		catalogFile = flag.String("catalog", "./catalog.xlsx", "Excel file with the starter catalog")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
		operatorRaw = flag.String("operator", "", "Operator UUID recorded on seeded movements")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	operator := uuid.New()
	if *operatorRaw != "" {
		parsed, err := uuid.Parse(*operatorRaw)
		if err != nil {
			logger.Error("invalid operator id", slog.String("error", err.Error()))
			os.Exit(1)
		}
		operator = parsed
	}

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "boutique"),
		getEnv("DB_PASSWORD", "boutique_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "boutique_pos"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	db, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Error("database unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder := NewSeeder(db, *dryRun, logger)

	start := time.Now()
	if err := seeder.SeedLookups(ctx); err != nil {
		logger.Error("failed to seed lookups", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created := 0
	if _, err := os.Stat(*catalogFile); err == nil {
		rows, err := seeder.LoadCatalog(*catalogFile)
		if err != nil {
			logger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
		created, err = seeder.SeedProducts(ctx, rows, operator)
		if err != nil {
			logger.Error("failed to seed products",
				slog.Int("created", created),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Info("no catalog file found, seeded lookups only",
			slog.String("path", *catalogFile))
	}

	logger.Info("seed operation completed",
		slog.Int("products_created", created),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("dry_run", *dryRun))

	if *dryRun {
		fmt.Println("[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
