// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
)

// catalogRepository implements ports.CatalogRepository
type catalogRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *Database, logger *slog.Logger) ports.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "catalog")),
	}
}

// SaveProduct creates a new product and its size set in one transaction.
func (r *catalogRepository) SaveProduct(ctx context.Context, p *domain.Product) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO products (
				id, reference, name, slug, supplier_id, season_id,
				category_id, color_id, price, barcode_base, archived,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

		_, err := tx.Exec(ctx, query,
			p.ID, p.Reference, p.Name, p.Slug, p.SupplierID, p.SeasonID,
			p.CategoryID, p.ColorID, p.Price, p.BarcodeBase, p.Archived,
			p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}

		if err := insertProductSizes(ctx, tx, p.ID, p.SizeIDs); err != nil {
			return err
		}

		r.logger.DebugContext(ctx, "product saved",
			slog.String("id", p.ID.String()),
			slog.String("reference", p.Reference))
		return nil
	})
}

// UpdateProduct rewrites the mutable product fields and its size set.
// Reference and barcode base are never touched.
func (r *catalogRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE products SET
				name = $2, slug = $3, supplier_id = $4, season_id = $5,
				category_id = $6, color_id = $7, price = $8, archived = $9,
				updated_at = $10
			WHERE id = $1`

		tag, err := tx.Exec(ctx, query,
			p.ID, p.Name, p.Slug, p.SupplierID, p.SeasonID,
			p.CategoryID, p.ColorID, p.Price, p.Archived, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product not found: %s", p.ID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM product_sizes WHERE product_id = $1`, p.ID); err != nil {
			return fmt.Errorf("failed to clear product sizes: %w", err)
		}
		return insertProductSizes(ctx, tx, p.ID, p.SizeIDs)
	})
}

func insertProductSizes(ctx context.Context, tx pgx.Tx, productID uuid.UUID, sizeIDs []uuid.UUID) error {
	if len(sizeIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, sizeID := range sizeIDs {
		batch.Queue(
			`INSERT INTO product_sizes (product_id, size_id, position) VALUES ($1, $2, $3)`,
			productID, sizeID, i)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range sizeIDs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save product size: %w", err)
		}
	}
	return nil
}

const productColumns = `
	id, reference, name, slug, supplier_id, season_id,
	category_id, color_id, price, barcode_base, archived,
	created_at, updated_at`

// FindProductByID retrieves a product by identifier.
func (r *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`
	return r.findProduct(ctx, query, id)
}

// FindProductByReference retrieves a product by its immutable reference.
func (r *catalogRepository) FindProductByReference(ctx context.Context, reference string) (*domain.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE reference = $1`
	return r.findProduct(ctx, query, reference)
}

func (r *catalogRepository) findProduct(ctx context.Context, query string, arg any) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Reference, &p.Name, &p.Slug, &p.SupplierID, &p.SeasonID,
		&p.CategoryID, &p.ColorID, &p.Price, &p.BarcodeBase, &p.Archived,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	sizeIDs, err := r.loadSizeIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.SizeIDs = sizeIDs
	return p, nil
}

func (r *catalogRepository) loadSizeIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT size_id FROM product_sizes WHERE product_id = $1 ORDER BY position`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product sizes: %w", err)
	}
	defer rows.Close()

	var sizeIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan size id: %w", err)
		}
		sizeIDs = append(sizeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return sizeIDs, nil
}

// ListProducts retrieves products with filtering and pagination.
func (r *catalogRepository) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	qb := squirrel.Select(
		"id", "reference", "name", "slug", "supplier_id", "season_id",
		"category_id", "color_id", "price", "barcode_base", "archived",
		"created_at", "updated_at",
	).From("products").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		qb = qb.Where("(name ILIKE ? OR reference ILIKE ?)", pattern, pattern)
	}
	if filter.SupplierID != uuid.Nil {
		qb = qb.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}
	if filter.SeasonID != uuid.Nil {
		qb = qb.Where(squirrel.Eq{"season_id": filter.SeasonID})
	}
	if filter.CategoryID != uuid.Nil {
		qb = qb.Where(squirrel.Eq{"category_id": filter.CategoryID})
	}
	if filter.Archived != nil {
		qb = qb.Where(squirrel.Eq{"archived": *filter.Archived})
	}

	countQb := qb.Column("COUNT(*) OVER()").Limit(1)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	qb = qb.OrderBy("reference ASC")
	if filter.PageSize > 0 {
		qb = qb.Limit(uint64(filter.PageSize))
		if filter.Page > 1 {
			qb = qb.Offset(uint64((filter.Page - 1) * filter.PageSize))
		}
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p := &domain.Product{}
		err := rows.Scan(
			&p.ID, &p.Reference, &p.Name, &p.Slug, &p.SupplierID, &p.SeasonID,
			&p.CategoryID, &p.ColorID, &p.Price, &p.BarcodeBase, &p.Archived,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	for _, p := range products {
		sizeIDs, err := r.loadSizeIDs(ctx, p.ID)
		if err != nil {
			return nil, 0, err
		}
		p.SizeIDs = sizeIDs
	}

	return products, totalCount, nil
}

// BarcodeBaseExists reports whether any product already uses the base.
func (r *catalogRepository) BarcodeBaseExists(ctx context.Context, base int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE barcode_base = $1)`, base).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check barcode base: %w", err)
	}
	return exists, nil
}

// SaveSupplier creates a new supplier.
func (r *catalogRepository) SaveSupplier(ctx context.Context, s *domain.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Slug, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by identifier.
func (r *catalogRepository) FindSupplierByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, created_at FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Slug, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return s, nil
}

// ListSuppliers retrieves all suppliers.
func (r *catalogRepository) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, created_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*domain.Supplier
	for rows.Next() {
		s := &domain.Supplier{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return suppliers, nil
}

// SaveSeason creates a new season.
func (r *catalogRepository) SaveSeason(ctx context.Context, s *domain.Season) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO seasons (id, name, year, slug, created_at) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.Year, s.Slug, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save season: %w", err)
	}
	return nil
}

// FindSeasonByID retrieves a season by identifier.
func (r *catalogRepository) FindSeasonByID(ctx context.Context, id uuid.UUID) (*domain.Season, error) {
	s := &domain.Season{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, year, slug, created_at FROM seasons WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Year, &s.Slug, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find season: %w", err)
	}
	return s, nil
}

// ListSeasons retrieves all seasons, most recent first.
func (r *catalogRepository) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, year, slug, created_at FROM seasons ORDER BY year DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	var seasons []*domain.Season
	for rows.Next() {
		s := &domain.Season{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Year, &s.Slug, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return seasons, nil
}

// SaveCategory creates a new category.
func (r *catalogRepository) SaveCategory(ctx context.Context, c *domain.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Slug, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

// ListCategories retrieves all categories.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return categories, nil
}

// SaveColor creates a new color.
func (r *catalogRepository) SaveColor(ctx context.Context, c *domain.Color) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO colors (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Slug, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save color: %w", err)
	}
	return nil
}

// FindColorByID retrieves a color by identifier.
func (r *catalogRepository) FindColorByID(ctx context.Context, id uuid.UUID) (*domain.Color, error) {
	c := &domain.Color{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, created_at FROM colors WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find color: %w", err)
	}
	return c, nil
}

// ListColors retrieves all colors.
func (r *catalogRepository) ListColors(ctx context.Context) ([]*domain.Color, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, created_at FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var colors []*domain.Color
	for rows.Next() {
		c := &domain.Color{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return colors, nil
}

// SaveSize creates a new size.
func (r *catalogRepository) SaveSize(ctx context.Context, s *domain.Size) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sizes (id, name, sort_order, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.SortOrder, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save size: %w", err)
	}
	return nil
}

// FindSizeByID retrieves a size by identifier.
func (r *catalogRepository) FindSizeByID(ctx context.Context, id uuid.UUID) (*domain.Size, error) {
	s := &domain.Size{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, sort_order, created_at FROM sizes WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.SortOrder, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find size: %w", err)
	}
	return s, nil
}

// ListSizes retrieves all sizes in display order.
func (r *catalogRepository) ListSizes(ctx context.Context) ([]*domain.Size, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, sort_order, created_at FROM sizes ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sizes: %w", err)
	}
	defer rows.Close()

	var sizes []*domain.Size
	for rows.Next() {
		s := &domain.Size{}
		if err := rows.Scan(&s.ID, &s.Name, &s.SortOrder, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return sizes, nil
}

// SaveLocation creates a new location.
func (r *catalogRepository) SaveLocation(ctx context.Context, l *domain.Location) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO locations (id, name, slug, is_store, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Name, l.Slug, l.IsStore, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// FindLocationByID retrieves a location by identifier.
func (r *catalogRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	l := &domain.Location{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, is_store, created_at FROM locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Slug, &l.IsStore, &l.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return l, nil
}

// ListLocations retrieves all locations.
func (r *catalogRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, is_store, created_at FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l := &domain.Location{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Slug, &l.IsStore, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return locations, nil
}
