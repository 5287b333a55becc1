// internal/core/domain/catalog.go
package domain

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Supplier is a product vendor. The code prefix feeds reference generation.
type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Season identifies a commercial season (e.g. "Été" 2026).
type Season struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a product family used for filtering and reporting.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Color of a product variant.
type Color struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Size is a sellable size within a size set (e.g. "36", "S", "Unique").
type Size struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Location is a physical store or warehouse holding independent stock.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsStore   bool      `json:"is_store"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a catalog article. Reference and barcode base are generated
// once at creation and never change, even if the product is renamed.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	SeasonID    uuid.UUID       `json:"season_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	ColorID     uuid.UUID       `json:"color_id"`
	Price       decimal.Decimal `json:"price"`
	BarcodeBase int             `json:"barcode_base"`
	SizeIDs     []uuid.UUID     `json:"size_ids"`
	Archived    bool            `json:"archived"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

const (
	referenceSupplierLen = 6
	referenceNameLen     = 25

	barcodeBaseMin = 100000
	barcodeBaseMax = 9999999
)

// Validate performs domain validation on the product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.SupplierID == uuid.Nil {
		return fmt.Errorf("supplier_id is required")
	}
	if p.SeasonID == uuid.Nil {
		return fmt.Errorf("season_id is required")
	}
	if p.ColorID == uuid.Nil {
		return fmt.Errorf("color_id is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	if len(p.SizeIDs) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	return nil
}

// PrepareForStorage assigns the identifier and timestamps before persisting.
func (p *Product) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// BuildReference derives the immutable product reference from its parts:
// SUPPLI_SEASONYEAR_NAME_COLOR, with the supplier truncated to 6 characters
// and the name to 25. Parts are slug-normalized and upper-cased so the
// reference survives accents and punctuation in user input.
func BuildReference(supplierName, seasonName string, seasonYear int, productName, colorName string) string {
	sup := normalizeReferencePart(supplierName, referenceSupplierLen)
	name := normalizeReferencePart(productName, referenceNameLen)
	season := fmt.Sprintf("%s%d", normalizeReferencePart(seasonName, 0), seasonYear)
	color := normalizeReferencePart(colorName, 0)
	return strings.Join([]string{sup, season, name, color}, "_")
}

func normalizeReferencePart(s string, maxLen int) string {
	part := strings.ToUpper(slug.Make(s))
	part = strings.ReplaceAll(part, "-", "")
	if maxLen > 0 && len(part) > maxLen {
		part = part[:maxLen]
	}
	return part
}

// NewBarcodeBase draws a random numeric base in [100000, 9999999].
// Uniqueness across products is enforced by the caller against storage.
func NewBarcodeBase() int {
	return barcodeBaseMin + rand.Intn(barcodeBaseMax-barcodeBaseMin+1)
}

// BarcodePayload is the content encoded into a label's DataMatrix:
// the product reference and the size name joined by a dash.
func BarcodePayload(reference, sizeName string) string {
	return reference + "-" + sizeName
}
