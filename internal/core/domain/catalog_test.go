package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraval/boutique-be/internal/core/domain"
)

func TestBuildReference(t *testing.T) {
	tests := []struct {
		name     string
		supplier string
		season   string
		year     int
		product  string
		color    string
		want     string
	}{
		{
			name:     "truncates_supplier_and_name",
			supplier: "Maison Lavande",
			season:   "Été",
			year:     2026,
			product:  "Robe longue à fleurs imprimée coton bio",
			color:    "Bleu",
			want:     "MAISON_ETE2026_ROBELONGUEAFLEURSIMPRIMEE_BLEU",
		},
		{
			name:     "short_parts_kept_whole",
			supplier: "Zoe",
			season:   "Hiver",
			year:     2025,
			product:  "Pull",
			color:    "Noir",
			want:     "ZOE_HIVER2025_PULL_NOIR",
		},
		{
			name:     "accents_and_punctuation_normalized",
			supplier: "L'Atelier & Co",
			season:   "Été",
			year:     2026,
			product:  "Tee-shirt côtelé",
			color:    "Écru",
			want:     "LATELI_ETE2026_TEESHIRTCOTELE_ECRU",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildReference(tt.supplier, tt.season, tt.year, tt.product, tt.color)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBarcodeBase_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		base := domain.NewBarcodeBase()
		require.GreaterOrEqual(t, base, 100000)
		require.LessOrEqual(t, base, 9999999)
	}
}

func TestProduct_Validate(t *testing.T) {
	valid := func() *domain.Product {
		return &domain.Product{
			Name:       "Robe longue",
			SupplierID: uuid.New(),
			SeasonID:   uuid.New(),
			CategoryID: uuid.New(),
			ColorID:    uuid.New(),
			Price:      decimal.RequireFromString("49.00"),
			SizeIDs:    []uuid.UUID{uuid.New()},
		}
	}

	require.NoError(t, valid().Validate())

	p := valid()
	p.Name = ""
	assert.EqualError(t, p.Validate(), "name is required")

	p = valid()
	p.Price = decimal.RequireFromString("-1")
	assert.EqualError(t, p.Validate(), "price cannot be negative")

	p = valid()
	p.SizeIDs = nil
	assert.EqualError(t, p.Validate(), "at least one size is required")
}

func TestProduct_PrepareForStorage(t *testing.T) {
	p := &domain.Product{
		Name:       "Robe longue à fleurs",
		SupplierID: uuid.New(),
		SeasonID:   uuid.New(),
		CategoryID: uuid.New(),
		ColorID:    uuid.New(),
		Price:      decimal.RequireFromString("49.00"),
		SizeIDs:    []uuid.UUID{uuid.New()},
	}

	p.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "robe-longue-a-fleurs", p.Slug)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestStockMovement_Validate(t *testing.T) {
	valid := func() *domain.StockMovement {
		return &domain.StockMovement{
			Type:       domain.MovementAdd,
			ProductID:  uuid.New(),
			SizeID:     uuid.New(),
			LocationID: uuid.New(),
			Quantity:   1,
		}
	}

	require.NoError(t, valid().Validate())

	m := valid()
	m.Type = "RESTOCK"
	assert.EqualError(t, m.Validate(), `unknown movement type "RESTOCK"`)

	m = valid()
	m.Quantity = 0
	assert.EqualError(t, m.Validate(), "quantity must be positive")
}
