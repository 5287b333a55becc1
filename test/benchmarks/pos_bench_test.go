package benchmarks

import (
	"fmt"
	"testing"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/domain"
)

func BenchmarkCartTotals(b *testing.B) {
	for _, numLines := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("lines_%d", numLines), func(b *testing.B) {
			cart := buildBenchmarkCart(numLines)
			cart.BasketDiscountPercent = 10
			cart.Voucher = 20

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = cart.Totals(true)
			}
		})
	}
}

func BenchmarkCartAddLine(b *testing.B) {
	line := domain.CartLine{
		ProductID: uuid.New(),
		SizeID:    uuid.New(),
		Reference: "MAISON_ETE2026_ROBELONGUE_BLEU",
		Name:      "Robe longue",
		SizeName:  "38",
		Quantity:  1,
		UnitPrice: decimal.NewFromFloat(49.00),
	}

	b.Run("merge_existing_line", func(b *testing.B) {
		cart := buildBenchmarkCart(20)
		if err := cart.AddLine(line); err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cart.AddLine(line)
		}
	})

	b.Run("append_new_line", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			cart := domain.Cart{LocationID: uuid.New()}
			_ = cart.AddLine(line)
		}
	})
}

func BenchmarkBuildReference(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.BuildReference("Maison Margiela", "Été", 2026, "Robe longue à fleurs", "Bleu marine")
	}
}

func BenchmarkSaleComment(b *testing.B) {
	unitPrice := decimal.NewFromFloat(49.00)
	total := decimal.NewFromFloat(89.00)
	cash := decimal.NewFromFloat(69.00)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.SaleComment(unitPrice, 30, 10, total, 20, cash)
	}
}

func BenchmarkBuildSheet(b *testing.B) {
	for _, numLabels := range []int{10, 56, 500} {
		b.Run(fmt.Sprintf("labels_%d", numLabels), func(b *testing.B) {
			labels := buildBenchmarkLabels(numLabels)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.BuildSheet(12, labels)
			}
		})
	}
}

func BenchmarkDataMatrixEncode(b *testing.B) {
	payload := "123456703"

	b.Run("encode", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := datamatrix.Encode(payload); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("encode_and_scale", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			code, err := datamatrix.Encode(payload)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := barcode.Scale(code, 120, 120); err != nil {
				b.Fatal(err)
			}
		}
	})
}
