// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// buildBenchmarkCart fills a cart with numLines distinct lines carrying a
// mix of quantities and article discounts.
func buildBenchmarkCart(numLines int) *domain.Cart {
	cart := &domain.Cart{LocationID: uuid.New()}
	discounts := []int{0, 10, 20, 30, 40, 50}

	for i := 0; i < numLines; i++ {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:       uuid.New(),
			SizeID:          uuid.New(),
			Reference:       fmt.Sprintf("MAISON_ETE2026_ARTICLE%d_BLEU", i),
			Name:            fmt.Sprintf("Article %d", i),
			SizeName:        "38",
			Quantity:        1 + i%3,
			UnitPrice:       decimal.NewFromFloat(19.90).Add(decimal.NewFromInt(int64(i % 50))),
			DiscountPercent: discounts[i%len(discounts)],
		})
	}
	return cart
}

// buildBenchmarkLabels creates numLabels print cells with realistic
// payloads, cycling over a handful of products.
func buildBenchmarkLabels(numLabels int) []domain.Label {
	products := make([]uuid.UUID, 8)
	for i := range products {
		products[i] = uuid.New()
	}

	labels := make([]domain.Label, numLabels)
	for i := range labels {
		productID := products[i%len(products)]
		labels[i] = domain.Label{
			ProductID: productID,
			SizeID:    uuid.New(),
			Reference: fmt.Sprintf("MAISON_ETE2026_ROBE%d_BLEU", i%len(products)),
			SizeName:  "38",
			Payload:   fmt.Sprintf("%07d%02d", 1000000+i%len(products), 3),
		}
	}
	return labels
}
