// internal/core/domain/salemode.go
package domain

import (
	"errors"
	"time"
)

// ErrInvalidSaleWindow rejects a validity window that ends before it
// starts.
var ErrInvalidSaleWindow = errors.New("sale window end must be after its start")

// SaleMode is the singleton row gating per-article discounts. The boolean
// flag can be narrowed further by an optional validity window; both must
// pass for discounts to apply.
type SaleMode struct {
	DiscountEnabled bool       `json:"discount_enabled"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsActive reports whether article discounts apply at the given instant.
func (m *SaleMode) IsActive(now time.Time) bool {
	if !m.DiscountEnabled {
		return false
	}
	if m.StartsAt != nil && now.Before(*m.StartsAt) {
		return false
	}
	if m.EndsAt != nil && now.After(*m.EndsAt) {
		return false
	}
	return true
}
