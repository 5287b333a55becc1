package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraval/boutique-be/internal/core/domain"
)

func makeLabels(n int) []domain.Label {
	labels := make([]domain.Label, n)
	for i := range labels {
		labels[i] = domain.Label{
			Reference: fmt.Sprintf("REF-%03d", i),
			SizeName:  "38",
			Payload:   fmt.Sprintf("REF-%03d-38", i),
		}
	}
	return labels
}

func TestBuildSheet(t *testing.T) {
	tests := []struct {
		name         string
		lastPosition int
		labelCount   int
		wantPages    int
		wantNext     int
	}{
		{name: "resume_mid_sheet_spills_to_second_page", lastPosition: 50, labelCount: 10, wantPages: 2, wantNext: 4},
		{name: "fresh_sheet_single_page", lastPosition: 0, labelCount: 56, wantPages: 1, wantNext: 0},
		{name: "fresh_sheet_partial_page", lastPosition: 0, labelCount: 3, wantPages: 1, wantNext: 3},
		{name: "exactly_fills_current_sheet", lastPosition: 40, labelCount: 16, wantPages: 1, wantNext: 0},
		{name: "no_labels_no_pages", lastPosition: 12, labelCount: 0, wantPages: 1, wantNext: 12},
		{name: "out_of_range_cursor_reset", lastPosition: 99, labelCount: 2, wantPages: 1, wantNext: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := domain.BuildSheet(tt.lastPosition, makeLabels(tt.labelCount))

			require.Len(t, sheet.Pages, tt.wantPages)
			assert.Equal(t, tt.wantNext, sheet.NextPosition)

			for _, page := range sheet.Pages {
				assert.Len(t, page.Cells, domain.SheetCells)
			}
		})
	}
}

func TestBuildSheet_PlaceholderLayout(t *testing.T) {
	sheet := domain.BuildSheet(50, makeLabels(10))

	require.Len(t, sheet.Pages, 2)
	first, second := sheet.Pages[0], sheet.Pages[1]

	for i := 0; i < 50; i++ {
		assert.Nil(t, first.Cells[i], "cell %d should be a consumed placeholder", i)
	}
	for i := 50; i < 56; i++ {
		require.NotNil(t, first.Cells[i])
		assert.Equal(t, fmt.Sprintf("REF-%03d", i-50), first.Cells[i].Reference)
	}

	for i := 0; i < 4; i++ {
		require.NotNil(t, second.Cells[i])
		assert.Equal(t, fmt.Sprintf("REF-%03d", i+6), second.Cells[i].Reference)
	}
	for i := 4; i < 56; i++ {
		assert.Nil(t, second.Cells[i])
	}

	assert.Equal(t, 4, sheet.NextPosition)
}

func TestBarcodePayload(t *testing.T) {
	assert.Equal(t, "SUP_ETE2026_ROBE_BLEU-38", domain.BarcodePayload("SUP_ETE2026_ROBE_BLEU", "38"))
}
