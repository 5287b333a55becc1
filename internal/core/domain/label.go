// internal/core/domain/label.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sheet geometry: 4 columns by 14 rows of self-adhesive labels.
const (
	SheetColumns = 4
	SheetRows    = 14
	SheetCells   = SheetColumns * SheetRows
)

// Label is one cell to print: the DataMatrix payload plus the text lines
// shown under it.
type Label struct {
	ProductID uuid.UUID `json:"product_id"`
	SizeID    uuid.UUID `json:"size_id"`
	Reference string    `json:"reference"`
	SizeName  string    `json:"size_name"`
	Payload   string    `json:"payload"`
}

// SheetPage is one printable page of exactly SheetCells cells. A nil cell
// marks a position already consumed on the physical sheet by a previous
// print job.
type SheetPage struct {
	Cells []*Label `json:"cells"`
}

// Sheet is the full layout of a print job plus the cursor to persist.
type Sheet struct {
	Pages        []SheetPage `json:"pages"`
	NextPosition int         `json:"next_position"`
}

// BuildSheet lays labels onto pages, resuming at lastPosition on the
// current physical sheet. lastPosition placeholders are prepended, the
// combined list is chunked into pages of SheetCells, and the new cursor
// is (lastPosition + len(labels)) mod SheetCells.
func BuildSheet(lastPosition int, labels []Label) Sheet {
	if lastPosition < 0 || lastPosition >= SheetCells {
		lastPosition = 0
	}

	cells := make([]*Label, 0, lastPosition+len(labels))
	for i := 0; i < lastPosition; i++ {
		cells = append(cells, nil)
	}
	for i := range labels {
		cells = append(cells, &labels[i])
	}

	var pages []SheetPage
	for start := 0; start < len(cells); start += SheetCells {
		end := start + SheetCells
		if end > len(cells) {
			end = len(cells)
		}
		page := SheetPage{Cells: make([]*Label, SheetCells)}
		copy(page.Cells, cells[start:end])
		pages = append(pages, page)
	}

	return Sheet{
		Pages:        pages,
		NextPosition: (lastPosition + len(labels)) % SheetCells,
	}
}

// LabelPrintState is the single-row cursor tracking the next free cell
// (0..55) on the shared physical sheet. It is read and updated under a
// row lock inside one transaction.
type LabelPrintState struct {
	LastPosition int       `json:"last_position"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PrintJobStatus tracks the async rendering of a sheet artifact.
type PrintJobStatus string

const (
	PrintJobQueued   PrintJobStatus = "QUEUED"
	PrintJobRendered PrintJobStatus = "RENDERED"
	PrintJobFailed   PrintJobStatus = "FAILED"
)

// PrintJob records one label print request and where its rendered
// artifact ended up.
type PrintJob struct {
	ID          uuid.UUID      `json:"id"`
	RequestedBy uuid.UUID      `json:"requested_by"`
	LabelCount  int            `json:"label_count"`
	StartCell   int            `json:"start_cell"`
	Status      PrintJobStatus `json:"status"`
	ArtifactKey string         `json:"artifact_key,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
