// internal/workers/labels_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/pkg/config"
)

const (
	TypeLabelSheetRender = "labels:render_sheet"
	TypeReservationSweep = "reservations:sweep"
	TypeCleanupOldData   = "cleanup:old_data"
)

// Pixel geometry of one sheet cell. The DataMatrix code is centered in
// its cell with a quiet zone around it.
const (
	cellEdge    = 150
	barcodeEdge = 120
)

// LabelSheetPayload represents the payload for sheet render jobs
type LabelSheetPayload struct {
	JobID        string         `json:"job_id"`
	LastPosition int            `json:"last_position"`
	Labels       []domain.Label `json:"labels"`
}

// LabelSheetProcessor renders queued print jobs into PNG sheet pages and
// uploads them to the object store
type LabelSheetProcessor struct {
	labels ports.LabelStateRepository
	store  ports.ObjectStore
	config *config.Config
	logger *slog.Logger
}

// NewLabelSheetProcessor creates a new label sheet processor
func NewLabelSheetProcessor(labels ports.LabelStateRepository, store ports.ObjectStore, config *config.Config, logger *slog.Logger) *LabelSheetProcessor {
	return &LabelSheetProcessor{
		labels: labels,
		store:  store,
		config: config,
		logger: logger.With(slog.String("processor", "labels")),
	}
}

// ProcessLabelSheet lays the labels onto pages starting at the persisted
// cursor, renders one PNG per page and marks the job RENDERED. Render or
// upload failures mark the job FAILED and surface the error for retry.
func (p *LabelSheetProcessor) ProcessLabelSheet(ctx context.Context, t *asynq.Task) error {
	var payload LabelSheetPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	jobID, err := uuid.Parse(payload.JobID)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", payload.JobID, err)
	}

	job, err := p.labels.FindPrintJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load print job: %w", err)
	}
	if job == nil {
		p.logger.WarnContext(ctx, "print job vanished, dropping task",
			slog.String("job_id", payload.JobID))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Retail.LabelRenderTimeout)
	defer cancel()

	p.logger.InfoContext(ctx, "rendering label sheet",
		slog.String("job_id", payload.JobID),
		slog.Int("labels", len(payload.Labels)),
		slog.Int("last_position", payload.LastPosition))

	sheet := domain.BuildSheet(payload.LastPosition, payload.Labels)
	artifactPrefix := fmt.Sprintf("%s%s/", p.config.Retail.LabelArtifactPrefix, payload.JobID)

	for i, page := range sheet.Pages {
		img, err := renderPage(page)
		if err != nil {
			return p.fail(ctx, job, fmt.Errorf("failed to render page %d: %w", i+1, err))
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return p.fail(ctx, job, fmt.Errorf("failed to encode page %d: %w", i+1, err))
		}

		key := fmt.Sprintf("%spage-%02d.png", artifactPrefix, i+1)
		if _, err := p.store.Upload(ctx, key, "image/png", &buf); err != nil {
			return p.fail(ctx, job, fmt.Errorf("failed to upload page %d: %w", i+1, err))
		}
	}

	job.Status = domain.PrintJobRendered
	job.ArtifactKey = artifactPrefix
	job.Error = ""
	job.UpdatedAt = time.Now()
	if err := p.labels.UpdatePrintJob(ctx, job); err != nil {
		return fmt.Errorf("failed to update print job: %w", err)
	}

	p.logger.InfoContext(ctx, "label sheet rendered",
		slog.String("job_id", payload.JobID),
		slog.Int("pages", len(sheet.Pages)),
		slog.String("artifact_key", artifactPrefix))

	return nil
}

func (p *LabelSheetProcessor) fail(ctx context.Context, job *domain.PrintJob, cause error) error {
	job.Status = domain.PrintJobFailed
	job.Error = cause.Error()
	job.UpdatedAt = time.Now()
	if err := p.labels.UpdatePrintJob(ctx, job); err != nil {
		p.logger.ErrorContext(ctx, "failed to mark print job failed",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()))
	}
	return cause
}

// renderPage draws one page of the sheet. Nil cells are positions already
// consumed on the physical sheet and stay blank.
func renderPage(page domain.SheetPage) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, domain.SheetColumns*cellEdge, domain.SheetRows*cellEdge))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, cell := range page.Cells {
		if cell == nil {
			continue
		}

		code, err := datamatrix.Encode(cell.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", cell.Payload, err)
		}
		scaled, err := barcode.Scale(code, barcodeEdge, barcodeEdge)
		if err != nil {
			return nil, fmt.Errorf("failed to scale %q: %w", cell.Payload, err)
		}

		col := i % domain.SheetColumns
		row := i / domain.SheetColumns
		offset := image.Pt(
			col*cellEdge+(cellEdge-barcodeEdge)/2,
			row*cellEdge+(cellEdge-barcodeEdge)/2,
		)
		draw.Draw(img, scaled.Bounds().Add(offset), scaled, scaled.Bounds().Min, draw.Over)
	}

	return img, nil
}
