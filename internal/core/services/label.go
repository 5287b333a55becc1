// internal/core/services/label.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/workers"
)

// LabelService turns per-size label requests into a sheet print job:
// positions are allocated under the row-locked cursor, then rendering is
// handed to the worker queue.
type LabelService struct {
	labels  ports.LabelStateRepository
	catalog ports.CatalogRepository
	db      ports.Database
	asynq   *asynq.Client
	logger  *slog.Logger
}

var _ ports.LabelService = (*LabelService)(nil)

// NewLabelService creates a new label service.
func NewLabelService(
	labels ports.LabelStateRepository,
	catalog ports.CatalogRepository,
	db ports.Database,
	asynqClient *asynq.Client,
	logger *slog.Logger,
) *LabelService {
	return &LabelService{
		labels:  labels,
		catalog: catalog,
		db:      db,
		asynq:   asynqClient,
		logger:  logger.With(slog.String("service", "label")),
	}
}

// EnqueuePrint expands the requests into labels, allocates their cells on
// the shared sheet and queues the render job. The cursor read, advance
// and job insert share one transaction.
func (s *LabelService) EnqueuePrint(ctx context.Context, userID uuid.UUID, requests []ports.LabelRequest) (*domain.PrintJob, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("no labels requested")
	}

	var labels []domain.Label
	for _, req := range requests {
		if req.Count <= 0 {
			return nil, domain.ErrNonPositiveQuantity
		}
		product, err := s.catalog.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		size, err := s.catalog.FindSizeByID(ctx, req.SizeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load size: %w", err)
		}
		if product == nil || size == nil {
			return nil, domain.ErrMissingProductOrSize
		}
		for i := 0; i < req.Count; i++ {
			labels = append(labels, domain.Label{
				ProductID: req.ProductID,
				SizeID:    req.SizeID,
				Reference: product.Reference,
				SizeName:  size.Name,
				Payload:   domain.BarcodePayload(product.Reference, size.Name),
			})
		}
	}

	job := &domain.PrintJob{
		ID:          uuid.New(),
		RequestedBy: userID,
		LabelCount:  len(labels),
		Status:      domain.PrintJobQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		start, err := s.labels.AllocateTx(ctx, tx, len(labels))
		if err != nil {
			return fmt.Errorf("failed to allocate sheet positions: %w", err)
		}
		job.StartCell = start
		if err := s.labels.SavePrintJobTx(ctx, tx, job); err != nil {
			return fmt.Errorf("failed to save print job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payload := workers.LabelSheetPayload{
		JobID:        job.ID.String(),
		LastPosition: job.StartCell,
		Labels:       labels,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(workers.TypeLabelSheetRender, b)
	info, err := s.asynq.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue render task: %w", err)
	}

	s.logger.InfoContext(ctx, "label print job queued",
		slog.String("job_id", job.ID.String()),
		slog.Int("labels", len(labels)),
		slog.Int("start_cell", job.StartCell),
		slog.String("task_id", info.ID))

	return job, nil
}

// GetJob returns a print job by identifier.
func (s *LabelService) GetJob(ctx context.Context, id uuid.UUID) (*domain.PrintJob, error) {
	job, err := s.labels.FindPrintJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load print job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("print job not found: %s", id)
	}
	return job, nil
}

// State returns the shared sheet cursor.
func (s *LabelService) State(ctx context.Context) (*domain.LabelPrintState, error) {
	state, err := s.labels.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load label state: %w", err)
	}
	return state, nil
}
