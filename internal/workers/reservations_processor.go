// internal/workers/reservations_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// ReservationSweepProcessor expires reservations past their hold window
type ReservationSweepProcessor struct {
	workflow ports.WorkflowService
	logger   *slog.Logger
}

// NewReservationSweepProcessor creates a new reservation sweep processor
func NewReservationSweepProcessor(workflow ports.WorkflowService, logger *slog.Logger) *ReservationSweepProcessor {
	return &ReservationSweepProcessor{
		workflow: workflow,
		logger:   logger.With(slog.String("processor", "reservations")),
	}
}

// ProcessReservationSweep expires every open reservation whose hold
// window has elapsed and releases its stock back to the shelf.
func (p *ReservationSweepProcessor) ProcessReservationSweep(ctx context.Context, t *asynq.Task) error {
	expired, err := p.workflow.ExpireDueReservations(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to expire reservations: %w", err)
	}

	if expired > 0 {
		p.logger.InfoContext(ctx, "expired overdue reservations",
			slog.Int("count", expired))
	}

	return nil
}
