// internal/core/ports/label_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/maraval/boutique-be/internal/core/domain"
)

// LabelRequest asks for count labels of one (product, size).
type LabelRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	SizeID    uuid.UUID `json:"size_id"`
	Count     int       `json:"count"`
}

// LabelService allocates sheet positions and queues sheet rendering.
type LabelService interface {
	EnqueuePrint(ctx context.Context, userID uuid.UUID, requests []LabelRequest) (*domain.PrintJob, error)
	GetJob(ctx context.Context, id uuid.UUID) (*domain.PrintJob, error)
	State(ctx context.Context) (*domain.LabelPrintState, error)
}
