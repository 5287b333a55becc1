// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
)

// ObjectStore is the port for durable artifact storage (rendered label
// sheets, report exports). Implemented by the S3 adapter.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
