// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/maraval/boutique-be/internal/core/ports"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	db     ports.Database
	store  ports.ObjectStore
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(db ports.Database, store ports.ObjectStore, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     db,
		store:  store,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldData removes terminal print jobs older than 90 days along
// with their rendered sheet artifacts. Stock movements are never touched,
// they are the audit trail.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old print jobs")

	rows, err := p.db.Query(ctx, `
		SELECT artifact_key FROM print_jobs
		WHERE status IN ('RENDERED', 'FAILED')
		  AND updated_at < NOW() - INTERVAL '90 days'
		  AND artifact_key <> ''`)
	if err != nil {
		return fmt.Errorf("failed to list old print jobs: %w", err)
	}

	var prefixes []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan artifact key: %w", err)
		}
		prefixes = append(prefixes, key)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read artifact keys: %w", err)
	}

	for _, prefix := range prefixes {
		keys, err := p.store.List(ctx, prefix)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to list artifacts",
				slog.String("prefix", prefix),
				slog.String("error", err.Error()))
			continue
		}
		for _, key := range keys {
			if err := p.store.Delete(ctx, key); err != nil {
				p.logger.WarnContext(ctx, "failed to delete artifact",
					slog.String("key", key),
					slog.String("error", err.Error()))
			}
		}
	}

	result, err := p.db.Exec(ctx, `
		DELETE FROM print_jobs
		WHERE status IN ('RENDERED', 'FAILED')
		  AND updated_at < NOW() - INTERVAL '90 days'`)
	if err != nil {
		return fmt.Errorf("failed to cleanup print jobs: %w", err)
	}

	p.logger.InfoContext(ctx, "old print jobs cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}
