// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Nojorono/meta-service-sub001/internal/adapters/db"
	"github.com/Nojorono/meta-service-sub001/internal/adapters/storage"
)

// CleanupProcessor purges expired report archives and old transaction rows.
type CleanupProcessor struct {
	db        *db.Database
	storage   storage.StorageClient
	prefix    string
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database *db.Database, storageClient storage.StorageClient,
	prefix string, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:        database,
		storage:   storageClient,
		prefix:    prefix,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupReports removes archived reports older than the retention window.
func (p *CleanupProcessor) CleanupReports(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-p.retention)

	p.logger.InfoContext(ctx, "cleaning up old reports",
		slog.String("prefix", p.prefix),
		slog.Time("cutoff", cutoff))

	keys, err := p.storage.ListOlderThan(ctx, p.prefix, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list old reports: %w", err)
	}

	if len(keys) == 0 {
		p.logger.InfoContext(ctx, "no reports to clean up")
		return nil
	}

	if err := p.storage.DeleteMultiple(ctx, keys); err != nil {
		return fmt.Errorf("failed to delete old reports: %w", err)
	}

	// Transactions outside the retention window have long been reflected in
	// the on-hand view and only serve as an audit trail.
	query := `DELETE FROM inventory_transactions WHERE created_at < NOW() - INTERVAL '180 days'`
	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to cleanup old transactions: %w", err)
	}

	p.logger.InfoContext(ctx, "cleanup completed",
		slog.Int("reports_deleted", len(keys)),
		slog.Int64("transactions_deleted", result.RowsAffected()))

	return nil
}
