// internal/workers/refresh_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

const (
	TypeOnhandRefresh = "onhand:refresh"
	TypeOnhandReport  = "onhand:report"
	TypeReportCleanup = "report:cleanup"
)

// RefreshPayload is the payload for an on-hand cache refresh task.
type RefreshPayload struct {
	RequestedBy string `json:"requested_by,omitempty"`
	Warm        bool   `json:"warm"`
}

// RefreshProcessor invalidates and optionally rewarms the on-hand caches.
type RefreshProcessor struct {
	service ports.OnhandService
	logger  *slog.Logger
}

// NewRefreshProcessor creates a new refresh processor
func NewRefreshProcessor(service ports.OnhandService, logger *slog.Logger) *RefreshProcessor {
	return &RefreshProcessor{
		service: service,
		logger:  logger.With(slog.String("processor", "refresh")),
	}
}

// RefreshOnhand drops every cached on-hand read and, when requested, rewarms
// the unfiltered first page.
func (p *RefreshProcessor) RefreshOnhand(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "refreshing onhand caches",
		slog.String("requested_by", payload.RequestedBy),
		slog.Bool("warm", payload.Warm))

	if err := p.service.InvalidateOnhand(ctx); err != nil {
		return fmt.Errorf("failed to invalidate onhand caches: %w", err)
	}

	if payload.Warm {
		if _, err := p.service.ListOnhand(ctx, ports.OnhandListParams{}); err != nil {
			return fmt.Errorf("failed to warm onhand cache: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "onhand caches refreshed")
	return nil
}
