// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Nojorono/meta-service-sub001/internal/adapters/storage"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/pkg/report"
)

// reportFetchLimit bounds how many on-hand rows one report pulls.
const reportFetchLimit = 10000

// ReportPayload is the payload for an on-hand report generation task.
type ReportPayload struct {
	ItemCode     string `json:"item_code,omitempty"`
	Subinventory string `json:"subinventory,omitempty"`
	RequestedBy  string `json:"requested_by,omitempty"`
}

// ReportProcessor generates on-hand spreadsheets and archives them to object
// storage.
type ReportProcessor struct {
	service ports.OnhandService
	storage storage.StorageClient
	prefix  string
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(service ports.OnhandService, storageClient storage.StorageClient,
	prefix string, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		service: service,
		storage: storageClient,
		prefix:  prefix,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// GenerateReport builds the on-hand workbook and uploads it.
func (p *ReportProcessor) GenerateReport(ctx context.Context, t *asynq.Task) error {
	var payload ReportPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "generating onhand report",
		slog.String("item_code", payload.ItemCode),
		slog.String("subinventory", payload.Subinventory),
		slog.String("requested_by", payload.RequestedBy))

	result, err := p.service.ListOnhand(ctx, ports.OnhandListParams{
		ItemCode:     payload.ItemCode,
		Subinventory: payload.Subinventory,
		Page:         1,
		Limit:        reportFetchLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to load onhand data: %w", err)
	}

	data, err := report.BuildOnhandWorkbook(result.Data)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	key := p.prefix + "/" + report.Filename(time.Now())
	location, err := p.storage.Upload(ctx, key, bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	p.logger.InfoContext(ctx, "onhand report archived",
		slog.String("key", key),
		slog.String("location", location),
		slog.Int("subinventories", len(result.Data)))

	return nil
}
