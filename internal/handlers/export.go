// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/pkg/report"
)

// exportFetchLimit bounds a synchronous export to one oversized page instead
// of streaming the whole view.
const exportFetchLimit = 10000

// ExportHandler serves the synchronous on-hand spreadsheet download.
type ExportHandler struct {
	service ports.OnhandService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.OnhandService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/onhand
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	params := ports.OnhandListParams{
		ItemCode:     q.Get("item_code"),
		Subinventory: q.Get("subinventory"),
		Page:         1,
		Limit:        exportFetchLimit,
	}

	result, err := h.service.ListOnhand(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load onhand data for export",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve onhand data")
		return
	}

	excelData, err := report.BuildOnhandWorkbook(result.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate workbook",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to generate export file")
		return
	}

	filename := report.Filename(time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "onhand export completed",
		slog.Int("subinventories", len(result.Data)),
		slog.String("filename", filename))
}
