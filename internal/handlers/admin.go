// internal/handlers/admin.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Nojorono/meta-service-sub001/internal/workers"
)

// AdminHandler queues background maintenance jobs.
type AdminHandler struct {
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(asynqClient *asynq.Client, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "admin")),
	}
}

// RefreshOnhand handles POST /api/v1/admin/refresh-onhand
func (h *AdminHandler) RefreshOnhand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload workers.RefreshPayload
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondFailure(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal refresh payload",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to queue refresh job")
		return
	}

	task := asynq.NewTask(workers.TypeOnhandRefresh, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue refresh task",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to queue refresh job")
		return
	}

	h.logger.InfoContext(ctx, "onhand refresh queued",
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	respondData(w, h.logger, map[string]string{"task_id": info.ID}, 1, "Refresh job queued")
}

// GenerateReport handles POST /api/v1/admin/reports
func (h *AdminHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload workers.ReportPayload
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondFailure(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal report payload",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to queue report job")
		return
	}

	task := asynq.NewTask(workers.TypeOnhandReport, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("low"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue report task",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to queue report job")
		return
	}

	h.logger.InfoContext(ctx, "onhand report queued",
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	respondData(w, h.logger, map[string]string{"task_id": info.ID}, 1, "Report job queued")
}
