// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response wrapper. Every endpoint, success or
// failure, renders this shape; failures carry status=false and a message.
type Envelope struct {
	Data       interface{} `json:"data"`
	Count      int64       `json:"count"`
	Status     bool        `json:"status"`
	Message    string      `json:"message"`
	Page       int         `json:"page,omitempty"`
	Limit      int         `json:"limit,omitempty"`
	TotalPages int         `json:"total_pages,omitempty"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// respondData wraps a successful payload in the envelope.
func respondData(w http.ResponseWriter, logger *slog.Logger, data interface{}, count int64, message string) {
	respondJSON(w, logger, http.StatusOK, Envelope{
		Data:    data,
		Count:   count,
		Status:  true,
		Message: message,
	})
}

// respondPaginated is respondData plus pagination metadata.
func respondPaginated(w http.ResponseWriter, logger *slog.Logger, data interface{}, count int64, page, limit, totalPages int, message string) {
	respondJSON(w, logger, http.StatusOK, Envelope{
		Data:       data,
		Count:      count,
		Status:     true,
		Message:    message,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}

// respondFailure renders a status=false envelope. Service-level failures keep
// HTTP 200; only malformed requests get a 4xx.
func respondFailure(w http.ResponseWriter, logger *slog.Logger, httpStatus int, message string) {
	respondJSON(w, logger, httpStatus, Envelope{
		Data:    nil,
		Status:  false,
		Message: message,
	})
}
