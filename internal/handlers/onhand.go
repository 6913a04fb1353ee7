// internal/handlers/onhand.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

// OnhandHandler handles on-hand quantity HTTP requests
type OnhandHandler struct {
	service ports.OnhandService
	logger  *slog.Logger
}

// NewOnhandHandler creates a new on-hand handler
func NewOnhandHandler(service ports.OnhandService, logger *slog.Logger) *OnhandHandler {
	return &OnhandHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "onhand")),
	}
}

// ListOnhand handles GET /api/v1/onhand
func (h *OnhandHandler) ListOnhand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseListParams(r)

	result, err := h.service.ListOnhand(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list onhand quantities",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve onhand quantities")
		return
	}

	respondPaginated(w, h.logger, result.Data, result.Count,
		result.Page, result.Limit, result.TotalPages,
		"Onhand quantities retrieved successfully")
}

// GetItemOnhand handles GET /api/v1/onhand/{itemCode}
func (h *OnhandHandler) GetItemOnhand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemCode := r.PathValue("itemCode")
	if itemCode == "" {
		respondFailure(w, h.logger, http.StatusBadRequest, "Item code is required")
		return
	}

	groups, err := h.service.GetItemOnhand(ctx, itemCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get item onhand",
			slog.String("item_code", itemCode),
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve onhand for item")
		return
	}

	respondData(w, h.logger, groups, int64(len(groups)), "Onhand retrieved successfully")
}

// ListConversions handles GET /api/v1/uom-conversions
func (h *OnhandHandler) ListConversions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page := parsePositiveInt(q.Get("page"), ports.DefaultPage)
	limit := parsePositiveInt(q.Get("limit"), ports.DefaultLimit)

	result, err := h.service.ListConversionRates(ctx, q.Get("item_code"), page, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list conversion rates",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve conversion rates")
		return
	}

	respondPaginated(w, h.logger, result.Data, result.Count,
		result.Page, result.Limit, result.TotalPages,
		"Conversion rates retrieved successfully")
}

// RecordTransaction handles POST /api/v1/inventory/transactions
func (h *OnhandHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx := req.ToDomain()
	if err := h.service.RecordTransaction(ctx, tx); err != nil {
		h.logger.ErrorContext(ctx, "failed to record inventory transaction",
			slog.String("item_code", req.ItemCode),
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, err.Error())
		return
	}

	respondData(w, h.logger, tx, 1, "Transaction recorded successfully")
}

// parseListParams parses query parameters for the onhand list
func (h *OnhandHandler) parseListParams(r *http.Request) ports.OnhandListParams {
	q := r.URL.Query()
	return ports.OnhandListParams{
		ItemCode:        q.Get("item_code"),
		Subinventory:    q.Get("subinventory"),
		ItemDescription: q.Get("item_description"),
		Page:            parsePositiveInt(q.Get("page"), ports.DefaultPage),
		Limit:           parsePositiveInt(q.Get("limit"), ports.DefaultLimit),
	}
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return fallback
}

// RecordTransactionRequest represents the request body for recording an
// inventory movement.
type RecordTransactionRequest struct {
	ItemCode         string     `json:"item_code"`
	SubinventoryCode string     `json:"subinventory_code"`
	Quantity         float64    `json:"quantity"`
	UomCode          string     `json:"uom_code"`
	TransactionType  string     `json:"transaction_type"`
	TransactionDate  *time.Time `json:"transaction_date,omitempty"`
	Reference        string     `json:"reference,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *RecordTransactionRequest) ToDomain() *domain.InventoryTransaction {
	tx := &domain.InventoryTransaction{
		ItemCode:         r.ItemCode,
		SubinventoryCode: r.SubinventoryCode,
		Quantity:         r.Quantity,
		UomCode:          r.UomCode,
		TransactionType:  domain.TransactionType(r.TransactionType),
		Reference:        r.Reference,
	}
	if r.TransactionDate != nil {
		tx.TransactionDate = *r.TransactionDate
	}
	return tx
}
