// internal/handlers/customer.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

// CustomerHandler handles customer master-data HTTP requests
type CustomerHandler struct {
	service ports.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service ports.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "customer")),
	}
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	params := ports.CustomerListParams{
		CustomerCode: q.Get("customer_code"),
		CustomerName: q.Get("customer_name"),
		City:         q.Get("city"),
		Page:         parsePositiveInt(q.Get("page"), ports.DefaultPage),
		Limit:        parsePositiveInt(q.Get("limit"), ports.DefaultLimit),
	}

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list customers",
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve customers")
		return
	}

	respondPaginated(w, h.logger, result.Data, result.Count,
		result.Page, result.Limit, result.TotalPages,
		"Customers retrieved successfully")
}

// GetCustomer handles GET /api/v1/customers/{customerCode}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerCode := r.PathValue("customerCode")
	if customerCode == "" {
		respondFailure(w, h.logger, http.StatusBadRequest, "Customer code is required")
		return
	}

	customer, err := h.service.GetByCode(ctx, customerCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get customer",
			slog.String("customer_code", customerCode),
			slog.String("error", err.Error()))
		respondFailure(w, h.logger, http.StatusOK, "Failed to retrieve customer")
		return
	}

	respondData(w, h.logger, customer, 1, "Customer retrieved successfully")
}
