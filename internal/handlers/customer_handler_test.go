// internal/handlers/customer_handler_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/handlers"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
	"github.com/Nojorono/meta-service-sub001/test/mocks"
)

func TestCustomerHandler_ListCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCustomerService(ctrl)

	service.EXPECT().
		List(gomock.Any(), ports.CustomerListParams{
			CustomerName: "toko",
			City:         "Surabaya",
			Page:         1,
			Limit:        10,
		}).
		Return(&ports.CustomerListResult{
			Data:       []domain.Customer{*helpers.CreateTestCustomer()},
			Count:      1,
			Page:       1,
			Limit:      10,
			TotalPages: 1,
		}, nil)

	handler := handlers.NewCustomerHandler(service, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?customer_name=toko&city=Surabaya", nil)
	rec := httptest.NewRecorder()
	handler.ListCustomers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	assert.True(t, env.Status)
	assert.Equal(t, int64(1), env.Count)
}

func TestCustomerHandler_ListCustomers_ServiceFailureKeepsHTTP200(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCustomerService(ctrl)

	service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database down"))

	handler := handlers.NewCustomerHandler(service, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rec := httptest.NewRecorder()
	handler.ListCustomers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	assert.False(t, env.Status)
	assert.Equal(t, "Failed to retrieve customers", env.Message)
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCustomerService(ctrl)

	service.EXPECT().
		GetByCode(gomock.Any(), "CUST-001").
		Return(helpers.CreateTestCustomer(), nil)

	handler := handlers.NewCustomerHandler(service, helpers.TestLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/customers/{customerCode}", handler.GetCustomer)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/CUST-001", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	assert.True(t, env.Status)
}

func TestCustomerHandler_GetCustomer_NotFoundKeepsHTTP200(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCustomerService(ctrl)

	service.EXPECT().
		GetByCode(gomock.Any(), "CUST-404").
		Return(nil, errors.New("customer not found: CUST-404"))

	handler := handlers.NewCustomerHandler(service, helpers.TestLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/customers/{customerCode}", handler.GetCustomer)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/CUST-404", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	assert.False(t, env.Status)
}
