// internal/core/services/customer_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/Nojorono/meta-service-sub001/internal/adapters/redis_adapter"
	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/core/services"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
	"github.com/Nojorono/meta-service-sub001/test/mocks"
)

func newCustomerService(t *testing.T) (*services.CustomerService, *mocks.MockCustomerRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)

	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Hour, helpers.TestLogger())

	return services.NewCustomerService(repo, cache, time.Hour, helpers.TestLogger()), repo
}

func TestCustomerService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCustomerService(t)

	customers := []domain.Customer{*helpers.CreateTestCustomer()}
	repo.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.CustomerListParams) ([]domain.Customer, int64, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 10, params.Limit)
			return customers, 23, nil
		}).
		Times(1)

	result, err := svc.List(ctx, ports.CustomerListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(23), result.Count)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "CUST-001", result.Data[0].CustomerCode)

	// Second call is a cache hit
	again, err := svc.List(ctx, ports.CustomerListParams{})
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestCustomerService_List_RepositoryError(t *testing.T) {
	svc, repo := newCustomerService(t)

	repo.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("view unavailable"))

	_, err := svc.List(context.Background(), ports.CustomerListParams{City: "Malang"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view unavailable")
}

func TestCustomerService_GetByCode(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCustomerService(t)

	repo.EXPECT().
		FindByCode(gomock.Any(), "CUST-001").
		Return(helpers.CreateTestCustomer(), nil).
		Times(1)

	customer, err := svc.GetByCode(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Equal(t, "Toko Sumber Rejeki", customer.CustomerName)

	// Cached on the second read
	again, err := svc.GetByCode(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Equal(t, customer, again)
}

func TestCustomerService_GetByCode_NotFound(t *testing.T) {
	svc, repo := newCustomerService(t)

	repo.EXPECT().
		FindByCode(gomock.Any(), "CUST-404").
		Return(nil, nil)

	_, err := svc.GetByCode(context.Background(), "CUST-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer not found")
}

func TestCustomerService_GetByCode_RequiresCode(t *testing.T) {
	svc, _ := newCustomerService(t)

	_, err := svc.GetByCode(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer_code is required")
}
