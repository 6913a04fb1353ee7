// internal/workers/refresh_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/workers"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
	"github.com/Nojorono/meta-service-sub001/test/mocks"
)

func refreshTask(t *testing.T, payload workers.RefreshPayload) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(workers.TypeOnhandRefresh, data)
}

func TestRefreshProcessor_InvalidateOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		InvalidateOnhand(gomock.Any()).
		Return(nil)

	p := workers.NewRefreshProcessor(service, helpers.TestLogger())

	err := p.RefreshOnhand(context.Background(),
		refreshTask(t, workers.RefreshPayload{RequestedBy: "admin"}))
	require.NoError(t, err)
}

func TestRefreshProcessor_WarmRepopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	gomock.InOrder(
		service.EXPECT().
			InvalidateOnhand(gomock.Any()).
			Return(nil),
		service.EXPECT().
			ListOnhand(gomock.Any(), ports.OnhandListParams{}).
			Return(&ports.OnhandListResult{}, nil),
	)

	p := workers.NewRefreshProcessor(service, helpers.TestLogger())

	err := p.RefreshOnhand(context.Background(),
		refreshTask(t, workers.RefreshPayload{Warm: true}))
	require.NoError(t, err)
}

func TestRefreshProcessor_EmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		InvalidateOnhand(gomock.Any()).
		Return(nil)

	p := workers.NewRefreshProcessor(service, helpers.TestLogger())

	err := p.RefreshOnhand(context.Background(), asynq.NewTask(workers.TypeOnhandRefresh, nil))
	require.NoError(t, err)
}

func TestRefreshProcessor_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	p := workers.NewRefreshProcessor(service, helpers.TestLogger())

	err := p.RefreshOnhand(context.Background(),
		asynq.NewTask(workers.TypeOnhandRefresh, []byte("{not json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal payload")
}

func TestRefreshProcessor_InvalidationErrorFailsTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		InvalidateOnhand(gomock.Any()).
		Return(errors.New("redis down"))

	p := workers.NewRefreshProcessor(service, helpers.TestLogger())

	err := p.RefreshOnhand(context.Background(),
		refreshTask(t, workers.RefreshPayload{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
