// internal/handlers/export_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/handlers"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
	"github.com/Nojorono/meta-service-sub001/test/mocks"
)

func TestExportHandler_ExportExcel(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		ListOnhand(gomock.Any(), ports.OnhandListParams{Page: 1, Limit: 10000}).
		Return(&ports.OnhandListResult{
			Data: []domain.SubinventoryOnhand{
				{
					SubinventoryCode: "SUB001",
					Items: []domain.ItemOnhand{
						{
							ItemCode:        "ITM-0001",
							ItemDescription: "Clove Cigarette 12s",
							Quantity:        1440,
							BaseUom:         "BAL",
							Conversions: []domain.UomQuantity{
								{UomCode: "BAL", Quantity: 1440},
								{UomCode: "DUS", Quantity: 28800},
							},
						},
					},
				},
			},
			Count: 1,
		}, nil)

	handler := handlers.NewExportHandler(service, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/onhand", nil)
	rec := httptest.NewRecorder()
	handler.ExportExcel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	// xlsx files are zip archives
	body := rec.Body.Bytes()
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{'P', 'K'}, body[:2])
}

func TestExportHandler_ExportExcel_FiltersPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		ListOnhand(gomock.Any(), ports.OnhandListParams{
			ItemCode:     "ITM-0001",
			Subinventory: "SUB001",
			Page:         1,
			Limit:        10000,
		}).
		Return(&ports.OnhandListResult{}, nil)

	handler := handlers.NewExportHandler(service, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/onhand?item_code=ITM-0001&subinventory=SUB001", nil)
	rec := httptest.NewRecorder()
	handler.ExportExcel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportHandler_ExportExcel_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOnhandService(ctrl)

	service.EXPECT().
		ListOnhand(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database down"))

	handler := handlers.NewExportHandler(service, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/onhand", nil)
	rec := httptest.NewRecorder()
	handler.ExportExcel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	assert.False(t, env.Status)
}
