package handler

import (
	"context"
	"io"
	"net/http"
	"testing"

	domainerrors "sensorhub/internal/domain/errors"
	mocks "sensorhub/internal/mocks/usecase"
	"sensorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newExportRoutes(t *testing.T) (*mocks.MockExportUsecase, *echo.Echo) {
	exportUC := mocks.NewMockExportUsecase(t)
	h := NewExportHandler(ExportHandlerParams{ExportUC: exportUC})

	e := newTestEcho()
	e.GET("/api/v1/devices/:id/csv", h.ExportCSV)

	return exportUC, e
}

func TestExportHandler_StreamsCSV(t *testing.T) {
	exportUC, e := newExportRoutes(t)
	exportUC.EXPECT().
		ExportCSV(mock.Anything, "jetson-lab-01", "2025-12-05", mock.Anything).
		RunAndReturn(func(_ context.Context, deviceID, day string, open func(string) io.Writer) (*usecase.ExportResult, error) {
			w := open(deviceID + "_" + day + ".csv")
			_, _ = io.WriteString(w, "timestamp,temperature_c\n2025-12-05T19:15:54Z,23.5\n")

			return &usecase.ExportResult{Filename: deviceID + "_" + day + ".csv", Metrics: []string{"temperature_c"}, Rows: 1}, nil
		}).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/v1/devices/jetson-lab-01/csv?day=2025-12-05", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="jetson-lab-01_2025-12-05.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "timestamp,temperature_c\n2025-12-05T19:15:54Z,23.5\n", rec.Body.String())
}

func TestExportHandler_EmptyDayIsNoContent(t *testing.T) {
	exportUC, e := newExportRoutes(t)
	exportUC.EXPECT().
		ExportCSV(mock.Anything, "jetson-lab-01", "2025-12-04", mock.Anything).
		Return(&usecase.ExportResult{Filename: "jetson-lab-01_2025-12-04.csv", Empty: true}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/v1/devices/jetson-lab-01/csv?day=2025-12-04", "", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
}

func TestExportHandler_UnknownDeviceIsNotFound(t *testing.T) {
	exportUC, e := newExportRoutes(t)
	exportUC.EXPECT().
		ExportCSV(mock.Anything, "ghost", "2025-12-05", mock.Anything).
		Return(nil, domainerrors.ErrDeviceNotFound).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/v1/devices/ghost/csv?day=2025-12-05", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestExportHandler_FailureAfterStreamingStarted(t *testing.T) {
	exportUC, e := newExportRoutes(t)
	exportUC.EXPECT().
		ExportCSV(mock.Anything, "jetson-lab-01", "2025-12-05", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, open func(string) io.Writer) (*usecase.ExportResult, error) {
			_, _ = io.WriteString(open("jetson-lab-01_2025-12-05.csv"), "timestamp,temperature_c\n")

			return nil, domainerrors.NewStoreUnavailableError(io.ErrUnexpectedEOF, "export rows")
		}).
		Once()

	rec := doRequest(e, http.MethodGet, "/api/v1/devices/jetson-lab-01/csv?day=2025-12-05", "", nil)

	// Headers went out with the first byte, so the truncated body is all the client sees.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "timestamp,temperature_c\n", rec.Body.String())
}
