package handler

import (
	"net/http"

	"sensorhub/internal/delivery/http/response"
	"sensorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QueryHandlerParams holds dependencies for QueryHandler, injected by Fx.
type QueryHandlerParams struct {
	fx.In

	QueryUC usecase.QueryUsecase
}

// QueryHandler serves the read API polled by dashboards.
type QueryHandler struct {
	queryUC usecase.QueryUsecase
}

// NewQueryHandler is the constructor for QueryHandler
func NewQueryHandler(params QueryHandlerParams) *QueryHandler {
	return &QueryHandler{queryUC: params.QueryUC}
}

// DeviceListResponse lists the devices that have data.
type DeviceListResponse struct {
	Devices []string `json:"devices"`
}

// ListDevices handles GET /api/v1/devices.
func (h *QueryHandler) ListDevices(c echo.Context) error {
	devices, err := h.queryUC.ListDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if devices == nil {
		devices = []string{}
	}

	return c.JSON(http.StatusOK, DeviceListResponse{Devices: devices})
}

// Latest handles GET /api/v1/devices/:id/latest.
func (h *QueryHandler) Latest(c echo.Context) error {
	reading, err := h.queryUC.Latest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, reading)
}

// Range handles GET /api/v1/devices/:id/readings?from_date=&to_date=.
func (h *QueryHandler) Range(c echo.Context) error {
	readings, err := h.queryUC.Range(c.Request().Context(), &usecase.RangeInput{
		DeviceID: c.Param("id"),
		FromDay:  c.QueryParam("from_date"),
		ToDay:    c.QueryParam("to_date"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, readings)
}
