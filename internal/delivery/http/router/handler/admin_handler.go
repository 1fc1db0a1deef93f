package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/delivery/http/middleware"
	"sensorhub/internal/delivery/http/response"
	"sensorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// AdminHandler manages device credentials for operators.
type AdminHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// ProvisionDevice handles POST /admin/devices. It creates the device (201)
// or rotates its secret (200); the new secret applies to the next write.
func (h *AdminHandler) ProvisionDevice(c echo.Context) error {
	var req usecase.DeviceCredential
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device credential")
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	device, created, err := h.deviceUC.Provision(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subject, _ := middleware.GetSubject(c)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Device credential provisioned",
		slog.String("device_id", device.DeviceID),
		slog.Bool("created", created),
		slog.String("operator", subject),
	)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, device)
}

// ListDevices handles GET /admin/devices.
func (h *AdminHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}
