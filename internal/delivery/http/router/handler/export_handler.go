package handler

import (
	"fmt"
	"io"
	"net/http"

	"sensorhub/internal/delivery/http/response"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
}

// ExportHandler streams per-day CSV files.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{exportUC: params.ExportUC}
}

// ExportCSV handles GET /api/v1/devices/:id/csv?day=YYYY-MM-DD.
// Unknown devices get 404, a known device without readings that day gets 204.
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	res := c.Response()

	result, err := h.exportUC.ExportCSV(c.Request().Context(), c.Param("id"), c.QueryParam("day"), func(filename string) io.Writer {
		res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
		res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		res.WriteHeader(http.StatusOK)

		return res
	})
	if err != nil {
		if res.Committed {
			// Partial body already sent; the error handler only logs.
			return errors.WithStack(err)
		}

		return response.HandleAppError(c, err)
	}

	if result.Empty {
		return c.NoContent(http.StatusNoContent)
	}
	res.Flush()

	return nil
}
