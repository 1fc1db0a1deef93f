package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/delivery/http/response"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReadingHandlerParams holds dependencies for ReadingHandler, injected by Fx.
type ReadingHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// ReadingHandler accepts device writes.
type ReadingHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewReadingHandler is the constructor for ReadingHandler
func NewReadingHandler(params ReadingHandlerParams) *ReadingHandler {
	return &ReadingHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// IngestResponse acknowledges a stored reading.
type IngestResponse struct {
	Status     string `json:"status"`
	ID         uint64 `json:"id"`
	SequenceID uint64 `json:"sequence_id"`
}

// Ingest handles POST /api/v1/readings.
func (h *ReadingHandler) Ingest(c echo.Context) error {
	deviceID := c.Request().Header.Get(deliverycontext.HeaderXDeviceID)
	token := c.Request().Header.Get(deliverycontext.HeaderXDeviceToken)
	if deviceID == "" || token == "" {
		return response.HandleAppError(c, domainerrors.ErrBadCredential)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit reports 413 through the read error.
		return errors.WithStack(err)
	}

	reading, err := h.ingestionUC.Ingest(c.Request().Context(), &usecase.IngestRequest{
		ClaimedDeviceID: deviceID,
		Secret:          token,
		Body:            body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, IngestResponse{
		Status:     "ok",
		ID:         reading.ID,
		SequenceID: reading.SequenceID,
	})
}
