package middleware

import (
	"log/slog"

	deliverycontext "sensorhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id or mints one, echoes it back and
// puts the scoped logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		var attrs []any
		if deviceID := c.Request().Header.Get(deliverycontext.HeaderXDeviceID); deviceID != "" {
			attrs = append(attrs, slog.String("claimed_device_id", deviceID))
		}

		ctx := deliverycontext.Scoped(c.Request().Context(), m.logger, requestID, attrs...)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
