package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sensorhub/config"
	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/domain/service"
	"sensorhub/internal/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// Clients only send pongs and keepalive text; anything larger is a misuse.
	maxClientMessageSize = 512

	closeReasonSlowConsumer = "slow consumer"
	closeReasonShutdown     = "server shutting down"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub    service.LiveHub
	Config *config.Config
	Logger *slog.Logger
}

// StreamHandler bridges hub subscriptions to websocket clients.
type StreamHandler struct {
	hub          service.LiveHub
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	pingInterval time.Duration
	logger       *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		hub: params.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Dashboards are served from other origins, same as the CORS policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		writeTimeout: params.Config.Live.WriteTimeout,
		pingInterval: params.Config.Live.PingInterval,
		logger:       params.Logger,
	}
}

// Stream handles GET /ws/devices/:id. Every reading stored for the device
// after the upgrade is sent as one JSON text message.
func (h *StreamHandler) Stream(c echo.Context) error {
	deviceID := c.Param("id")
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).With(slog.String("device_id", deviceID))

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already wrote the HTTP error.
		logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	sub := h.hub.Subscribe(deviceID)
	defer h.hub.Unsubscribe(sub)
	logger.Debug("Live subscriber attached")

	done := make(chan struct{})
	go h.readPump(conn, done)

	h.writePump(conn, sub, done, logger)

	return nil
}

// readPump drains client frames so control frames are processed, and
// signals done once the peer goes away.
func (h *StreamHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxClientMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *StreamHandler) writePump(conn *websocket.Conn, sub service.LiveSubscription, done <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case reading, ok := <-sub.Readings():
			if !ok {
				code, reason := closeFrameFor(sub.Err())
				logger.Info("Live subscription ended", slog.Int("close_code", code), slog.String("reason", reason))
				_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(h.writeTimeout))

				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := conn.WriteJSON(reading); err != nil {
				logger.Debug("Live write failed", slog.Any("error", err))

				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				return
			}
		case <-done:
			logger.Debug("Live subscriber left")

			return
		}
	}
}

// closeFrameFor maps the reason a subscription ended to a websocket close frame.
func closeFrameFor(reason error) (int, string) {
	switch {
	case errors.Is(reason, service.ErrSlowConsumer):
		return websocket.ClosePolicyViolation, closeReasonSlowConsumer
	case errors.Is(reason, service.ErrHubClosed):
		return websocket.CloseGoingAway, closeReasonShutdown
	default:
		return websocket.CloseNormalClosure, ""
	}
}
