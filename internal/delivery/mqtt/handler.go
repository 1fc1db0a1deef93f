package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "sensorhub/internal/delivery/context"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// envelope is the credential part of an MQTT reading. The rest of the
// message is the ordinary reading body.
type envelope struct {
	DeviceToken string `json:"device_token"`
}

type messageHandler struct {
	// deviceLevel is the index of the "+" wildcard in the topic filter, or -1.
	deviceLevel int
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

func newMessageHandler(topicFilter string, ingestionUC usecase.IngestionUsecase, logger *slog.Logger) *messageHandler {
	deviceLevel := -1
	for i, level := range strings.Split(topicFilter, "/") {
		if level == "+" {
			deviceLevel = i

			break
		}
	}

	return &messageHandler{
		deviceLevel: deviceLevel,
		ingestionUC: ingestionUC,
		logger:      logger,
	}
}

// handle runs one message through ingestion. Stored readings and rejected
// ones are acknowledged, since a redelivery would be rejected the same way.
// A store failure leaves the message unacknowledged so the broker delivers
// it again.
func (h *messageHandler) handle(ctx context.Context, m paho.Message) {
	claimed := h.deviceFromTopic(m.Topic())
	ctx = deliverycontext.Scoped(ctx, h.logger, uuid.NewString(),
		slog.String("topic", m.Topic()),
		slog.String("claimed_device_id", claimed),
	)
	logger := deliverycontext.GetLogger(ctx)

	var env envelope
	if err := json.Unmarshal(m.Payload(), &env); err != nil {
		// Ingest reports the malformed body; the token just stays empty.
		logger.Debug("MQTT envelope not decodable", slog.Any("error", err))
	}

	reading, err := h.ingestionUC.Ingest(ctx, &usecase.IngestRequest{
		ClaimedDeviceID: claimed,
		Secret:          env.DeviceToken,
		Body:            m.Payload(),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			logger.Error("MQTT reading not stored, leaving unacknowledged", slog.Any("error", err))

			return
		}

		logger.Warn("MQTT reading rejected", slog.Any("error", err))
		m.Ack()

		return
	}

	m.Ack()
	logger.Debug("MQTT reading stored",
		slog.String("device_id", reading.DeviceID),
		slog.Uint64("sequence_id", reading.SequenceID),
	)
}

// deviceFromTopic returns the topic level matched by the filter's "+", which
// names the publishing device.
func (h *messageHandler) deviceFromTopic(topic string) string {
	if h.deviceLevel < 0 {
		return ""
	}

	levels := strings.Split(topic, "/")
	if h.deviceLevel >= len(levels) {
		return ""
	}

	return levels[h.deviceLevel]
}
