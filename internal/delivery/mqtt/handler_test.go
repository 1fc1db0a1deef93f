package mqtt

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/errors"
	mocks "sensorhub/internal/mocks/usecase"
	"sensorhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	topic   string
	payload []byte
	acks    int
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return subscribeQoS }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              { m.acks++ }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageHandler_IngestsWithEnvelopeToken(t *testing.T) {
	ingestionUC := mocks.NewMockIngestionUsecase(t)
	h := newMessageHandler("sensorhub/+/readings", ingestionUC, discardLogger())

	payload := []byte(`{"device_id":"jetson-lab-01","device_token":"secret-token-1","timestamp":"2025-12-05T19:15:54Z","payload":{"temperature_c":23.5}}`)

	ingestionUC.EXPECT().
		Ingest(mock.Anything, &usecase.IngestRequest{
			ClaimedDeviceID: "jetson-lab-01",
			Secret:          "secret-token-1",
			Body:            payload,
		}).
		Return(&entity.Reading{ID: 1, SequenceID: 1, DeviceID: "jetson-lab-01", Timestamp: time.Now().UTC()}, nil).
		Once()

	msg := &fakeMessage{topic: "sensorhub/jetson-lab-01/readings", payload: payload}
	h.handle(context.Background(), msg)

	assert.Equal(t, 1, msg.acks)
}

func TestMessageHandler_RejectionIsAcknowledged(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "malformed", err: domainerrors.ErrMalformedPayload},
		{name: "unknown device", err: domainerrors.ErrUnknownDevice},
		{name: "bad credential", err: domainerrors.ErrBadCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ingestionUC := mocks.NewMockIngestionUsecase(t)
			h := newMessageHandler("sensorhub/+/readings", ingestionUC, discardLogger())

			ingestionUC.EXPECT().
				Ingest(mock.Anything, mock.MatchedBy(func(req *usecase.IngestRequest) bool { return req.Secret == "" })).
				Return(nil, tt.err).
				Once()

			msg := &fakeMessage{topic: "sensorhub/jetson-lab-01/readings", payload: []byte("not json")}
			assert.NotPanics(t, func() {
				h.handle(context.Background(), msg)
			})
			assert.Equal(t, 1, msg.acks)
		})
	}
}

func TestMessageHandler_StoreFailureIsNotAcknowledged(t *testing.T) {
	ingestionUC := mocks.NewMockIngestionUsecase(t)
	h := newMessageHandler("sensorhub/+/readings", ingestionUC, discardLogger())

	ingestionUC.EXPECT().
		Ingest(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewStoreUnavailableError(errors.New("database is locked"), "append reading")).
		Once()

	msg := &fakeMessage{
		topic:   "sensorhub/jetson-lab-01/readings",
		payload: []byte(`{"device_id":"jetson-lab-01","device_token":"secret-token-1","timestamp":"2025-12-05T19:15:54Z","payload":{"temperature_c":23.5}}`),
	}
	h.handle(context.Background(), msg)

	assert.Zero(t, msg.acks)
}

func TestMessageHandler_DeviceFromTopic(t *testing.T) {
	h := newMessageHandler("site/+/sensors/readings", nil, discardLogger())
	assert.Equal(t, "jetson-lab-02", h.deviceFromTopic("site/jetson-lab-02/sensors/readings"))
	assert.Equal(t, "", h.deviceFromTopic("site"))

	fixed := newMessageHandler("sensorhub/readings", nil, discardLogger())
	assert.Equal(t, "", fixed.deviceFromTopic("sensorhub/readings"))
}

func TestSubscriptionTopic(t *testing.T) {
	assert.Equal(t, "sensorhub/+/readings", subscriptionTopic("sensorhub/+/readings", ""))
	assert.Equal(t, "$share/ingest/sensorhub/+/readings", subscriptionTopic("sensorhub/+/readings", "ingest"))
}

func TestLoadTLSConfig(t *testing.T) {
	_, err := loadTLSConfig(filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)

	bogus := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(bogus, []byte("not a certificate"), 0o600))
	_, err = loadTLSConfig(bogus)
	assert.ErrorContains(t, err, "no certificates")
}
