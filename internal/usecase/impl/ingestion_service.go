package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/domain/service"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// readingBody is the wire shape of a reading. Unknown fields are ignored so
// transports can wrap it (the MQTT envelope adds device_token). The metric
// "timestamp" is taken by the first CSV column.
type readingBody struct {
	DeviceID  string                     `json:"device_id" validate:"required,max=128"`
	Timestamp string                     `json:"timestamp" validate:"required"`
	Payload   map[string]json.RawMessage `json:"payload" validate:"required,min=1,dive,keys,required,max=128,ne=timestamp,endkeys,required"`
}

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	authenticator usecase.AuthenticatorUsecase
	readingRepo   repository.ReadingRepository
	publisher     service.ReadingPublisher
	validate      *validator.Validate
	logger        *slog.Logger
}

// IngestionServiceParams holds dependencies for IngestionService, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	Authenticator usecase.AuthenticatorUsecase
	ReadingRepo   repository.ReadingRepository
	Publisher     service.ReadingPublisher
	Logger        *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	return &ingestionService{
		authenticator: params.Authenticator,
		readingRepo:   params.ReadingRepo,
		publisher:     params.Publisher,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        params.Logger,
	}
}

func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest moves one reading through Received, Authenticated, Stored and
// Published. Only a stored reading is ever published.
func (srv *ingestionService) Ingest(ctx context.Context, req *usecase.IngestRequest) (*entity.Reading, error) {
	logger := srv.log(ctx)

	// Received
	reading, err := srv.parse(req)
	if err != nil {
		logger.Info("Reading rejected as malformed", slog.String("device_id", req.ClaimedDeviceID), slog.Any("error", err))

		return nil, err
	}
	logger = logger.With(slog.String("device_id", reading.DeviceID))
	logger.Debug("Reading received", slog.Time("timestamp", reading.Timestamp), slog.Int("metrics", len(reading.Payload)))

	// Authenticated
	if _, err := srv.authenticator.Authenticate(ctx, reading.DeviceID, req.Secret); err != nil {
		logger.Info("Reading rejected by authenticator", slog.Any("error", err))

		return nil, err
	}
	logger.Debug("Reading authenticated")

	// Stored
	if _, err := srv.readingRepo.Append(ctx, reading); err != nil {
		logger.Error("Reading not stored", slog.Any("error", err))

		return nil, err
	}
	logger.Debug("Reading stored", slog.Uint64("id", reading.ID), slog.Uint64("sequence_id", reading.SequenceID))

	// Published
	srv.publish(logger, reading)

	return reading, nil
}

// publish hands the reading to the live hub. Nothing the hub does can fail
// the write.
func (srv *ingestionService) publish(logger *slog.Logger, reading *entity.Reading) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Live publish panicked", slog.Any("panic", r), slog.Uint64("sequence_id", reading.SequenceID))
		}
	}()

	srv.publisher.Publish(reading)
	logger.Debug("Reading published", slog.Uint64("sequence_id", reading.SequenceID))
}

func (srv *ingestionService) parse(req *usecase.IngestRequest) (*entity.Reading, error) {
	var body readingBody
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails("body is not a JSON reading: " + err.Error())
	}

	body.DeviceID = strings.TrimSpace(body.DeviceID)
	if err := srv.validate.Struct(&body); err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails(describeValidation(err))
	}

	if req.ClaimedDeviceID != "" && req.ClaimedDeviceID != body.DeviceID {
		return nil, domainerrors.ErrMalformedPayload.WithDetails("device_id does not match X-Device-ID")
	}

	ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(body.Timestamp))
	if err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails("timestamp must be RFC 3339 with a zone offset or Z")
	}

	payload := make(entity.Payload, len(body.Payload))
	for metric, raw := range body.Payload {
		value, ok := parseMetric(raw)
		if !ok {
			return nil, domainerrors.ErrMalformedPayload.WithDetails("payload." + metric + " must be a finite number")
		}
		payload[metric] = value
	}

	return &entity.Reading{
		DeviceID:  body.DeviceID,
		Timestamp: ts.UTC(),
		Payload:   payload,
	}, nil
}

// parseMetric accepts only JSON numbers. Strings, booleans, null and nested
// values are rejected rather than coerced.
func parseMetric(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, false
	}
	if c := trimmed[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return 0, false
	}

	return value, !math.IsNaN(value) && !math.IsInf(value, 0)
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Namespace())

	switch {
	case strings.HasPrefix(field, "readingbody.payload["):
		return "payload metrics need a non-empty name other than \"timestamp\" and a number value"
	case fe.StructField() == "DeviceID":
		return "device_id is required (at most 128 characters)"
	case fe.StructField() == "Timestamp":
		return "timestamp is required"
	case fe.StructField() == "Payload":
		return "payload must be a non-empty object of metric values"
	default:
		return fe.Error()
	}
}
