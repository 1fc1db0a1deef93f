package usecase

import (
	"context"

	"sensorhub/internal/domain/entity"
)

// IngestRequest is one write as it arrives from a transport.
type IngestRequest struct {
	// ClaimedDeviceID comes from the transport (X-Device-ID). When set it
	// must match the device_id in the body.
	ClaimedDeviceID string
	Secret          string
	// Body is the JSON document {device_id, timestamp, payload}.
	Body []byte
}

// IngestionUsecase runs a reading through validate, authenticate, store and publish.
type IngestionUsecase interface {
	// Ingest returns the stored reading with its assigned ids.
	Ingest(ctx context.Context, req *IngestRequest) (*entity.Reading, error)
}
