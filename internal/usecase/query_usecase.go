package usecase

import (
	"context"

	"sensorhub/internal/domain/entity"
)

// RangeInput selects readings by inclusive UTC days (YYYY-MM-DD).
// An empty bound means today.
type RangeInput struct {
	DeviceID string
	FromDay  string
	ToDay    string
}

// QueryUsecase serves the read side of the store.
type QueryUsecase interface {
	// ListDevices returns every device id with at least one stored reading.
	ListDevices(ctx context.Context) ([]string, error)

	// Latest returns the most recently accepted reading of a device.
	Latest(ctx context.Context, deviceID string) (*entity.Reading, error)

	// Range returns the readings in the day range ordered by timestamp.
	Range(ctx context.Context, input *RangeInput) ([]*entity.Reading, error)
}
