package repository

import (
	"context"

	"sensorhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReadingNotFound is returned by Latest when a device has no stored readings.
var ErrReadingNotFound = errors.New("reading not found")

// RangeQuery selects one device's readings whose UTC calendar day falls within
// [FromDay, ToDay] inclusive. Days use entity.DayLayout.
type RangeQuery struct {
	DeviceID string
	FromDay  string
	ToDay    string
}

// ReadingReader is the read side of the time-series store. Results of Range
// and Each are ordered by timestamp ascending, then sequence id.
type ReadingReader interface {
	// Latest returns the reading with the greatest sequence id for a device.
	Latest(ctx context.Context, deviceID string) (*entity.Reading, error)

	// Range returns every reading matching the query; empty when none match.
	Range(ctx context.Context, query RangeQuery) ([]*entity.Reading, error)

	// Each streams the readings matching the query without loading them all.
	Each(ctx context.Context, query RangeQuery, fn func(*entity.Reading) error) error

	// ListDevices returns every device id with at least one stored reading.
	ListDevices(ctx context.Context) ([]string, error)

	// HasReadings reports whether a device has at least one stored reading.
	HasReadings(ctx context.Context, deviceID string) (bool, error)
}

// ReadingRepository is the append-only time-series store.
type ReadingRepository interface {
	ReadingReader

	// Append durably stores a reading and assigns its ID and the next
	// sequence id of its device, which it returns. Appends for the same
	// device are serialized; other devices proceed in parallel.
	Append(ctx context.Context, reading *entity.Reading) (uint64, error)

	// Snapshot runs fn against a consistent read-only view of the store.
	// Readings accepted after the snapshot starts are not visible to fn.
	Snapshot(ctx context.Context, fn func(reader ReadingReader) error) error
}
