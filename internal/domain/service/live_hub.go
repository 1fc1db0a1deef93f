package service

import (
	"sensorhub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrSlowConsumer ends a subscription whose queue was full on publish.
	ErrSlowConsumer = errors.New("slow consumer")
	// ErrHubClosed ends every subscription when the hub shuts down.
	ErrHubClosed = errors.New("live hub closed")
)

// ReadingPublisher receives every reading right after it is durably stored.
// Implementations must not block the caller.
type ReadingPublisher interface {
	Publish(reading *entity.Reading)
}

// LiveSubscription is one consumer of a device's live stream.
type LiveSubscription interface {
	DeviceID() string
	// Readings is closed when the subscription ends; Err then says why.
	Readings() <-chan *entity.Reading
	// Err is nil while the subscription is open or after a plain unsubscribe.
	Err() error
}

// LiveHub fans stored readings out to live subscribers of each device.
type LiveHub interface {
	ReadingPublisher
	Subscribe(deviceID string) LiveSubscription
	Unsubscribe(sub LiveSubscription)
	SubscriberCount(deviceID string) int
}
