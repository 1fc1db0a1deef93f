// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"sensorhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no credential is registered for a device id.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when creating a device id that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository is the credential store: one record per device keyed by device_id.
type DeviceRepository interface {
	// FindByID retrieves a device with its secret hash.
	FindByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// Create persists a new device.
	Create(ctx context.Context, device *entity.Device) error

	// UpdateSecret replaces the secret hash of an existing device.
	UpdateSecret(ctx context.Context, deviceID, secretHash string) error

	// TouchLastSeen records the time of the latest accepted write.
	TouchLastSeen(ctx context.Context, deviceID string, at time.Time) error

	// List returns every provisioned device ordered by id.
	List(ctx context.Context) ([]*entity.Device, error)
}
