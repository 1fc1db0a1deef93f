package usecase

import (
	"context"

	"sensorhub/internal/domain/entity"
)

// DeviceCredential is a device id with its plaintext secret.
type DeviceCredential struct {
	DeviceID string `json:"device_id" validate:"required,max=128,printascii,excludesall=/?#"`
	Secret   string `json:"secret" validate:"required,min=8,max=72"`
}

// DeviceUsecase manages device credentials at runtime.
type DeviceUsecase interface {
	// Provision creates a device or rotates the secret of an existing one.
	// created reports which of the two happened.
	Provision(ctx context.Context, credential *DeviceCredential) (device *entity.Device, created bool, err error)

	// List returns every provisioned device.
	List(ctx context.Context) ([]*entity.Device, error)

	// Seed provisions each credential, typically from configuration at boot.
	Seed(ctx context.Context, credentials []DeviceCredential) error
}
