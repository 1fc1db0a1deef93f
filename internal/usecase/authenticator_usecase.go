package usecase

import (
	"context"

	"sensorhub/internal/domain/entity"
)

// AuthenticatorUsecase gates every write on the device's credential.
type AuthenticatorUsecase interface {
	// Authenticate returns the device when secret matches its stored hash.
	// It fails with ErrUnknownDevice or ErrBadCredential, which render the same.
	Authenticate(ctx context.Context, deviceID, secret string) (*entity.Device, error)
}
