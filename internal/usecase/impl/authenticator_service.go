// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/domain/service"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"go.uber.org/fx"
)

// dummySecret is hashed once at startup so that unknown devices pay for the
// same bcrypt comparison as known ones.
const dummySecret = "sensorhub-unknown-device"

// authenticatorService implements the AuthenticatorUsecase interface.
type authenticatorService struct {
	deviceRepo repository.DeviceRepository
	hasher     service.SecretHasher
	dummyHash  string
	now        func() time.Time
	logger     *slog.Logger
}

// AuthenticatorServiceParams holds dependencies for AuthenticatorService, injected by Fx.
type AuthenticatorServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Hasher     service.SecretHasher
	Logger     *slog.Logger
}

// NewAuthenticatorService is the constructor for authenticatorService.
func NewAuthenticatorService(params AuthenticatorServiceParams) (usecase.AuthenticatorUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummySecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy credential")
	}

	return &authenticatorService{
		deviceRepo: params.DeviceRepo,
		hasher:     params.Hasher,
		dummyHash:  dummyHash,
		now:        time.Now,
		logger:     params.Logger,
	}, nil
}

func (srv *authenticatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks the presented secret and records the device as seen.
func (srv *authenticatorService) Authenticate(ctx context.Context, deviceID, secret string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, err
		}

		srv.hasher.Check(secret, srv.dummyHash)

		return nil, domainerrors.ErrUnknownDevice
	}

	if !srv.hasher.Check(secret, device.SecretHash) {
		return nil, domainerrors.ErrBadCredential
	}

	seenAt := srv.now().UTC()
	if err := srv.deviceRepo.TouchLastSeen(ctx, deviceID, seenAt); err != nil {
		srv.log(ctx).Warn("Failed to record device last seen",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	} else {
		device.LastSeenAt = &seenAt
	}

	return device, nil
}
