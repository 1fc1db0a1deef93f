package impl

import (
	"context"
	"log/slog"
	"strings"

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

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	hasher     service.SecretHasher
	validate   *validator.Validate
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Hasher     service.SecretHasher
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		hasher:     params.Hasher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Provision stores a new device or rotates the secret of an existing one.
// The next write from that device is checked against the new secret.
func (srv *deviceService) Provision(ctx context.Context, credential *usecase.DeviceCredential) (*entity.Device, bool, error) {
	credential.DeviceID = strings.TrimSpace(credential.DeviceID)
	if err := srv.validate.Struct(credential); err != nil {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(credential.Secret)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to hash device secret")
	}

	device := &entity.Device{DeviceID: credential.DeviceID, SecretHash: hash}

	err = srv.deviceRepo.Create(ctx, device)
	switch {
	case err == nil:
		srv.log(ctx).Info("Device provisioned", slog.String("device_id", device.DeviceID))

		return device, true, nil
	case !errors.Is(err, repository.ErrDuplicateDevice):
		return nil, false, err
	}

	if err := srv.deviceRepo.UpdateSecret(ctx, device.DeviceID, hash); err != nil {
		return nil, false, err
	}

	rotated, err := srv.deviceRepo.FindByID(ctx, device.DeviceID)
	if err != nil {
		return nil, false, err
	}
	srv.log(ctx).Info("Device secret rotated", slog.String("device_id", device.DeviceID))

	return rotated, false, nil
}

// List returns every provisioned device.
func (srv *deviceService) List(ctx context.Context) ([]*entity.Device, error) {
	return srv.deviceRepo.List(ctx)
}

// Seed provisions the given credentials in order and stops at the first failure.
func (srv *deviceService) Seed(ctx context.Context, credentials []usecase.DeviceCredential) error {
	for i := range credentials {
		credential := credentials[i]
		if _, _, err := srv.Provision(ctx, &credential); err != nil {
			return errors.Wrapf(err, "failed to seed device %q", credential.DeviceID)
		}
	}

	if len(credentials) > 0 {
		srv.log(ctx).Info("Seeded devices from configuration", slog.Int("count", len(credentials)))
	}

	return nil
}
