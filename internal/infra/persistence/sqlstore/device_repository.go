package sqlstore

import (
	"context"
	"time"

	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/errors"
	"sensorhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindByID retrieves a device credential by its id.
func (repo *deviceRepository) FindByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a new device credential.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// UpdateSecret replaces the stored hash of an existing device.
func (repo *deviceRepository) UpdateSecret(ctx context.Context, deviceID, secretHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"secret_hash": secretHash,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewStoreUnavailableError(result.Error, "failed to update device secret")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TouchLastSeen records when the device last wrote successfully.
func (repo *deviceRepository) TouchLastSeen(ctx context.Context, deviceID string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		UpdateColumn("last_seen_at", at.UTC())
	if result.Error != nil {
		return domainerrors.NewStoreUnavailableError(result.Error, "failed to touch device last seen")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// List returns every provisioned device ordered by id.
func (repo *deviceRepository) List(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Order("device_id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	device := &entity.Device{
		DeviceID:   data.DeviceID,
		SecretHash: data.SecretHash,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.LastSeenAt != nil {
		lastSeen := data.LastSeenAt.UTC()
		device.LastSeenAt = &lastSeen
	}

	return device
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:   data.DeviceID,
		SecretHash: data.SecretHash,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
