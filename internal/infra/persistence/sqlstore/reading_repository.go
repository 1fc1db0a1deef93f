package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"

	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/errors"
	"sensorhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// readingReader implements repository.ReadingReader over a connection or a
// read-only transaction.
type readingReader struct {
	db *gorm.DB
}

// readingRepository implements the repository.ReadingRepository interface.
type readingRepository struct {
	readingReader
	locks *keyedMutex
}

// NewReadingRepository is the constructor for readingRepository.
func NewReadingRepository(db *gorm.DB) repository.ReadingRepository {
	return &readingRepository{
		readingReader: readingReader{db: db},
		locks:         newKeyedMutex(),
	}
}

// Append inserts one reading. The per-device lock covers reading the
// device's last sequence id and the INSERT, so sequence ids commit in the
// order they are assigned.
func (repo *readingRepository) Append(ctx context.Context, reading *entity.Reading) (uint64, error) {
	readingM := fromReadingDomain(reading)
	db := repo.db.WithContext(ctx)

	unlock := repo.locks.Lock(reading.DeviceID)
	defer unlock()

	var last uint64
	if err := db.Model(&model.ReadingModel{}).
		Select("COALESCE(MAX(sequence_id), 0)").
		Where("device_id = ?", reading.DeviceID).
		Row().Scan(&last); err != nil {
		return 0, domainerrors.NewStoreUnavailableError(err, "failed to read device sequence")
	}

	readingM.SequenceID = last + 1
	if err := db.Create(readingM).Error; err != nil {
		return 0, domainerrors.NewStoreUnavailableError(err, "failed to append reading")
	}

	reading.ID = readingM.ID
	reading.SequenceID = readingM.SequenceID

	return readingM.SequenceID, nil
}

// Snapshot runs fn inside one read-only transaction so every read it makes
// sees the same committed state.
func (repo *readingRepository) Snapshot(ctx context.Context, fn func(reader repository.ReadingReader) error) error {
	var opts []*sql.TxOptions
	if repo.db.Dialector.Name() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	}

	var fnErr error
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&readingReader{db: tx})

		return fnErr
	}, opts...)
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to open snapshot")
	}

	return nil
}

// Latest returns the most recently accepted reading of a device.
func (r *readingReader) Latest(ctx context.Context, deviceID string) (*entity.Reading, error) {
	var readingM model.ReadingModel

	if err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("sequence_id DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find latest reading")
	}

	return toReadingDomain(&readingM)
}

// Range loads every reading of the query into memory.
func (r *readingReader) Range(ctx context.Context, query repository.RangeQuery) ([]*entity.Reading, error) {
	readings := make([]*entity.Reading, 0)

	err := r.Each(ctx, query, func(reading *entity.Reading) error {
		readings = append(readings, reading)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return readings, nil
}

// Each streams the query row by row. Errors returned by fn stop the scan and
// are passed back unchanged.
func (r *readingReader) Each(ctx context.Context, query repository.RangeQuery, fn func(*entity.Reading) error) error {
	db := r.db.WithContext(ctx)

	rows, err := db.Model(&model.ReadingModel{}).
		Where("device_id = ? AND day >= ? AND day <= ?", query.DeviceID, query.FromDay, query.ToDay).
		Order("ts ASC").
		Order("sequence_id ASC").
		Rows()
	if err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to query readings")
	}
	defer rows.Close()

	for rows.Next() {
		var readingM model.ReadingModel
		if err := db.ScanRows(rows, &readingM); err != nil {
			return domainerrors.NewStoreUnavailableError(err, "failed to scan reading")
		}

		reading, err := toReadingDomain(&readingM)
		if err != nil {
			return err
		}

		if err := fn(reading); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to iterate readings")
	}

	return nil
}

// ListDevices returns the sorted ids of devices that have stored readings.
func (r *readingReader) ListDevices(ctx context.Context) ([]string, error) {
	deviceIDs := make([]string, 0)

	if err := r.db.WithContext(ctx).
		Model(&model.ReadingModel{}).
		Distinct("device_id").
		Order("device_id ASC").
		Pluck("device_id", &deviceIDs).Error; err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list reading devices")
	}

	return deviceIDs, nil
}

// HasReadings reports whether at least one reading exists for the device.
func (r *readingReader) HasReadings(ctx context.Context, deviceID string) (bool, error) {
	var readingM model.ReadingModel

	err := r.db.WithContext(ctx).
		Select("id").
		Where("device_id = ?", deviceID).
		Take(&readingM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, domainerrors.NewStoreUnavailableError(err, "failed to check readings")
	}

	return true, nil
}

// --- Mapper functions ---

func toReadingDomain(data *model.ReadingModel) (*entity.Reading, error) {
	payload := make(entity.Payload, len(data.Payload))
	for metric, raw := range data.Payload {
		value, err := toFloat(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %d metric %q", data.ID, metric)
		}
		payload[metric] = value
	}

	return &entity.Reading{
		ID:         data.ID,
		SequenceID: data.SequenceID,
		DeviceID:   data.DeviceID,
		Timestamp:  data.Ts.UTC(),
		Payload:    payload,
	}, nil
}

func fromReadingDomain(data *entity.Reading) *model.ReadingModel {
	payload := make(datatypes.JSONMap, len(data.Payload))
	for metric, value := range data.Payload {
		payload[metric] = value
	}

	return &model.ReadingModel{
		DeviceID: data.DeviceID,
		Day:      data.Day(),
		Ts:       data.Timestamp.UTC(),
		Payload:  payload,
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.Errorf("unexpected metric value type %T", raw)
	}
}
