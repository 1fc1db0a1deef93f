package sqlstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}

	return t.UTC()
}

func dayQuery(deviceID, from, to string) repository.RangeQuery {
	return repository.RangeQuery{DeviceID: deviceID, FromDay: from, ToDay: to}
}

func TestReadingRepository_AppendAssignsSequence(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	reading := &entity.Reading{
		DeviceID:  "jetson-lab-01",
		Timestamp: at("2025-12-05T19:15:54Z"),
		Payload:   entity.Payload{"temperature_c": 23.5},
	}
	seq, err := repo.Append(ctx, reading)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	assert.Equal(t, seq, reading.SequenceID)
	assert.NotZero(t, reading.ID)

	latest, err := repo.Latest(ctx, "jetson-lab-01")
	require.NoError(t, err)
	assert.Equal(t, reading.ID, latest.ID)
	assert.Equal(t, seq, latest.SequenceID)
	assert.True(t, reading.Timestamp.Equal(latest.Timestamp))
	assert.Equal(t, entity.Payload{"temperature_c": 23.5}, latest.Payload)

	other, err := repo.Append(ctx, &entity.Reading{
		DeviceID: "jetson-lab-02", Timestamp: at("2025-12-05T19:15:55Z"), Payload: entity.Payload{"x": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), other, "each device counts from one")
}

func TestReadingRepository_ConcurrentAppendsAreGapFree(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	const (
		devices          = 4
		writersPerDevice = 3
		perWriter        = 10
	)

	var (
		mu  sync.Mutex
		ids = make(map[uint64]bool)
		wg  sync.WaitGroup
	)

	for d := range devices {
		deviceID := fmt.Sprintf("dev-%d", d)
		for range writersPerDevice {
			wg.Add(1)
			go func() {
				defer wg.Done()

				var prev uint64
				for i := range perWriter {
					reading := &entity.Reading{
						DeviceID:  deviceID,
						Timestamp: at("2025-12-05T00:00:00Z").Add(time.Duration(i) * time.Second),
						Payload:   entity.Payload{"n": float64(i)},
					}
					seq, err := repo.Append(ctx, reading)
					if !assert.NoError(t, err) {
						return
					}
					assert.Greater(t, seq, prev, "sequence must grow in acceptance order")
					prev = seq

					mu.Lock()
					assert.False(t, ids[reading.ID], "id %d reused", reading.ID)
					ids[reading.ID] = true
					mu.Unlock()
				}
			}()
		}
	}
	wg.Wait()

	assert.Len(t, ids, devices*writersPerDevice*perWriter)

	for d := range devices {
		readings, err := repo.Range(ctx, dayQuery(fmt.Sprintf("dev-%d", d), "2025-12-05", "2025-12-05"))
		require.NoError(t, err)
		require.Len(t, readings, writersPerDevice*perWriter)

		seqs := make([]uint64, 0, len(readings))
		for _, r := range readings {
			seqs = append(seqs, r.SequenceID)
		}
		slices.Sort(seqs)
		for i, seq := range seqs {
			assert.Equal(t, uint64(i+1), seq, "sequence ids have no gaps or duplicates")
		}
	}
}

func TestReadingRepository_RangeOrdersByTimestampNotArrival(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Append(ctx, &entity.Reading{
		DeviceID: "jetson-lab-01", Timestamp: at("2025-12-05T10:00:00Z"), Payload: entity.Payload{"t": 1},
	})
	require.NoError(t, err)
	late, err := repo.Append(ctx, &entity.Reading{
		DeviceID: "jetson-lab-01", Timestamp: at("2025-12-05T09:00:00Z"), Payload: entity.Payload{"t": 2},
	})
	require.NoError(t, err)
	require.Greater(t, late, first)

	readings, err := repo.Range(ctx, dayQuery("jetson-lab-01", "2025-12-05", "2025-12-05"))
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, late, readings[0].SequenceID)
	assert.Equal(t, first, readings[1].SequenceID)

	latest, err := repo.Latest(ctx, "jetson-lab-01")
	require.NoError(t, err)
	assert.Equal(t, late, latest.SequenceID, "latest follows acceptance order")
}

func TestReadingRepository_RangeDayBoundaries(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	for _, ts := range []string{
		"2025-12-04T23:59:59Z",
		"2025-12-05T00:00:00Z",
		"2025-12-05T23:59:59Z",
		"2025-12-06T00:00:00Z",
	} {
		_, err := repo.Append(ctx, &entity.Reading{DeviceID: "d1", Timestamp: at(ts), Payload: entity.Payload{"x": 1}})
		require.NoError(t, err)
	}
	_, err := repo.Append(ctx, &entity.Reading{DeviceID: "d2", Timestamp: at("2025-12-05T12:00:00Z"), Payload: entity.Payload{"x": 1}})
	require.NoError(t, err)

	readings, err := repo.Range(ctx, dayQuery("d1", "2025-12-05", "2025-12-05"))
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.True(t, at("2025-12-05T00:00:00Z").Equal(readings[0].Timestamp))
	assert.True(t, at("2025-12-05T23:59:59Z").Equal(readings[1].Timestamp))

	readings, err = repo.Range(ctx, dayQuery("d1", "2025-12-04", "2025-12-06"))
	require.NoError(t, err)
	assert.Len(t, readings, 4)

	readings, err = repo.Range(ctx, dayQuery("d1", "2024-01-01", "2024-01-02"))
	require.NoError(t, err)
	assert.NotNil(t, readings)
	assert.Empty(t, readings)
}

func TestReadingRepository_LatestUnknownDevice(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))

	_, err := repo.Latest(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrReadingNotFound)
}

func TestReadingRepository_ListDevicesAndHasReadings(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, devices)

	for _, id := range []string{"jetson-lab-02", "jetson-lab-01", "jetson-lab-02"} {
		_, err := repo.Append(ctx, &entity.Reading{DeviceID: id, Timestamp: at("2025-12-05T19:15:54Z"), Payload: entity.Payload{"x": 1}})
		require.NoError(t, err)
	}

	devices, err = repo.ListDevices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jetson-lab-01", "jetson-lab-02"}, devices)

	has, err := repo.HasReadings(ctx, "jetson-lab-01")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasReadings(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestReadingRepository_EachStopsOnCallbackError(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	for i := range 3 {
		_, err := repo.Append(ctx, &entity.Reading{
			DeviceID: "d1", Timestamp: at("2025-12-05T00:00:00Z").Add(time.Duration(i) * time.Minute), Payload: entity.Payload{"x": 1},
		})
		require.NoError(t, err)
	}

	stop := fmt.Errorf("client went away")
	calls := 0
	err := repo.Each(ctx, dayQuery("d1", "2025-12-05", "2025-12-05"), func(*entity.Reading) error {
		calls++

		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.NotErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.Equal(t, 1, calls)
}

func TestReadingRepository_SnapshotHidesLaterAppends(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Append(ctx, &entity.Reading{DeviceID: "d1", Timestamp: at("2025-12-05T01:00:00Z"), Payload: entity.Payload{"a": 1}})
	require.NoError(t, err)

	err = repo.Snapshot(ctx, func(reader repository.ReadingReader) error {
		before, err := reader.Range(ctx, dayQuery("d1", "2025-12-05", "2025-12-05"))
		require.NoError(t, err)
		require.Len(t, before, 1)

		_, err = repo.Append(ctx, &entity.Reading{DeviceID: "d1", Timestamp: at("2025-12-05T02:00:00Z"), Payload: entity.Payload{"b": 2}})
		require.NoError(t, err)

		after, err := reader.Range(ctx, dayQuery("d1", "2025-12-05", "2025-12-05"))
		require.NoError(t, err)
		assert.Len(t, after, 1)

		return nil
	})
	require.NoError(t, err)

	all, err := repo.Range(ctx, dayQuery("d1", "2025-12-05", "2025-12-05"))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReadingRepository_ClosedStoreIsUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewReadingRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.Append(context.Background(), &entity.Reading{DeviceID: "d1", Timestamp: at("2025-12-05T01:00:00Z"), Payload: entity.Payload{"a": 1}})
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
