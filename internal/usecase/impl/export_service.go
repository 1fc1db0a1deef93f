package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"

	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"go.uber.org/fx"
)

// exportFlushEvery bounds how many rows sit in the csv writer's buffer.
const exportFlushEvery = 256

// exportService implements the ExportUsecase interface.
type exportService struct {
	readingRepo repository.ReadingRepository
	logger      *slog.Logger
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	ReadingRepo repository.ReadingRepository
	Logger      *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		readingRepo: params.ReadingRepo,
		logger:      params.Logger,
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportCSV writes one device-day as CSV from a single store snapshot.
// The first pass collects the metric names, the second writes the rows, so
// the day is never held in memory.
func (srv *exportService) ExportCSV(ctx context.Context, deviceID, day string, open func(filename string) io.Writer) (*usecase.ExportResult, error) {
	parsedDay, err := entity.ParseDay(day)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("day must be YYYY-MM-DD")
	}
	day = parsedDay.Format(entity.DayLayout)

	result := &usecase.ExportResult{Filename: deviceID + "_" + day + ".csv"}
	query := repository.RangeQuery{DeviceID: deviceID, FromDay: day, ToDay: day}

	err = srv.readingRepo.Snapshot(ctx, func(reader repository.ReadingReader) error {
		known, err := reader.HasReadings(ctx, deviceID)
		if err != nil {
			return err
		}
		if !known {
			return domainerrors.ErrDeviceNotFound
		}

		metrics := make(map[string]struct{})
		if err := reader.Each(ctx, query, func(reading *entity.Reading) error {
			result.Rows++
			for metric := range reading.Payload {
				metrics[metric] = struct{}{}
			}

			return nil
		}); err != nil {
			return err
		}

		if result.Rows == 0 {
			result.Empty = true

			return nil
		}
		result.Metrics = slices.Sorted(maps.Keys(metrics))

		return writeCSV(ctx, reader, query, result.Metrics, open(result.Filename))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("CSV export finished",
		slog.String("device_id", deviceID),
		slog.String("day", day),
		slog.Int("rows", result.Rows),
		slog.Bool("empty", result.Empty),
	)

	return result, nil
}

func writeCSV(ctx context.Context, reader repository.ReadingReader, query repository.RangeQuery, metrics []string, w io.Writer) error {
	writer := csv.NewWriter(w)

	record := make([]string, len(metrics)+1)
	record[0] = "timestamp"
	copy(record[1:], metrics)
	if err := writer.Write(record); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	written := 0
	err := reader.Each(ctx, query, func(reading *entity.Reading) error {
		record[0] = reading.Timestamp.UTC().Format(time.RFC3339Nano)
		for i, metric := range metrics {
			if value, ok := reading.Payload[metric]; ok {
				record[i+1] = strconv.FormatFloat(value, 'f', -1, 64)
			} else {
				record[i+1] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}

		written++
		if written%exportFlushEvery == 0 {
			writer.Flush()

			return writer.Error()
		}

		return nil
	})
	if err != nil {
		return err
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush csv")
}
