package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"sensorhub/config"
	deliverycontext "sensorhub/internal/delivery/context"
	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	"go.uber.org/fx"
)

const defaultMaxRangeDays = 31

// queryService implements the QueryUsecase interface.
type queryService struct {
	readingRepo  repository.ReadingRepository
	maxRangeDays int
	now          func() time.Time
	logger       *slog.Logger
}

// QueryServiceParams holds dependencies for QueryService, injected by Fx.
type QueryServiceParams struct {
	fx.In

	ReadingRepo repository.ReadingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewQueryService is the constructor for queryService.
func NewQueryService(params QueryServiceParams) usecase.QueryUsecase {
	maxRangeDays := defaultMaxRangeDays
	if params.Config != nil && params.Config.Query != nil && params.Config.Query.MaxRangeDays != 0 {
		maxRangeDays = params.Config.Query.MaxRangeDays
	}

	return &queryService{
		readingRepo:  params.ReadingRepo,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *queryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices returns the sorted ids of devices with stored readings.
func (srv *queryService) ListDevices(ctx context.Context) ([]string, error) {
	return srv.readingRepo.ListDevices(ctx)
}

// Latest returns the reading with the greatest sequence id of the device.
func (srv *queryService) Latest(ctx context.Context, deviceID string) (*entity.Reading, error) {
	reading, err := srv.readingRepo.Latest(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			return nil, domainerrors.ErrReadingNotFound
		}

		return nil, err
	}

	return reading, nil
}

// Range validates the day bounds and loads the readings between them.
func (srv *queryService) Range(ctx context.Context, input *usecase.RangeInput) ([]*entity.Reading, error) {
	today := srv.now().UTC().Format(entity.DayLayout)

	fromDay, toDay := input.FromDay, input.ToDay
	if fromDay == "" {
		fromDay = today
	}
	if toDay == "" {
		toDay = today
	}

	from, err := entity.ParseDay(fromDay)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from_date must be YYYY-MM-DD")
	}
	to, err := entity.ParseDay(toDay)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("to_date must be YYYY-MM-DD")
	}

	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from_date is after to_date")
	}
	// A negative maxRangeDays disables the cap.
	if days := int(to.Sub(from).Hours()/24) + 1; srv.maxRangeDays > 0 && days > srv.maxRangeDays {
		return nil, domainerrors.ErrRangeTooWide.WithDetails("range spans more than " + strconv.Itoa(srv.maxRangeDays) + " days")
	}

	srv.log(ctx).Debug("Loading reading range",
		slog.String("device_id", input.DeviceID),
		slog.String("from_date", fromDay),
		slog.String("to_date", toDay),
	)

	return srv.readingRepo.Range(ctx, repository.RangeQuery{
		DeviceID: input.DeviceID,
		FromDay:  from.Format(entity.DayLayout),
		ToDay:    to.Format(entity.DayLayout),
	})
}
