package main

import (
	"context"
	"log/slog"

	"sensorhub/config"
	"sensorhub/internal/delivery"
	"sensorhub/internal/delivery/http"
	"sensorhub/internal/delivery/http/middleware"
	"sensorhub/internal/delivery/http/router/handler"
	"sensorhub/internal/delivery/mqtt"
	"sensorhub/internal/domain/service"
	"sensorhub/internal/infra/auth"
	"sensorhub/internal/infra/live"
	logs "sensorhub/internal/infra/log"
	"sensorhub/internal/infra/persistence/sqlstore"
	"sensorhub/internal/usecase"
	"sensorhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedDevicesParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	DeviceUC usecase.DeviceUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDevices,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlstore.NewDeviceRepository,
			sqlstore.NewReadingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			live.New,
			func(hub *live.Hub) service.LiveHub { return hub },
			func(hub *live.Hub) service.ReadingPublisher { return hub },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthenticatorService,
			impl.NewIngestionService,
			impl.NewQueryService,
			impl.NewExportService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReadingHandler,
			handler.NewQueryHandler,
			handler.NewExportHandler,
			handler.NewStreamHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				mqtt.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDevices provisions the configured devices once the schema exists.
// The hook is appended after the store's, so it runs after migration.
func seedDevices(params seedDevicesParams) {
	if len(params.Config.Devices) == 0 {
		return
	}

	credentials := make([]usecase.DeviceCredential, 0, len(params.Config.Devices))
	for _, seed := range params.Config.Devices {
		credentials = append(credentials, usecase.DeviceCredential{DeviceID: seed.DeviceID, Secret: seed.Secret})
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DeviceUC.Seed(ctx, credentials); err != nil {
				return err
			}
			params.Logger.Info("Devices seeded from config", slog.Int("count", len(credentials)))

			return nil
		},
	})
}

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
