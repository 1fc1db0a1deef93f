package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"sensorhub/config"
	"sensorhub/internal/domain/repository"
	"sensorhub/internal/infra/auth"
	"sensorhub/internal/infra/live"
	"sensorhub/internal/infra/persistence/sqlstore"
	"sensorhub/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

// stack wires the real services over a throwaway SQLite database.
type stack struct {
	readingRepo repository.ReadingRepository
	hub         *live.Hub
	devices     usecase.DeviceUsecase
	ingestion   usecase.IngestionUsecase
	query       usecase.QueryUsecase
	export      usecase.ExportUsecase
}

func newStack(t *testing.T) *stack {
	t.Helper()

	db, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "sensors.db"), logger.Discard)
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Auth:  &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Query: &config.QueryConfig{MaxRangeDays: 31},
	}
	log := slog.New(slog.DiscardHandler)

	deviceRepo := sqlstore.NewDeviceRepository(db)
	readingRepo := sqlstore.NewReadingRepository(db)
	hasher := auth.NewBcryptHasher(cfg)
	hub := live.NewHub(8, log)

	authenticator, err := NewAuthenticatorService(AuthenticatorServiceParams{DeviceRepo: deviceRepo, Hasher: hasher, Logger: log})
	require.NoError(t, err)

	devices := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Hasher: hasher, Logger: log})
	require.NoError(t, devices.Seed(context.Background(), []usecase.DeviceCredential{
		{DeviceID: "jetson-lab-01", Secret: "secret-token-1"},
		{DeviceID: "jetson-lab-02", Secret: "secret-token-2"},
	}))

	return &stack{
		readingRepo: readingRepo,
		hub:         hub,
		devices:     devices,
		ingestion: NewIngestionService(IngestionServiceParams{
			Authenticator: authenticator,
			ReadingRepo:   readingRepo,
			Publisher:     hub,
			Logger:        log,
		}),
		query:  NewQueryService(QueryServiceParams{ReadingRepo: readingRepo, Config: cfg, Logger: log}),
		export: NewExportService(ExportServiceParams{ReadingRepo: readingRepo, Logger: log}),
	}
}

func (s *stack) ingest(t *testing.T, deviceID, secret, body string) error {
	t.Helper()

	_, err := s.ingestion.Ingest(context.Background(), &usecase.IngestRequest{
		ClaimedDeviceID: deviceID,
		Secret:          secret,
		Body:            []byte(body),
	})

	return err
}
