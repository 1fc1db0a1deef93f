package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"live": map[string]any{
			"queueSize": 64,
		},
		"storage": map[string]any{
			"sqlite": map[string]any{
				"path": "",
			},
		},
		"secretKey": map[string]any{
			"admin": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "LIVE_QUEUESIZE", want: "live.queueSize"},
		{envKey: "STORAGE_SQLITE_PATH", want: "storage.sqlite.path"},
		{envKey: "SECRETKEY_ADMIN", want: "secretKey.admin"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultLiveQueueSize, cfg.Live.QueueSize)
	assert.Equal(t, defaultLiveWriteTimeout, cfg.Live.WriteTimeout)
	assert.Equal(t, defaultMaxRangeDays, cfg.Query.MaxRangeDays)
	assert.Equal(t, defaultMQTTTopic, cfg.MQTT.Topic)
	assert.Equal(t, 30*time.Second, cfg.MQTT.KeepAlive)
}

func TestApplyDefaults_KeepsNegativeRangeCap(t *testing.T) {
	cfg := &Config{Query: &QueryConfig{MaxRangeDays: -1}}
	applyDefaults(cfg)

	assert.Equal(t, -1, cfg.Query.MaxRangeDays)
}

func TestValidate(t *testing.T) {
	newSQLite := func() *Config {
		cfg := &Config{Storage: &StorageConfig{Driver: StorageDriverSQLite}}
		cfg.Storage.SQLite.Path = "sensors.db"
		applyDefaults(cfg)

		return cfg
	}

	t.Run("sqlite ok", func(t *testing.T) {
		require.NoError(t, newSQLite().Validate())
	})

	t.Run("sqlite without path", func(t *testing.T) {
		cfg := newSQLite()
		cfg.Storage.SQLite.Path = " "
		assert.ErrorContains(t, cfg.Validate(), "storage.sqlite.path")
	})

	t.Run("postgres without section", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		assert.ErrorContains(t, cfg.Validate(), "postgres section is missing")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := newSQLite()
		cfg.Storage.Driver = "mongo"
		assert.ErrorContains(t, cfg.Validate(), "unknown storage driver")
	})

	t.Run("mqtt without broker", func(t *testing.T) {
		cfg := newSQLite()
		cfg.MQTT.Enabled = true
		assert.ErrorContains(t, cfg.Validate(), "mqtt.brokerUrl")
	})

	t.Run("incomplete device seed", func(t *testing.T) {
		cfg := newSQLite()
		cfg.Devices = []DeviceSeed{{DeviceID: "jetson-lab-01"}}
		assert.ErrorContains(t, cfg.Validate(), "devices[0]")
	})
}
