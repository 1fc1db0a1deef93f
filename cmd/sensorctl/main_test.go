package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sensorhub/internal/delivery/http/middleware"
	"sensorhub/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UnknownCommand(t *testing.T) {
	assert.ErrorContains(t, run([]string{"frobnicate"}, &bytes.Buffer{}), "unknown command")
}

func TestToken_IsAdminToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"token", "--secret", "admin-signing-key", "--subject", "ops", "--ttl", "5m"}, &out))

	token, err := auth.NewJWTService().ValidateToken(strings.TrimSpace(out.String()), "admin-signing-key")
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ops", claims["sub"])
	assert.Equal(t, []any{middleware.RoleAdmin}, claims["roles"])
}

func TestToken_NeedsSecret(t *testing.T) {
	t.Setenv("SECRETKEY_ADMIN", "")
	assert.Error(t, run([]string{"token"}, &bytes.Buffer{}))
}

func TestProvision_PostsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/devices", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"device_id": "jetson-lab-03", "secret": "secret-token-3"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"device_id":"jetson-lab-03"},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, run([]string{"provision", "--server", srv.URL, "--token", "jwt", "--device", "jetson-lab-03", "--device-secret", "secret-token-3"}, &out))
	assert.Equal(t, "created jetson-lab-03\n", out.String())
}

func TestProvision_ReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"FORBIDDEN","message":"Permission denied"},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	err := run([]string{"provision", "--server", srv.URL, "--device", "jetson-lab-03", "--device-secret", "secret-token-3"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "403 FORBIDDEN")
}

func TestExport_WritesOneFilePerDeviceWithData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/devices", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"devices":["jetson-lab-01","jetson-lab-02"]}`))
	})
	mux.HandleFunc("GET /api/v1/devices/{id}/csv", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-12-05", r.URL.Query().Get("day"))
		if r.PathValue("id") == "jetson-lab-02" {
			w.WriteHeader(http.StatusNoContent)

			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("timestamp,temperature_c\n2025-12-05T19:15:54Z,23.5\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	outRoot := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run([]string{"export", "--server", srv.URL, "--out", outRoot, "--day", "2025-12-05"}, &out))

	content, err := os.ReadFile(filepath.Join(outRoot, "2025-12-05", "jetson-lab-01.csv"))
	require.NoError(t, err)
	assert.Equal(t, "timestamp,temperature_c\n2025-12-05T19:15:54Z,23.5\n", string(content))

	_, err = os.Stat(filepath.Join(outRoot, "2025-12-05", "jetson-lab-02.csv"))
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "skip jetson-lab-02")

	entries, err := os.ReadDir(filepath.Join(outRoot, "2025-12-05"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestExport_RejectsBadDay(t *testing.T) {
	assert.ErrorContains(t, run([]string{"export", "--day", "05/12/2025"}, &bytes.Buffer{}), "YYYY-MM-DD")
}
