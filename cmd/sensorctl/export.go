package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"sensorhub/internal/domain/entity"
	"sensorhub/internal/errors"
	"sensorhub/internal/util"
)

func runExport(args []string, stdout io.Writer) error {
	var (
		server  string
		outRoot string
		day     string
		timeout time.Duration
	)

	flagSet := newFlagSet("export")
	flagSet.StringVar(&server, "server", "http://127.0.0.1:8000", "sensorhub base URL")
	flagSet.StringVar(&outRoot, "out", "./csv", "output root; files go to <out>/<day>/<device>.csv")
	flagSet.StringVar(&day, "day", time.Now().UTC().Format(entity.DayLayout), "UTC day to export (YYYY-MM-DD)")
	flagSet.DurationVar(&timeout, "timeout", 5*time.Minute, "per-request timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if _, err := entity.ParseDay(day); err != nil {
		return fmt.Errorf("--day %q is not YYYY-MM-DD", day)
	}

	ctx := context.Background()
	client := newAPIClient(server, "", timeout)

	devices, err := listDevices(ctx, client)
	if err != nil {
		return err
	}

	outDir := filepath.Join(outRoot, day)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	for _, deviceID := range devices {
		path := filepath.Join(outDir, deviceID+".csv")
		start := time.Now()
		digest, err := exportDevice(ctx, client, deviceID, day, path)
		if err != nil {
			return err
		}
		if digest == nil {
			fmt.Fprintf(stdout, "skip %s: no readings on %s\n", deviceID, day)

			continue
		}
		fmt.Fprintf(stdout, "wrote %s (%s in %s, sha256 %s)\n",
			path, util.FormatBytes(digest.Len()), util.FormatDuration(time.Since(start)), digest.Sum())
	}

	return nil
}

func listDevices(ctx context.Context, client *apiClient) ([]string, error) {
	resp, err := client.do(ctx, http.MethodGet, "/api/v1/devices", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var body struct {
		Devices []string `json:"devices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode device list")
	}

	return body.Devices, nil
}

// exportDevice downloads one CSV into path. It writes a temporary file and
// renames it, so a failed download never leaves a truncated export behind.
// A nil digest means the device had no readings that day.
func exportDevice(ctx context.Context, client *apiClient, deviceID, day, path string) (*util.DigestWriter, error) {
	resp, err := client.do(ctx, http.MethodGet, "/api/v1/devices/"+url.PathEscape(deviceID)+"/csv", url.Values{"day": {day}}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil, nil
	default:
		return nil, apiError(resp)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	digest := util.NewDigestWriter(tmp)
	if _, err := io.Copy(digest, resp.Body); err != nil {
		tmp.Close()

		return nil, errors.Wrapf(err, "download %s", deviceID)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.WithStack(err)
	}

	return digest, nil
}
