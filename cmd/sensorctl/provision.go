package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"sensorhub/internal/delivery/http/response"
	"sensorhub/internal/domain/entity"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"
)

func runProvision(args []string, stdout io.Writer) error {
	var (
		server   string
		token    string
		deviceID string
		secret   string
		timeout  time.Duration
	)

	flagSet := newFlagSet("provision")
	flagSet.StringVar(&server, "server", "http://127.0.0.1:8000", "sensorhub base URL")
	flagSet.StringVar(&token, "token", os.Getenv("SENSORHUB_TOKEN"), "admin JWT (see sensorctl token)")
	flagSet.StringVar(&deviceID, "device", "", "device id")
	flagSet.StringVar(&secret, "device-secret", "", "new device secret (8 to 72 bytes)")
	flagSet.DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if deviceID == "" || secret == "" {
		return fmt.Errorf("--device and --device-secret are required")
	}

	client := newAPIClient(server, token, timeout)
	resp, err := client.do(context.Background(), http.MethodPost, "/admin/devices", nil, &usecase.DeviceCredential{
		DeviceID: deviceID,
		Secret:   secret,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	var body struct {
		Data entity.Device      `json:"data"`
		Meta *response.MetaInfo `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decode provision response")
	}

	action := "rotated"
	if resp.StatusCode == http.StatusCreated {
		action = "created"
	}
	_, err = fmt.Fprintf(stdout, "%s %s\n", action, body.Data.DeviceID)

	return err
}
