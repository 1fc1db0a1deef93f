package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sensorhub/internal/delivery/http/response"
	"sensorhub/internal/errors"
)

// apiClient talks to the sensorhub HTTP API.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(baseURL, token string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return resp, nil
}

// apiError turns a non-success response into an error carrying the server's code.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body response.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != nil {
		if body.Error.Details != nil {
			return fmt.Errorf("%s %s: %d %s: %s (%v)", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, body.Error.Code, body.Error.Message, body.Error.Details)
		}

		return fmt.Errorf("%s %s: %d %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, body.Error.Code, body.Error.Message)
	}

	return fmt.Errorf("%s %s: unexpected status %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
}
