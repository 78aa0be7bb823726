// Package remote implements the HTTP gateways through which the storefront
// consumes the user, catalog and order services. The services are arbitrary
// REST backends; only their boundary contract is assumed here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soyelectronico/storefront/internal/api/metrics"
	"github.com/soyelectronico/storefront/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// NewHTTPClient builds the http.Client shared by all gateways. The transport
// is instrumented so every remote call is observed in RemoteRequestDuration.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: promhttp.InstrumentRoundTripperDuration(metrics.RemoteRequestDuration, &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}),
	}
}

// do issues one JSON request and returns the status and raw body. credential,
// when non-empty, is attached as a bearer header. Transport-level failures
// come back wrapped in domain.ErrUnreachable; HTTP status mapping is the
// caller's job.
func do(ctx context.Context, client *http.Client, method, url, credential string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	// Bodies here are small product lists at most; no streaming needed.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}

	return resp.StatusCode, raw, nil
}

// serverMessage extracts the text the server wants the user to see. Plain
// text bodies are passed through verbatim; {"error": "..."} envelopes are
// unwrapped first.
func serverMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return msg
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
