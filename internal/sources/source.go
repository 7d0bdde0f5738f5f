// Package sources contains the clients for the upstream product-data
// services and the mappings from their schemas into models.Product.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source looks up a normalized barcode in one upstream service.
type Source interface {
	Name() string
	Lookup(ctx context.Context, barcode string) Outcome
}

// Options configures the HTTP side of a source client.
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// maxBodyBytes caps how much of an upstream response is decoded.
const maxBodyBytes = 4 << 20

type httpClient struct {
	client    *http.Client
	userAgent string
}

func newHTTPClient(opts Options) httpClient {
	c := opts.HTTPClient
	if c == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		c = &http.Client{Timeout: timeout}
	}
	return httpClient{client: c, userAgent: opts.UserAgent}
}

// getJSON issues a GET request and decodes a 2xx body into out.
// It returns the response status code alongside any error so callers can
// treat a 404 as "no record" instead of a failure.
func (h httpClient) getJSON(ctx context.Context, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return resp.StatusCode, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.StatusCode, nil
}
