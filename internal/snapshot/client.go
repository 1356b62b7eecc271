// ABOUTME: HTTP client for the remote snapshot source
// ABOUTME: Fetches collection snapshots and per-country city lists with bounded retries
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrFetchFailed means a snapshot request did not succeed or its body could
// not be read. During seeding this aborts the run; on the city path it is
// retryable on the next user action.
var ErrFetchFailed = errors.New("fetch failed")

// Client fetches JSON snapshots from the remote source. The caller decodes;
// the client only guarantees a complete body from a 2xx response.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	log        *slog.Logger
}

// Config controls the snapshot client.
type Config struct {
	// BaseURL is the snapshot root; collection snapshots live at
	// {base}/{name}/{name}.json and city lists at {base}/cities/{ISO2}.json.
	BaseURL string

	// Timeout bounds a single HTTP attempt. Zero means 30s.
	Timeout time.Duration

	// MaxRetries bounds retries of transient failures. Zero means no retry.
	MaxRetries int

	Logger *slog.Logger
}

// New creates a snapshot client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: uint64(retries),
		log:        logger,
	}
}

// FetchCollection downloads the full snapshot of one persistent collection
// (regions, subregions, countries, states).
func (c *Client) FetchCollection(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s.json", c.baseURL, name, name)
	return c.fetch(ctx, url, name)
}

// FetchCities downloads the city list for one ISO2 country code.
func (c *Client) FetchCities(ctx context.Context, iso2 string) ([]byte, error) {
	code := strings.ToUpper(iso2)
	url := fmt.Sprintf("%s/cities/%s.json", c.baseURL, code)
	return c.fetch(ctx, url, "cities/"+code)
}

// fetch retries transient failures (network errors, 5xx) with capped
// exponential backoff; any 4xx is permanent.
func (c *Client) fetch(ctx context.Context, url, label string) ([]byte, error) {
	attempt := 0
	op := func() ([]byte, error) {
		attempt++
		if attempt > 1 {
			c.log.Debug("retrying snapshot fetch", "label", label, "attempt", attempt)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("%w: %s: building request: %v", ErrFetchFailed, label, err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, label, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: reading body: %v", ErrFetchFailed, label, err)
			}
			return body, nil
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("%w: %s: status %s", ErrFetchFailed, label, resp.Status)
		default:
			return nil, backoff.Permanent(fmt.Errorf("%w: %s: status %s", ErrFetchFailed, label, resp.Status))
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	body, err := backoff.RetryWithData(op, b)
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = fmt.Errorf("%w: %s: %v", ErrFetchFailed, label, err)
		}
		return nil, err
	}
	return body, nil
}
