package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour for downloads.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// FileName returns the canonical monthly weather file name for a location,
// e.g. "murree_2011_Jul.txt".
func FileName(location string, year int, month time.Month) string {
	return fmt.Sprintf("%s_%d_%s.txt", location, year, month.String()[:3])
}

// Fetcher downloads monthly weather files from a remote base URL into the
// local files directory, with retries, exponential backoff and a circuit
// breaker guarding the remote.
type Fetcher struct {
	client   *http.Client
	baseURL  string
	filesDir string
	backoff  BackoffConfig
	cb       *gobreaker.CircuitBreaker
}

// NewFetcher creates a Fetcher. maxRetries bounds retry attempts per file.
func NewFetcher(client *http.Client, baseURL, filesDir string, maxRetries int) *Fetcher {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "weatherfile-sync",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Fetcher{
		client:   client,
		baseURL:  baseURL,
		filesDir: filesDir,
		backoff: BackoffConfig{
			MaxRetries:      maxRetries,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
		},
		cb: cb,
	}
}

// SyncMonth downloads one location's file for the given year and month and
// writes it atomically into the files directory.
func (f *Fetcher) SyncMonth(ctx context.Context, location string, year int, month time.Month) error {
	name := FileName(location, year, month)

	remote, err := url.JoinPath(f.baseURL, name)
	if err != nil {
		return fmt.Errorf("bad sync url for %s: %w", name, err)
	}

	resp, err := f.get(ctx, remote)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp(f.filesDir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return os.Rename(tmp.Name(), filepath.Join(f.filesDir, name))
}

// get executes the HTTP request with retries, exponential backoff, and the
// circuit breaker.
func (f *Fetcher) get(ctx context.Context, remote string) (*http.Response, error) {
	if f.client == nil {
		return nil, errNoHTTPClient
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote, nil)
		if err != nil {
			return nil, err
		}

		result, err := f.cb.Execute(func() (interface{}, error) {
			resp, execErr := f.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			// Handle rate limiting and server errors explicitly.
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If the circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= f.backoff.MaxRetries {
			return nil, lastErr
		}

		delay := f.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if f.backoff.MaxInterval > 0 && delay > f.backoff.MaxInterval {
			delay = f.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
