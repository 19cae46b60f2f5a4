// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with the polite-scraping behavior the
// catalog asks for: a configurable delay between requests and bounded
// retries with backoff on transient failures.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/coursepipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "coursepipe/1.0 (+https://github.com/gaurav-prasanna/coursepipe)"
)

// Options tunes the fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int           // retries after the first attempt
	Delay      time.Duration // pause before every request after the first
}

// HTTPFetcher fetches catalog pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	retries   int
	delay     time.Duration
	fetched   int
}

// New creates an HTTPFetcher with the given options.
func New(opts Options) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		retries:   opts.MaxRetries,
		delay:     opts.Delay,
	}
}

// Fetch retrieves the HTML content of the given URL, retrying transient
// failures with linear backoff.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	// Pause between requests to stay polite with the catalog server.
	if f.fetched > 0 && f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.fetched++

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := f.fetchOnce(ctx, url)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}
	return nil, fmt.Errorf("fetching %s after %d attempts: %w", url, f.retries+1, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
