package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/shared"
	"pip-doctor/internal/types"
)

const defaultIndexBaseURL = "https://pypi.python.org/pypi"

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second

type httpRetryConfig struct {
	timeout   time.Duration
	retries   int
	baseDelay time.Duration
}

func normalizeHTTPConfig(timeoutSec int, retries int, delayMs int) httpRetryConfig {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retryCount := retries
	if retryCount <= 0 {
		retryCount = defaultHTTPRetries
	}
	baseDelay := time.Duration(delayMs) * time.Millisecond
	if baseDelay <= 0 {
		baseDelay = defaultHTTPRetryDelay
	}
	return httpRetryConfig{
		timeout:   timeout,
		retries:   retryCount,
		baseDelay: baseDelay,
	}
}

// IndexClientAdapter fetches the package index JSON API. A missing
// package comes back as an empty document rather than an error.
type IndexClientAdapter struct {
	BaseURL string
	cfg     httpRetryConfig
}

func NewIndexClientAdapter() IndexClientAdapter {
	return IndexClientAdapter{
		BaseURL: defaultIndexBaseURL,
		cfg:     normalizeHTTPConfig(0, 0, 0),
	}
}

// NewIndexClientAdapterWith overrides the endpoint and HTTP behavior,
// used by tests and by callers pointed at a mirror.
func NewIndexClientAdapterWith(baseURL string, timeoutSec int, retries int, delayMs int) IndexClientAdapter {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultIndexBaseURL
	}
	return IndexClientAdapter{
		BaseURL: base,
		cfg:     normalizeHTTPConfig(timeoutSec, retries, delayMs),
	}
}

func (a IndexClientAdapter) PackageMetadata(ctx context.Context, pkg string) (types.PackageMetadata, error) {
	body, found, err := a.fetch(ctx, pkg)
	if err != nil {
		return types.PackageMetadata{}, err
	}
	if !found {
		return types.PackageMetadata{}, nil
	}
	var metadata types.PackageMetadata
	if err := json.Unmarshal(body, &metadata); err != nil {
		return types.PackageMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse package metadata").
			WithCause(err)
	}
	return metadata, nil
}

func (a IndexClientAdapter) PackageDocument(ctx context.Context, pkg string) (map[string]any, error) {
	body, found, err := a.fetch(ctx, pkg)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]any{}, nil
	}
	var document map[string]any
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse package metadata").
			WithCause(err)
	}
	return document, nil
}

// fetch returns the raw JSON body, with found=false for any non-2xx
// response: absence of a package on the index is expected, not an
// error.
func (a IndexClientAdapter) fetch(ctx context.Context, pkg string) ([]byte, bool, error) {
	url := fmt.Sprintf("%s/%s/json", strings.TrimRight(a.BaseURL, "/"), pkg)
	resp, err := doRequest(ctx, url, a.cfg)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug().
			Str("package", pkg).
			Int("status", resp.StatusCode).
			Msg("package index returned no metadata")
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package metadata").
			WithCause(err)
	}
	return body, true, nil
}

func doRequest(ctx context.Context, url string, cfg httpRetryConfig) (*http.Response, error) {
	client := &http.Client{Timeout: cfg.timeout}
	var lastErr error
	for attempt := 0; attempt < cfg.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request canceled").
				WithCause(ctx.Err())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("request canceled").
					WithCause(ctx.Err())
			}
			lastErr = err
			if attempt < cfg.retries-1 {
				time.Sleep(httpRetryDelay(attempt, cfg))
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request failed").
				WithCause(err)
		}
		if (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) && attempt < cfg.retries-1 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			time.Sleep(httpRetryDelay(attempt, cfg))
			continue
		}
		return resp, nil
	}
	if lastErr == nil {
		lastErr = shared.HTTPStatusError(0, url)
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request failed").
		WithCause(lastErr)
}

func httpRetryDelay(attempt int, cfg httpRetryConfig) time.Duration {
	delay := cfg.baseDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

var _ ports.IndexPort = IndexClientAdapter{}
