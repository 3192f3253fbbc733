package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls retry and transport behavior for a Client.
type Config struct {
	// Name labels the upstream in logs and metrics.
	Name         string
	HTTPClient   *http.Client
	MaxAttempts  int
	InitialDelay time.Duration
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	// NewTimer overrides the backoff wait timer; nil uses real time.
	NewTimer func() backoff.Timer
}

// Client performs GET requests that decode JSON bodies, retrying every failed
// attempt with exponential backoff. Calls share no state.
type Client struct {
	name         string
	http         httpDoer
	logger       *slog.Logger
	metrics      *metrics.Recorder
	maxAttempts  int
	initialDelay time.Duration
	newTimer     func() backoff.Timer
}

// New constructs a Client. Non-positive attempts/delay fall back to 3 and 1s.
func New(cfg Config) *Client {
	c := &Client{
		name:         cfg.Name,
		http:         resolveHTTPClient(cfg.HTTPClient),
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		maxAttempts:  cfg.MaxAttempts,
		initialDelay: cfg.InitialDelay,
		newTimer:     cfg.NewTimer,
	}
	if c.name == "" {
		c.name = defaultName
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.initialDelay <= 0 {
		c.initialDelay = DefaultInitialDelay
	}
	return c
}

// FetchJSON GETs url and decodes the body into a fresh T, retrying on
// transport errors, non-2xx statuses and decode errors.
func FetchJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	var result T
	err := c.do(ctx, url, func(body []byte) error {
		var v T
		if err := json.Unmarshal(body, &v); err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

func (c *Client) do(ctx context.Context, url string, decode func([]byte) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		err := c.attempt(ctx, url, decode)
		c.metrics.RecordUpstreamAttempt(c.name, time.Since(start), err)
		return err
	}
	notify := func(err error, delay time.Duration) {
		c.metrics.RecordRetry(c.name, delay)
		logging.Warn(ctx, c.logger, "upstream fetch attempt failed, retrying",
			logging.FieldProvider, c.name,
			logging.FieldURL, url,
			logging.FieldAttempt, attempt,
			logging.FieldMaxAttempts, c.maxAttempts,
			logging.FieldDelayMS, delay.Milliseconds(),
			"error", err,
		)
	}

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}
	policy := backoff.WithContext(newPolicy(c.initialDelay, c.maxAttempts), ctx)

	err := backoff.RetryNotifyWithTimer(operation, policy, notify, timer)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && err == ctxErr {
		return err
	}

	logging.Warn(ctx, c.logger, "upstream fetch failed",
		logging.FieldProvider, c.name,
		logging.FieldURL, url,
		logging.FieldAttempt, attempt,
		logging.FieldMaxAttempts, c.maxAttempts,
		"error", err,
	)
	return &RetryError{URL: url, Attempts: attempt, Err: err}
}

func (c *Client) attempt(ctx context.Context, url string, decode func([]byte) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyBytes))
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", c.name, err)
	}
	if err := decode(body); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}
