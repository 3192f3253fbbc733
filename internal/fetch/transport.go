package fetch

import (
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
	defaultHTTPTimeout  = 10 * time.Second
	defaultName         = "upstream"

	maxBodyBytes   = 4 << 20
	errorBodyBytes = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// newPolicy builds a pure doubling schedule: initial, 2x, 4x, ... with no
// jitter, no elapsed-time cap and maxAttempts-1 retries.
func newPolicy(initial time.Duration, maxAttempts int) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, uint64(maxAttempts-1))
}
