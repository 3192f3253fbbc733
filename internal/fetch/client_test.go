package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/testutil"
)

type payload struct {
	OK bool `json:"ok"`
}

// flakyServer answers failures times with status (or a broken body when status is 200) then succeeds.
func flakyServer(t *testing.T, failures int32, status int) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failures {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("{not json"))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(timer *testutil.FakeTimer, rec *metrics.Recorder, attempts int, delay time.Duration) *Client {
	return New(Config{
		Name:         "test",
		MaxAttempts:  attempts,
		InitialDelay: delay,
		Metrics:      rec,
		NewTimer:     func() backoff.Timer { return timer },
	})
}

func TestFetchJSONSucceedsFirstTry(t *testing.T) {
	srv, calls := flakyServer(t, 0, http.StatusOK)
	timer := testutil.NewFakeTimer()
	c := newTestClient(timer, nil, 3, time.Second)

	got, err := FetchJSON[payload](context.Background(), c, srv.URL)
	require.NoError(t, err)
	assert.True(t, got.OK)
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	assert.Empty(t, timer.Delays())
}

func TestFetchJSONRetriesWithDoublingDelays(t *testing.T) {
	srv, calls := flakyServer(t, 2, http.StatusInternalServerError)
	timer := testutil.NewFakeTimer()
	rec := metrics.NewRecorder()
	c := newTestClient(timer, rec, 3, time.Second)

	got, err := FetchJSON[payload](context.Background(), c, srv.URL)
	require.NoError(t, err, "expected success on third attempt")
	assert.True(t, got.OK)
	assert.EqualValues(t, 3, atomic.LoadInt32(calls))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, timer.Delays())
	assert.EqualValues(t, 3, rec.UpstreamCalls("test"))
	assert.EqualValues(t, 2, rec.UpstreamErrors("test"))
	assert.EqualValues(t, 2, rec.Retries("test"))
}

func TestFetchJSONGivesUpAfterMaxAttempts(t *testing.T) {
	srv, calls := flakyServer(t, 10, http.StatusServiceUnavailable)
	timer := testutil.NewFakeTimer()
	logger, buf := testutil.NewBufferLogger()
	c := New(Config{
		Name:         "test",
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		Logger:       logger,
		NewTimer:     func() backoff.Timer { return timer },
	})

	_, err := FetchJSON[payload](context.Background(), c, srv.URL)
	require.Error(t, err)

	var retryErr *RetryError
	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, 3, retryErr.Attempts)
	assert.Equal(t, srv.URL, retryErr.URL)

	statusErr, ok := AsStatusError(err)
	require.True(t, ok, "expected wrapped status error, got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)

	assert.EqualValues(t, 3, atomic.LoadInt32(calls))
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, timer.Delays())

	logs := buf.String()
	assert.Equal(t, 2, strings.Count(logs, "upstream fetch attempt failed, retrying"))
	assert.Contains(t, logs, "delay_ms=1000")
	assert.Contains(t, logs, "attempt=2")
	assert.Contains(t, logs, "upstream fetch failed")
}

func TestFetchJSONRetriesDecodeErrors(t *testing.T) {
	srv, calls := flakyServer(t, 1, http.StatusOK)
	c := newTestClient(testutil.NewFakeTimer(), nil, 2, time.Millisecond)

	got, err := FetchJSON[payload](context.Background(), c, srv.URL)
	require.NoError(t, err, "expected recovery after bad body")
	assert.True(t, got.OK)
	assert.EqualValues(t, 2, atomic.LoadInt32(calls))
}

func TestFetchJSONDecodeErrorSurfacesAfterExhaustion(t *testing.T) {
	srv, _ := flakyServer(t, 5, http.StatusOK)
	c := newTestClient(testutil.NewFakeTimer(), nil, 1, time.Millisecond)

	_, err := FetchJSON[payload](context.Background(), c, srv.URL)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFetchJSONSingleAttemptNeverWaits(t *testing.T) {
	srv, calls := flakyServer(t, 5, http.StatusInternalServerError)
	timer := testutil.NewFakeTimer()
	c := newTestClient(timer, nil, 1, time.Hour)

	_, err := FetchJSON[payload](context.Background(), c, srv.URL)
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	assert.Empty(t, timer.Delays())
}

func TestFetchJSONRespectsContextCancel(t *testing.T) {
	srv, calls := flakyServer(t, 5, http.StatusInternalServerError)
	c := New(Config{Name: "test", MaxAttempts: 3, InitialDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FetchJSON[payload](ctx, c, srv.URL)
	assert.True(t, errors.Is(err, context.Canceled), "expected context cancellation, got %v", err)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestNewAppliesDefaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultMaxAttempts, c.maxAttempts)
	assert.Equal(t, DefaultInitialDelay, c.initialDelay)
	assert.Equal(t, defaultName, c.name)
	assert.NotNil(t, c.http)
}

func TestInvalidURLIsNotRetried(t *testing.T) {
	timer := testutil.NewFakeTimer()
	c := newTestClient(timer, nil, 3, time.Millisecond)

	_, err := FetchJSON[payload](context.Background(), c, "://bad")
	require.Error(t, err)
	assert.Empty(t, timer.Delays())
}
