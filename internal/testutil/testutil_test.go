package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseTimestamp("2024-01-02T03:04Z"); !got.Equal(now.Truncate(time.Minute)) {
		t.Fatalf("expected minute timestamp parsed, got %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid timestamp")
		}
	}()
	MustParseTimestamp("not-a-time")
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestFakeTimerRecordsDelays(t *testing.T) {
	timer := NewFakeTimer()
	timer.Start(time.Second)
	<-timer.C()
	timer.Start(2 * time.Second)
	<-timer.C()
	timer.Stop()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, timer.Delays())
}

func TestStubHTTPServer(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); err == nil || err.Error() != "boom" {
		t.Fatalf("expected listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); err == nil {
		t.Fatalf("expected shutdown error")
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected default addr and handler")
	}
	if sh.ListenCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected listen/shutdown calls, got %d/%d", sh.ListenCalls(), sh.ShutdownCalls())
	}
}

func TestStubHTTPServerBlocksUntilUnblocked(t *testing.T) {
	b := &StubHTTPServer{Unblock: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocked := &StubHTTPServer{Unblock: make(chan struct{})}
	if err := blocked.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected buffered debug output, got %q", buf.String())
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestStubProviderDefaults(t *testing.T) {
	ctx := context.Background()
	nba, ok := leagues.Lookup(leagues.NBA)
	require.True(t, ok)

	var p StubProvider
	list, err := p.FetchTeams(ctx, nba)
	require.NoError(t, err)
	assert.Empty(t, list)

	reqs, err := p.TeamRequests(nba, "1")
	require.NoError(t, err)
	roster, err := reqs.Roster(ctx)
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestPartsRequestsFailIndependently(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	reqs := Parts{ScheduleErr: boom, News: nil}.Requests()

	_, err := reqs.Schedule(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = reqs.Roster(ctx)
	assert.NoError(t, err)
	_, err = reqs.News(ctx)
	assert.NoError(t, err)
}

func TestStaticTeamsAndSampleTeam(t *testing.T) {
	team := SampleTeam("t1", "Team One")
	assert.Equal(t, "t1", team.ID)
	assert.NotEmpty(t, team.Logos)

	fn := StaticTeams(team)
	list, err := fn(context.Background(), leagues.League{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
