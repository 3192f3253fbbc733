package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

var errMissingRequest = errors.New("request not provided")

// Loader runs the partial-aggregation policy over a provider's per-team requests.
type Loader struct {
	provider providers.RequestBuilder
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewLoader constructs a Loader. logger and rec may be nil.
func NewLoader(provider providers.RequestBuilder, logger *slog.Logger, rec *metrics.Recorder) *Loader {
	return &Loader{provider: provider, logger: logger, metrics: rec}
}

// Load builds the three per-team requests, runs them concurrently and waits
// for all of them. A failed part is logged and left empty; only a failure to
// build the requests fails the load. team is attached to the snapshot as-is.
func (l *Loader) Load(ctx context.Context, league leagues.League, teamID string, team *teams.Team) (Snapshot, error) {
	start := time.Now()

	reqs, err := l.provider.TeamRequests(league, teamID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build team requests: %w", err)
	}

	snap := EmptySnapshot()
	snap.Team = team

	var rosterErr, scheduleErr, newsErr error
	var g errgroup.Group
	g.Go(func() error {
		if reqs.Roster == nil {
			rosterErr = errMissingRequest
			return nil
		}
		roster, err := reqs.Roster(ctx)
		if err != nil {
			rosterErr = err
			return nil
		}
		if roster != nil {
			snap.Roster = roster
		}
		return nil
	})
	g.Go(func() error {
		if reqs.Schedule == nil {
			scheduleErr = errMissingRequest
			return nil
		}
		events, err := reqs.Schedule(ctx)
		if err != nil {
			scheduleErr = err
			return nil
		}
		if events != nil {
			snap.Schedule = events
		}
		return nil
	})
	g.Go(func() error {
		if reqs.News == nil {
			newsErr = errMissingRequest
			return nil
		}
		articles, err := reqs.News(ctx)
		if err != nil {
			newsErr = err
			return nil
		}
		if articles != nil {
			snap.News = articles
		}
		return nil
	})
	_ = g.Wait()

	for _, r := range []struct {
		part Part
		err  error
	}{
		{PartRoster, rosterErr},
		{PartSchedule, scheduleErr},
		{PartNews, newsErr},
	} {
		if r.err == nil {
			continue
		}
		snap.Failed = append(snap.Failed, r.part)
		logging.Warn(ctx, l.logger, "dashboard part failed",
			logging.FieldLeague, string(league.Key),
			logging.FieldTeamID, teamID,
			logging.FieldPart, string(r.part),
			"error", r.err,
		)
	}

	duration := time.Since(start)
	l.metrics.RecordDashboardLoad(duration, snap.failedNames())
	logging.Info(ctx, l.logger, "dashboard loaded",
		logging.FieldLeague, string(league.Key),
		logging.FieldTeamID, teamID,
		logging.FieldCount, len(snap.Roster)+len(snap.Schedule)+len(snap.News),
		logging.FieldDurationMS, duration.Milliseconds(),
		"partial", snap.Partial(),
	)
	return snap, nil
}
