package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

// ErrTeamsNotReady is returned when a team is selected before the league's
// team list has settled.
var ErrTeamsNotReady = errors.New("no league selected or teams still loading")

// Session owns one dashboard State and runs the loads that drive it. All
// methods are safe for concurrent use; the lock is never held across I/O.
type Session struct {
	id       string
	provider providers.TeamProvider
	loader   *Loader
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// NewSession creates an idle session.
func NewSession(id string, provider providers.DataProvider, loader *Loader, logger *slog.Logger) *Session {
	return &Session{
		id:       id,
		provider: provider,
		loader:   loader,
		logger:   logger,
		state:    NewState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies an action and returns a copy of the resulting state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state.Clone()
}

// SelectLeague clears the session, loads the league's teams and returns the
// state after the load settles. If another selection happened meanwhile the
// result is discarded and the newer state is returned.
func (s *Session) SelectLeague(ctx context.Context, league leagues.League) State {
	issued := s.Dispatch(LeagueSelected{League: league})

	list, err := s.provider.FetchTeams(ctx, league)
	if err != nil {
		logging.Error(ctx, s.logger, "team list load failed", err,
			logging.FieldSessionID, s.id,
			logging.FieldLeague, string(league.Key),
			logging.FieldGeneration, issued.Generation,
		)
		return s.Dispatch(TeamsFailed{Generation: issued.Generation, Err: err})
	}
	return s.Dispatch(TeamsLoaded{Generation: issued.Generation, Teams: list})
}

// SelectTeam clears the current snapshot and loads the dashboard for teamID.
// An empty teamID just clears the selection.
func (s *Session) SelectTeam(ctx context.Context, teamID string) (State, error) {
	s.mu.Lock()
	if !s.state.CanSelectTeam() {
		s.mu.Unlock()
		return s.State(), ErrTeamsNotReady
	}
	s.state = Reduce(s.state, TeamSelected{TeamID: teamID})
	issued := s.state.Clone()
	s.mu.Unlock()

	if issued.TeamID == "" {
		return issued, nil
	}

	var team *teams.Team
	if t, ok := teams.FindByID(issued.Teams, issued.TeamID); ok {
		team = &t
	}

	snap, err := s.loader.Load(ctx, *issued.League, issued.TeamID, team)
	if err != nil {
		logging.Error(ctx, s.logger, "dashboard load failed", err,
			logging.FieldSessionID, s.id,
			logging.FieldTeamID, issued.TeamID,
			logging.FieldGeneration, issued.Generation,
		)
		return s.Dispatch(DashboardFailed{Generation: issued.Generation, TeamID: issued.TeamID, Err: err}), nil
	}
	return s.Dispatch(DashboardLoaded{Generation: issued.Generation, TeamID: issued.TeamID, Snapshot: snap}), nil
}

// ClearLeague resets the session to idle.
func (s *Session) ClearLeague() State {
	return s.Dispatch(LeagueCleared{})
}

// DismissError clears the user-facing error message.
func (s *Session) DismissError() State {
	return s.Dispatch(ErrorDismissed{})
}
