package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

func readyState(t *testing.T) State {
	t.Helper()
	s := Reduce(NewState(), LeagueSelected{League: nba(t)})
	return Reduce(s, TeamsLoaded{Generation: s.Generation, Teams: []teams.Team{{ID: "1", DisplayName: "A"}}})
}

func TestReduceLeagueSelectedResetsEverything(t *testing.T) {
	s := readyState(t)
	s = Reduce(s, TeamSelected{TeamID: "1"})
	s = Reduce(s, DashboardFailed{Generation: s.Generation, TeamID: "1", Err: errors.New("x")})
	require.NotEmpty(t, s.Error)

	nfl, _ := leagues.Lookup(leagues.NFL)
	next := Reduce(s, LeagueSelected{League: nfl})
	assert.Equal(t, s.Generation+1, next.Generation)
	assert.Equal(t, StatusLoadingTeams, next.Status)
	assert.Equal(t, leagues.NFL, next.League.Key)
	assert.Empty(t, next.Teams)
	assert.Empty(t, next.TeamID)
	assert.Nil(t, next.Snapshot.Team)
	assert.Empty(t, next.Error)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := readyState(t)
	before := s.Clone()
	_ = Reduce(s, TeamSelected{TeamID: "1"})
	_ = Reduce(s, LeagueCleared{})
	assert.Equal(t, before, s)
}

func TestReduceTeamsLoadedIgnoresStaleGeneration(t *testing.T) {
	s := Reduce(NewState(), LeagueSelected{League: nba(t)})
	stale := s.Generation
	s = Reduce(s, LeagueSelected{League: nba(t)})

	got := Reduce(s, TeamsLoaded{Generation: stale, Teams: []teams.Team{{ID: "old"}}})
	assert.Equal(t, s, got)
	assert.Equal(t, StatusLoadingTeams, got.Status)
}

func TestReduceTeamsFailedClearsAndSetsMessage(t *testing.T) {
	ncaam, _ := leagues.Lookup(leagues.NCAAM)
	s := Reduce(NewState(), LeagueSelected{League: ncaam})
	s = Reduce(s, TeamsFailed{Generation: s.Generation, Err: errors.New("down")})

	assert.Equal(t, "Failed to load NCAAM teams.", s.Error)
	assert.Equal(t, StatusTeamsReady, s.Status)
	assert.Empty(t, s.Teams)
	assert.Empty(t, s.TeamID)

	s = Reduce(s, ErrorDismissed{})
	assert.Empty(t, s.Error)
}

func TestReduceTeamSelectedRequiresSettledTeams(t *testing.T) {
	idle := NewState()
	assert.Equal(t, idle, Reduce(idle, TeamSelected{TeamID: "1"}))

	loading := Reduce(idle, LeagueSelected{League: nba(t)})
	assert.Equal(t, loading, Reduce(loading, TeamSelected{TeamID: "1"}))
}

func TestReduceTeamSelectedClearsPreviousSnapshot(t *testing.T) {
	s := readyState(t)
	s = Reduce(s, TeamSelected{TeamID: "1"})
	snap := EmptySnapshot()
	snap.Roster = []players.Player{{ID: "p"}}
	s = Reduce(s, DashboardLoaded{Generation: s.Generation, TeamID: "1", Snapshot: snap})
	require.Equal(t, StatusReady, s.Status)
	require.Len(t, s.Snapshot.Roster, 1)

	next := Reduce(s, TeamSelected{TeamID: "2"})
	assert.Equal(t, StatusLoadingDashboard, next.Status)
	assert.Empty(t, next.Snapshot.Roster)
	assert.Equal(t, s.Generation+1, next.Generation)

	cleared := Reduce(next, TeamSelected{TeamID: ""})
	assert.Equal(t, StatusTeamsReady, cleared.Status)
	assert.Empty(t, cleared.TeamID)
}

func TestReduceDashboardLoadedPartialAndStale(t *testing.T) {
	s := readyState(t)
	s = Reduce(s, TeamSelected{TeamID: "1"})
	first := s.Generation
	s = Reduce(s, TeamSelected{TeamID: "2"})

	staleSnap := EmptySnapshot()
	staleSnap.Roster = []players.Player{{ID: "from-1"}}
	got := Reduce(s, DashboardLoaded{Generation: first, TeamID: "1", Snapshot: staleSnap})
	assert.Equal(t, s, got)

	partial := EmptySnapshot()
	partial.Failed = []Part{PartNews}
	got = Reduce(s, DashboardLoaded{Generation: s.Generation, TeamID: "2", Snapshot: partial})
	assert.Equal(t, StatusReadyPartial, got.Status)

	wrongTeam := Reduce(s, DashboardLoaded{Generation: s.Generation, TeamID: "1", Snapshot: staleSnap})
	assert.Equal(t, s, wrongTeam)
}

func TestReduceDashboardFailed(t *testing.T) {
	s := readyState(t)
	s = Reduce(s, TeamSelected{TeamID: "1"})
	s = Reduce(s, DashboardFailed{Generation: s.Generation, TeamID: "1", Err: errors.New("no")})

	assert.Equal(t, DashboardErrorMessage, s.Error)
	assert.Equal(t, StatusTeamsReady, s.Status)
	assert.Equal(t, "1", s.TeamID)
	assert.Empty(t, s.Snapshot.Roster)
}

func TestReduceLeagueClearedReturnsToIdle(t *testing.T) {
	s := readyState(t)
	s = Reduce(s, LeagueCleared{})
	assert.Equal(t, StatusIdle, s.Status)
	assert.Nil(t, s.League)
	assert.Empty(t, s.Teams)
	assert.NotZero(t, s.Generation)
}

func TestCloneIsDeep(t *testing.T) {
	s := readyState(t)
	c := s.Clone()
	c.Teams[0].DisplayName = "changed"
	c.League.DisplayName = "changed"
	assert.Equal(t, "A", s.Teams[0].DisplayName)
	assert.Equal(t, "NBA", s.League.DisplayName)
}
