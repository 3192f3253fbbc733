package dashboard

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

// Status is the coarse phase of a dashboard session.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusLoadingTeams     Status = "loadingTeams"
	StatusTeamsReady       Status = "teamsReady"
	StatusLoadingDashboard Status = "loadingDashboard"
	StatusReady            Status = "ready"
	StatusReadyPartial     Status = "readyPartial"
)

// DashboardErrorMessage is shown when a dashboard load fails outright.
const DashboardErrorMessage = "Failed to load team dashboard data."

// TeamsErrorMessage is shown when the team list for a league fails to load.
func TeamsErrorMessage(key leagues.Key) string {
	return fmt.Sprintf("Failed to load %s teams.", strings.ToUpper(string(key)))
}

// State is an immutable view of one session. Only Reduce produces new states;
// slices are never mutated after a state is built.
type State struct {
	// Generation increments on every selection. Result actions carry the
	// generation they were issued for and are dropped when it has moved on.
	Generation uint64          `json:"generation"`
	Status     Status          `json:"status"`
	League     *leagues.League `json:"league,omitempty"`
	Teams      []teams.Team    `json:"teams"`
	TeamID     string          `json:"teamId,omitempty"`
	Snapshot   Snapshot        `json:"snapshot"`
	Error      string          `json:"error,omitempty"`
}

// NewState returns the idle state.
func NewState() State {
	return State{
		Status:   StatusIdle,
		Teams:    []teams.Team{},
		Snapshot: EmptySnapshot(),
	}
}

// Action is a state transition input.
type Action interface {
	isAction()
}

// LeagueSelected starts a team list load for a league.
type LeagueSelected struct {
	League leagues.League
}

// TeamsLoaded delivers the team list for the league selected at Generation.
type TeamsLoaded struct {
	Generation uint64
	Teams      []teams.Team
}

// TeamsFailed reports that the team list for Generation failed.
type TeamsFailed struct {
	Generation uint64
	Err        error
}

// TeamSelected starts a dashboard load. An empty TeamID clears the selection.
// It is ignored until the league's team list has settled.
type TeamSelected struct {
	TeamID string
}

// DashboardLoaded delivers a snapshot for the team selected at Generation.
type DashboardLoaded struct {
	Generation uint64
	TeamID     string
	Snapshot   Snapshot
}

// DashboardFailed reports that the dashboard for Generation could not be built.
type DashboardFailed struct {
	Generation uint64
	TeamID     string
	Err        error
}

// ErrorDismissed clears the user-facing error message.
type ErrorDismissed struct{}

// LeagueCleared resets the session to idle.
type LeagueCleared struct{}

func (LeagueSelected) isAction()  {}
func (TeamsLoaded) isAction()     {}
func (TeamsFailed) isAction()     {}
func (TeamSelected) isAction()    {}
func (DashboardLoaded) isAction() {}
func (DashboardFailed) isAction() {}
func (ErrorDismissed) isAction()  {}
func (LeagueCleared) isAction()   {}

// Reduce returns the state that follows s after a. Stale results are ignored
// and s is returned unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LeagueSelected:
		league := a.League
		next := NewState()
		next.Generation = s.Generation + 1
		next.Status = StatusLoadingTeams
		next.League = &league
		return next

	case TeamsLoaded:
		if a.Generation != s.Generation || s.Status != StatusLoadingTeams {
			return s
		}
		list := a.Teams
		if list == nil {
			list = []teams.Team{}
		}
		s.Teams = list
		s.Status = StatusTeamsReady
		return s

	case TeamsFailed:
		if a.Generation != s.Generation || s.Status != StatusLoadingTeams {
			return s
		}
		s.Status = StatusTeamsReady
		s.Teams = []teams.Team{}
		s.TeamID = ""
		s.Snapshot = EmptySnapshot()
		s.Error = TeamsErrorMessage(s.League.Key)
		return s

	case TeamSelected:
		if !s.CanSelectTeam() {
			return s
		}
		s.Generation++
		s.Snapshot = EmptySnapshot()
		s.Error = ""
		s.TeamID = strings.TrimSpace(a.TeamID)
		s.Status = StatusLoadingDashboard
		if s.TeamID == "" {
			s.Status = StatusTeamsReady
		}
		return s

	case DashboardLoaded:
		if a.Generation != s.Generation || a.TeamID != s.TeamID || s.TeamID == "" {
			return s
		}
		s.Snapshot = a.Snapshot
		s.Status = StatusReady
		if a.Snapshot.Partial() {
			s.Status = StatusReadyPartial
		}
		return s

	case DashboardFailed:
		if a.Generation != s.Generation || a.TeamID != s.TeamID || s.TeamID == "" {
			return s
		}
		s.Snapshot = EmptySnapshot()
		s.Status = StatusTeamsReady
		s.Error = DashboardErrorMessage
		return s

	case ErrorDismissed:
		s.Error = ""
		return s

	case LeagueCleared:
		next := NewState()
		next.Generation = s.Generation + 1
		return next
	}
	return s
}

// CanSelectTeam reports whether a league is selected and its team list has
// settled (loaded or failed).
func (s State) CanSelectTeam() bool {
	return s.League != nil && s.Status != StatusIdle && s.Status != StatusLoadingTeams
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.League != nil {
		league := *s.League
		out.League = &league
	}
	out.Teams = append([]teams.Team{}, s.Teams...)
	out.Snapshot = s.Snapshot.clone()
	return out
}
