package testutil

import (
	"context"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

// StubProvider implements providers.DataProvider with overridable funcs.
// Nil funcs return empty results.
type StubProvider struct {
	FetchTeamsFn   func(ctx context.Context, league leagues.League) ([]teams.Team, error)
	TeamRequestsFn func(league leagues.League, teamID string) (providers.TeamRequests, error)
}

func (p StubProvider) FetchTeams(ctx context.Context, league leagues.League) ([]teams.Team, error) {
	if p.FetchTeamsFn == nil {
		return []teams.Team{}, nil
	}
	return p.FetchTeamsFn(ctx, league)
}

func (p StubProvider) TeamRequests(league leagues.League, teamID string) (providers.TeamRequests, error) {
	if p.TeamRequestsFn == nil {
		return Parts{}.Requests(), nil
	}
	return p.TeamRequestsFn(league, teamID)
}

// Parts holds fixed per-team results; a non-nil error fails that part.
type Parts struct {
	Roster      []players.Player
	RosterErr   error
	Schedule    []schedule.Event
	ScheduleErr error
	News        []news.Article
	NewsErr     error
}

// Requests returns TeamRequests that yield the fixed results.
func (p Parts) Requests() providers.TeamRequests {
	return providers.TeamRequests{
		Roster: func(ctx context.Context) ([]players.Player, error) {
			if p.RosterErr != nil {
				return nil, p.RosterErr
			}
			return p.Roster, nil
		},
		Schedule: func(ctx context.Context) ([]schedule.Event, error) {
			if p.ScheduleErr != nil {
				return nil, p.ScheduleErr
			}
			return p.Schedule, nil
		},
		News: func(ctx context.Context) ([]news.Article, error) {
			if p.NewsErr != nil {
				return nil, p.NewsErr
			}
			return p.News, nil
		},
	}
}

// StaticTeams returns a FetchTeamsFn that always yields list.
func StaticTeams(list ...teams.Team) func(context.Context, leagues.League) ([]teams.Team, error) {
	return func(context.Context, leagues.League) ([]teams.Team, error) {
		return list, nil
	}
}

// SampleTeam returns a minimal team with the provided id and name.
func SampleTeam(id, name string) teams.Team {
	return teams.Team{ID: id, DisplayName: name, Logos: []teams.Logo{{Href: "https://example.test/" + id + ".png"}}}
}
