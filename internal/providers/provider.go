package providers

import (
	"context"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

// TeamProvider fetches the normalized team list for a league.
type TeamProvider interface {
	FetchTeams(ctx context.Context, league leagues.League) ([]teams.Team, error)
}

// RequestBuilder prepares the three per-team fetches. Building may fail
// (unknown league, empty id); the returned fetches fail independently.
type RequestBuilder interface {
	TeamRequests(league leagues.League, teamID string) (TeamRequests, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	RequestBuilder
}

// TeamRequests holds one prepared fetch per dashboard part.
type TeamRequests struct {
	Roster   func(ctx context.Context) ([]players.Player, error)
	Schedule func(ctx context.Context) ([]schedule.Event, error)
	News     func(ctx context.Context) ([]news.Article, error)
}
