package fixture

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

// Provider returns static teams and dashboards useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var fixtureTeams = map[leagues.Key][]teams.Team{
	leagues.NBA: {
		{ID: "2", DisplayName: "Boston Celtics", Abbreviation: "BOS", Location: "Boston"},
		{ID: "13", DisplayName: "Los Angeles Lakers", Abbreviation: "LAL", Location: "Los Angeles"},
	},
	leagues.NFL: {
		{ID: "12", DisplayName: "Kansas City Chiefs", Abbreviation: "KC", Location: "Kansas City"},
		{ID: "21", DisplayName: "Philadelphia Eagles", Abbreviation: "PHI", Location: "Philadelphia"},
	},
	leagues.NHL: {
		{ID: "6", DisplayName: "Edmonton Oilers", Abbreviation: "EDM", Location: "Edmonton"},
		{ID: "26", DisplayName: "Florida Panthers", Abbreviation: "FLA", Location: "Florida"},
	},
	leagues.MLB: {
		{ID: "10", DisplayName: "New York Yankees", Abbreviation: "NYY", Location: "New York"},
		{ID: "19", DisplayName: "Los Angeles Dodgers", Abbreviation: "LAD", Location: "Los Angeles"},
	},
	leagues.NCAAM: {
		{ID: "150", DisplayName: "Duke Blue Devils", Abbreviation: "DUKE", Location: "Duke"},
		{ID: "2", DisplayName: "Auburn Tigers", Abbreviation: "AUB", Location: "Auburn"},
	},
}

// FetchTeams returns a deterministic, name-sorted set of teams for the league.
func (p *Provider) FetchTeams(ctx context.Context, league leagues.League) ([]teams.Team, error) {
	_ = ctx
	list, ok := fixtureTeams[league.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", leagues.ErrUnknownLeague, league.Key)
	}
	out := make([]teams.Team, 0, len(list))
	for _, t := range list {
		t.Logos = []teams.Logo{{Href: fmt.Sprintf("https://fixtures.local/%s/%s.png", league.Key, strings.ToLower(t.Abbreviation))}}
		out = append(out, t)
	}
	sortTeams(out)
	return out, nil
}

// TeamRequests returns fetches that produce a small deterministic dashboard.
func (p *Provider) TeamRequests(league leagues.League, teamID string) (providers.TeamRequests, error) {
	if _, ok := fixtureTeams[league.Key]; !ok {
		return providers.TeamRequests{}, fmt.Errorf("%w: %q", leagues.ErrUnknownLeague, league.Key)
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return providers.TeamRequests{}, providers.ErrInvalidTeamID
	}

	return providers.TeamRequests{
		Roster: func(ctx context.Context) ([]players.Player, error) {
			_ = ctx
			return []players.Player{
				{ID: teamID + "-1", FullName: "Jane Doe", Jersey: "1", Position: "G"},
				{ID: teamID + "-2", FullName: "John Smith", Jersey: "23", Position: "F"},
			}, nil
		},
		Schedule: func(ctx context.Context) ([]schedule.Event, error) {
			_ = ctx
			start := p.now().UTC().Truncate(time.Hour)
			return []schedule.Event{
				fixtureEvent(league, teamID, 1, start.Add(24*time.Hour), "Scheduled"),
				fixtureEvent(league, teamID, 2, start.Add(72*time.Hour), "Scheduled"),
			}, nil
		},
		News: func(ctx context.Context) ([]news.Article, error) {
			_ = ctx
			return []news.Article{
				{
					ID:          "fixture-news-" + teamID,
					Headline:    fmt.Sprintf("%s team %s prepares for the week", strings.ToUpper(string(league.Key)), teamID),
					Description: "Fixture article.",
					Images:      []news.Image{{URL: "https://fixtures.local/news.png"}},
				},
			}, nil
		},
	}, nil
}

func fixtureEvent(league leagues.League, teamID string, n int, at time.Time, detail string) schedule.Event {
	link := schedule.Link{
		Rel:  []string{schedule.ScoreboardRel},
		Href: fmt.Sprintf("https://fixtures.local/%s/%s/game-%d", league.Key, teamID, n),
	}
	return schedule.Event{
		ID:            fmt.Sprintf("fixture-%s-%d", teamID, n),
		Date:          at,
		Name:          fmt.Sprintf("Fixture Game %d", n),
		StatusDetail:  detail,
		Links:         []schedule.Link{link},
		ScoreboardURL: link.Href,
	}
}

func sortTeams(list []teams.Team) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].DisplayName) < strings.ToLower(list[j].DisplayName)
	})
}
