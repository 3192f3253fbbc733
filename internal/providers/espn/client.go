package espn

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/fetch"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

const (
	// DefaultBaseURL is the public ESPN site API root.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	providerName   = "espn"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	MaxAttempts  int
	InitialDelay time.Duration
	RosterKeys   []string
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	NewTimer     func() backoff.Timer
}

// Client fetches ESPN payloads through the retrying fetch client and
// normalizes them into domain models.
type Client struct {
	baseURL    string
	fetch      *fetch.Client
	rosterKeys []string
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	keys := cfg.RosterKeys
	if len(keys) == 0 {
		keys = DefaultRosterKeys
	}
	return &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		fetch: fetch.New(fetch.Config{
			Name:         providerName,
			HTTPClient:   cfg.HTTPClient,
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
			Logger:       cfg.Logger,
			Metrics:      cfg.Metrics,
			NewTimer:     cfg.NewTimer,
		}),
		rosterKeys: append([]string(nil), keys...),
	}
}

// FetchTeams loads and normalizes the team list for a league.
func (c *Client) FetchTeams(ctx context.Context, league leagues.League) ([]teams.Team, error) {
	if err := validateLeague(league); err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, c.TeamsURL(league))
	if err != nil {
		return nil, fmt.Errorf("espn: fetch %s teams: %w", league.Key, err)
	}
	return NormalizeTeams(league, raw)
}

// TeamRequests prepares the roster, schedule and news fetches for one team.
func (c *Client) TeamRequests(league leagues.League, teamID string) (providers.TeamRequests, error) {
	if err := validateLeague(league); err != nil {
		return providers.TeamRequests{}, err
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return providers.TeamRequests{}, providers.ErrInvalidTeamID
	}

	rosterURL := c.RosterURL(league, teamID)
	scheduleURL := c.ScheduleURL(league, teamID)
	newsURL := c.NewsURL(league, teamID)

	return providers.TeamRequests{
		Roster: func(ctx context.Context) ([]players.Player, error) {
			raw, err := c.get(ctx, rosterURL)
			if err != nil {
				return nil, fmt.Errorf("espn: fetch roster: %w", err)
			}
			return NormalizeRoster(raw, c.rosterKeys)
		},
		Schedule: func(ctx context.Context) ([]schedule.Event, error) {
			raw, err := c.get(ctx, scheduleURL)
			if err != nil {
				return nil, fmt.Errorf("espn: fetch schedule: %w", err)
			}
			return NormalizeSchedule(raw)
		},
		News: func(ctx context.Context) ([]news.Article, error) {
			raw, err := c.get(ctx, newsURL)
			if err != nil {
				return nil, fmt.Errorf("espn: fetch news: %w", err)
			}
			return NormalizeNews(raw)
		},
	}, nil
}

// TeamsURL is GET /{sport}/{league}/teams, with ?limit= when the league sets one.
func (c *Client) TeamsURL(league leagues.League) string {
	u := c.leagueRoot(league) + "/teams"
	if league.TeamsLimit > 0 {
		u += "?limit=" + strconv.Itoa(league.TeamsLimit)
	}
	return u
}

func (c *Client) RosterURL(league leagues.League, teamID string) string {
	return c.leagueRoot(league) + "/teams/" + url.PathEscape(teamID) + "/roster"
}

func (c *Client) ScheduleURL(league leagues.League, teamID string) string {
	return c.leagueRoot(league) + "/teams/" + url.PathEscape(teamID) + "/schedule"
}

func (c *Client) NewsURL(league leagues.League, teamID string) string {
	return c.leagueRoot(league) + "/news?team=" + url.QueryEscape(teamID)
}

func (c *Client) leagueRoot(league leagues.League) string {
	return c.baseURL + "/" + league.Sport + "/" + league.League
}

// get returns the raw JSON body; syntax errors are retried by the fetch client.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	raw, err := fetch.FetchJSON[jsoniter.RawMessage](ctx, c.fetch, target)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func validateLeague(league leagues.League) error {
	if league.Sport == "" || league.League == "" {
		return fmt.Errorf("%w: %q", leagues.ErrUnknownLeague, league.Key)
	}
	return nil
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}
