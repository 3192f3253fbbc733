package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

func TestFetchTeamsReturnsSortedTeamsPerLeague(t *testing.T) {
	p := New()
	for _, league := range leagues.All() {
		list, err := p.FetchTeams(context.Background(), league)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", league.Key, err)
		}
		if len(list) != 2 {
			t.Fatalf("%s: expected 2 teams, got %d", league.Key, len(list))
		}
		if list[0].DisplayName > list[1].DisplayName {
			t.Fatalf("%s: expected sorted teams, got %+v", league.Key, list)
		}
		if list[0].PrimaryLogo() == "" {
			t.Fatalf("%s: expected logo", league.Key)
		}
	}
}

func TestFetchTeamsUnknownLeague(t *testing.T) {
	_, err := New().FetchTeams(context.Background(), leagues.League{Key: "xfl"})
	if !errors.Is(err, leagues.ErrUnknownLeague) {
		t.Fatalf("expected unknown league, got %v", err)
	}
}

func TestTeamRequestsProduceDeterministicDashboard(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }
	nba, _ := leagues.Lookup(leagues.NBA)

	reqs, err := p.TeamRequests(nba, "13")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ctx := context.Background()

	roster, err := reqs.Roster(ctx)
	if err != nil || len(roster) != 2 || roster[0].ID != "13-1" {
		t.Fatalf("unexpected roster %+v err=%v", roster, err)
	}
	events, err := reqs.Schedule(ctx)
	if err != nil || len(events) != 2 {
		t.Fatalf("unexpected schedule %+v err=%v", events, err)
	}
	if !events[0].Date.Equal(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first event date %s", events[0].Date)
	}
	if events[0].ScoreboardURL == "" {
		t.Fatalf("expected scoreboard url")
	}
	articles, err := reqs.News(ctx)
	if err != nil || len(articles) != 1 || articles[0].Thumbnail() == "" {
		t.Fatalf("unexpected news %+v err=%v", articles, err)
	}
}

func TestTeamRequestsValidation(t *testing.T) {
	p := New()
	nba, _ := leagues.Lookup(leagues.NBA)
	if _, err := p.TeamRequests(nba, ""); !errors.Is(err, providers.ErrInvalidTeamID) {
		t.Fatalf("expected invalid team id, got %v", err)
	}
	if _, err := p.TeamRequests(leagues.League{Key: "xfl"}, "1"); !errors.Is(err, leagues.ErrUnknownLeague) {
		t.Fatalf("expected unknown league, got %v", err)
	}
}
