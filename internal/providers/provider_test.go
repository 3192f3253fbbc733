package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

type testProvider struct{}

func (testProvider) FetchTeams(ctx context.Context, league leagues.League) ([]teams.Team, error) {
	_ = ctx
	_ = league
	return nil, nil
}

func (testProvider) TeamRequests(league leagues.League, teamID string) (TeamRequests, error) {
	_ = league
	_ = teamID
	return TeamRequests{}, nil
}

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = testProvider{}
}
