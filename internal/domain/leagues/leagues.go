package leagues

import (
	"errors"
	"fmt"
	"strings"
)

// Key identifies one of the supported leagues.
type Key string

const (
	NBA   Key = "nba"
	NFL   Key = "nfl"
	NHL   Key = "nhl"
	MLB   Key = "mlb"
	NCAAM Key = "ncaam"
)

// ErrUnknownLeague is returned for keys outside the league table.
var ErrUnknownLeague = errors.New("unknown league")

// League maps a key to the upstream sport/league path segments.
type League struct {
	Key         Key    `json:"key"`
	DisplayName string `json:"displayName"`
	Sport       string `json:"sport"`
	League      string `json:"league"`
	// TeamsLimit is sent as ?limit= on the team list request when positive.
	// The default upstream page size undercounts collegiate teams.
	TeamsLimit int `json:"teamsLimit,omitempty"`
	// GroupedTeams marks leagues whose team list nests teams inside conference groups.
	GroupedTeams bool `json:"groupedTeams,omitempty"`
}

var table = []League{
	{Key: NBA, DisplayName: "NBA", Sport: "basketball", League: "nba"},
	{Key: NFL, DisplayName: "NFL", Sport: "football", League: "nfl"},
	{Key: NHL, DisplayName: "NHL", Sport: "hockey", League: "nhl"},
	{Key: MLB, DisplayName: "MLB", Sport: "baseball", League: "mlb"},
	{Key: NCAAM, DisplayName: "NCAAM", Sport: "basketball", League: "mens-college-basketball", TeamsLimit: 1000, GroupedTeams: true},
}

// All returns a copy of the league table in display order.
func All() []League {
	out := make([]League, len(table))
	copy(out, table)
	return out
}

// Lookup returns the league for a key.
func Lookup(key Key) (League, bool) {
	for _, l := range table {
		if l.Key == key {
			return l, true
		}
	}
	return League{}, false
}

// Parse resolves a raw, case-insensitive league key.
func Parse(raw string) (League, error) {
	key := Key(strings.ToLower(strings.TrimSpace(raw)))
	if l, ok := Lookup(key); ok {
		return l, nil
	}
	return League{}, fmt.Errorf("%w: %q", ErrUnknownLeague, raw)
}
