package espn

import (
	"bytes"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
)

// DefaultRosterKeys is the lookup order for the roster list.
var DefaultRosterKeys = []string{"athletes", "roster"}

// NormalizeTeams extracts the team list at sports[0].leagues[0].teams.
// Grouped leagues nest teams inside conferences and are flattened. A missing
// path is a MalformedResponseError; an empty list is not.
func NormalizeTeams(league leagues.League, raw []byte) ([]teams.Team, error) {
	var payload teamsResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, malformed("decode teams payload", err)
	}
	if len(payload.Sports) == 0 {
		return nil, malformed("teams payload missing sports[0]", nil)
	}
	if len(payload.Sports[0].Leagues) == 0 {
		return nil, malformed("teams payload missing sports[0].leagues[0]", nil)
	}
	list := payload.Sports[0].Leagues[0].Teams
	if isNull(list) {
		return nil, malformed("teams payload missing sports[0].leagues[0].teams", nil)
	}

	var entries []teamEntry
	if league.GroupedTeams {
		var conferences []conferenceEntry
		if err := json.Unmarshal(list, &conferences); err != nil {
			return nil, malformed("decode conference groups", err)
		}
		for _, conf := range conferences {
			entries = append(entries, conf.Teams...)
		}
	} else if err := json.Unmarshal(list, &entries); err != nil {
		return nil, malformed("decode team entries", err)
	}

	out := make([]teams.Team, 0, len(entries))
	for _, entry := range entries {
		if entry.Team == nil || entry.Team.ID == "" {
			continue
		}
		out = append(out, mapTeam(*entry.Team))
	}
	sortByName(out, func(t teams.Team) string { return t.DisplayName })
	return out, nil
}

// NormalizeRoster reads the roster list under the first present, non-null key
// in keys (DefaultRosterKeys when empty). A list whose first element carries
// an items array is grouped: groups are flattened and sorted by full name.
// Flat lists keep upstream order.
func NormalizeRoster(raw []byte, keys []string) ([]players.Player, error) {
	if len(keys) == 0 {
		keys = DefaultRosterKeys
	}
	var top map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, malformed("decode roster payload", err)
	}

	var list []jsoniter.RawMessage
	for _, key := range keys {
		v, ok := top[key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, &list); err != nil {
			return nil, malformed(fmt.Sprintf("decode roster list %q", key), err)
		}
		break
	}
	if len(list) == 0 {
		return []players.Player{}, nil
	}

	grouped, err := isGrouped(list[0])
	if err != nil {
		return nil, malformed("inspect roster entry", err)
	}

	if !grouped {
		out := make([]players.Player, 0, len(list))
		for _, item := range list {
			var p rawPlayer
			if err := json.Unmarshal(item, &p); err != nil {
				return nil, malformed("decode roster entry", err)
			}
			out = append(out, mapPlayer(p))
		}
		return out, nil
	}

	var out []players.Player
	for _, item := range list {
		var group rosterGroup
		if err := json.Unmarshal(item, &group); err != nil {
			return nil, malformed("decode roster group", err)
		}
		for _, p := range group.Items {
			out = append(out, mapPlayer(p))
		}
	}
	if out == nil {
		out = []players.Player{}
	}
	sortByName(out, func(p players.Player) string { return p.FullName })
	return out, nil
}

// NormalizeSchedule maps {events: [...]}; a missing list is empty.
func NormalizeSchedule(raw []byte) ([]schedule.Event, error) {
	var payload scheduleResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, malformed("decode schedule payload", err)
	}
	out := make([]schedule.Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		out = append(out, mapEvent(e))
	}
	return out, nil
}

// NormalizeNews maps {articles: [...]}; a missing list is empty.
func NormalizeNews(raw []byte) ([]news.Article, error) {
	var payload newsResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, malformed("decode news payload", err)
	}
	out := make([]news.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		out = append(out, mapArticle(a))
	}
	return out, nil
}

func isGrouped(first jsoniter.RawMessage) (bool, error) {
	trimmed := bytes.TrimSpace(first)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false, nil
	}
	var shape groupShape
	if err := json.Unmarshal(trimmed, &shape); err != nil {
		return false, err
	}
	items := bytes.TrimSpace(shape.Items)
	return len(items) > 0 && items[0] == '[', nil
}

func isNull(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// sortByName orders items by a case-insensitive English collation, keeping
// the relative order of equal names. Collators are not safe for concurrent
// use, so one is built per call.
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}

func malformed(reason string, err error) error {
	return &providers.MalformedResponseError{Provider: providerName, Reason: reason, Err: err}
}
