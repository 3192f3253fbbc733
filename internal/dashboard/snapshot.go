package dashboard

import (
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

// Part names one of the three per-team fetches.
type Part string

const (
	PartRoster   Part = "roster"
	PartSchedule Part = "schedule"
	PartNews     Part = "news"
)

// Snapshot is everything shown for one team. Each list is independently
// empty when its fetch failed; Failed lists those parts.
type Snapshot struct {
	Team     *teams.Team      `json:"team"`
	Roster   []players.Player `json:"roster"`
	Schedule []schedule.Event `json:"schedule"`
	News     []news.Article   `json:"news"`
	Failed   []Part           `json:"failed,omitempty"`
}

// EmptySnapshot returns a snapshot with no team and empty, non-nil lists.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Roster:   []players.Player{},
		Schedule: []schedule.Event{},
		News:     []news.Article{},
	}
}

// Partial reports whether any part failed to load.
func (s Snapshot) Partial() bool {
	return len(s.Failed) > 0
}

func (s Snapshot) failedNames() []string {
	out := make([]string, 0, len(s.Failed))
	for _, p := range s.Failed {
		out = append(out, string(p))
	}
	return out
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Roster:   append([]players.Player{}, s.Roster...),
		Schedule: append([]schedule.Event{}, s.Schedule...),
		News:     append([]news.Article{}, s.News...),
	}
	if s.Team != nil {
		team := *s.Team
		out.Team = &team
	}
	if len(s.Failed) > 0 {
		out.Failed = append([]Part(nil), s.Failed...)
	}
	return out
}
