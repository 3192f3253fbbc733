package schedule

import "time"

// ScoreboardRel is the link relation tag that marks an event's scoreboard page.
const ScoreboardRel = "scoreboard"

// summaryRel is used when an event has no scoreboard-tagged link.
const summaryRel = "summary"

// Link is a relational link attached to an event.
type Link struct {
	Rel  []string `json:"rel"`
	Href string   `json:"href"`
}

// HasRel reports whether the link is tagged with rel.
func (l Link) HasRel(rel string) bool {
	for _, r := range l.Rel {
		if r == rel {
			return true
		}
	}
	return false
}

// Event is the canonical schedule entry shape. DateText carries an upstream
// date that could not be parsed; Date is zero in that case.
type Event struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	DateText      string    `json:"dateText,omitempty"`
	Name          string    `json:"name"`
	ShortName     string    `json:"shortName,omitempty"`
	StatusDetail  string    `json:"statusDetail,omitempty"`
	Links         []Link    `json:"links,omitempty"`
	ScoreboardURL string    `json:"scoreboardUrl,omitempty"`
}

// ScoreboardLink returns the href of the first link tagged scoreboard,
// falling back to the event summary link.
func ScoreboardLink(links []Link) string {
	for _, rel := range []string{ScoreboardRel, summaryRel} {
		for _, l := range links {
			if l.Href != "" && l.HasRel(rel) {
				return l.Href
			}
		}
	}
	return ""
}
