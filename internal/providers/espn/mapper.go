package espn

import (
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/schedule"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
)

func mapTeam(t rawTeam) teams.Team {
	logos := t.Logos
	if logos == nil {
		logos = []teams.Logo{}
	}
	return teams.Team{
		ID:           string(t.ID),
		DisplayName:  t.DisplayName,
		Abbreviation: t.Abbreviation,
		Location:     t.Location,
		Logos:        logos,
	}
}

func mapPlayer(p rawPlayer) players.Player {
	out := players.Player{
		ID:       string(p.ID),
		FullName: p.FullName,
		Jersey:   string(p.Jersey),
		Headshot: string(p.Headshot),
	}
	if p.Position != nil {
		out.Position = p.Position.Abbreviation
	}
	return out
}

func mapEvent(e rawEvent) schedule.Event {
	links := make([]schedule.Link, 0, len(e.Links))
	for _, l := range e.Links {
		links = append(links, schedule.Link{Rel: l.Rel, Href: l.Href})
	}
	return schedule.Event{
		ID:            string(e.ID),
		Date:          e.Date.Time,
		DateText:      e.Date.Raw,
		Name:          e.Name,
		ShortName:     e.ShortName,
		StatusDetail:  statusDetail(e),
		Links:         links,
		ScoreboardURL: schedule.ScoreboardLink(links),
	}
}

// statusDetail prefers the first competition's status over the event's.
func statusDetail(e rawEvent) string {
	if len(e.Competitions) > 0 && e.Competitions[0].Status != nil {
		if d := e.Competitions[0].Status.Type.Detail; d != "" {
			return d
		}
	}
	if e.Status != nil {
		return e.Status.Type.Detail
	}
	return ""
}

func mapArticle(a rawArticle) news.Article {
	return news.Article{
		ID:          string(a.ID),
		Headline:    a.Headline,
		Description: a.Description,
		Images:      a.Images,
		WebURL:      a.Links.Web.Href,
	}
}
