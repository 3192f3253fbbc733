package schedule

import "testing"

func TestScoreboardLinkPrefersScoreboardTag(t *testing.T) {
	links := []Link{
		{Rel: []string{"summary", "desktop"}, Href: "https://x/summary"},
		{Rel: []string{"boxscore"}, Href: "https://x/box"},
		{Rel: []string{"desktop", "scoreboard"}, Href: "https://x/scoreboard"},
	}
	if got := ScoreboardLink(links); got != "https://x/scoreboard" {
		t.Fatalf("expected scoreboard link, got %q", got)
	}
}

func TestScoreboardLinkFallsBackToSummary(t *testing.T) {
	links := []Link{
		{Rel: []string{"boxscore"}, Href: "https://x/box"},
		{Rel: []string{"summary"}, Href: "https://x/summary"},
	}
	if got := ScoreboardLink(links); got != "https://x/summary" {
		t.Fatalf("expected summary fallback, got %q", got)
	}
	if got := ScoreboardLink(nil); got != "" {
		t.Fatalf("expected empty link, got %q", got)
	}
}

func TestScoreboardLinkSkipsEmptyHref(t *testing.T) {
	links := []Link{
		{Rel: []string{"scoreboard"}},
		{Rel: []string{"scoreboard"}, Href: "https://x/2"},
	}
	if got := ScoreboardLink(links); got != "https://x/2" {
		t.Fatalf("expected second scoreboard link, got %q", got)
	}
}
