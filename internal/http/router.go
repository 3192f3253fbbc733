package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/sports-dashboard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/leagues/{league}/teams", handler.LeagueTeams)
	mux.HandleFunc("/leagues/{league}/teams/{team}/dashboard", handler.TeamDashboard)
	mux.HandleFunc("/sessions", handler.Sessions)
	mux.HandleFunc("/sessions/{id}", handler.Session)
	mux.HandleFunc("/sessions/{id}/league", handler.SessionLeague)
	mux.HandleFunc("/sessions/{id}/team", handler.SessionTeam)
	mux.HandleFunc("/sessions/{id}/error", handler.SessionError)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
