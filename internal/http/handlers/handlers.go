package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sports-dashboard-service/internal/dashboard"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
	"github.com/preston-bernstein/sports-dashboard-service/internal/sweeper"
)

// SessionStore is the subset of the session store the handlers need.
type SessionStore interface {
	Create() *dashboard.Session
	Get(id string) (*dashboard.Session, bool)
	Delete(id string) bool
}

// Handler wires HTTP routes to the dashboard domain.
type Handler struct {
	provider providers.TeamProvider
	loader   *dashboard.Loader
	sessions SessionStore
	logger   *slog.Logger
	statusFn func() sweeper.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service always reports ready.
func NewHandler(provider providers.TeamProvider, loader *dashboard.Loader, sessions SessionStore, logger *slog.Logger, statusFn func() sweeper.Status) *Handler {
	return &Handler{
		provider: provider,
		loader:   loader,
		sessions: sessions,
		logger:   logger,
		statusFn: statusFn,
	}
}

type dashboardResponse struct {
	League leagues.Key `json:"league"`
	dashboard.Snapshot
	Partial bool `json:"partial"`
}

type readyResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"activeSessions"`
}

type sessionResponse struct {
	ID    string          `json:"id"`
	State dashboard.State `json:"state"`
}

type leagueRequest struct {
	League string `json:"league"`
}

type teamRequest struct {
	TeamID string `json:"teamId"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The session sweeper must be running.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, readyResponse{Status: "ready"}, h.logger)
		return
	}
	if st := h.statusFn(); st.Running {
		writeJSON(w, nethttp.StatusOK, readyResponse{Status: "ready", ActiveSessions: st.Active}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "session sweeper not running", h.logger)
}

// NotFound answers unmatched routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// Leagues returns the static league table.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]leagues.League{"leagues": leagues.All()}, h.logger)
}

// LeagueTeams returns the normalized, sorted team list for a league.
func (h *Handler) LeagueTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet) {
		return
	}
	league, ok := h.leagueFromPath(w, r)
	if !ok {
		return
	}

	list, err := h.provider.FetchTeams(r.Context(), league)
	if err != nil {
		logging.Error(r.Context(), h.logger, "team list load failed", err, logging.FieldLeague, string(league.Key))
		writeError(w, r, nethttp.StatusBadGateway, dashboard.TeamsErrorMessage(league.Key), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"league": league.Key, "teams": list}, h.logger)
}

// TeamDashboard loads roster, schedule and news for one team in a single call.
// Failed parts come back empty and are listed under "failed".
func (h *Handler) TeamDashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet) {
		return
	}
	league, ok := h.leagueFromPath(w, r)
	if !ok {
		return
	}
	teamID := strings.TrimSpace(r.PathValue("team"))
	if teamID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	ctx := r.Context()
	lookupCtx, cancelLookup := context.WithCancel(ctx)
	defer cancelLookup()

	var team *teams.Team
	var lookup errgroup.Group
	lookup.Go(func() error {
		team = h.lookupTeam(lookupCtx, league, teamID)
		return nil
	})

	snap, err := h.loader.Load(ctx, league, teamID, nil)
	if err != nil {
		cancelLookup()
	}
	_ = lookup.Wait()
	if err != nil {
		if errors.Is(err, providers.ErrInvalidTeamID) {
			writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
			return
		}
		logging.Error(ctx, h.logger, "dashboard load failed", err,
			logging.FieldLeague, string(league.Key),
			logging.FieldTeamID, teamID,
		)
		writeError(w, r, nethttp.StatusBadGateway, dashboard.DashboardErrorMessage, h.logger)
		return
	}
	snap.Team = team
	writeJSON(w, nethttp.StatusOK, dashboardResponse{League: league.Key, Snapshot: snap, Partial: snap.Partial()}, h.logger)
}

// Sessions creates a dashboard session.
func (h *Handler) Sessions(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodPost) {
		return
	}
	sess := h.sessions.Create()
	logging.Info(r.Context(), h.logger, "session created", logging.FieldSessionID, sess.ID())
	writeJSON(w, nethttp.StatusCreated, sessionResponse{ID: sess.ID(), State: sess.State()}, h.logger)
}

// Session returns or deletes one session.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodGet, nethttp.MethodDelete) {
		return
	}
	id := r.PathValue("id")
	if r.Method == nethttp.MethodDelete {
		if !h.sessions.Delete(id) {
			writeError(w, r, nethttp.StatusNotFound, "session not found", h.logger)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
		return
	}
	sess, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, sessionResponse{ID: sess.ID(), State: sess.State()}, h.logger)
}

// SessionLeague selects (PUT) or clears (DELETE) the session's league. A PUT
// answers once the team list has settled.
func (h *Handler) SessionLeague(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodPut, nethttp.MethodDelete) {
		return
	}
	sess, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	if r.Method == nethttp.MethodDelete {
		writeJSON(w, nethttp.StatusOK, sessionResponse{ID: sess.ID(), State: sess.ClearLeague()}, h.logger)
		return
	}

	var body leagueRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	league, err := leagues.Parse(body.League)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "unknown league", h.logger)
		return
	}

	state := sess.SelectLeague(detach(r), league)
	writeJSON(w, nethttp.StatusOK, sessionResponse{ID: sess.ID(), State: state}, h.logger)
}

// SessionTeam selects a team and answers once its dashboard has settled.
func (h *Handler) SessionTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodPut) {
		return
	}
	sess, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var body teamRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	state, err := sess.SelectTeam(detach(r), strings.TrimSpace(body.TeamID))
	if errors.Is(err, dashboard.ErrTeamsNotReady) {
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, sessionResponse{ID: sess.ID(), State: state}, h.logger)
}

// SessionError dismisses the session's user-facing error message.
func (h *Handler) SessionError(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.requireMethod(w, r, nethttp.MethodDelete) {
		return
	}
	sess, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, sessionResponse{ID: sess.ID(), State: sess.DismissError()}, h.logger)
}

func (h *Handler) requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	return false
}

func (h *Handler) leagueFromPath(w nethttp.ResponseWriter, r *nethttp.Request) (leagues.League, bool) {
	league, err := leagues.Parse(r.PathValue("league"))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "unknown league", h.logger)
		return leagues.League{}, false
	}
	return league, true
}

func (h *Handler) sessionFromPath(w nethttp.ResponseWriter, r *nethttp.Request) (*dashboard.Session, bool) {
	sess, ok := h.sessions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "session not found", h.logger)
		return nil, false
	}
	return sess, true
}

// lookupTeam finds the team's display record. It runs alongside the dashboard
// load; a failed or missing lookup leaves the snapshot's team nil.
func (h *Handler) lookupTeam(ctx context.Context, league leagues.League, teamID string) *teams.Team {
	list, err := h.provider.FetchTeams(ctx, league)
	if err != nil {
		logging.Warn(ctx, h.logger, "team lookup failed", logging.FieldLeague, string(league.Key), logging.FieldTeamID, teamID, "error", err)
		return nil
	}
	if t, ok := teams.FindByID(list, teamID); ok {
		return &t
	}
	return nil
}

// detach keeps session loads running when the client goes away so the
// session's state always settles.
func detach(r *nethttp.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
