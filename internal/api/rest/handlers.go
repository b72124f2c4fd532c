package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/palmetto/sandstorm/internal/model"
	"github.com/palmetto/sandstorm/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	teams      *service.TeamService
	scoreboard *service.ScoreboardService
	standings  *service.StandingsService
}

// NewHandler creates a new handler
func NewHandler(teams *service.TeamService, scoreboard *service.ScoreboardService, standings *service.StandingsService) *Handler {
	return &Handler{
		teams:      teams,
		scoreboard: scoreboard,
		standings:  standings,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "sandstorm",
	})
}

// GetTeamData returns the season view for a sport
func (h *Handler) GetTeamData(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.teams.TeamData(r.Context(), sport)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch team data", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// GetSchedule returns the full chronological schedule for a sport
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.teams.TeamData(r.Context(), sport)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, view.Schedule)
}

// GetStreak returns the current streak and recent-results window
func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	limit := limitParam(r, 10)
	streak, err := h.teams.Streak(r.Context(), sport, limit)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to compute streak", err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}

// GetResults returns recent completed results, newest first
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	limit := limitParam(r, 5)
	results, err := h.teams.Results(r.Context(), sport, limit)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch results", err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetSeries returns the current baseball series selection
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.teams.Series(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to compute series", err)
		return
	}

	respondJSON(w, http.StatusOK, series)
}

// GetStandings returns the ranked conference standings
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standings.Standings(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch standings", err)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// GetScoreboard returns today's games for a sport
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	subjectOnly := r.URL.Query().Get("subject") == "true"
	games, err := h.scoreboard.Scoreboard(r.Context(), sport, subjectOnly)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch scoreboard", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetGameSummary returns the linescore and box totals for a game
func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFromRequest(w, r)
	if !ok {
		return
	}

	gameID := mux.Vars(r)["gameID"]
	summary, err := h.scoreboard.GameSummary(r.Context(), sport, gameID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch game summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// sportFromRequest validates the {sport} path variable
func sportFromRequest(w http.ResponseWriter, r *http.Request) (model.Sport, bool) {
	sport := model.Sport(mux.Vars(r)["sport"])
	switch sport {
	case model.SportMBB, model.SportWBB, model.SportBaseball:
		return sport, true
	}
	respondError(w, http.StatusBadRequest, "Unknown sport (use mbb, wbb, or baseball)", nil)
	return "", false
}

func limitParam(r *http.Request, def int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return def
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
		return l
	}
	return def
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
