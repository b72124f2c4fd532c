package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/palmetto/sandstorm/internal/service"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, teams *service.TeamService, scoreboard *service.ScoreboardService, standings *service.StandingsService) *Server {
	handler := NewHandler(teams, scoreboard, standings)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Team season views
	api.HandleFunc("/teams/{sport}", handler.GetTeamData).Methods("GET")
	api.HandleFunc("/teams/{sport}/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/teams/{sport}/streak", handler.GetStreak).Methods("GET")
	api.HandleFunc("/teams/{sport}/results", handler.GetResults).Methods("GET")

	// Baseball views
	api.HandleFunc("/series", handler.GetSeries).Methods("GET")
	api.HandleFunc("/standings", handler.GetStandings).Methods("GET")

	// League scoreboard and game detail
	api.HandleFunc("/scoreboard/{sport}", handler.GetScoreboard).Methods("GET")
	api.HandleFunc("/games/{sport}/{gameID}/summary", handler.GetGameSummary).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
