package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/palmetto/sandstorm/internal/config"
	"github.com/palmetto/sandstorm/internal/model"
	"github.com/palmetto/sandstorm/internal/service"
)

var trackedSports = []model.Sport{model.SportMBB, model.SportWBB, model.SportBaseball}

// Scheduler keeps the cached snapshots warm and pushes refreshed views to
// WebSocket subscribers. Sports with a live game refresh on the fast
// interval; everything else waits for the idle interval.
type Scheduler struct {
	s         gocron.Scheduler
	teams     *service.TeamService
	standings *service.StandingsService
	broadcast func([]byte)
	cfg       config.Refresh

	mu          sync.Mutex
	lastViews   map[model.Sport]model.TeamSeasonView
	lastRefresh map[model.Sport]time.Time
}

// New creates a scheduler. broadcast may be nil when no WebSocket server
// is running.
func New(teams *service.TeamService, standings *service.StandingsService, broadcast func([]byte), cfg config.Refresh) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		teams:       teams,
		standings:   standings,
		broadcast:   broadcast,
		cfg:         cfg,
		lastViews:   make(map[model.Sport]model.TeamSeasonView),
		lastRefresh: make(map[model.Sport]time.Time),
	}, nil
}

// Start registers the refresh jobs and begins running them.
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.cfg.LiveInterval),
		gocron.NewTask(s.refreshTeams),
	)
	if err != nil {
		return fmt.Errorf("failed to create team refresh job: %w", err)
	}

	_, err = s.s.NewJob(
		gocron.DurationJob(s.cfg.StandingsInterval),
		gocron.NewTask(s.refreshStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings refresh job: %w", err)
	}

	s.s.Start()
	log.Printf("[scheduler] started (live: %v, idle: %v, standings: %v)",
		s.cfg.LiveInterval, s.cfg.IdleInterval, s.cfg.StandingsInterval)
	return nil
}

// Stop shuts the scheduler down.
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// refreshTeams runs on the fast interval and refreshes each sport that is
// either live or past its idle window.
func (s *Scheduler) refreshTeams() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, sport := range trackedSports {
		if !s.refreshDue(sport) {
			continue
		}

		view, err := s.teams.RefreshTeamData(ctx, sport)
		if err != nil {
			log.Printf("[scheduler] refresh failed for %s: %v", sport, err)
			continue
		}

		s.mu.Lock()
		s.lastViews[sport] = view
		s.lastRefresh[sport] = time.Now()
		s.mu.Unlock()

		s.publish("team_snapshot", sport, view)
	}
}

func (s *Scheduler) refreshDue(sport model.Sport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastRefresh[sport]
	if !ok {
		return true
	}
	if service.HasLiveGame(s.lastViews[sport]) {
		return true
	}
	return time.Since(last) >= s.cfg.IdleInterval
}

func (s *Scheduler) refreshStandings() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	standings, err := s.standings.Refresh(ctx)
	if err != nil {
		log.Printf("[scheduler] standings refresh failed: %v", err)
		return
	}

	s.publish("standings", model.SportBaseball, standings)
}

func (s *Scheduler) publish(msgType string, sport model.Sport, data interface{}) {
	if s.broadcast == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":  msgType,
		"sport": sport,
		"data":  data,
	})
	if err != nil {
		log.Printf("[scheduler] failed to marshal %s message: %v", msgType, err)
		return
	}

	s.broadcast(payload)
}
