package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/palmetto/sandstorm/internal/cache"
	"github.com/palmetto/sandstorm/internal/conference"
	"github.com/palmetto/sandstorm/internal/config"
	"github.com/palmetto/sandstorm/internal/derive"
	"github.com/palmetto/sandstorm/internal/espn"
	"github.com/palmetto/sandstorm/internal/model"
)

// TeamService produces the subject team's season snapshots. Each call
// yields a fresh immutable view; Redis only short-circuits the upstream
// fetch, never the derivation.
type TeamService struct {
	client     *espn.Client
	cache      *cache.RedisCache
	classifier conference.Classifier
	subject    model.Subject
	espnCfg    config.ESPN
	ttl        time.Duration
}

// NewTeamService creates a team service. The cache may be nil; the service
// then fetches upstream on every call.
func NewTeamService(client *espn.Client, rc *cache.RedisCache, classifier conference.Classifier, subject model.Subject, espnCfg config.ESPN, ttl time.Duration) *TeamService {
	return &TeamService{
		client:     client,
		cache:      rc,
		classifier: classifier,
		subject:    subject,
		espnCfg:    espnCfg,
		ttl:        ttl,
	}
}

// Subject returns the tracked team identity.
func (s *TeamService) Subject() model.Subject {
	return s.subject
}

// TeamData returns the season view for a sport, served from cache when a
// fresh snapshot exists.
func (s *TeamService) TeamData(ctx context.Context, sport model.Sport) (model.TeamSeasonView, error) {
	key := fmt.Sprintf("team:%s", sport)

	if s.cache != nil {
		var cached model.TeamSeasonView
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("[teams] cache read failed for %s: %v", key, err)
		} else if hit {
			return cached, nil
		}
	}

	return s.RefreshTeamData(ctx, sport)
}

// RefreshTeamData fetches upstream, rebuilds the season view, and stores
// the new snapshot.
func (s *TeamService) RefreshTeamData(ctx context.Context, sport model.Sport) (model.TeamSeasonView, error) {
	sportPath, ok := espn.SportPaths[sport]
	if !ok {
		return model.TeamSeasonView{}, fmt.Errorf("unknown sport %q", sport)
	}
	teamID := s.espnCfg.TeamID(sport)

	teamResp, err := s.client.FetchTeam(ctx, sportPath, teamID)
	if err != nil {
		return model.TeamSeasonView{}, fmt.Errorf("fetching team: %w", err)
	}

	scheduleResp, err := s.client.FetchSchedule(ctx, sportPath, teamID)
	if err != nil {
		return model.TeamSeasonView{}, fmt.Errorf("fetching schedule: %w", err)
	}

	team, record := espn.ParseTeamRecord(teamResp)
	games := espn.ParseEvents(scheduleResp.Events, sport, s.classifier)
	view := derive.BuildTeamSeasonView(team, record, games, s.subject, time.Now())

	if s.cache != nil {
		key := fmt.Sprintf("team:%s", sport)
		if err := s.cache.SetJSON(ctx, key, view, s.ttl); err != nil {
			log.Printf("[teams] cache write failed for %s: %v", key, err)
		}
	}

	return view, nil
}

// Series returns the display-selected series from the baseball schedule.
func (s *TeamService) Series(ctx context.Context) ([]model.Series, error) {
	view, err := s.TeamData(ctx, model.SportBaseball)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	grouped := derive.GroupSeries(view.Schedule, s.subject)
	return derive.SelectSeries(grouped, now), nil
}

// StreakView pairs the current streak with its recent-results window.
type StreakView struct {
	Streak  derive.Streak       `json:"streak"`
	Results []derive.GameResult `json:"results"`
}

// Streak returns the current streak and the last limit completed results
// in chronological order, as charted.
func (s *TeamService) Streak(ctx context.Context, sport model.Sport, limit int) (StreakView, error) {
	view, err := s.TeamData(ctx, sport)
	if err != nil {
		return StreakView{}, err
	}

	now := time.Now()
	return StreakView{
		Streak:  derive.CurrentStreak(view.Schedule, s.subject, now),
		Results: derive.RecentResults(view.Schedule, s.subject, limit, false, now),
	}, nil
}

// Results returns the last limit completed results newest first, for list
// display.
func (s *TeamService) Results(ctx context.Context, sport model.Sport, limit int) ([]derive.GameResult, error) {
	view, err := s.TeamData(ctx, sport)
	if err != nil {
		return nil, err
	}
	return derive.RecentResults(view.Schedule, s.subject, limit, true, time.Now()), nil
}

// HasLiveGame reports whether any game on the view's schedule is live
// right now. The scheduler uses this to pick the refresh cadence.
func HasLiveGame(view model.TeamSeasonView) bool {
	now := time.Now()
	for _, g := range view.Schedule {
		if derive.StateOf(g, now) == derive.StateLive {
			return true
		}
	}
	return false
}
