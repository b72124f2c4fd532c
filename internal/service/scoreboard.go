package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/palmetto/sandstorm/internal/cache"
	"github.com/palmetto/sandstorm/internal/conference"
	"github.com/palmetto/sandstorm/internal/espn"
	"github.com/palmetto/sandstorm/internal/model"
)

// ScoreboardService serves the league-wide live scoreboard and per-game
// summaries.
type ScoreboardService struct {
	client     *espn.Client
	cache      *cache.RedisCache
	classifier conference.Classifier
	subject    model.Subject
	ttl        time.Duration
}

// NewScoreboardService creates a scoreboard service. The cache may be nil.
func NewScoreboardService(client *espn.Client, rc *cache.RedisCache, classifier conference.Classifier, subject model.Subject, ttl time.Duration) *ScoreboardService {
	return &ScoreboardService{
		client:     client,
		cache:      rc,
		classifier: classifier,
		subject:    subject,
		ttl:        ttl,
	}
}

// Scoreboard returns today's games for a sport. With subjectOnly set, only
// games involving the tracked team are returned.
func (s *ScoreboardService) Scoreboard(ctx context.Context, sport model.Sport, subjectOnly bool) ([]model.Game, error) {
	sportPath, ok := espn.SportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("unknown sport %q", sport)
	}

	key := fmt.Sprintf("scoreboard:%s", sport)
	var games []model.Game

	hit := false
	if s.cache != nil {
		var err error
		hit, err = s.cache.GetJSON(ctx, key, &games)
		if err != nil {
			log.Printf("[scoreboard] cache read failed for %s: %v", key, err)
			hit = false
		}
	}

	if !hit {
		resp, err := s.client.FetchScoreboard(ctx, sportPath)
		if err != nil {
			return nil, fmt.Errorf("fetching scoreboard: %w", err)
		}
		games = espn.ParseEvents(resp.Events, sport, s.classifier)

		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, games, s.ttl); err != nil {
				log.Printf("[scoreboard] cache write failed for %s: %v", key, err)
			}
		}
	}

	if !subjectOnly {
		return games, nil
	}

	subjectGames := make([]model.Game, 0, 1)
	for _, g := range games {
		if s.subject.InGame(g) {
			subjectGames = append(subjectGames, g)
		}
	}
	return subjectGames, nil
}

// GameSummary returns the linescore and box totals for an event.
func (s *ScoreboardService) GameSummary(ctx context.Context, sport model.Sport, eventID string) (model.GameSummary, error) {
	sportPath, ok := espn.SportPaths[sport]
	if !ok {
		return model.GameSummary{}, fmt.Errorf("unknown sport %q", sport)
	}

	resp, err := s.client.FetchSummary(ctx, sportPath, eventID)
	if err != nil {
		return model.GameSummary{}, fmt.Errorf("fetching summary: %w", err)
	}

	return espn.ParseGameSummary(resp), nil
}
