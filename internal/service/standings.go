package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/palmetto/sandstorm/internal/cache"
	"github.com/palmetto/sandstorm/internal/derive"
	"github.com/palmetto/sandstorm/internal/espn"
	"github.com/palmetto/sandstorm/internal/model"
)

// ESPN's standings tree identifies the SEC by group id 27; the name match
// covers seasons where the id shifts.
const (
	secStandingsGroupID = "27"
	secStandingsName    = "Southeastern"
)

// StandingsService serves the ranked SEC baseball standings.
type StandingsService struct {
	client *espn.Client
	cache  *cache.RedisCache
	ttl    time.Duration
}

// NewStandingsService creates a standings service. The cache may be nil.
func NewStandingsService(client *espn.Client, rc *cache.RedisCache, ttl time.Duration) *StandingsService {
	return &StandingsService{
		client: client,
		cache:  rc,
		ttl:    ttl,
	}
}

// Standings returns the conference standings ranked by win percentage with
// wins as the tiebreak.
func (s *StandingsService) Standings(ctx context.Context) ([]model.StandingsEntry, error) {
	const key = "standings:baseball"

	if s.cache != nil {
		var cached []model.StandingsEntry
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("[standings] cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	return s.Refresh(ctx)
}

// Refresh fetches the standings upstream, re-ranks them, and stores the
// new snapshot.
func (s *StandingsService) Refresh(ctx context.Context) ([]model.StandingsEntry, error) {
	resp, err := s.client.FetchStandings(ctx, espn.SportPaths[model.SportBaseball])
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	rows := espn.FindConferenceStandings(resp, secStandingsGroupID, secStandingsName)
	ranked := derive.RankStandings(espn.ParseStandings(rows))

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, "standings:baseball", ranked, s.ttl); err != nil {
			log.Printf("[standings] cache write failed: %v", err)
		}
	}

	return ranked, nil
}
