package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/palmetto/sandstorm/internal/model"
)

// Config is the full service configuration, loaded from the environment.
// Every knob has a default so the service runs with an empty environment.
type Config struct {
	RESTPort string `envconfig:"REST_PORT" default:"8080"`
	WSPort   string `envconfig:"WS_PORT" default:"8081"`
	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`

	ESPN    ESPN
	Subject Subject
	Refresh Refresh
}

// ESPN holds upstream endpoint configuration. The team ids differ per
// sport: basketball and baseball use different ESPN team ids for the same
// school.
type ESPN struct {
	BaseURL        string `envconfig:"ESPN_API_BASE" default:""`
	StandingsBase  string `envconfig:"ESPN_STANDINGS_BASE" default:""`
	MBBTeamID      string `envconfig:"MBB_TEAM_ID" default:"2579"`
	WBBTeamID      string `envconfig:"WBB_TEAM_ID" default:"2579"`
	BaseballTeamID string `envconfig:"BASEBALL_TEAM_ID" default:"193"`
}

// Subject identifies the tracked team.
type Subject struct {
	Abbreviation string `envconfig:"SUBJECT_ABBR" default:"SC"`
	DisplayName  string `envconfig:"SUBJECT_NAME" default:"South Carolina"`
}

// Refresh controls the polling cadence: fast while a game is live, slow
// otherwise, with standings on their own clock.
type Refresh struct {
	LiveInterval      time.Duration `envconfig:"LIVE_REFRESH_INTERVAL" default:"30s"`
	IdleInterval      time.Duration `envconfig:"IDLE_REFRESH_INTERVAL" default:"5m"`
	StandingsInterval time.Duration `envconfig:"STANDINGS_REFRESH_INTERVAL" default:"15m"`
	CacheTTL          time.Duration `envconfig:"CACHE_TTL" default:"60s"`
}

// New loads configuration from the environment.
func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// TeamID returns the ESPN team id for a sport.
func (e ESPN) TeamID(sport model.Sport) string {
	switch sport {
	case model.SportBaseball:
		return e.BaseballTeamID
	case model.SportWBB:
		return e.WBBTeamID
	default:
		return e.MBBTeamID
	}
}

// ModelSubject converts the config block into the domain identity value.
func (s Subject) ModelSubject() model.Subject {
	return model.Subject{
		Abbreviation: s.Abbreviation,
		DisplayName:  s.DisplayName,
	}
}
