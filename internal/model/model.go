package model

import (
	"strings"
	"time"
)

// Sport identifies which Gamecocks program a record came from.
type Sport string

const (
	SportMBB      Sport = "mbb"
	SportWBB      Sport = "wbb"
	SportBaseball Sport = "baseball"
)

// Team is one side of a game, normalized from ESPN's team shapes.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"display_name"`
	Logo         string `json:"logo"`
	Record       string `json:"record,omitempty"`
	Rank         *int   `json:"rank,omitempty"`
}

// StatusType mirrors ESPN's status type descriptor.
type StatusType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

// Status carries the live status of a game.
type Status struct {
	Type         StatusType `json:"type"`
	DisplayClock string     `json:"display_clock,omitempty"`
	Period       int        `json:"period,omitempty"`
}

// Odds holds the betting line attached to a game, when ESPN supplies one.
type Odds struct {
	Spread    string   `json:"spread,omitempty"`
	OverUnder *float64 `json:"over_under,omitempty"`
}

// Game is the normalized event record. Score pointers are nil whenever the
// upstream value was missing or unparseable.
type Game struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Name         string    `json:"name"`
	Status       Status    `json:"status"`
	HomeTeam     Team      `json:"home_team"`
	AwayTeam     Team      `json:"away_team"`
	HomeScore    *int      `json:"home_score,omitempty"`
	AwayScore    *int      `json:"away_score,omitempty"`
	Venue        string    `json:"venue,omitempty"`
	Broadcast    string    `json:"broadcast,omitempty"`
	IsConference bool      `json:"is_conference"`
	Odds         *Odds     `json:"odds,omitempty"`

	// Baseball box-score extras; nil for basketball.
	HomeHits   *int `json:"home_hits,omitempty"`
	AwayHits   *int `json:"away_hits,omitempty"`
	HomeErrors *int `json:"home_errors,omitempty"`
	AwayErrors *int `json:"away_errors,omitempty"`

	Sport Sport `json:"sport,omitempty"`
}

// Record pairs the overall and conference record strings for a season.
type Record struct {
	Overall    string `json:"overall"`
	Conference string `json:"conference"`
}

// TeamSeasonView is the season-level snapshot rebuilt on every fetch cycle.
type TeamSeasonView struct {
	Team     Team   `json:"team"`
	Record   Record `json:"record"`
	NextGame *Game  `json:"next_game,omitempty"`
	LastGame *Game  `json:"last_game,omitempty"`
	Schedule []Game `json:"schedule"`
}

// SeriesOpponent is the opposing team summary attached to a series.
type SeriesOpponent struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
}

// Series is a short run of consecutive games against the same opponent,
// common on baseball schedules.
type Series struct {
	Opponent SeriesOpponent `json:"opponent"`
	Games    []Game         `json:"games"`
	IsHome   bool           `json:"is_home"`
}

// StandingsEntry is one row of the conference standings table.
type StandingsEntry struct {
	TeamID          string `json:"team_id"`
	TeamName        string `json:"team_name"`
	Abbreviation    string `json:"abbreviation"`
	Logo            string `json:"logo"`
	Overall         string `json:"overall"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	WinPercent      string `json:"win_percent"`
	Streak          string `json:"streak"`
	RunDifferential string `json:"run_differential"`
}

// LinescoreEntry is one inning of a baseball linescore.
type LinescoreEntry struct {
	Inning   int    `json:"inning"`
	HomeRuns string `json:"home_runs"`
	AwayRuns string `json:"away_runs"`
}

// GameSummary is the detailed box score for a single baseball game.
type GameSummary struct {
	Linescore  []LinescoreEntry `json:"linescore"`
	HomeHits   int              `json:"home_hits"`
	AwayHits   int              `json:"away_hits"`
	HomeErrors int              `json:"home_errors"`
	AwayErrors int              `json:"away_errors"`
}

// Subject identifies the single team this service tracks. ESPN is not
// consistent about abbreviations across endpoints, so the display-name
// substring acts as a second identity check.
type Subject struct {
	Abbreviation string
	DisplayName  string
}

// Matches reports whether the given team is the subject team.
func (s Subject) Matches(t Team) bool {
	if strings.EqualFold(t.Abbreviation, s.Abbreviation) {
		return true
	}
	return s.DisplayName != "" && strings.Contains(t.DisplayName, s.DisplayName)
}

// InGame reports whether the subject team plays in the given game.
func (s Subject) InGame(g Game) bool {
	return s.Matches(g.HomeTeam) || s.Matches(g.AwayTeam)
}

// IsHome reports whether the subject team is the home side.
func (s Subject) IsHome(g Game) bool {
	return s.Matches(g.HomeTeam)
}

// Opponent returns the non-subject side of the game.
func (s Subject) Opponent(g Game) Team {
	if s.IsHome(g) {
		return g.AwayTeam
	}
	return g.HomeTeam
}

// Scores returns the subject team's score and the opponent's score.
// Either pointer is nil when the provider did not supply a usable value.
func (s Subject) Scores(g Game) (own, opp *int) {
	if s.IsHome(g) {
		return g.HomeScore, g.AwayScore
	}
	return g.AwayScore, g.HomeScore
}
