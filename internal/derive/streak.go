package derive

import (
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

// Outcome is a single game result from the subject team's perspective.
// Ties are not modeled; none of the tracked sports end in one.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
)

// Streak is the run of consecutive same-outcome results ending at the
// most recent completed game.
type Streak struct {
	Outcome Outcome `json:"outcome"`
	Count   int     `json:"count"`
}

// GameResult is one scored game from the subject team's perspective.
type GameResult struct {
	GameID        string  `json:"game_id"`
	Opponent      string  `json:"opponent"`
	Won           bool    `json:"won"`
	SubjectScore  int     `json:"subject_score"`
	OpponentScore int     `json:"opponent_score"`
	IsConference  bool    `json:"is_conference"`
	Outcome       Outcome `json:"outcome"`
}

// Result scores one game for the subject team. Nil when either score is
// missing.
func Result(g model.Game, subject model.Subject) *GameResult {
	own, opp := subject.Scores(g)
	if own == nil || opp == nil {
		return nil
	}

	opponent := subject.Opponent(g)
	name := opponent.Abbreviation
	if name == "" {
		name = opponent.Name
	}

	won := *own > *opp
	outcome := OutcomeLoss
	if won {
		outcome = OutcomeWin
	}

	return &GameResult{
		GameID:        g.ID,
		Opponent:      name,
		Won:           won,
		SubjectScore:  *own,
		OpponentScore: *opp,
		IsConference:  g.IsConference,
		Outcome:       outcome,
	}
}

// CompletedResults filters a schedule down to scored final games in
// chronological order.
func CompletedResults(games []model.Game, subject model.Subject, now time.Time) []GameResult {
	var results []GameResult
	for _, g := range games {
		if StateOf(g, now) != StateFinal {
			continue
		}
		if r := Result(g, subject); r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// RecentResults returns the most recent limit completed results. With
// newestFirst false the window stays in chronological order (for the
// streak chart); with newestFirst true it is reversed (for list display).
func RecentResults(games []model.Game, subject model.Subject, limit int, newestFirst bool, now time.Time) []GameResult {
	results := CompletedResults(games, subject, now)
	if limit > 0 && len(results) > limit {
		results = results[len(results)-limit:]
	}

	if newestFirst {
		reversed := make([]GameResult, len(results))
		for i, r := range results {
			reversed[len(results)-1-i] = r
		}
		return reversed
	}
	return results
}

// CurrentStreak walks backward from the most recent completed result,
// counting consecutive games with the same outcome. An empty schedule
// yields a zero-length streak.
func CurrentStreak(games []model.Game, subject model.Subject, now time.Time) Streak {
	results := CompletedResults(games, subject, now)
	if len(results) == 0 {
		return Streak{Outcome: OutcomeWin, Count: 0}
	}

	latest := results[len(results)-1]
	count := 0
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Won != latest.Won {
			break
		}
		count++
	}

	return Streak{Outcome: latest.Outcome, Count: count}
}
