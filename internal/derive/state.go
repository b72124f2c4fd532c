// Package derive computes presentation-ready views from normalized games:
// game state, season aggregates, series grouping, streaks, and standings
// order. Everything here is pure; callers pass the clock in.
package derive

import (
	"fmt"
	"strings"
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

// State is the derived game state, re-evaluated on every fetch.
type State string

const (
	StateUpcoming State = "upcoming"
	StateLive     State = "live"
	StateFinal    State = "final"
)

// StateOf classifies a game from its upstream status state. When the
// status is missing or unrecognized, the scheduled time decides between
// final and upcoming; the fallback never yields live.
func StateOf(g model.Game, now time.Time) State {
	switch g.Status.Type.State {
	case "in":
		return StateLive
	case "post":
		return StateFinal
	case "pre":
		return StateUpcoming
	}

	if g.Date.Before(now) {
		return StateFinal
	}
	return StateUpcoming
}

// BaseballStatusLine renders the inning display for a live baseball game.
// ESPN's displayClock often already reads "Top 5th" or "Bot 5th"; when it
// does not, the period number gets an ordinal suffix.
func BaseballStatusLine(g model.Game) string {
	period := g.Status.Period
	if period == 0 {
		return ""
	}

	if clock := g.Status.DisplayClock; clock != "" {
		lower := strings.ToLower(clock)
		if strings.Contains(lower, "top") || strings.Contains(lower, "bot") ||
			strings.Contains(lower, "mid") || strings.Contains(lower, "end") {
			return clock
		}
	}

	return fmt.Sprintf("%d%s", period, ordinalSuffix(period))
}

func ordinalSuffix(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
