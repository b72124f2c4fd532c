package derive

import (
	"sort"
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

const (
	// A series holds consecutive games against one opponent starting
	// within this many days of its first game.
	seriesDayWindow = 4
	seriesMaxGames  = 4

	displayMaxSeries = 3
)

// GroupSeries clusters a schedule into series against the same opponent.
// Lone games come back as a series of length 1; display filtering is
// SelectSeries' job.
func GroupSeries(games []model.Game, subject model.Subject) []model.Series {
	sorted := make([]model.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var series []model.Series
	for _, game := range sorted {
		opponent := subject.Opponent(game)

		if len(series) > 0 {
			current := &series[len(series)-1]
			if current.Opponent.Abbreviation == opponent.Abbreviation &&
				len(current.Games) < seriesMaxGames &&
				withinDayWindow(current.Games[0].Date, game.Date) {
				current.Games = append(current.Games, game)
				continue
			}
		}

		series = append(series, model.Series{
			Opponent: model.SeriesOpponent{
				Name:         opponent.DisplayName,
				Abbreviation: opponent.Abbreviation,
				Logo:         opponent.Logo,
			},
			Games:  []model.Game{game},
			IsHome: subject.IsHome(game),
		})
	}

	return series
}

func withinDayWindow(first, candidate time.Time) bool {
	return candidate.Sub(first) <= seriesDayWindow*24*time.Hour
}

// SelectSeries picks the series worth showing: only multi-game series
// qualify, the most recently completed one leads, and up to two series
// with a live or upcoming game follow, capped at three total.
func SelectSeries(series []model.Series, now time.Time) []model.Series {
	var multi []model.Series
	for _, s := range series {
		if len(s.Games) > 1 {
			multi = append(multi, s)
		}
	}

	var lastCompleted *model.Series
	var active []model.Series
	for i := range multi {
		s := multi[i]
		if seriesComplete(s, now) {
			lastCompleted = &multi[i]
			continue
		}
		if seriesHasActiveGame(s, now) {
			active = append(active, s)
		}
	}

	if len(active) > 2 {
		active = active[:2]
	}

	selected := make([]model.Series, 0, displayMaxSeries)
	if lastCompleted != nil {
		selected = append(selected, *lastCompleted)
	}
	for _, s := range active {
		if len(selected) == displayMaxSeries {
			break
		}
		selected = append(selected, s)
	}

	return selected
}

func seriesComplete(s model.Series, now time.Time) bool {
	for _, g := range s.Games {
		if StateOf(g, now) != StateFinal {
			return false
		}
	}
	return true
}

func seriesHasActiveGame(s model.Series, now time.Time) bool {
	for _, g := range s.Games {
		state := StateOf(g, now)
		if state == StateLive || state == StateUpcoming {
			return true
		}
	}
	return false
}

// SeriesRecord counts the subject team's wins and losses over the
// completed games of a series.
func SeriesRecord(s model.Series, subject model.Subject, now time.Time) (wins, losses int) {
	for _, g := range s.Games {
		if StateOf(g, now) != StateFinal {
			continue
		}
		own, opp := subject.Scores(g)
		if own == nil || opp == nil {
			continue
		}
		if *own > *opp {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}
