package derive

import (
	"sort"
	"strconv"

	"github.com/palmetto/sandstorm/internal/model"
)

// RankStandings orders standings rows by win percentage descending with
// raw win count as the tiebreak. Missing or non-numeric win percentages
// compare as zero.
func RankStandings(entries []model.StandingsEntry) []model.StandingsEntry {
	ranked := make([]model.StandingsEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		wpI := winPercent(ranked[i])
		wpJ := winPercent(ranked[j])
		if wpI != wpJ {
			return wpI > wpJ
		}
		return ranked[i].Wins > ranked[j].Wins
	})

	return ranked
}

func winPercent(e model.StandingsEntry) float64 {
	wp, err := strconv.ParseFloat(e.WinPercent, 64)
	if err != nil {
		return 0
	}
	return wp
}
