package espn

import (
	"strconv"

	"github.com/palmetto/sandstorm/internal/model"
)

// ParseGameSummary extracts the inning-by-inning linescore and hit/error
// totals from a baseball game summary. Innings one side has not batted in
// yet render as "-".
func ParseGameSummary(resp SummaryResponse) model.GameSummary {
	var competition Competition
	if resp.Header != nil && len(resp.Header.Competitions) > 0 {
		competition = resp.Header.Competitions[0]
	}

	home := findCompetitor(competition.Competitors, "home")
	away := findCompetitor(competition.Competitors, "away")

	maxInnings := len(home.Linescores)
	if len(away.Linescores) > maxInnings {
		maxInnings = len(away.Linescores)
	}

	linescore := make([]model.LinescoreEntry, 0, maxInnings)
	for i := 0; i < maxInnings; i++ {
		linescore = append(linescore, model.LinescoreEntry{
			Inning:   i + 1,
			HomeRuns: linescoreValue(home.Linescores, i),
			AwayRuns: linescoreValue(away.Linescores, i),
		})
	}

	return model.GameSummary{
		Linescore:  linescore,
		HomeHits:   intOrZero(parseRawInt(home.Hits)),
		AwayHits:   intOrZero(parseRawInt(away.Hits)),
		HomeErrors: intOrZero(parseRawInt(home.Errors)),
		AwayErrors: intOrZero(parseRawInt(away.Errors)),
	}
}

func linescoreValue(linescores []Linescore, i int) string {
	if i >= len(linescores) {
		return "-"
	}
	entry := linescores[i]
	if entry.Value != nil {
		return strconv.Itoa(int(*entry.Value))
	}
	if entry.DisplayValue != "" {
		return entry.DisplayValue
	}
	return "-"
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
