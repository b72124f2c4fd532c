package espn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palmetto/sandstorm/internal/model"
)

// FindConferenceStandings walks the nested standings group tree and returns
// the entries of the conference matched by id or name substring. Returns an
// empty slice when the conference is not present.
func FindConferenceStandings(resp StandingsResponse, conferenceID, nameSubstring string) []StandingsRow {
	for _, group := range resp.Children {
		for _, child := range group.Children {
			if child.ID != conferenceID && !strings.Contains(child.Name, nameSubstring) {
				continue
			}
			if child.Standings == nil {
				return nil
			}
			return child.Standings.Entries
		}
	}
	return nil
}

// ParseStandings maps raw standings rows into entries. Rows come back in
// upstream order; ranking is the derive layer's job.
func ParseStandings(rows []StandingsRow) []model.StandingsEntry {
	entries := make([]model.StandingsEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, parseStandingsRow(row))
	}
	return entries
}

func parseStandingsRow(row StandingsRow) model.StandingsEntry {
	team := row.Team
	if team == nil {
		team = &CompetitorTeam{}
	}

	name := team.DisplayName
	if name == "" {
		name = team.Name
	}

	logo := team.Logo
	if logo == "" && len(team.Logos) > 0 {
		logo = team.Logos[0].Href
	}

	return model.StandingsEntry{
		TeamID:          team.ID,
		TeamName:        name,
		Abbreviation:    team.Abbreviation,
		Logo:            logo,
		Overall:         fmt.Sprintf("%s-%s", standingStat(row.Stats, "wins"), standingStat(row.Stats, "losses")),
		Wins:            standingStatInt(row.Stats, "wins"),
		Losses:          standingStatInt(row.Stats, "losses"),
		WinPercent:      standingStat(row.Stats, "winPercent"),
		Streak:          standingStat(row.Stats, "streak"),
		RunDifferential: standingStat(row.Stats, "pointDifferential"),
	}
}

// standingStat looks a stat up by name or abbreviation, preferring the
// display value and falling back to the numeric value.
func standingStat(stats []Statistic, name string) string {
	for _, stat := range stats {
		if stat.Name != name && stat.Abbreviation != name {
			continue
		}
		if stat.DisplayValue != "" {
			return stat.DisplayValue
		}
		if stat.Value != nil {
			return strconv.FormatFloat(*stat.Value, 'f', -1, 64)
		}
		return "0"
	}
	return "0"
}

func standingStatInt(stats []Statistic, name string) int {
	for _, stat := range stats {
		if stat.Name != name && stat.Abbreviation != name {
			continue
		}
		if stat.Value != nil {
			return int(*stat.Value)
		}
		return 0
	}
	return 0
}
