package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

// BuildTeamSeasonView assembles the season-level snapshot for the subject
// team from its full schedule. The upstream record strings are preferred;
// the conference record is recomputed from the schedule when ESPN reports
// the degenerate "0-0" placeholder or nothing at all.
func BuildTeamSeasonView(team model.Team, upstream model.Record, schedule []model.Game, subject model.Subject, now time.Time) model.TeamSeasonView {
	sorted := make([]model.Game, len(schedule))
	copy(sorted, schedule)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var finals, upcoming, live []model.Game
	for _, g := range sorted {
		switch StateOf(g, now) {
		case StateFinal:
			finals = append(finals, g)
		case StateLive:
			live = append(live, g)
		default:
			upcoming = append(upcoming, g)
		}
	}

	view := model.TeamSeasonView{
		Team:     team,
		Schedule: sorted,
		Record: model.Record{
			Overall:    upstream.Overall,
			Conference: upstream.Conference,
		},
	}
	if view.Record.Overall == "" {
		view.Record.Overall = "0-0"
	}

	if len(live) > 0 {
		next := live[0]
		view.NextGame = &next
	} else if len(upcoming) > 0 {
		next := upcoming[0]
		view.NextGame = &next
	}

	if len(finals) > 0 {
		last := finals[len(finals)-1]
		view.LastGame = &last
	}

	if upstream.Conference == "" || upstream.Conference == "0-0" {
		if recomputed, ok := conferenceRecord(finals, subject); ok {
			view.Record.Conference = recomputed
		}
	}
	if view.Record.Conference == "" {
		view.Record.Conference = "0-0"
	}

	return view
}

// conferenceRecord tallies wins and losses over conference-flagged
// completed games. Games missing either score cannot be scored and are
// skipped. Returns ok=false when no conference game was tallied.
func conferenceRecord(finals []model.Game, subject model.Subject) (string, bool) {
	wins, losses := 0, 0
	for _, g := range finals {
		if !g.IsConference {
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

	if wins == 0 && losses == 0 {
		return "", false
	}
	return fmt.Sprintf("%d-%d", wins, losses), true
}
