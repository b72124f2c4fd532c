package derive

import (
	"fmt"
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

var testSubject = model.Subject{Abbreviation: "SC", DisplayName: "South Carolina"}

var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func intp(v int) *int { return &v }

// finalGame builds a completed home game for the subject team.
func finalGame(id string, date time.Time, opponent string, ownScore, oppScore int, conf bool) model.Game {
	return model.Game{
		ID:   id,
		Date: date,
		Name: fmt.Sprintf("%s vs South Carolina", opponent),
		Status: model.Status{
			Type: model.StatusType{State: "post", Completed: true},
		},
		HomeTeam:     model.Team{Abbreviation: "SC", DisplayName: "South Carolina Gamecocks"},
		AwayTeam:     model.Team{Abbreviation: opponent, DisplayName: opponent, Name: opponent},
		HomeScore:    intp(ownScore),
		AwayScore:    intp(oppScore),
		IsConference: conf,
	}
}

// upcomingGame builds a scheduled home game for the subject team.
func upcomingGame(id string, date time.Time, opponent string) model.Game {
	return model.Game{
		ID:   id,
		Date: date,
		Status: model.Status{
			Type: model.StatusType{State: "pre"},
		},
		HomeTeam: model.Team{Abbreviation: "SC", DisplayName: "South Carolina Gamecocks"},
		AwayTeam: model.Team{Abbreviation: opponent, DisplayName: opponent, Name: opponent},
	}
}

// liveGame builds an in-progress home game for the subject team.
func liveGame(id string, date time.Time, opponent string) model.Game {
	return model.Game{
		ID:   id,
		Date: date,
		Status: model.Status{
			Type: model.StatusType{State: "in"},
		},
		HomeTeam: model.Team{Abbreviation: "SC", DisplayName: "South Carolina Gamecocks"},
		AwayTeam: model.Team{Abbreviation: opponent, DisplayName: opponent, Name: opponent},
	}
}
