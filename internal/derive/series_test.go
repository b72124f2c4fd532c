package derive

import (
	"testing"

	"github.com/palmetto/sandstorm/internal/model"
)

func TestGroupSeriesDayWindowSplit(t *testing.T) {
	// Three games against the same opponent on days 0, 2, and 5: day 5 is
	// more than 4 days after the series opener, so it starts a new series.
	games := []model.Game{
		finalGame("1", day(0), "LSU", 5, 3, true),
		finalGame("2", day(2), "LSU", 2, 4, true),
		finalGame("3", day(5), "LSU", 7, 1, true),
	}

	series := GroupSeries(games, testSubject)

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if len(series[0].Games) != 2 || len(series[1].Games) != 1 {
		t.Fatalf("expected sizes 2 and 1, got %d and %d", len(series[0].Games), len(series[1].Games))
	}
}

func TestGroupSeriesOpponentChangeStartsNewSeries(t *testing.T) {
	games := []model.Game{
		finalGame("1", day(0), "LSU", 5, 3, true),
		finalGame("2", day(1), "FLA", 2, 4, true),
		finalGame("3", day(2), "LSU", 7, 1, true),
	}

	series := GroupSeries(games, testSubject)

	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}
}

func TestGroupSeriesCapsAtFourGames(t *testing.T) {
	games := []model.Game{
		finalGame("1", day(0), "LSU", 1, 0, true),
		finalGame("2", day(1), "LSU", 2, 0, true),
		finalGame("3", day(2), "LSU", 3, 0, true),
		finalGame("4", day(3), "LSU", 4, 0, true),
		finalGame("5", day(4), "LSU", 5, 0, true),
	}

	series := GroupSeries(games, testSubject)

	if len(series) != 2 {
		t.Fatalf("expected overflow into 2 series, got %d", len(series))
	}
	if len(series[0].Games) != 4 {
		t.Fatalf("expected first series capped at 4, got %d", len(series[0].Games))
	}
}

func TestGroupSeriesCapturesOpponentAndHomeSide(t *testing.T) {
	games := []model.Game{
		finalGame("1", day(0), "LSU", 5, 3, true),
	}

	series := GroupSeries(games, testSubject)

	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	if series[0].Opponent.Abbreviation != "LSU" {
		t.Fatalf("unexpected opponent %+v", series[0].Opponent)
	}
	if !series[0].IsHome {
		t.Fatal("expected home series")
	}
}

func TestSelectSeriesFiltersSingletonsAndCaps(t *testing.T) {
	series := []model.Series{
		{Opponent: model.SeriesOpponent{Abbreviation: "UGA"}, Games: []model.Game{
			finalGame("1", day(-12), "UGA", 3, 1, true),
		}},
		{Opponent: model.SeriesOpponent{Abbreviation: "LSU"}, Games: []model.Game{
			finalGame("2", day(-9), "LSU", 5, 3, true),
			finalGame("3", day(-8), "LSU", 2, 4, true),
		}},
		{Opponent: model.SeriesOpponent{Abbreviation: "FLA"}, Games: []model.Game{
			finalGame("4", day(-2), "FLA", 1, 0, true),
			upcomingGame("5", day(0), "FLA"),
		}},
		{Opponent: model.SeriesOpponent{Abbreviation: "TENN"}, Games: []model.Game{
			upcomingGame("6", day(3), "TENN"),
			upcomingGame("7", day(4), "TENN"),
		}},
		{Opponent: model.SeriesOpponent{Abbreviation: "ARK"}, Games: []model.Game{
			upcomingGame("8", day(7), "ARK"),
			upcomingGame("9", day(8), "ARK"),
		}},
	}

	selected := SelectSeries(series, testNow)

	if len(selected) != 3 {
		t.Fatalf("expected 3 series, got %d", len(selected))
	}
	// Completed series leads, then the first two series with pending games.
	if selected[0].Opponent.Abbreviation != "LSU" {
		t.Fatalf("expected completed LSU series first, got %s", selected[0].Opponent.Abbreviation)
	}
	if selected[1].Opponent.Abbreviation != "FLA" || selected[2].Opponent.Abbreviation != "TENN" {
		t.Fatalf("unexpected active series order: %s, %s", selected[1].Opponent.Abbreviation, selected[2].Opponent.Abbreviation)
	}
}

func TestSelectSeriesMostRecentCompletedWins(t *testing.T) {
	series := []model.Series{
		{Opponent: model.SeriesOpponent{Abbreviation: "UGA"}, Games: []model.Game{
			finalGame("1", day(-20), "UGA", 3, 1, true),
			finalGame("2", day(-19), "UGA", 4, 2, true),
		}},
		{Opponent: model.SeriesOpponent{Abbreviation: "LSU"}, Games: []model.Game{
			finalGame("3", day(-9), "LSU", 5, 3, true),
			finalGame("4", day(-8), "LSU", 2, 4, true),
		}},
	}

	selected := SelectSeries(series, testNow)

	if len(selected) != 1 {
		t.Fatalf("expected only the latest completed series, got %d", len(selected))
	}
	if selected[0].Opponent.Abbreviation != "LSU" {
		t.Fatalf("expected LSU, got %s", selected[0].Opponent.Abbreviation)
	}
}

func TestSelectSeriesEmptyInput(t *testing.T) {
	if got := SelectSeries(nil, testNow); len(got) != 0 {
		t.Fatalf("expected no series, got %d", len(got))
	}
}

func TestSeriesRecord(t *testing.T) {
	s := model.Series{Games: []model.Game{
		finalGame("1", day(-3), "LSU", 5, 3, true),
		finalGame("2", day(-2), "LSU", 2, 4, true),
		finalGame("3", day(-1), "LSU", 6, 0, true),
		upcomingGame("4", day(1), "LSU"),
	}}

	wins, losses := SeriesRecord(s, testSubject, testNow)

	if wins != 2 || losses != 1 {
		t.Fatalf("expected 2-1, got %d-%d", wins, losses)
	}
}
