package espn

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/palmetto/sandstorm/internal/conference"
	"github.com/palmetto/sandstorm/internal/model"
)

var testClassifier = conference.NewClassifier(conference.SEC())

const scheduleEventJSON = `{
	"id": "401520000",
	"date": "2026-04-10T23:00Z",
	"name": "LSU Tigers at South Carolina Gamecocks",
	"status": {
		"type": {"id": "3", "name": "STATUS_FINAL", "state": "post", "completed": true}
	},
	"competitions": [{
		"conferenceCompetition": true,
		"venue": {"fullName": "Founders Park"},
		"broadcasts": [{"names": ["SECN"]}],
		"odds": [{"details": "SC -3.5", "overUnder": 12.5}],
		"competitors": [
			{
				"homeAway": "home",
				"team": {
					"id": "2579",
					"name": "Gamecocks",
					"abbreviation": "SC",
					"displayName": "South Carolina Gamecocks",
					"logos": [{"href": "https://example.com/sc.png"}]
				},
				"score": {"value": 7, "displayValue": "7"},
				"curatedRank": {"current": 12},
				"records": [{"type": "total", "summary": "28-8"}],
				"statistics": [
					{"name": "hits", "displayValue": "11"},
					{"name": "errors", "displayValue": "1"}
				]
			},
			{
				"homeAway": "away",
				"team": {
					"id": "99",
					"shortDisplayName": "LSU",
					"abbreviation": "LSU",
					"displayName": "LSU Tigers",
					"logo": "https://example.com/lsu.png"
				},
				"score": "4",
				"curatedRank": {"current": 99},
				"statistics": [
					{"name": "hits", "displayValue": "8"},
					{"name": "errors", "displayValue": "2"}
				]
			}
		]
	}]
}`

func TestParseGameSchedule(t *testing.T) {
	var event Event
	if err := json.Unmarshal([]byte(scheduleEventJSON), &event); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	game := ParseGame(event, model.SportBaseball, testClassifier)

	if game.ID != "401520000" {
		t.Errorf("id = %q", game.ID)
	}
	want := time.Date(2026, 4, 10, 23, 0, 0, 0, time.UTC)
	if !game.Date.Equal(want) {
		t.Errorf("date = %v, want %v", game.Date, want)
	}
	if game.Status.Type.State != "post" || !game.Status.Type.Completed {
		t.Errorf("status = %+v", game.Status)
	}
	if game.HomeTeam.Abbreviation != "SC" || game.HomeTeam.Name != "Gamecocks" {
		t.Errorf("home team = %+v", game.HomeTeam)
	}
	if game.HomeTeam.Logo != "https://example.com/sc.png" {
		t.Errorf("home logo not taken from logos list: %q", game.HomeTeam.Logo)
	}
	if game.HomeTeam.Record != "28-8" {
		t.Errorf("home record = %q", game.HomeTeam.Record)
	}
	if game.HomeTeam.Rank == nil || *game.HomeTeam.Rank != 12 {
		t.Errorf("home rank = %v", game.HomeTeam.Rank)
	}
	if game.AwayTeam.Rank != nil {
		t.Errorf("rank 99 should be discarded, got %d", *game.AwayTeam.Rank)
	}
	if game.AwayTeam.Name != "LSU" {
		t.Errorf("away name should fall back to shortDisplayName, got %q", game.AwayTeam.Name)
	}
	if game.HomeScore == nil || *game.HomeScore != 7 {
		t.Errorf("home score = %v", game.HomeScore)
	}
	if game.AwayScore == nil || *game.AwayScore != 4 {
		t.Errorf("away score (string form) = %v", game.AwayScore)
	}
	if game.Venue != "Founders Park" {
		t.Errorf("venue = %q", game.Venue)
	}
	if game.Broadcast != "SECN" {
		t.Errorf("broadcast = %q", game.Broadcast)
	}
	if game.Odds == nil || game.Odds.Spread != "SC -3.5" {
		t.Errorf("odds = %+v", game.Odds)
	}
	if !game.IsConference {
		t.Error("SC vs LSU should classify as a conference game")
	}
	if game.HomeHits == nil || *game.HomeHits != 11 {
		t.Errorf("home hits from statistics = %v", game.HomeHits)
	}
	if game.AwayErrors == nil || *game.AwayErrors != 2 {
		t.Errorf("away errors from statistics = %v", game.AwayErrors)
	}
}

func TestParseGameScoreboardFields(t *testing.T) {
	raw := `{
		"id": "401520001",
		"date": "2026-04-11T00:00:00Z",
		"competitions": [{
			"geoBroadcasts": [{"media": {"shortName": "ESPN+"}}],
			"competitors": [
				{
					"homeAway": "home",
					"team": {"abbreviation": "SC"},
					"score": "5",
					"hits": 10,
					"errors": "0"
				},
				{
					"homeAway": "away",
					"team": {"abbreviation": "TENN"},
					"score": "3",
					"hits": "6",
					"errors": 1
				}
			]
		}]
	}`
	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	game := ParseGame(event, model.SportBaseball, testClassifier)

	if game.Broadcast != "ESPN+" {
		t.Errorf("geo broadcast fallback = %q", game.Broadcast)
	}
	if game.HomeHits == nil || *game.HomeHits != 10 {
		t.Errorf("home hits from direct field = %v", game.HomeHits)
	}
	if game.AwayHits == nil || *game.AwayHits != 6 {
		t.Errorf("away hits (string form) = %v", game.AwayHits)
	}
	if game.HomeErrors == nil || *game.HomeErrors != 0 {
		t.Errorf("home errors = %v", game.HomeErrors)
	}
	if !game.IsConference {
		t.Error("SC vs TENN should classify as a conference game")
	}
}

func TestParseGameTournamentNote(t *testing.T) {
	raw := `{
		"id": "401520002",
		"competitions": [{
			"conferenceCompetition": true,
			"notes": [{"headline": "SEC Baseball Tournament"}],
			"competitors": [
				{"homeAway": "home", "team": {"abbreviation": "SC"}},
				{"homeAway": "away", "team": {"abbreviation": "FLA"}}
			]
		}]
	}`
	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	game := ParseGame(event, model.SportBaseball, testClassifier)
	if game.IsConference {
		t.Error("tournament note should exclude the game from conference play")
	}
}

func TestParseGameEmptyEvent(t *testing.T) {
	game := ParseGame(Event{ID: "401520003"}, model.SportMBB, testClassifier)

	if game.ID != "401520003" {
		t.Errorf("id = %q", game.ID)
	}
	if !game.Date.IsZero() {
		t.Errorf("date = %v, want zero", game.Date)
	}
	if game.HomeScore != nil || game.AwayScore != nil {
		t.Error("scores should be absent")
	}
	if game.HomeTeam.Abbreviation != "" || game.Odds != nil {
		t.Errorf("expected zeroed fields, got team=%+v odds=%+v", game.HomeTeam, game.Odds)
	}
	if game.IsConference {
		t.Error("empty event should not classify as conference")
	}
}

func TestParseEventDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-04-10T23:00:00Z", time.Date(2026, 4, 10, 23, 0, 0, 0, time.UTC)},
		{"2026-04-10T23:00Z", time.Date(2026, 4, 10, 23, 0, 0, 0, time.UTC)},
		{"not-a-date", time.Time{}},
		{"", time.Time{}},
	}
	for _, tc := range cases {
		if got := parseEventDate(tc.in); !got.Equal(tc.want) {
			t.Errorf("parseEventDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTeamRecord(t *testing.T) {
	raw := `{
		"team": {
			"id": "193",
			"name": "Gamecocks",
			"abbreviation": "SC",
			"displayName": "South Carolina Gamecocks",
			"logos": [{"href": "https://example.com/sc.png"}],
			"record": {
				"items": [
					{"type": "total", "summary": "30-10"},
					{"type": "home", "summary": "18-4"},
					{"type": "vsconf", "summary": "12-6"}
				]
			}
		}
	}`
	var resp TeamResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	team, record := ParseTeamRecord(resp)
	if team.ID != "193" || team.Abbreviation != "SC" {
		t.Errorf("team = %+v", team)
	}
	if team.Logo != "https://example.com/sc.png" {
		t.Errorf("logo = %q", team.Logo)
	}
	if record.Overall != "30-10" {
		t.Errorf("overall = %q", record.Overall)
	}
	if record.Conference != "12-6" {
		t.Errorf("conference = %q", record.Conference)
	}
}

func TestParseTeamRecordDefaults(t *testing.T) {
	team, record := ParseTeamRecord(TeamResponse{})
	if team.ID != "" {
		t.Errorf("team = %+v", team)
	}
	if record.Overall != "0-0" {
		t.Errorf("overall default = %q", record.Overall)
	}
	if record.Conference != "" {
		t.Errorf("conference should be empty, got %q", record.Conference)
	}
}
