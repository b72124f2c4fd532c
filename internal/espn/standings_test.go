package espn

import (
	"encoding/json"
	"testing"
)

const standingsJSON = `{
	"children": [{
		"id": "1",
		"name": "NCAA Division I",
		"children": [
			{
				"id": "4",
				"name": "Atlantic Coast Conference",
				"standings": {"entries": []}
			},
			{
				"id": "27",
				"name": "Southeastern Conference",
				"standings": {
					"entries": [
						{
							"team": {
								"id": "193",
								"displayName": "South Carolina Gamecocks",
								"abbreviation": "SC",
								"logos": [{"href": "https://example.com/sc.png"}]
							},
							"stats": [
								{"name": "wins", "displayValue": "18", "value": 18},
								{"name": "losses", "displayValue": "12", "value": 12},
								{"name": "winPercent", "displayValue": ".600", "value": 0.6},
								{"name": "streak", "displayValue": "W4"},
								{"name": "pointDifferential", "value": 37}
							]
						},
						{
							"team": {"id": "99", "name": "LSU Tigers", "abbreviation": "LSU"},
							"stats": [
								{"abbreviation": "wins", "value": 20},
								{"abbreviation": "losses", "value": 10}
							]
						}
					]
				}
			}
		]
	}]
}`

func TestFindConferenceStandings(t *testing.T) {
	var resp StandingsResponse
	if err := json.Unmarshal([]byte(standingsJSON), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	rows := FindConferenceStandings(resp, "27", "Southeastern")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Name substring alone is enough when the id does not match.
	rows = FindConferenceStandings(resp, "999", "Southeastern")
	if len(rows) != 2 {
		t.Fatalf("name substring match failed, got %d rows", len(rows))
	}

	if rows := FindConferenceStandings(resp, "999", "Big Ten"); rows != nil {
		t.Fatalf("expected nil for missing conference, got %d rows", len(rows))
	}
	if rows := FindConferenceStandings(StandingsResponse{}, "27", "Southeastern"); rows != nil {
		t.Fatalf("expected nil for empty response, got %d rows", len(rows))
	}
}

func TestParseStandings(t *testing.T) {
	var resp StandingsResponse
	if err := json.Unmarshal([]byte(standingsJSON), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	entries := ParseStandings(FindConferenceStandings(resp, "27", "Southeastern"))
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	sc := entries[0]
	if sc.TeamName != "South Carolina Gamecocks" || sc.Abbreviation != "SC" {
		t.Errorf("entry = %+v", sc)
	}
	if sc.Logo != "https://example.com/sc.png" {
		t.Errorf("logo from logos list = %q", sc.Logo)
	}
	if sc.Overall != "18-12" || sc.Wins != 18 || sc.Losses != 12 {
		t.Errorf("record = %q wins=%d losses=%d", sc.Overall, sc.Wins, sc.Losses)
	}
	if sc.WinPercent != ".600" {
		t.Errorf("winPercent = %q", sc.WinPercent)
	}
	if sc.Streak != "W4" {
		t.Errorf("streak = %q", sc.Streak)
	}
	if sc.RunDifferential != "37" {
		t.Errorf("run differential should use numeric value, got %q", sc.RunDifferential)
	}

	lsu := entries[1]
	if lsu.TeamName != "LSU Tigers" {
		t.Errorf("name should fall back to team.name, got %q", lsu.TeamName)
	}
	if lsu.Overall != "20-10" || lsu.Wins != 20 {
		t.Errorf("abbreviation-keyed stats not found: %q wins=%d", lsu.Overall, lsu.Wins)
	}
	if lsu.WinPercent != "0" || lsu.Streak != "0" {
		t.Errorf("missing stats should default to 0: pct=%q streak=%q", lsu.WinPercent, lsu.Streak)
	}
}

func TestParseStandingsEmptyRow(t *testing.T) {
	entries := ParseStandings([]StandingsRow{{}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Overall != "0-0" {
		t.Errorf("overall = %q", entries[0].Overall)
	}
}
