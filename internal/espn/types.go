package espn

import "encoding/json"

// Raw ESPN response shapes. Every field is optional: the two endpoint
// families (team schedule vs scoreboard) disagree on which fields exist and
// how they are typed, so all shape guessing is confined to this package.
// Polymorphic fields are held as json.RawMessage and resolved by the scalar
// parsers in parse.go.

// ScheduleResponse is the top level of /teams/{id}/schedule.
type ScheduleResponse struct {
	Events []Event `json:"events"`
}

// ScoreboardResponse is the top level of /scoreboard.
type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

// TeamResponse is the top level of /teams/{id}.
type TeamResponse struct {
	Team *TeamInfo `json:"team"`
}

// TeamInfo is the subject team block of the team endpoint.
type TeamInfo struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	DisplayName  string       `json:"displayName"`
	Logos        []Logo       `json:"logos"`
	Record       *RecordBlock `json:"record"`
}

// RecordBlock wraps the record items list on the team endpoint.
type RecordBlock struct {
	Items []RecordItem `json:"items"`
}

// RecordItem is one record summary ("total", "vsconf", ...).
type RecordItem struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// Event is one game record on either events endpoint.
type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	Status       *Status       `json:"status"`
	Competitions []Competition `json:"competitions"`
}

// Status carries the live state of an event.
type Status struct {
	Type         *StatusType `json:"type"`
	DisplayClock string      `json:"displayClock"`
	Period       int         `json:"period"`
}

// StatusType is ESPN's status descriptor.
type StatusType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

// Competition is the first (and in practice only) competition of an event.
type Competition struct {
	Competitors           []Competitor   `json:"competitors"`
	Venue                 *Venue         `json:"venue"`
	Broadcasts            []Broadcast    `json:"broadcasts"`
	GeoBroadcasts         []GeoBroadcast `json:"geoBroadcasts"`
	Odds                  []OddsRecord   `json:"odds"`
	Notes                 []Note         `json:"notes"`
	ConferenceCompetition bool           `json:"conferenceCompetition"`
}

// Competitor is one side of a competition. Score is a bare string on the
// scoreboard endpoint and an object with value/displayValue on the schedule
// endpoint. Hits and errors appear directly on baseball scoreboard
// competitors but only inside the statistics list on the schedule.
type Competitor struct {
	HomeAway    string          `json:"homeAway"`
	Team        *CompetitorTeam `json:"team"`
	Score       json.RawMessage `json:"score"`
	CuratedRank *CuratedRank    `json:"curatedRank"`
	Records     []RecordItem    `json:"records"`
	Statistics  []Statistic     `json:"statistics"`
	Hits        json.RawMessage `json:"hits"`
	Errors      json.RawMessage `json:"errors"`
	Linescores  []Linescore     `json:"linescores"`
}

// CompetitorTeam is the nested team identity on a competitor.
type CompetitorTeam struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	Logo             string `json:"logo"`
	Logos            []Logo `json:"logos"`
}

// Logo is one logo reference.
type Logo struct {
	Href string `json:"href"`
}

// CuratedRank wraps the AP-style rank. ESPN reports 99 for unranked teams.
type CuratedRank struct {
	Current int `json:"current"`
}

// Statistic is one named stat on a competitor or standings row.
type Statistic struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	DisplayValue string   `json:"displayValue"`
	Value        *float64 `json:"value"`
}

// Linescore is one inning's runs on a summary competitor.
type Linescore struct {
	Value        *float64 `json:"value"`
	DisplayValue string   `json:"displayValue"`
}

// Venue is the competition venue.
type Venue struct {
	FullName string `json:"fullName"`
}

// Broadcast is a national broadcast descriptor.
type Broadcast struct {
	Names []string `json:"names"`
}

// GeoBroadcast is a regional broadcast descriptor.
type GeoBroadcast struct {
	Media *Media `json:"media"`
}

// Media names the broadcaster of a geo broadcast.
type Media struct {
	ShortName string `json:"shortName"`
}

// OddsRecord is one betting line on a competition.
type OddsRecord struct {
	Details   string   `json:"details"`
	OverUnder *float64 `json:"overUnder"`
}

// Note is a free-text note; tournament games are only identifiable by it.
type Note struct {
	Headline string `json:"headline"`
}

// StandingsResponse is the top level of the standings endpoint, a nested
// group tree whose leaves carry the per-conference entries.
type StandingsResponse struct {
	Children []StandingsGroup `json:"children"`
}

// StandingsGroup is one node of the standings tree.
type StandingsGroup struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Children  []StandingsGroup `json:"children"`
	Standings *StandingsBlock  `json:"standings"`
}

// StandingsBlock wraps the entries of a group.
type StandingsBlock struct {
	Entries []StandingsRow `json:"entries"`
}

// StandingsRow is one team's standings entry.
type StandingsRow struct {
	Team  *CompetitorTeam `json:"team"`
	Stats []Statistic     `json:"stats"`
}

// SummaryResponse is the top level of /summary?event=.
type SummaryResponse struct {
	Header *SummaryHeader `json:"header"`
}

// SummaryHeader carries the competitions block of a game summary.
type SummaryHeader struct {
	Competitions []Competition `json:"competitions"`
}
