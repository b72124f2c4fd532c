package espn

import (
	"time"

	"github.com/palmetto/sandstorm/internal/conference"
	"github.com/palmetto/sandstorm/internal/model"
)

// ParseEvents normalizes a list of upstream events into games. Events that
// are missing fields still produce a game with the affected fields zeroed;
// nothing in this path fails.
func ParseEvents(events []Event, sport model.Sport, classifier conference.Classifier) []model.Game {
	games := make([]model.Game, 0, len(events))
	for _, event := range events {
		games = append(games, ParseGame(event, sport, classifier))
	}
	return games
}

// ParseGame normalizes one upstream event record into a Game. Every field
// is independently defaulted: a missing competitor, score, or note never
// aborts the mapping.
func ParseGame(event Event, sport model.Sport, classifier conference.Classifier) model.Game {
	var competition Competition
	if len(event.Competitions) > 0 {
		competition = event.Competitions[0]
	}

	home := findCompetitor(competition.Competitors, "home")
	away := findCompetitor(competition.Competitors, "away")

	game := model.Game{
		ID:        event.ID,
		Date:      parseEventDate(event.Date),
		Name:      event.Name,
		Status:    parseStatus(event.Status),
		HomeTeam:  parseTeam(home),
		AwayTeam:  parseTeam(away),
		HomeScore: ParseScore(home.Score),
		AwayScore: ParseScore(away.Score),
		Broadcast: parseBroadcast(competition),
		Sport:     sport,
	}

	if competition.Venue != nil {
		game.Venue = competition.Venue.FullName
	}

	var note string
	if len(competition.Notes) > 0 {
		note = competition.Notes[0].Headline
	}
	game.IsConference = classifier.IsConferenceGame(
		game.HomeTeam.Abbreviation,
		game.AwayTeam.Abbreviation,
		note,
		competition.ConferenceCompetition,
	)

	if len(competition.Odds) > 0 {
		odds := competition.Odds[0]
		game.Odds = &model.Odds{
			Spread:    odds.Details,
			OverUnder: odds.OverUnder,
		}
	}

	// Baseball box-score extras: the scoreboard endpoint puts hits/errors
	// directly on the competitor, the schedule endpoint only has them in
	// the statistics list.
	game.HomeHits = firstInt(parseRawInt(home.Hits), ParseStatistic(home.Statistics, "hits"))
	game.AwayHits = firstInt(parseRawInt(away.Hits), ParseStatistic(away.Statistics, "hits"))
	game.HomeErrors = firstInt(parseRawInt(home.Errors), ParseStatistic(home.Statistics, "errors"))
	game.AwayErrors = firstInt(parseRawInt(away.Errors), ParseStatistic(away.Statistics, "errors"))

	return game
}

func findCompetitor(competitors []Competitor, side string) Competitor {
	for _, c := range competitors {
		if c.HomeAway == side {
			return c
		}
	}
	return Competitor{}
}

func parseTeam(competitor Competitor) model.Team {
	team := competitor.Team
	if team == nil {
		team = &CompetitorTeam{}
	}

	name := team.Name
	if name == "" {
		name = team.ShortDisplayName
	}

	logo := team.Logo
	if logo == "" && len(team.Logos) > 0 {
		logo = team.Logos[0].Href
	}

	parsed := model.Team{
		ID:           team.ID,
		Name:         name,
		Abbreviation: team.Abbreviation,
		DisplayName:  team.DisplayName,
		Logo:         logo,
	}

	if len(competitor.Records) > 0 {
		parsed.Record = competitor.Records[0].Summary
	}
	if competitor.CuratedRank != nil {
		parsed.Rank = NormalizeRank(competitor.CuratedRank.Current)
	}

	return parsed
}

func parseStatus(status *Status) model.Status {
	if status == nil {
		return model.Status{}
	}

	parsed := model.Status{
		DisplayClock: status.DisplayClock,
		Period:       status.Period,
	}
	if status.Type != nil {
		parsed.Type = model.StatusType{
			ID:        status.Type.ID,
			Name:      status.Type.Name,
			State:     status.Type.State,
			Completed: status.Type.Completed,
		}
	}
	return parsed
}

func parseBroadcast(competition Competition) string {
	if len(competition.Broadcasts) > 0 && len(competition.Broadcasts[0].Names) > 0 {
		return competition.Broadcasts[0].Names[0]
	}
	if len(competition.GeoBroadcasts) > 0 && competition.GeoBroadcasts[0].Media != nil {
		return competition.GeoBroadcasts[0].Media.ShortName
	}
	return ""
}

func parseEventDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	// RFC3339 first, then ESPN's shortened format without seconds.
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04Z", dateStr); err == nil {
		return t
	}
	return time.Time{}
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// ParseTeamRecord extracts the subject team identity plus overall and
// conference record strings from the team endpoint. The conference record
// comes back empty when ESPN has no vsconf item; the aggregate builder
// recomputes it from the schedule in that case.
func ParseTeamRecord(resp TeamResponse) (model.Team, model.Record) {
	info := resp.Team
	if info == nil {
		info = &TeamInfo{}
	}

	team := model.Team{
		ID:           info.ID,
		Name:         info.Name,
		Abbreviation: info.Abbreviation,
		DisplayName:  info.DisplayName,
	}
	if len(info.Logos) > 0 {
		team.Logo = info.Logos[0].Href
	}

	record := model.Record{Overall: "0-0"}
	if info.Record != nil {
		if len(info.Record.Items) > 0 && info.Record.Items[0].Summary != "" {
			record.Overall = info.Record.Items[0].Summary
		}
		for _, item := range info.Record.Items {
			if item.Type == "vsconf" {
				record.Conference = item.Summary
				break
			}
		}
	}

	return team, record
}
