package conference

import "strings"

// Membership is a fixed allow-list of conference member abbreviations.
// ESPN uses different abbreviations for the same school across endpoints,
// so the list carries every variant we have seen. Reviewed each season.
type Membership struct {
	name  string
	teams map[string]struct{}
}

// NewMembership builds a membership set from the given abbreviations.
func NewMembership(name string, abbreviations []string) Membership {
	teams := make(map[string]struct{}, len(abbreviations))
	for _, abbr := range abbreviations {
		teams[strings.ToUpper(abbr)] = struct{}{}
	}
	return Membership{name: name, teams: teams}
}

// Name returns the conference name.
func (m Membership) Name() string {
	return m.name
}

// Contains reports whether the abbreviation belongs to the conference,
// case-insensitively.
func (m Membership) Contains(abbreviation string) bool {
	if abbreviation == "" {
		return false
	}
	_, ok := m.teams[strings.ToUpper(abbreviation)]
	return ok
}

// SEC returns the 2025-26 SEC membership, including the alternative
// abbreviations ESPN uses on the scoreboard endpoint (MIZZ for MIZ,
// OKLA for OU, TA&M for TAMU, BAMA for ALA).
func SEC() Membership {
	return NewMembership("SEC", []string{
		"ALA", "ARK", "AUB", "FLA", "UGA", "UK", "LSU", "MISS", "MSST",
		"MIZ", "SC", "TENN", "TAMU", "VAN", "OU", "TEX",
		"MIZZ", "OKLA", "TA&M", "BAMA",
	})
}

// Neutral-site events between conference members do not count as
// conference play. ESPN only surfaces this through the free-text note.
var tournamentKeywords = []string{
	"championship",
	"tournament",
	"challenge",
	"classic",
	"invitational",
}

// Classifier decides whether a game counts toward the conference record.
type Classifier struct {
	members Membership
}

// NewClassifier builds a classifier over the given membership set.
func NewClassifier(members Membership) Classifier {
	return Classifier{members: members}
}

// IsConferenceGame reports whether a game between the two abbreviations
// counts as conference play. The upstream conferenceCompetition flag is an
// additional positive signal only: the schedule endpoint exposes it, the
// scoreboard endpoint does not, so its absence never implies non-conference.
// Tournament notes override everything.
func (c Classifier) IsConferenceGame(homeAbbr, awayAbbr, note string, flagged bool) bool {
	bothMembers := c.members.Contains(homeAbbr) && c.members.Contains(awayAbbr)
	if !bothMembers && !flagged {
		return false
	}
	return !IsTournamentNote(note)
}

// IsTournamentNote reports whether the game note marks a tournament,
// challenge, or similar neutral-site event.
func IsTournamentNote(note string) bool {
	if note == "" {
		return false
	}
	lower := strings.ToLower(note)
	for _, keyword := range tournamentKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
