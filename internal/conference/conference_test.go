package conference

import "testing"

func TestMembershipContains(t *testing.T) {
	sec := SEC()

	cases := []struct {
		abbr     string
		expected bool
	}{
		{"SC", true},
		{"sc", true},
		{"MIZ", true},
		{"MIZZ", true}, // scoreboard variant
		{"TA&M", true},
		{"BAMA", true},
		{"DUKE", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := sec.Contains(tc.abbr); got != tc.expected {
			t.Fatalf("Contains(%q) = %v, want %v", tc.abbr, got, tc.expected)
		}
	}
}

func TestIsConferenceGameBothMembers(t *testing.T) {
	c := NewClassifier(SEC())

	if !c.IsConferenceGame("SC", "UGA", "", false) {
		t.Fatal("expected two SEC members to classify as conference")
	}
	if c.IsConferenceGame("SC", "DUKE", "", false) {
		t.Fatal("expected a non-member opponent to classify as non-conference")
	}
	if c.IsConferenceGame("DUKE", "UNC", "", false) {
		t.Fatal("expected two non-members to classify as non-conference")
	}
}

func TestIsConferenceGameSymmetric(t *testing.T) {
	c := NewClassifier(SEC())

	pairs := [][2]string{{"SC", "UGA"}, {"SC", "DUKE"}, {"TEX", "OU"}}
	for _, pair := range pairs {
		a := c.IsConferenceGame(pair[0], pair[1], "", false)
		b := c.IsConferenceGame(pair[1], pair[0], "", false)
		if a != b {
			t.Fatalf("classification not symmetric for %v", pair)
		}
	}
}

func TestIsConferenceGameTournamentExclusion(t *testing.T) {
	c := NewClassifier(SEC())

	notes := []string{
		"SEC Tournament - Quarterfinals",
		"players era CHAMPIONSHIP",
		"ACC/SEC Challenge",
		"Maui Classic",
		"NIT invitational round",
	}

	for _, note := range notes {
		if c.IsConferenceGame("SC", "TEX", note, false) {
			t.Fatalf("note %q should exclude conference classification", note)
		}
	}
}

func TestIsConferenceGameFlagIsAdditionalSignal(t *testing.T) {
	c := NewClassifier(SEC())

	// The schedule endpoint's flag classifies games the membership list
	// misses; the scoreboard endpoint never sets it.
	if !c.IsConferenceGame("XYZ", "ABC", "", true) {
		t.Fatal("expected upstream flag to classify as conference")
	}

	// The flag never overrides the tournament exclusion.
	if c.IsConferenceGame("SC", "UGA", "SEC Tournament", true) {
		t.Fatal("expected tournament note to override the flag")
	}

	// Flag absent does not imply non-conference for members.
	if !c.IsConferenceGame("SC", "UGA", "", false) {
		t.Fatal("expected members to classify without the flag")
	}
}

func TestIsConferenceGameIdempotent(t *testing.T) {
	c := NewClassifier(SEC())

	first := c.IsConferenceGame("SC", "UGA", "regular season", false)
	for i := 0; i < 3; i++ {
		if c.IsConferenceGame("SC", "UGA", "regular season", false) != first {
			t.Fatal("classification changed across calls")
		}
	}
}

func TestIsTournamentNote(t *testing.T) {
	if IsTournamentNote("") {
		t.Fatal("empty note should not match")
	}
	if IsTournamentNote("Rivalry week") {
		t.Fatal("plain note should not match")
	}
	if !IsTournamentNote("Shriners Children's CLASSIC") {
		t.Fatal("expected case-insensitive keyword match")
	}
}
