package espn

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Scalar parsers. ESPN returns the same conceptual field in different
// shapes depending on the endpoint: the schedule endpoint nests scores in
// an object with value/displayValue, the scoreboard endpoint sends a bare
// string. Absent or unparseable input always degrades to nil, never an
// error, so downstream logic stays shape-agnostic.

// ParseScore extracts an integer score from a raw competitor score field.
func ParseScore(raw json.RawMessage) *int {
	if isNull(raw) {
		return nil
	}

	if raw[0] == '{' {
		var obj struct {
			Value        *float64 `json:"value"`
			DisplayValue string   `json:"displayValue"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		if obj.Value != nil {
			v := int(*obj.Value)
			return &v
		}
		return parseIntString(obj.DisplayValue)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseIntString(s)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		v := int(f)
		return &v
	}

	return nil
}

// ParseStatistic finds a named statistic on a competitor's statistics list
// by exact name match and extracts its integer value.
func ParseStatistic(stats []Statistic, name string) *int {
	for _, stat := range stats {
		if stat.Name != name {
			continue
		}
		if stat.DisplayValue != "" {
			return parseIntString(stat.DisplayValue)
		}
		if stat.Value != nil {
			v := int(*stat.Value)
			return &v
		}
		return nil
	}
	return nil
}

// NormalizeRank keeps a curated rank only when it is a real top-25
// ranking. ESPN uses 99 as an unranked sentinel.
func NormalizeRank(rank int) *int {
	if rank < 1 || rank > 25 {
		return nil
	}
	return &rank
}

// parseIntString parses an integer out of a string, tolerating the float
// renderings ("12.0") ESPN sometimes emits. Unparseable input yields nil.
func parseIntString(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

// parseRawInt handles fields like competitor.hits that arrive as either a
// JSON number or a string.
func parseRawInt(raw json.RawMessage) *int {
	if isNull(raw) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		v := int(f)
		return &v
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseIntString(s)
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
