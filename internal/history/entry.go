// Package history keeps the bounded, deduplicated list of recent lookups.
package history

import (
	"strings"
)

// MaxEntries is the default history bound.
const MaxEntries = 5

// Entry is one remembered lookup. PlaceLabel is the case-insensitive key.
type Entry struct {
	PlaceLabel       string   `json:"placeLabel"`
	LastTemperatureC *float64 `json:"lastTemperatureC"`
	ConditionIcon    *string  `json:"conditionIcon"`
	LastQueriedAt    string   `json:"lastQueriedAt"`
}

// SameKey reports whether two labels refer to the same place.
func SameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Upsert returns a new list with any entry matching e's key removed, e
// prepended, and the result truncated to max. The input is not modified.
func Upsert(entries []Entry, e Entry, max int) []Entry {
	if strings.TrimSpace(e.PlaceLabel) == "" {
		return entries
	}
	if max <= 0 {
		max = MaxEntries
	}

	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	for _, existing := range entries {
		if SameKey(existing.PlaceLabel, e.PlaceLabel) {
			continue
		}
		out = append(out, existing)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// Labels returns the place labels in order.
func Labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.PlaceLabel
	}
	return out
}
