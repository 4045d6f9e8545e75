// Package navigator merges live suggestions and history into one keyboard
// navigable list.
package navigator

import (
	"github.com/i474232898/weather-orbit/internal/history"
)

// None is the cursor value when nothing is selected.
const None = -1

// Labels shown for the non-place rows.
const (
	DividerLabel = "Recent Searches"
	ClearLabel   = "Clear History"
)

// Kind tags a list row for renderers and the HTTP view.
type Kind string

const (
	KindSuggestion Kind = "suggestion"
	KindDivider    Kind = "divider"
	KindHistory    Kind = "history"
	KindClear      Kind = "clear"
)

// Item is one row of the combined list. The set of implementations is closed:
// Suggestion, Divider, HistoryItem and ClearAction.
type Item interface {
	Kind() Kind
	Label() string
	item()
}

// Suggestion is a live place-lookup result.
type Suggestion struct{ Place string }

// Divider separates suggestions from history. Selecting it does nothing.
type Divider struct{}

// HistoryItem is a remembered lookup.
type HistoryItem struct{ Entry history.Entry }

// ClearAction empties the history when chosen.
type ClearAction struct{}

func (Suggestion) Kind() Kind  { return KindSuggestion }
func (Divider) Kind() Kind     { return KindDivider }
func (HistoryItem) Kind() Kind { return KindHistory }
func (ClearAction) Kind() Kind { return KindClear }

func (s Suggestion) Label() string  { return s.Place }
func (Divider) Label() string       { return DividerLabel }
func (h HistoryItem) Label() string { return h.Entry.PlaceLabel }
func (ClearAction) Label() string   { return ClearLabel }

func (Suggestion) item()  {}
func (Divider) item()     {}
func (HistoryItem) item() {}
func (ClearAction) item() {}

// Build returns suggestions followed, when history is non-empty, by a divider,
// the history entries and a trailing clear action.
func Build(suggestions []string, entries []history.Entry) []Item {
	n := len(suggestions)
	if len(entries) > 0 {
		n += len(entries) + 2
	}
	items := make([]Item, 0, n)
	for _, s := range suggestions {
		items = append(items, Suggestion{Place: s})
	}
	if len(entries) == 0 {
		return items
	}
	items = append(items, Divider{})
	for _, e := range entries {
		items = append(items, HistoryItem{Entry: e})
	}
	return append(items, ClearAction{})
}

// At returns the item at cursor, or nil when the cursor is None or out of range.
func At(items []Item, cursor int) Item {
	if cursor < 0 || cursor >= len(items) {
		return nil
	}
	return items[cursor]
}

// Next moves the cursor down one row, wrapping to the top. From None it
// lands on the first row.
func Next(cursor, length int) int {
	if length <= 0 {
		return None
	}
	if cursor < 0 {
		return 0
	}
	return (cursor + 1) % length
}

// Prev moves the cursor up one row, wrapping to the bottom. From None it
// lands on the last row.
func Prev(cursor, length int) int {
	if length <= 0 {
		return None
	}
	if cursor < 0 {
		return length - 1
	}
	return (cursor - 1 + length) % length
}
