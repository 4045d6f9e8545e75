// Package controller turns raw input events into suggestion lookups, list
// navigation and weather fetches. Transitions are computed by a pure reducer;
// the Controller runtime performs the resulting effects.
package controller

import (
	"time"

	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/navigator"
	"github.com/i474232898/weather-orbit/internal/tasks"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// Placeholder texts.
const (
	DefaultPlaceholder = "Enter city..."
	LoadingPlaceholder = "Fetching data..."
	ErrorPlaceholder   = "Try another city?"
)

// Banner messages.
const (
	NotFoundMessage       = "City not found"
	HistoryClearedMessage = "History cleared"
)

// Task purposes. Scheduling a task cancels the pending one of the same purpose.
const (
	TaskDebounce         tasks.Purpose = "suggestion-debounce"
	TaskPlaceholderReset tasks.Purpose = "placeholder-reset"
	TaskErrorAutoClear   tasks.Purpose = "error-auto-clear"
	TaskScroll           tasks.Purpose = "scroll-into-view"
)

// Phase is the request lifecycle phase.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseInfo    Phase = "info"
)

// Lifecycle is the active phase plus its banner message (error and info only).
type Lifecycle struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message,omitempty"`
}

// Idle, Loading, Error and Info build lifecycle values.
func Idle() Lifecycle                { return Lifecycle{Phase: PhaseIdle} }
func Loading() Lifecycle             { return Lifecycle{Phase: PhaseLoading} }
func Error(message string) Lifecycle { return Lifecycle{Phase: PhaseError, Message: message} }
func Info(message string) Lifecycle  { return Lifecycle{Phase: PhaseInfo, Message: message} }

// Settings holds the timing and sizing knobs of the reducer.
type Settings struct {
	MaxHistory      int
	SuggestionLimit int
	DebounceDelay   time.Duration
	BannerDelay     time.Duration
	ScrollDelay     time.Duration
}

// DefaultSettings returns the stock timings: 300ms debounce, 1s banners.
func DefaultSettings() Settings {
	return Settings{
		MaxHistory:      history.MaxEntries,
		SuggestionLimit: 5,
		DebounceDelay:   300 * time.Millisecond,
		BannerDelay:     time.Second,
		ScrollDelay:     50 * time.Millisecond,
	}
}

// State is everything the presentation layer observes, plus the sequence
// numbers used to discard stale timer firings and lookup results.
type State struct {
	Version     uint64
	Query       string
	Lifecycle   Lifecycle
	Placeholder string
	Suggestions []string
	History     []history.Entry
	ListVisible bool
	Cursor      int
	Snapshot    *weather.Snapshot
	ScrollSeq   uint64

	DebounceSeq    uint64
	PlaceholderSeq uint64
	AutoClearSeq   uint64
	ScrollTaskSeq  uint64
	FetchSeq       uint64
}

// NewState returns the startup state.
func NewState() State {
	return State{
		Lifecycle:   Idle(),
		Placeholder: DefaultPlaceholder,
		Cursor:      navigator.None,
	}
}

// Items is the combined list for the current suggestions and history.
func (s State) Items() []navigator.Item {
	return navigator.Build(s.Suggestions, s.History)
}
