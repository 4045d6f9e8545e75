package controller

import (
	"time"

	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/tasks"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// Key is a navigation key forwarded by the presentation layer.
type Key string

const (
	KeyDown      Key = "ArrowDown"
	KeyUp        Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyBackspace Key = "Backspace"
)

// Event is the closed set of inputs the reducer understands.
type Event interface{ event() }

// InputChanged carries the full text of the input after a keystroke.
type InputChanged struct{ Text string }

// KeyPressed is a navigation key press.
type KeyPressed struct{ Key Key }

// Submitted is the search button or an equivalent direct submit.
type Submitted struct{}

// Selected is a click on the combined list row at Index.
type Selected struct{ Index int }

// Focused and Blurred track input focus.
type Focused struct{}
type Blurred struct{}

// ResetPressed is the clear-input button.
type ResetPressed struct{}

// InputClicked is a click inside the input box.
type InputClicked struct{}

// HistoryClearRequested clears history outside of list navigation.
type HistoryClearRequested struct{}

// Started is dispatched once with the persisted history and last place.
type Started struct {
	History   []history.Entry
	LastPlace string
}

// RefreshRequested re-fetches the current snapshot's place in the background.
type RefreshRequested struct{}

// TaskFired is a scheduled task coming due.
type TaskFired struct {
	Purpose tasks.Purpose
	Seq     uint64
}

// SuggestionsLoaded is the outcome of a place lookup.
type SuggestionsLoaded struct {
	Seq    uint64
	Places []string
	Err    error
}

// WeatherLoaded is the outcome of a weather fetch.
type WeatherLoaded struct {
	Seq        uint64
	Place      string
	Background bool
	Snapshot   weather.Snapshot
	Err        error
	At         time.Time
}

func (InputChanged) event()          {}
func (KeyPressed) event()            {}
func (Submitted) event()             {}
func (Selected) event()              {}
func (Focused) event()               {}
func (Blurred) event()               {}
func (ResetPressed) event()          {}
func (InputClicked) event()          {}
func (HistoryClearRequested) event() {}
func (Started) event()               {}
func (RefreshRequested) event()      {}
func (TaskFired) event()             {}
func (SuggestionsLoaded) event()     {}
func (WeatherLoaded) event()         {}

// Effect is work the runtime must perform after a transition.
type Effect interface{ effect() }

// ScheduleTask runs TaskFired{Purpose, Seq} after Delay.
type ScheduleTask struct {
	Purpose tasks.Purpose
	Delay   time.Duration
	Seq     uint64
}

// CancelTask drops the pending task of Purpose.
type CancelTask struct{ Purpose tasks.Purpose }

// LookupPlaces asks the place provider for suggestions.
type LookupPlaces struct {
	Text  string
	Limit int
	Seq   uint64
}

// FetchWeather asks the weather provider for a snapshot.
type FetchWeather struct {
	Place      string
	Seq        uint64
	Background bool
}

// SaveHistory persists the full history list.
type SaveHistory struct{ Entries []history.Entry }

// ClearHistory removes the persisted history.
type ClearHistory struct{}

// SaveLastPlace persists the last successfully queried place.
type SaveLastPlace struct{ Place string }

func (ScheduleTask) effect()  {}
func (CancelTask) effect()    {}
func (LookupPlaces) effect()  {}
func (FetchWeather) effect()  {}
func (SaveHistory) effect()   {}
func (ClearHistory) effect()  {}
func (SaveLastPlace) effect() {}
