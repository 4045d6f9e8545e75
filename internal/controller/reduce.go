package controller

import (
	"errors"
	"strings"

	"github.com/i474232898/weather-orbit/internal/common"
	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/navigator"
	"github.com/i474232898/weather-orbit/internal/weather"
)

const queriedAtLayout = "2006-01-02 15:04"

// reduction accumulates the next state and its effects for one event.
type reduction struct {
	cfg     Settings
	s       State
	effects []Effect
}

// Reduce applies ev to s and returns the next state with the effects to run.
// It never mutates slices reachable from s.
func (cfg Settings) Reduce(s State, ev Event) (State, []Effect) {
	r := &reduction{cfg: cfg, s: s}

	switch ev := ev.(type) {
	case Started:
		r.setHistory(ev.History)
		if !common.IsBlank(ev.LastPlace) {
			r.submit(ev.LastPlace)
		}
	case InputChanged:
		r.inputChanged(ev.Text)
	case KeyPressed:
		r.keyPressed(ev.Key)
	case Submitted:
		r.submit(r.s.Query)
	case Selected:
		if it := navigator.At(r.s.Items(), ev.Index); it != nil {
			r.choose(it)
		}
	case Focused:
		r.s.ListVisible = true
	case Blurred:
		r.hideList()
	case ResetPressed:
		r.s.Query = ""
		r.cancelAutoClear()
		r.setLifecycle(Idle())
		r.s.Placeholder = DefaultPlaceholder
	case InputClicked:
		if !common.IsBlank(r.s.Query) {
			r.s.Query = ""
			r.s.Suggestions = nil
			r.s.Cursor = navigator.None
			r.s.ListVisible = true
			r.cancelDebounce()
		}
	case HistoryClearRequested:
		r.clearHistory()
	case RefreshRequested:
		if r.s.Snapshot != nil && r.s.Lifecycle.Phase != PhaseLoading {
			r.s.FetchSeq++
			r.emit(FetchWeather{Place: r.s.Snapshot.Label(), Seq: r.s.FetchSeq, Background: true})
		}
	case TaskFired:
		r.taskFired(ev)
	case SuggestionsLoaded:
		r.suggestionsLoaded(ev)
	case WeatherLoaded:
		r.weatherLoaded(ev)
	default:
		return s, nil
	}

	r.s.Version++
	return r.s, r.effects
}

func (r *reduction) emit(e Effect) {
	r.effects = append(r.effects, e)
}

// setLifecycle switches phase and derives the placeholder. Error and Info
// placeholders revert after the banner delay; only one reversion is pending.
// Re-entering the same Error or Info restarts its placeholder.
func (r *reduction) setLifecycle(l Lifecycle) {
	if r.s.Lifecycle == l && l.Phase != PhaseError && l.Phase != PhaseInfo {
		return
	}
	r.s.Lifecycle = l
	r.s.PlaceholderSeq++

	switch l.Phase {
	case PhaseLoading:
		r.s.Placeholder = LoadingPlaceholder
		r.emit(CancelTask{Purpose: TaskPlaceholderReset})
	case PhaseError:
		r.s.Placeholder = ErrorPlaceholder
		r.emit(ScheduleTask{Purpose: TaskPlaceholderReset, Delay: r.cfg.BannerDelay, Seq: r.s.PlaceholderSeq})
	case PhaseInfo:
		r.s.Placeholder = l.Message
		r.emit(ScheduleTask{Purpose: TaskPlaceholderReset, Delay: r.cfg.BannerDelay, Seq: r.s.PlaceholderSeq})
	default:
		r.s.Placeholder = DefaultPlaceholder
		r.emit(CancelTask{Purpose: TaskPlaceholderReset})
	}
}

// setHistory replaces the history; the cursor no longer points at a known row.
func (r *reduction) setHistory(entries []history.Entry) {
	r.s.History = entries
	r.s.Cursor = navigator.None
}

func (r *reduction) hideList() {
	r.s.ListVisible = false
	r.s.Cursor = navigator.None
}

func (r *reduction) cancelDebounce() {
	r.s.DebounceSeq++
	r.emit(CancelTask{Purpose: TaskDebounce})
}

func (r *reduction) cancelAutoClear() {
	r.s.AutoClearSeq++
	r.emit(CancelTask{Purpose: TaskErrorAutoClear})
}

// inputChanged updates the text immediately and restarts the debounce timer.
func (r *reduction) inputChanged(text string) {
	r.s.Query = text
	r.s.Cursor = navigator.None
	r.s.ListVisible = true
	if p := r.s.Lifecycle.Phase; p == PhaseError || p == PhaseInfo {
		r.cancelAutoClear()
		r.setLifecycle(Idle())
	}

	r.s.DebounceSeq++
	r.emit(ScheduleTask{Purpose: TaskDebounce, Delay: r.cfg.DebounceDelay, Seq: r.s.DebounceSeq})
}

func (r *reduction) taskFired(ev TaskFired) {
	switch ev.Purpose {
	case TaskDebounce:
		if ev.Seq != r.s.DebounceSeq {
			return
		}
		if common.IsBlank(r.s.Query) {
			r.s.Suggestions = nil
			r.hideList()
			return
		}
		r.emit(LookupPlaces{Text: r.s.Query, Limit: r.cfg.SuggestionLimit, Seq: r.s.DebounceSeq})
	case TaskPlaceholderReset:
		if ev.Seq == r.s.PlaceholderSeq {
			r.s.Placeholder = DefaultPlaceholder
		}
	case TaskErrorAutoClear:
		if ev.Seq != r.s.AutoClearSeq {
			return
		}
		r.s.Query = ""
		r.setLifecycle(Idle())
	case TaskScroll:
		if ev.Seq == r.s.ScrollTaskSeq {
			r.s.ScrollSeq++
		}
	}
}

// suggestionsLoaded replaces the suggestion set wholesale. Failures and empty
// results hide the list; they never surface as a banner.
func (r *reduction) suggestionsLoaded(ev SuggestionsLoaded) {
	if ev.Seq != r.s.DebounceSeq {
		return
	}
	r.s.Cursor = navigator.None
	if ev.Err != nil || len(ev.Places) == 0 {
		r.s.Suggestions = nil
		r.s.ListVisible = false
		return
	}
	r.s.Suggestions = ev.Places
	r.s.ListVisible = true
}

func (r *reduction) keyPressed(key Key) {
	items := r.s.Items()
	usable := r.s.ListVisible && len(items) > 0

	if key == KeyEnter && !usable && !common.IsBlank(r.s.Query) {
		r.submit(r.s.Query)
		return
	}
	if key == KeyEscape || (key == KeyBackspace && common.IsBlank(r.s.Query)) {
		r.hideList()
		return
	}
	if !usable {
		return
	}

	switch key {
	case KeyDown:
		r.s.Cursor = navigator.Next(r.s.Cursor, len(items))
	case KeyUp:
		r.s.Cursor = navigator.Prev(r.s.Cursor, len(items))
	case KeyEnter:
		if r.s.Cursor == navigator.None {
			r.submit(r.s.Query)
			return
		}
		if it := navigator.At(items, r.s.Cursor); it != nil {
			r.choose(it)
		}
	}
}

// choose acts on a list row.
func (r *reduction) choose(it navigator.Item) {
	switch it := it.(type) {
	case navigator.Suggestion:
		r.pick(it.Place)
	case navigator.HistoryItem:
		r.pick(it.Entry.PlaceLabel)
	case navigator.ClearAction:
		r.clearHistory()
	case navigator.Divider:
	}
}

func (r *reduction) pick(label string) {
	r.s.Query = label
	r.s.Suggestions = nil
	r.submit(label)
}

func (r *reduction) clearHistory() {
	r.setHistory(nil)
	r.emit(ClearHistory{})
	r.s.Query = ""
	r.s.Suggestions = nil
	r.hideList()
	r.setLifecycle(Info(HistoryClearedMessage))
}

// submit starts a foreground weather fetch. Blank text is a no-op.
func (r *reduction) submit(place string) {
	if common.IsBlank(place) {
		return
	}
	r.hideList()
	r.cancelDebounce()
	r.cancelAutoClear()
	r.setLifecycle(Loading())

	r.s.FetchSeq++
	r.emit(FetchWeather{Place: strings.TrimSpace(place), Seq: r.s.FetchSeq})
}

// weatherLoaded always leaves Loading for foreground fetches. Concurrent
// foreground fetches are not ordered: the last response to arrive wins.
// A background result is dropped once any later fetch has started.
func (r *reduction) weatherLoaded(ev WeatherLoaded) {
	if ev.Background && ev.Seq != r.s.FetchSeq {
		return
	}
	if ev.Err != nil {
		if ev.Background {
			return
		}
		if errors.Is(ev.Err, weather.ErrNotFound) {
			r.setLifecycle(Error(NotFoundMessage))
			r.s.AutoClearSeq++
			r.emit(ScheduleTask{Purpose: TaskErrorAutoClear, Delay: r.cfg.BannerDelay, Seq: r.s.AutoClearSeq})
			return
		}
		r.setLifecycle(Error(ev.Err.Error()))
		r.s.Query = ""
		return
	}

	snap := ev.Snapshot
	r.s.Snapshot = &snap

	temp := snap.TemperatureC
	entry := history.Entry{
		PlaceLabel:       snap.Label(),
		LastTemperatureC: &temp,
		LastQueriedAt:    ev.At.Format(queriedAtLayout),
	}
	if snap.Icon != "" {
		icon := snap.Icon
		entry.ConditionIcon = &icon
	}
	if ev.Background {
		// Refreshes update a remembered place but never re-add a cleared one.
		if containsLabel(r.s.History, entry.PlaceLabel) {
			r.setHistory(history.Upsert(r.s.History, entry, r.cfg.MaxHistory))
			r.emit(SaveHistory{Entries: r.s.History})
		}
		return
	}

	r.setHistory(history.Upsert(r.s.History, entry, r.cfg.MaxHistory))
	r.emit(SaveHistory{Entries: r.s.History})
	r.emit(SaveLastPlace{Place: entry.PlaceLabel})

	r.setLifecycle(Idle())
	r.s.ScrollTaskSeq++
	r.emit(ScheduleTask{Purpose: TaskScroll, Delay: r.cfg.ScrollDelay, Seq: r.s.ScrollTaskSeq})
}

func containsLabel(entries []history.Entry, label string) bool {
	for _, e := range entries {
		if history.SameKey(e.PlaceLabel, label) {
			return true
		}
	}
	return false
}
