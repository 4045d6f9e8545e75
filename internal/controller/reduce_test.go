package controller

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/navigator"
	"github.com/i474232898/weather-orbit/internal/weather"
)

func effectsOf[T Effect](effects []Effect) []T {
	var out []T
	for _, e := range effects {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func withList(suggestions []string, labels ...string) State {
	s := NewState()
	s.Suggestions = suggestions
	for _, l := range labels {
		s.History = append(s.History, history.Entry{PlaceLabel: l})
	}
	s.ListVisible = true
	return s
}

func TestReduceBumpsVersion(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(NewState(), Focused{})
	assert.Equal(t, uint64(1), s.Version)
	assert.True(t, s.ListVisible)
}

func TestInputChangedSchedulesDebounce(t *testing.T) {
	cfg := DefaultSettings()
	s, effects := cfg.Reduce(NewState(), InputChanged{Text: "Lon"})

	assert.Equal(t, "Lon", s.Query)
	assert.True(t, s.ListVisible)
	tasks := effectsOf[ScheduleTask](effects)
	require.Len(t, tasks, 1)
	assert.Equal(t, TaskDebounce, tasks[0].Purpose)
	assert.Equal(t, 300*time.Millisecond, tasks[0].Delay)
	assert.Equal(t, s.DebounceSeq, tasks[0].Seq)
	assert.Empty(t, effectsOf[LookupPlaces](effects))
}

func TestDebounceFireLooksUpLatestText(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(NewState(), InputChanged{Text: "Lo"})
	stale := s.DebounceSeq
	s, _ = cfg.Reduce(s, InputChanged{Text: "Lon"})

	_, effects := cfg.Reduce(s, TaskFired{Purpose: TaskDebounce, Seq: stale})
	assert.Empty(t, effects)

	_, effects = cfg.Reduce(s, TaskFired{Purpose: TaskDebounce, Seq: s.DebounceSeq})
	lookups := effectsOf[LookupPlaces](effects)
	require.Len(t, lookups, 1)
	assert.Equal(t, "Lon", lookups[0].Text)
	assert.Equal(t, 5, lookups[0].Limit)
}

func TestDebounceFireWithBlankQueryHidesList(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"London, GB"})
	s, _ = cfg.Reduce(s, InputChanged{Text: "  "})
	s, effects := cfg.Reduce(s, TaskFired{Purpose: TaskDebounce, Seq: s.DebounceSeq})

	assert.Empty(t, effectsOf[LookupPlaces](effects))
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.ListVisible)
}

func TestStaleSuggestionsAreDropped(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(NewState(), InputChanged{Text: "Par"})
	seq := s.DebounceSeq
	s, _ = cfg.Reduce(s, InputChanged{Text: "Pari"})

	s, _ = cfg.Reduce(s, SuggestionsLoaded{Seq: seq, Places: []string{"Parma, IT"}})
	assert.Empty(t, s.Suggestions)

	s, _ = cfg.Reduce(s, SuggestionsLoaded{Seq: s.DebounceSeq, Places: []string{"Paris, FR"}})
	assert.Equal(t, []string{"Paris, FR"}, s.Suggestions)
	assert.True(t, s.ListVisible)
	assert.Equal(t, navigator.None, s.Cursor)
}

func TestFailedOrEmptyLookupHidesListWithoutBanner(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(withList([]string{"Old, XX"}), InputChanged{Text: "Qq"})

	failed, _ := cfg.Reduce(s, SuggestionsLoaded{Seq: s.DebounceSeq, Err: errors.New("boom")})
	assert.Empty(t, failed.Suggestions)
	assert.False(t, failed.ListVisible)
	assert.Equal(t, PhaseIdle, failed.Lifecycle.Phase)

	empty, _ := cfg.Reduce(s, SuggestionsLoaded{Seq: s.DebounceSeq})
	assert.False(t, empty.ListVisible)
}

func TestCursorWrapsAcrossCombinedList(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA", "B, BB"}, "C, CC")
	require.Len(t, s.Items(), 5)

	var got []int
	for i := 0; i < 6; i++ {
		s, _ = cfg.Reduce(s, KeyPressed{Key: KeyDown})
		got = append(got, s.Cursor)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, got)

	s, _ = cfg.Reduce(s, KeyPressed{Key: KeyUp})
	assert.Equal(t, 4, s.Cursor)
}

func TestUpFromNoneSelectsLastRow(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(withList(nil, "Oslo, NO"), KeyPressed{Key: KeyUp})
	assert.Equal(t, 2, s.Cursor)
}

func TestArrowsIgnoredWhenListHidden(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"})
	s.ListVisible = false
	s, effects := cfg.Reduce(s, KeyPressed{Key: KeyDown})
	assert.Equal(t, navigator.None, s.Cursor)
	assert.Empty(t, effects)
}

func TestEnterOnSuggestionSubmitsIt(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"London, GB", "London, CA"})
	s.Query = "Lond"
	s, _ = cfg.Reduce(s, KeyPressed{Key: KeyDown})
	s, _ = cfg.Reduce(s, KeyPressed{Key: KeyDown})
	s, effects := cfg.Reduce(s, KeyPressed{Key: KeyEnter})

	assert.Equal(t, "London, CA", s.Query)
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.ListVisible)
	assert.Equal(t, PhaseLoading, s.Lifecycle.Phase)
	assert.Equal(t, LoadingPlaceholder, s.Placeholder)
	fetches := effectsOf[FetchWeather](effects)
	require.Len(t, fetches, 1)
	assert.Equal(t, "London, CA", fetches[0].Place)
	assert.False(t, fetches[0].Background)
}

func TestEnterWithoutSelectionSubmitsQuery(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"Rome, IT"})
	s.Query = " Rome "
	_, effects := cfg.Reduce(s, KeyPressed{Key: KeyEnter})

	fetches := effectsOf[FetchWeather](effects)
	require.Len(t, fetches, 1)
	assert.Equal(t, "Rome", fetches[0].Place)

	hidden := NewState()
	hidden.Query = "Rome"
	_, effects = cfg.Reduce(hidden, KeyPressed{Key: KeyEnter})
	assert.Len(t, effectsOf[FetchWeather](effects), 1)
}

func TestEnterOnHistoryEntrySubmitsIt(t *testing.T) {
	cfg := DefaultSettings()
	s := withList(nil, "Oslo, NO", "Rome, IT")
	s.Cursor = 2
	s, effects := cfg.Reduce(s, KeyPressed{Key: KeyEnter})

	assert.Equal(t, "Rome, IT", s.Query)
	fetches := effectsOf[FetchWeather](effects)
	require.Len(t, fetches, 1)
	assert.Equal(t, "Rome, IT", fetches[0].Place)
}

func TestChoosingDividerDoesNothing(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"}, "Oslo, NO")
	s.Query = "A"

	next, effects := cfg.Reduce(s, Selected{Index: 1})
	assert.Empty(t, effects)
	next.Version = s.Version
	assert.Equal(t, s, next)
}

func TestChoosingClearActionEmptiesHistory(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"}, "Oslo, NO", "Rome, IT")
	s.Query = "A"
	clearIdx := len(s.Items()) - 1

	s, effects := cfg.Reduce(s, Selected{Index: clearIdx})
	assert.Empty(t, s.History)
	assert.Empty(t, s.Query)
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.ListVisible)
	assert.Equal(t, Info(HistoryClearedMessage), s.Lifecycle)
	assert.Equal(t, HistoryClearedMessage, s.Placeholder)
	assert.Len(t, effectsOf[ClearHistory](effects), 1)
	assert.Empty(t, effectsOf[FetchWeather](effects))
}

func TestSelectOutOfRangeIsIgnored(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"})
	_, effects := cfg.Reduce(s, Selected{Index: 7})
	assert.Empty(t, effects)
}

func TestEscapeAndBackspaceHideList(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"})
	s.Query = "A"
	s.Cursor = 0

	escaped, _ := cfg.Reduce(s, KeyPressed{Key: KeyEscape})
	assert.False(t, escaped.ListVisible)
	assert.Equal(t, navigator.None, escaped.Cursor)

	kept, _ := cfg.Reduce(s, KeyPressed{Key: KeyBackspace})
	assert.True(t, kept.ListVisible)

	s.Query = ""
	backspaced, _ := cfg.Reduce(s, KeyPressed{Key: KeyBackspace})
	assert.False(t, backspaced.ListVisible)
}

func TestBlankSubmitIsNoop(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "   "
	next, effects := cfg.Reduce(s, Submitted{})
	assert.Empty(t, effects)
	assert.Equal(t, PhaseIdle, next.Lifecycle.Phase)
}

func TestSubmitCancelsPendingDebounce(t *testing.T) {
	cfg := DefaultSettings()
	s, _ := cfg.Reduce(NewState(), InputChanged{Text: "Oslo"})
	pending := s.DebounceSeq
	s, effects := cfg.Reduce(s, Submitted{})

	assert.Contains(t, effects, Effect(CancelTask{Purpose: TaskDebounce}))
	_, effects = cfg.Reduce(s, TaskFired{Purpose: TaskDebounce, Seq: pending})
	assert.Empty(t, effectsOf[LookupPlaces](effects))
}

func loaded(place string, temp float64) WeatherLoaded {
	return WeatherLoaded{
		Place: place,
		Snapshot: weather.Snapshot{
			Name:         place,
			Country:      "GB",
			TemperatureC: temp,
			Icon:         "04d",
		},
		At: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestWeatherLoadedRecordsHistory(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "London"
	s, _ = cfg.Reduce(s, Submitted{})
	s, effects := cfg.Reduce(s, loaded("London", 11.5))

	require.NotNil(t, s.Snapshot)
	assert.Equal(t, PhaseIdle, s.Lifecycle.Phase)
	assert.Equal(t, DefaultPlaceholder, s.Placeholder)
	require.Len(t, s.History, 1)
	assert.Equal(t, "London, GB", s.History[0].PlaceLabel)
	assert.Equal(t, 11.5, *s.History[0].LastTemperatureC)
	assert.Equal(t, "04d", *s.History[0].ConditionIcon)
	assert.Equal(t, "2024-03-01 09:30", s.History[0].LastQueriedAt)

	assert.Len(t, effectsOf[SaveHistory](effects), 1)
	assert.Equal(t, []SaveLastPlace{{Place: "London, GB"}}, effectsOf[SaveLastPlace](effects))
	scroll := effectsOf[ScheduleTask](effects)
	require.Len(t, scroll, 1)
	assert.Equal(t, TaskScroll, scroll[0].Purpose)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskScroll, Seq: scroll[0].Seq})
	assert.Equal(t, uint64(1), s.ScrollSeq)
}

func TestNotFoundKeepsQueryUntilAutoClear(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "Nowhereville"
	s, _ = cfg.Reduce(s, Submitted{})
	s, effects := cfg.Reduce(s, WeatherLoaded{Err: fmt.Errorf("openweather: %w", weather.ErrNotFound)})

	assert.Equal(t, Error(NotFoundMessage), s.Lifecycle)
	assert.Equal(t, "Nowhereville", s.Query)
	assert.Equal(t, ErrorPlaceholder, s.Placeholder)

	var autoClear, reset ScheduleTask
	for _, task := range effectsOf[ScheduleTask](effects) {
		switch task.Purpose {
		case TaskErrorAutoClear:
			autoClear = task
		case TaskPlaceholderReset:
			reset = task
		}
	}
	assert.Equal(t, time.Second, autoClear.Delay)
	assert.Equal(t, time.Second, reset.Delay)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskPlaceholderReset, Seq: reset.Seq})
	assert.Equal(t, DefaultPlaceholder, s.Placeholder)
	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskErrorAutoClear, Seq: autoClear.Seq})
	assert.Equal(t, PhaseIdle, s.Lifecycle.Phase)
	assert.Empty(t, s.Query)
}

func TestTypingDuringErrorCancelsAutoClear(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "Nowhereville"
	s, _ = cfg.Reduce(s, Submitted{})
	s, _ = cfg.Reduce(s, WeatherLoaded{Err: weather.ErrNotFound})
	stale := s.AutoClearSeq

	s, _ = cfg.Reduce(s, InputChanged{Text: "Nowhere"})
	assert.Equal(t, PhaseIdle, s.Lifecycle.Phase)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskErrorAutoClear, Seq: stale})
	assert.Equal(t, "Nowhere", s.Query)
}

func TestGenericErrorClearsQueryImmediately(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "Paris"
	s, _ = cfg.Reduce(s, Submitted{})
	err := fmt.Errorf("%w: status 500", weather.ErrInvalid)
	s, effects := cfg.Reduce(s, WeatherLoaded{Err: err})

	assert.Equal(t, PhaseError, s.Lifecycle.Phase)
	assert.Equal(t, err.Error(), s.Lifecycle.Message)
	assert.Empty(t, s.Query)
	for _, task := range effectsOf[ScheduleTask](effects) {
		assert.NotEqual(t, TaskErrorAutoClear, task.Purpose)
	}
}

func TestStalePlaceholderResetIsIgnored(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "X"
	s, _ = cfg.Reduce(s, Submitted{})
	s, _ = cfg.Reduce(s, WeatherLoaded{Err: weather.ErrNotFound})
	first := s.PlaceholderSeq

	s.Query = "Y"
	s, _ = cfg.Reduce(s, Submitted{})
	assert.Equal(t, LoadingPlaceholder, s.Placeholder)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskPlaceholderReset, Seq: first})
	assert.Equal(t, LoadingPlaceholder, s.Placeholder)
}

func TestLoadingNeverOutlivesForegroundFetch(t *testing.T) {
	cfg := DefaultSettings()
	outcomes := []WeatherLoaded{
		loaded("Leeds", 8),
		{Err: weather.ErrNotFound},
		{Err: weather.ErrInvalid},
		{Err: weather.ErrLookup},
		{Err: errors.New("dial tcp: timeout")},
	}
	for _, ev := range outcomes {
		s := NewState()
		s.Query = "Leeds"
		s, _ = cfg.Reduce(s, Submitted{})
		require.Equal(t, PhaseLoading, s.Lifecycle.Phase)

		s, _ = cfg.Reduce(s, ev)
		assert.NotEqual(t, PhaseLoading, s.Lifecycle.Phase)
	}
}

func TestResetClearsInputAndBanner(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Query = "Nowhereville"
	s, _ = cfg.Reduce(s, Submitted{})
	s, _ = cfg.Reduce(s, WeatherLoaded{Err: weather.ErrNotFound})

	s, effects := cfg.Reduce(s, ResetPressed{})
	assert.Empty(t, s.Query)
	assert.Equal(t, Idle(), s.Lifecycle)
	assert.Equal(t, DefaultPlaceholder, s.Placeholder)
	assert.Contains(t, effects, Effect(CancelTask{Purpose: TaskErrorAutoClear}))
}

func TestInputClickClearsText(t *testing.T) {
	cfg := DefaultSettings()
	s := withList([]string{"A, AA"})
	s.Query = "A"
	s, _ = cfg.Reduce(s, InputClicked{})
	assert.Empty(t, s.Query)
	assert.Empty(t, s.Suggestions)
	assert.True(t, s.ListVisible)
}

func TestStartedSubmitsLastPlace(t *testing.T) {
	cfg := DefaultSettings()
	entries := []history.Entry{{PlaceLabel: "Oslo, NO"}}

	s, effects := cfg.Reduce(NewState(), Started{History: entries, LastPlace: "Oslo, NO"})
	assert.Equal(t, entries, s.History)
	assert.Equal(t, PhaseLoading, s.Lifecycle.Phase)
	assert.Equal(t, []FetchWeather{{Place: "Oslo, NO", Seq: 1}}, effectsOf[FetchWeather](effects))

	s, effects = cfg.Reduce(NewState(), Started{})
	assert.Empty(t, effectsOf[FetchWeather](effects))
	assert.Equal(t, PhaseIdle, s.Lifecycle.Phase)
}

func TestRefreshFetchesInBackground(t *testing.T) {
	cfg := DefaultSettings()
	_, effects := cfg.Reduce(NewState(), RefreshRequested{})
	assert.Empty(t, effects)

	s := NewState()
	s.Snapshot = &weather.Snapshot{Name: "Leeds", Country: "GB"}
	s, effects = cfg.Reduce(s, RefreshRequested{})
	assert.Equal(t, PhaseIdle, s.Lifecycle.Phase)
	fetches := effectsOf[FetchWeather](effects)
	require.Len(t, fetches, 1)
	assert.True(t, fetches[0].Background)
	assert.Equal(t, "Leeds, GB", fetches[0].Place)
}

func TestBackgroundResultsNeverTouchLifecycle(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Snapshot = &weather.Snapshot{Name: "Leeds", Country: "GB", TemperatureC: 3}

	failed := WeatherLoaded{Background: true, Err: weather.ErrInvalid}
	next, effects := cfg.Reduce(s, failed)
	assert.Empty(t, effects)
	assert.Equal(t, Idle(), next.Lifecycle)
	assert.Equal(t, 3.0, next.Snapshot.TemperatureC)

	ok := loaded("Leeds", 9)
	ok.Background = true
	next, effects = cfg.Reduce(s, ok)
	assert.Equal(t, 9.0, next.Snapshot.TemperatureC)
	assert.Empty(t, next.History)
	assert.Empty(t, effects)

	s.History = []history.Entry{{PlaceLabel: "Leeds, GB"}}
	next, effects = cfg.Reduce(s, ok)
	require.Len(t, next.History, 1)
	assert.Equal(t, 9.0, *next.History[0].LastTemperatureC)
	assert.Len(t, effectsOf[SaveHistory](effects), 1)
	assert.Empty(t, effectsOf[SaveLastPlace](effects))
}

func TestHistoryChangeResetsCursor(t *testing.T) {
	cfg := DefaultSettings()

	s := withList(nil, "Paris, FR", "London, GB")
	s.Cursor = 1
	require.Equal(t, "Paris, FR", navigator.At(s.Items(), s.Cursor).Label())

	refreshed := loaded("London", 12)
	refreshed.Background = true
	next, _ := cfg.Reduce(s, refreshed)
	assert.Equal(t, "London, GB", next.History[0].PlaceLabel)
	assert.Equal(t, navigator.None, next.Cursor)
	assert.Nil(t, navigator.At(next.Items(), next.Cursor))

	s = withList(nil, "Paris, FR", "London, GB")
	s.Query = "Leeds"
	s, _ = cfg.Reduce(s, Submitted{})
	s, _ = cfg.Reduce(s, Focused{})
	s, _ = cfg.Reduce(s, KeyPressed{Key: KeyDown})
	s, _ = cfg.Reduce(s, KeyPressed{Key: KeyDown})
	require.Equal(t, 1, s.Cursor)
	s, _ = cfg.Reduce(s, loaded("Leeds", 8))
	assert.Equal(t, "Leeds, GB", s.History[0].PlaceLabel)
	assert.Equal(t, navigator.None, s.Cursor)

	s = withList(nil, "Oslo, NO")
	s.Cursor = 0
	s, _ = cfg.Reduce(s, Started{History: []history.Entry{{PlaceLabel: "Rome, IT"}}})
	assert.Equal(t, navigator.None, s.Cursor)
}

func TestOutdatedBackgroundResultIsDropped(t *testing.T) {
	cfg := DefaultSettings()
	s := NewState()
	s.Snapshot = &weather.Snapshot{Name: "London", Country: "GB"}
	s.History = []history.Entry{{PlaceLabel: "London, GB"}}

	s, effects := cfg.Reduce(s, RefreshRequested{})
	refresh := effectsOf[FetchWeather](effects)
	require.Len(t, refresh, 1)

	s.Query = "Paris"
	s, effects = cfg.Reduce(s, Submitted{})
	submit := effectsOf[FetchWeather](effects)
	require.Len(t, submit, 1)

	paris := loaded("Paris", 14)
	paris.Snapshot.Country = "FR"
	paris.Seq = submit[0].Seq
	s, _ = cfg.Reduce(s, paris)

	london := loaded("London", 9)
	london.Seq = refresh[0].Seq
	london.Background = true
	next, effects := cfg.Reduce(s, london)

	assert.Empty(t, effects)
	assert.Equal(t, "Paris, FR", next.Snapshot.Label())
	assert.Equal(t, "Paris, FR", next.History[0].PlaceLabel)
}

func TestRepeatedInfoRestartsPlaceholder(t *testing.T) {
	cfg := DefaultSettings()
	s := withList(nil, "Oslo, NO")
	s, effects := cfg.Reduce(s, HistoryClearRequested{})
	first := effectsOf[ScheduleTask](effects)
	require.Len(t, first, 1)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskPlaceholderReset, Seq: first[0].Seq})
	require.Equal(t, DefaultPlaceholder, s.Placeholder)
	require.Equal(t, Info(HistoryClearedMessage), s.Lifecycle)

	s, effects = cfg.Reduce(s, HistoryClearRequested{})
	assert.Equal(t, HistoryClearedMessage, s.Placeholder)
	second := effectsOf[ScheduleTask](effects)
	require.Len(t, second, 1)
	assert.Equal(t, TaskPlaceholderReset, second[0].Purpose)
	assert.Equal(t, time.Second, second[0].Delay)

	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskPlaceholderReset, Seq: first[0].Seq})
	assert.Equal(t, HistoryClearedMessage, s.Placeholder)
	s, _ = cfg.Reduce(s, TaskFired{Purpose: TaskPlaceholderReset, Seq: second[0].Seq})
	assert.Equal(t, DefaultPlaceholder, s.Placeholder)
}

func TestViewProjectsItemsAndPeriod(t *testing.T) {
	s := withList([]string{"A, AA"}, "Oslo, NO")
	s.Cursor = 2
	v := s.View()

	require.Len(t, v.Items, 4)
	assert.Equal(t, ViewItem{Kind: "history", Label: "Oslo, NO", Selected: true}, v.Items[2])
	assert.Equal(t, weather.PeriodNight, v.Period)
	assert.Equal(t, weather.PeriodNight, v.ImagePeriod)
	assert.Empty(t, v.AssetKey)
	assert.Equal(t, PhaseIdle, v.Lifecycle)
}
