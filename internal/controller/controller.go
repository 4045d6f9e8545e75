package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/tasks"
	"github.com/i474232898/weather-orbit/internal/weather"
)

const (
	lookupTimeout = 10 * time.Second
	fetchTimeout  = 30 * time.Second
)

// Controller owns the state and performs the effects the reducer asks for.
// Events are processed one at a time, run to completion, in arrival order.
type Controller struct {
	settings Settings
	provider weather.Provider
	places   weather.PlaceProvider
	cache    *history.Cache
	tasks    *tasks.Scheduler
	clock    tasks.Clock
	run      func(func())

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	queue    []Event
	draining bool

	subMu       sync.Mutex
	subscribers []func(State)
}

// Option customises a Controller.
type Option func(*Controller)

// WithSettings overrides DefaultSettings.
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s }
}

// WithClock drives timers from clock instead of the real one.
func WithClock(clock tasks.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithRunner replaces the goroutine used for provider calls. Tests pass a
// synchronous runner.
func WithRunner(run func(func())) Option {
	return func(c *Controller) { c.run = run }
}

// New creates a Controller. Call Start before dispatching events.
func New(provider weather.Provider, places weather.PlaceProvider, cache *history.Cache, opts ...Option) *Controller {
	c := &Controller{
		settings: DefaultSettings(),
		provider: provider,
		places:   places,
		cache:    cache,
		clock:    tasks.RealClock(),
		run:      func(f func()) { go f() },
		state:    NewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if cache != nil {
		c.settings.MaxHistory = cache.Max()
	}
	c.tasks = tasks.NewScheduler(c.clock)
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// Start loads the persisted history and, if a last place is stored,
// submits it once to warm the snapshot.
func (c *Controller) Start() {
	var (
		entries []history.Entry
		last    string
	)
	if c.cache != nil {
		entries = c.cache.Load()
		last = c.cache.LastPlace()
	}
	log.Printf("controller: started with %d history entries, last place %q", len(entries), last)
	c.Dispatch(Started{History: entries, LastPlace: last})
}

// Close cancels pending timers and in-flight provider calls.
func (c *Controller) Close() {
	c.tasks.Stop()
	c.cancel()
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive the state after every event. fn runs on
// the dispatching goroutine and must not block.
func (c *Controller) Subscribe(fn func(State)) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Dispatch queues ev. If no other goroutine is draining the queue, the caller
// drains it, reducing each event and performing its effects before the next.
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	c.queue = append(c.queue, ev)
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]

		state, effects := c.settings.Reduce(c.state, next)
		c.state = state
		c.mu.Unlock()

		for _, eff := range effects {
			c.perform(eff)
		}
		c.notify(state)

		c.mu.Lock()
	}
	c.draining = false
	c.mu.Unlock()
}

func (c *Controller) notify(s State) {
	c.subMu.Lock()
	subs := make([]func(State), len(c.subscribers))
	copy(subs, c.subscribers)
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

func (c *Controller) perform(eff Effect) {
	switch e := eff.(type) {
	case ScheduleTask:
		c.tasks.Schedule(e.Purpose, e.Delay, func() {
			c.Dispatch(TaskFired{Purpose: e.Purpose, Seq: e.Seq})
		})
	case CancelTask:
		c.tasks.Cancel(e.Purpose)
	case LookupPlaces:
		c.lookup(e)
	case FetchWeather:
		c.fetch(e)
	case SaveHistory:
		if c.cache != nil {
			if err := c.cache.Replace(e.Entries); err != nil {
				log.Printf("controller: %v", err)
			}
		}
	case ClearHistory:
		if c.cache != nil {
			if err := c.cache.Clear(); err != nil {
				log.Printf("controller: %v", err)
			}
		}
	case SaveLastPlace:
		if c.cache != nil {
			if err := c.cache.SetLastPlace(e.Place); err != nil {
				log.Printf("controller: %v", err)
			}
		}
	}
}

// lookup never surfaces failures: they are logged and reported as an empty result.
func (c *Controller) lookup(e LookupPlaces) {
	if c.places == nil {
		c.Dispatch(SuggestionsLoaded{Seq: e.Seq})
		return
	}
	c.run(func() {
		ctx, cancel := context.WithTimeout(c.ctx, lookupTimeout)
		defer cancel()

		places, err := c.places.Lookup(ctx, e.Text, e.Limit)
		if err != nil {
			log.Printf("controller: suggestion lookup failed for %q: %v", e.Text, err)
			c.Dispatch(SuggestionsLoaded{Seq: e.Seq, Err: err})
			return
		}
		c.Dispatch(SuggestionsLoaded{Seq: e.Seq, Places: weather.Labels(places, e.Limit)})
	})
}

func (c *Controller) fetch(e FetchWeather) {
	id := uuid.NewString()
	log.Printf("controller: fetch %s started for %q (background=%t)", id, e.Place, e.Background)

	c.run(func() {
		ctx, cancel := context.WithTimeout(c.ctx, fetchTimeout)
		defer cancel()

		snap, err := c.provider.Fetch(ctx, e.Place)
		if err != nil {
			log.Printf("controller: fetch %s failed for %q: %v", id, e.Place, err)
		} else {
			log.Printf("controller: fetch %s succeeded for %q", id, snap.Label())
		}
		c.Dispatch(WeatherLoaded{
			Seq:        e.Seq,
			Place:      e.Place,
			Background: e.Background,
			Snapshot:   snap,
			Err:        err,
			At:         c.clock.Now(),
		})
	})
}

// OnInputChange forwards the full input text after a keystroke.
func (c *Controller) OnInputChange(text string) { c.Dispatch(InputChanged{Text: text}) }

// OnKeyDown forwards a navigation key.
func (c *Controller) OnKeyDown(key Key) { c.Dispatch(KeyPressed{Key: key}) }

// OnSubmit submits the current query text.
func (c *Controller) OnSubmit() { c.Dispatch(Submitted{}) }

// OnSelect chooses the combined list row at index.
func (c *Controller) OnSelect(index int) { c.Dispatch(Selected{Index: index}) }

// OnFocus shows the list.
func (c *Controller) OnFocus() { c.Dispatch(Focused{}) }

// OnBlur hides the list.
func (c *Controller) OnBlur() { c.Dispatch(Blurred{}) }

// OnReset clears the input and any banner.
func (c *Controller) OnReset() { c.Dispatch(ResetPressed{}) }

// OnClick handles a click inside the input.
func (c *Controller) OnClick() { c.Dispatch(InputClicked{}) }

// ClearHistory empties the history.
func (c *Controller) ClearHistory() { c.Dispatch(HistoryClearRequested{}) }

// Refresh re-fetches the current snapshot in the background.
func (c *Controller) Refresh() { c.Dispatch(RefreshRequested{}) }
