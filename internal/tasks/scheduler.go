package tasks

import (
	"sync"
	"time"
)

// Purpose names a class of task. At most one task per purpose is pending.
type Purpose string

// Scheduler keeps one cancellable timer per purpose.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	gen    uint64
	timers map[Purpose]*entry
}

type entry struct {
	timer Timer
	gen   uint64
}

// NewScheduler creates a Scheduler on the given clock (RealClock when nil).
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{
		clock:  clock,
		timers: make(map[Purpose]*entry),
	}
}

// Schedule runs f after d, cancelling any pending task with the same purpose.
func (s *Scheduler) Schedule(p Purpose, d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[p]; ok {
		prev.timer.Stop()
	}
	s.gen++
	gen := s.gen

	e := &entry{gen: gen}
	e.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		cur, ok := s.timers[p]
		if !ok || cur.gen != gen {
			s.mu.Unlock()
			return
		}
		delete(s.timers, p)
		s.mu.Unlock()

		f()
	})
	s.timers[p] = e
}

// Cancel stops the pending task for p, if any.
func (s *Scheduler) Cancel(p Purpose) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timers[p]
	if !ok {
		return false
	}
	delete(s.timers, p)
	return e.timer.Stop()
}

// Pending reports whether a task for p is waiting to fire.
func (s *Scheduler) Pending(p Purpose) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[p]
	return ok
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for p, e := range s.timers {
		e.timer.Stop()
		delete(s.timers, p)
	}
}
