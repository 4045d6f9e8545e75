package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Refresher re-fetches the current snapshot. controller.Controller satisfies it.
type Refresher interface {
	Refresh()
}

// Scheduler periodically refreshes the displayed weather in the background.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Refresher
	interval  time.Duration
}

// New creates a new Scheduler. A non-positive interval disables refreshing.
func New(target Refresher, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		target:    target,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler. The
// first refresh happens one interval after Start.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh interval disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		log.Println("scheduler: refreshing current weather")
		s.target.Refresh()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}
