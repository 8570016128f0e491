package game

import "time"

// DefaultTickInterval gives five steps per second
const DefaultTickInterval = 200 * time.Millisecond

// maxCatchUp bounds the ticks run for one call after a long stall
const maxCatchUp = 3

// TickConsumer advances the simulation by one step
type TickConsumer interface {
	Tick() Outcome
}

// Scheduler turns wall-clock time into whole fixed-length ticks. It holds
// no goroutine; the frontend polls it from its own loop.
type Scheduler struct {
	interval time.Duration
	next     time.Time
	started  bool
}

func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{interval: interval}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Reset makes the first tick due one interval after now
func (s *Scheduler) Reset(now time.Time) {
	s.next = now.Add(s.interval)
	s.started = true
}

// Due returns how many ticks have come due by now and consumes them
func (s *Scheduler) Due(now time.Time) int {
	if !s.started {
		s.Reset(now)
		return 0
	}
	n := 0
	for !now.Before(s.next) {
		n++
		s.next = s.next.Add(s.interval)
		if n == maxCatchUp {
			// Drop the backlog instead of fast-forwarding the snake
			if !now.Before(s.next) {
				s.next = now.Add(s.interval)
			}
			break
		}
	}
	return n
}

// Drive runs every due tick on c and returns the last outcome
func (s *Scheduler) Drive(now time.Time, c TickConsumer) Outcome {
	last := OutcomeIdle
	for i := s.Due(now); i > 0; i-- {
		last = c.Tick()
		if last.Terminal() {
			break
		}
	}
	return last
}
