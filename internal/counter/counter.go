// Package counter keeps the live elapsed-time reading shown by the views.
package counter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/heartclock/internal/elapsed"
	"github.com/iburimskiy/heartclock/internal/schedule"
)

// TickInterval is how often Run refreshes the reading.
const TickInterval = time.Second

// Reading is one computed breakdown together with the instant it was taken at.
type Reading struct {
	Breakdown elapsed.Breakdown
	At        time.Time
	// Started is false while the reference instant is still in the future.
	Started bool
}

// Counter recomputes the breakdown from a fixed reference on every tick.
type Counter struct {
	reference time.Time
	clock     clockwork.Clock

	mu     sync.RWMutex
	latest Reading
	ticks  int64

	done     chan struct{}
	doneOnce sync.Once
}

// New creates a counter for reference. A nil clock means the real clock.
func New(reference time.Time, clock clockwork.Clock) *Counter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Counter{
		reference: reference,
		clock:     clock,
		done:      make(chan struct{}),
	}
}

// Reference returns the start of the measured period.
func (c *Counter) Reference() time.Time {
	return c.reference
}

// Tick recomputes the reading at the clock's current time.
func (c *Counter) Tick() Reading {
	return c.update(c.clock.Now())
}

func (c *Counter) update(now time.Time) Reading {
	b, err := elapsed.Since(c.reference, now)
	r := Reading{
		Breakdown: b,
		At:        now,
		Started:   !errors.Is(err, elapsed.ErrNotStarted),
	}

	c.mu.Lock()
	c.latest = r
	c.ticks++
	c.mu.Unlock()
	return r
}

// Latest returns the most recent reading without recomputing it.
func (c *Counter) Latest() Reading {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

// Ticks returns how many readings have been taken.
func (c *Counter) Ticks() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticks
}

// Run refreshes the reading every TickInterval until ctx is cancelled.
// Done is closed when it returns.
func (c *Counter) Run(ctx context.Context) {
	defer c.doneOnce.Do(func() { close(c.done) })

	p := schedule.NewPeriodic(c.clock, TickInterval, func(time.Time) {
		// Readings use the clock, not the possibly late tick time.
		c.Tick()
	})
	p.Start(ctx)
}

// Start takes a first reading, then runs the counter on its own goroutine.
// Latest is valid as soon as Start returns.
func (c *Counter) Start(ctx context.Context) {
	c.Tick()
	go c.Run(ctx)
}

// Done is closed once Run has stopped; readings no longer change after that.
func (c *Counter) Done() <-chan struct{} {
	return c.done
}
