// Package schedule runs cancellable periodic tasks against an injectable clock.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Task is invoked with the time of the tick that triggered it.
type Task func(now time.Time)

// Periodic runs a Task once on start and then every interval until its
// context is cancelled or Stop is called.
type Periodic struct {
	clock    clockwork.Clock
	interval time.Duration
	task     Task

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewPeriodic creates a periodic task. A nil clock means the real clock.
func NewPeriodic(clock clockwork.Clock, interval time.Duration, task Task) *Periodic {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Periodic{
		clock:    clock,
		interval: interval,
		task:     task,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start blocks running the task loop. Call in a goroutine.
func (p *Periodic) Start(ctx context.Context) {
	defer close(p.done)

	p.task(p.clock.Now())

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case now := <-ticker.Chan():
			p.task(now)
		}
	}
}

// Stop ends the loop. Safe to call more than once.
func (p *Periodic) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
}

// Done is closed once Start has returned.
func (p *Periodic) Done() <-chan struct{} {
	return p.done
}
