package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitTick(t *testing.T, ticks <-chan time.Time) time.Time {
	t.Helper()
	select {
	case now := <-ticks:
		return now
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
		return time.Time{}
	}
}

func TestPeriodic_RunsImmediatelyThenEveryInterval(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)
	ticks := make(chan time.Time, 8)

	p := NewPeriodic(fc, time.Second, func(now time.Time) { ticks <- now })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Start(ctx)

	if got := waitTick(t, ticks); !got.Equal(start) {
		t.Errorf("first tick = %v, want %v", got, start)
	}

	blockCtx, blockCancel := context.WithTimeout(ctx, 2*time.Second)
	defer blockCancel()
	if err := fc.BlockUntilContext(blockCtx, 1); err != nil {
		t.Fatalf("ticker never registered: %v", err)
	}

	for i := 1; i <= 3; i++ {
		fc.Advance(time.Second)
		want := start.Add(time.Duration(i) * time.Second)
		if got := waitTick(t, ticks); !got.Equal(want) {
			t.Errorf("tick %d = %v, want %v", i, got, want)
		}
	}
}

func TestPeriodic_StopsOnCancel(t *testing.T) {
	fc := clockwork.NewFakeClock()
	p := NewPeriodic(fc, time.Second, func(time.Time) {})

	ctx, cancel := context.WithCancel(context.Background())
	go p.Start(ctx)
	cancel()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestPeriodic_Stop(t *testing.T) {
	fc := clockwork.NewFakeClock()
	p := NewPeriodic(fc, time.Second, func(time.Time) {})

	go p.Start(context.Background())
	p.Stop()
	p.Stop()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
