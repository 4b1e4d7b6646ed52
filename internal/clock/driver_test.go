package clock

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestDriverEndsOnce(t *testing.T) {
	ends := 0
	d := NewDriver(30, func() { ends++ })
	d.Advance(1)
	if d.Elapsed() != 0 {
		t.Fatal("driver advanced before Start")
	}

	d.Start()
	for i := 0; i < 2000; i++ {
		d.Advance(1.0 / 60)
	}
	if ends != 1 {
		t.Fatalf("end fired %v times, expected 1", ends)
	}
	if d.Running() || !d.Ended() {
		t.Fatal("driver should be stopped and ended")
	}
	if d.Progress() != 1 || d.Remaining() != 0 {
		t.Fatalf("progress %v remaining %v", d.Progress(), d.Remaining())
	}

	// Stop is idempotent and does not fire the callback
	d.Stop()
	d.Stop()
	if ends != 1 {
		t.Fatal("stop fired the end callback")
	}
}

func TestDriverProgress(t *testing.T) {
	d := NewDriver(30, nil)
	d.Start()
	d.Advance(7.5)
	if math.Abs(d.Progress()-0.25) > 1e-9 {
		t.Fatalf("progress = %v, expected 0.25", d.Progress())
	}
	if math.Abs(d.Remaining()-22.5) > 1e-9 {
		t.Fatalf("remaining = %v, expected 22.5", d.Remaining())
	}
	d.Advance(-3)
	if d.Elapsed() != 7.5 {
		t.Fatal("negative delta moved the clock")
	}
	d.AdvanceDuration(500 * time.Millisecond)
	if math.Abs(d.Elapsed()-8) > 1e-9 {
		t.Fatalf("elapsed = %v, expected 8", d.Elapsed())
	}
}

func TestDriverRestart(t *testing.T) {
	ends := 0
	d := NewDriver(1, func() { ends++ })
	d.Start()
	d.Advance(2)
	d.Reset()
	if d.Elapsed() != 0 || d.Ended() || d.Running() {
		t.Fatal("reset did not rewind")
	}
	d.Start()
	d.Advance(2)
	if ends != 2 {
		t.Fatalf("end fired %v times over two sessions, expected 2", ends)
	}
}

func TestLoopStops(t *testing.T) {
	l := NewLoop(1000)
	ticks := 0
	done := make(chan struct{})
	go func() {
		l.Run(context.Background(), func(dt time.Duration) bool {
			ticks++
			return ticks < 5
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after tick returned false")
	}
	if ticks != 5 {
		t.Fatalf("ticks = %v, expected 5", ticks)
	}

	// Stop after the loop returned is safe
	l.Stop()
	l.Stop()
}

func TestLoopContextCancel(t *testing.T) {
	l := NewLoop(0)
	if l.Period != time.Second/60 {
		t.Fatalf("default period = %v", l.Period)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, func(dt time.Duration) bool { return true })
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop ignored context cancellation")
	}
}
