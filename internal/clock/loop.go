package clock

import (
	"context"
	"sync"
	"time"
)

// Loop calls a tick function at a fixed rate with the monotonic time since the
// previous tick. It is the host side of Driver.Advance.
type Loop struct {
	Period time.Duration

	stop chan struct{}
	once sync.Once
	now  func() time.Time
}

func NewLoop(rate float64) *Loop {
	if rate <= 0 {
		rate = 60
	}
	return &Loop{
		Period: time.Duration(float64(time.Second) / rate),
		stop:   make(chan struct{}),
		now:    time.Now,
	}
}

// Run blocks until the context is done, Stop is called or tick returns false
func (l *Loop) Run(ctx context.Context, tick func(dt time.Duration) bool) {
	ticker := time.NewTicker(l.Period)
	defer ticker.Stop()

	last := l.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stop:
			return
		case <-ticker.C:
			now := l.now()
			dt := now.Sub(last)
			last = now
			if !tick(dt) {
				return
			}
		}
	}
}

// Stop ends Run. Calling it again, or after Run returned, does nothing.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.stop)
	})
}
