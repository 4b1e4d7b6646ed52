package clock

import "time"

// Driver is the only source of game time. Hosts call Advance with the time that has
// passed since the previous call; nothing in the game samples the wall clock.
type Driver struct {
	Duration float64 // Session length in seconds

	elapsed float64
	running bool
	ended   bool
	onEnd   func()
}

func NewDriver(duration float64, onEnd func()) *Driver {
	return &Driver{Duration: duration, onEnd: onEnd}
}

// Start rewinds to zero and begins counting
func (d *Driver) Start() {
	d.elapsed = 0
	d.running = true
	d.ended = false
}

// Stop halts the driver without firing the end callback, it is safe to call repeatedly
func (d *Driver) Stop() {
	d.running = false
}

// Reset stops and rewinds
func (d *Driver) Reset() {
	d.Stop()
	d.elapsed = 0
	d.ended = false
}

// Advance moves game time forward by dt seconds. Reaching the duration stops the
// driver and fires the end callback, exactly once per Start.
func (d *Driver) Advance(dt float64) {
	if !d.running || dt <= 0 {
		return
	}
	d.elapsed += dt
	if d.elapsed >= d.Duration {
		d.running = false
		if !d.ended {
			d.ended = true
			if nil != d.onEnd {
				d.onEnd()
			}
		}
	}
}

// AdvanceDuration is Advance for time.Duration deltas
func (d *Driver) AdvanceDuration(dt time.Duration) {
	d.Advance(dt.Seconds())
}

func (d *Driver) Elapsed() float64 {
	return d.elapsed
}

func (d *Driver) Running() bool {
	return d.running
}

func (d *Driver) Ended() bool {
	return d.ended
}

// Progress is elapsed over duration, clamped to [0, 1]
func (d *Driver) Progress() float64 {
	if d.Duration <= 0 {
		return 1
	}
	p := d.elapsed / d.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Remaining seconds, never negative
func (d *Driver) Remaining() float64 {
	r := d.Duration - d.elapsed
	if r < 0 {
		return 0
	}
	return r
}
