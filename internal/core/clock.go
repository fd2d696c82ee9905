package core

import "time"

// FixedStep gates a fixed-duration tick against a monotonic clock. Hosts
// poll Due every frame and run one simulation tick each time it returns
// true.
type FixedStep struct {
	Interval time.Duration
	last     time.Duration
	started  bool
}

// NewFixedStep creates a gate that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	return &FixedStep{Interval: interval}
}

// Start sets the reference time. The first tick is due one interval later.
func (f *FixedStep) Start(now time.Duration) {
	f.last = now
	f.started = true
}

// Due reports whether a tick should run at now. When it does, the
// reference time moves to now, so a stalled frame yields one tick rather
// than a burst.
func (f *FixedStep) Due(now time.Duration) bool {
	if !f.started {
		f.Start(now)
		return false
	}
	if now-f.last < f.Interval {
		return false
	}
	f.last = now
	return true
}
