package core

import "time"

// FixedStep paces simulation updates at a fixed interval independent of the
// frame rate that polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step interval. Non-positive values fall back to one
// second. Time already accumulated is kept.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time; the next step is due one full interval after
// the following poll.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one step at now.
// At most one step is reported per call, so a stalled caller never bursts.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
