package core

import "time"

// FixedStep paces generation updates at a steady rate independent of how
// often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting ups updates per second. The
// first poll is always due.
func NewFixedStep(ups int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(ups)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the update rate. Non-positive values fall back to 60.
func (f *FixedStep) SetRate(ups int) {
	if ups <= 0 {
		ups = 60
	}
	f.step = time.Second / time.Duration(ups)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many steps have elapsed since the previous poll, capped at
// max so a stalled caller does not try to catch up indefinitely.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < max {
		f.accumulator -= f.step
		n++
	}
	if n == max && f.accumulator > f.step {
		f.accumulator = f.step
	}
	return n
}
