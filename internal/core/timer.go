package core

import "time"

// FixedStep paces search advances at a steady rate independent of the frame
// rate. Each tick that is due grants one batch of advances.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given ticks
// per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Due reports how many ticks have elapsed since the previous call, capped at
// limit so a stalled frame does not trigger a burst.
func (f *FixedStep) Due(limit int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && (limit <= 0 || n < limit) {
		f.accumulator -= f.step
		n++
	}
	if limit > 0 && n == limit && f.accumulator > f.step {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether at least one tick is due.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(1) > 0
}
