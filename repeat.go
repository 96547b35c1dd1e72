package behaviortree

import "time"

// RepeatInfinite lifts the repeat bound of RepeatUntil. Repeater rejects it:
// an unconditional repeat-forever would never return from the calling tick.
const RepeatInfinite = -1

// Repeater polls its child up to n times within a single Update call, not
// across ticks. SUCCESS and FAILURE from the child are absorbed; RUNNING or
// ERROR stops the loop and is returned as-is. Completing all n iterations
// succeeds.
type Repeater struct {
	Decorator
	repeat int
}

// NewRepeater creates a Repeater. A negative n, RepeatInfinite included, is
// coerced to 0 and makes Update return StatusError.
func NewRepeater(child Node, n int) *Repeater {
	r := &Repeater{}
	r.child = child
	r.SetRepeat(n)
	return r
}

// SetRepeat replaces the repeat count. Negatives are coerced to 0.
func (r *Repeater) SetRepeat(n int) {
	if n < 0 {
		n = 0
	}
	r.repeat = n
}

// Repeat returns the configured repeat count.
func (r *Repeater) Repeat() int {
	return r.repeat
}

func (r *Repeater) Update(delta time.Duration) Status {
	if r.child == nil {
		return StatusError
	}
	if r.repeat == 0 {
		return StatusError
	}
	for i := 0; i < r.repeat; i++ {
		st := r.child.Update(delta)
		if st == StatusSuccess || st == StatusFailure {
			continue
		}
		return st
	}
	return StatusSuccess
}

// RepeatUntil polls its child until it returns the target status, up to n
// times, or without bound when n is RepeatInfinite. Reaching the target
// succeeds; exhausting n tries fails. The unbounded form blocks the calling
// tick until the child cooperates, so isolate it on its own goroutine in a
// latency-sensitive loop.
type RepeatUntil struct {
	Decorator
	repeat int
	target Status
}

// NewRepeatUntil creates a RepeatUntil. Negative n other than RepeatInfinite
// is coerced to 0 and makes Update return StatusError.
func NewRepeatUntil(child Node, n int, target Status) *RepeatUntil {
	r := &RepeatUntil{target: target}
	r.child = child
	r.SetRepeat(n)
	return r
}

// NewRepeatUntilFail repeats until the child fails.
func NewRepeatUntilFail(child Node, n int) *RepeatUntil {
	return NewRepeatUntil(child, n, StatusFailure)
}

// NewRepeatUntilSuccess repeats until the child succeeds.
func NewRepeatUntilSuccess(child Node, n int) *RepeatUntil {
	return NewRepeatUntil(child, n, StatusSuccess)
}

// SetRepeat replaces the repeat count. RepeatInfinite is kept; any other
// negative is coerced to 0.
func (r *RepeatUntil) SetRepeat(n int) {
	if n < RepeatInfinite {
		n = 0
	}
	r.repeat = n
}

// Repeat returns the configured repeat count.
func (r *RepeatUntil) Repeat() int {
	return r.repeat
}

func (r *RepeatUntil) Update(delta time.Duration) Status {
	if r.child == nil {
		return StatusError
	}
	if r.repeat == 0 {
		return StatusError
	}
	if r.repeat == RepeatInfinite {
		for r.child.Update(delta) != r.target {
		}
		return StatusSuccess
	}
	for i := 0; i < r.repeat; i++ {
		if r.child.Update(delta) == r.target {
			return StatusSuccess
		}
	}
	return StatusFailure
}
