package behaviortree

import "time"

// TimeLimit gives its child a time budget. The child is polled every tick;
// if it is still RUNNING once the accumulated delta reaches duration, the
// decorator forces FAILURE and rearms. A terminal child result inside the
// budget is returned as-is and also rearms the timer. The child itself is
// not reset on timeout; restarting an abandoned subtree is the caller's job.
type TimeLimit struct {
	Decorator
	duration time.Duration
	elapsed  time.Duration
}

func NewTimeLimit(child Node, duration time.Duration) *TimeLimit {
	t := &TimeLimit{duration: duration}
	t.child = child
	return t
}

func (t *TimeLimit) Update(delta time.Duration) Status {
	if t.child == nil {
		return StatusError
	}
	st := t.child.Update(delta)
	if st != StatusRunning {
		t.elapsed = 0
		return st
	}
	t.elapsed += delta
	if t.elapsed >= t.duration {
		t.elapsed = 0
		return StatusFailure
	}
	return StatusRunning
}

func (t *TimeLimit) Reset() {
	t.elapsed = 0
	t.Decorator.Reset()
}
