package behaviortree

import "time"

// Locker holds a terminal child result for a duration. The child is polled
// until it settles on SUCCESS or FAILURE; the result is then locked and the
// decorator returns RUNNING until duration has accumulated, at which point
// the result is released and the lock rearms. ERROR passes through
// immediately without locking.
type Locker struct {
	Decorator
	duration time.Duration
	elapsed  time.Duration
	result   Status
}

func NewLocker(child Node, duration time.Duration) *Locker {
	l := &Locker{duration: duration, result: statusNone}
	l.child = child
	return l
}

func (l *Locker) Update(delta time.Duration) Status {
	if l.child == nil {
		return StatusError
	}
	// statusNone means a fresh execution, RUNNING a pending one; either way
	// the child still owes a result.
	if l.result == statusNone || l.result == StatusRunning {
		l.result = l.child.Update(delta)
	}
	switch l.result {
	case StatusRunning:
		return StatusRunning
	case StatusError:
		l.elapsed = 0
		l.result = statusNone
		return StatusError
	}
	l.elapsed += delta
	if l.elapsed < l.duration {
		return StatusRunning
	}
	released := l.result
	l.elapsed = 0
	l.result = statusNone
	return released
}

func (l *Locker) Reset() {
	l.elapsed = 0
	l.result = statusNone
	l.Decorator.Reset()
}
