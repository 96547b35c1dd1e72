package behaviortree

import "time"

// Limiter lets its child execute at most limit times over the decorator's
// lifetime. The counter persists across ticks; once spent, every further
// Update fails without polling the child. Only an explicit Reset restores
// the budget.
type Limiter struct {
	Decorator
	limit int
	count int
}

func NewLimiter(child Node, limit int) *Limiter {
	l := &Limiter{limit: limit}
	l.child = child
	return l
}

func (l *Limiter) Update(delta time.Duration) Status {
	if l.child == nil {
		return StatusError
	}
	if l.count < l.limit {
		l.count++
		return l.child.Update(delta)
	}
	return StatusFailure
}

func (l *Limiter) Reset() {
	l.count = 0
	l.Decorator.Reset()
}
