package behaviortree

import "time"

// DelayTime gates its child behind a delay. While the accumulated delta is
// below duration it returns RUNNING without polling the child. Once the
// delay has elapsed the child is polled each tick until it settles on a
// terminal result, which is cached and returned. With once unset the timer
// rearms after a terminal result so the whole cycle repeats; with once set
// the decorator stays parked on the cached result.
type DelayTime struct {
	Decorator
	duration time.Duration
	once     bool
	elapsed  time.Duration
	finished bool
	result   Status
}

func NewDelayTime(child Node, duration time.Duration, once bool) *DelayTime {
	d := &DelayTime{duration: duration, once: once, result: statusNone}
	d.child = child
	return d
}

func (d *DelayTime) Update(delta time.Duration) Status {
	if d.child == nil {
		return StatusError
	}
	if d.elapsed < d.duration {
		d.elapsed += delta
		return StatusRunning
	}
	if !d.finished {
		d.result = d.child.Update(delta)
		if d.result != StatusRunning {
			d.finished = true
			if !d.once {
				// Rearm; the cached result is still returned for this tick.
				d.elapsed = 0
				d.finished = false
			}
		}
	}
	return d.result
}

func (d *DelayTime) Reset() {
	d.elapsed = 0
	d.finished = false
	d.result = statusNone
	d.Decorator.Reset()
}
