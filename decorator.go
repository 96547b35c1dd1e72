package behaviortree

import "time"

// Decorator wraps exactly one child and modifies its result or timing. A
// decorator without a child returns StatusError from every Update.
type Decorator struct {
	child Node
}

// SetChild replaces the wrapped child.
func (d *Decorator) SetChild(child Node) {
	d.child = child
}

// Child returns the wrapped child, nil if none.
func (d *Decorator) Child() Node {
	return d.child
}

func (d *Decorator) Reset() {
	if d.child != nil {
		d.child.Reset()
	}
}

// Inverter swaps SUCCESS and FAILURE. RUNNING and ERROR pass through.
type Inverter struct {
	Decorator
}

func NewInverter(child Node) *Inverter {
	i := &Inverter{}
	i.child = child
	return i
}

func (i *Inverter) Update(delta time.Duration) Status {
	if i.child == nil {
		return StatusError
	}
	switch st := i.child.Update(delta); st {
	case StatusSuccess:
		return StatusFailure
	case StatusFailure:
		return StatusSuccess
	default:
		return st
	}
}

// Succeeder polls its child, discards the result, and succeeds.
type Succeeder struct {
	Decorator
}

func NewSucceeder(child Node) *Succeeder {
	s := &Succeeder{}
	s.child = child
	return s
}

func (s *Succeeder) Update(delta time.Duration) Status {
	if s.child == nil {
		return StatusError
	}
	s.child.Update(delta)
	return StatusSuccess
}

// Failer polls its child, discards the result, and fails.
type Failer struct {
	Decorator
}

func NewFailer(child Node) *Failer {
	f := &Failer{}
	f.child = child
	return f
}

func (f *Failer) Update(delta time.Duration) Status {
	if f.child == nil {
		return StatusError
	}
	f.child.Update(delta)
	return StatusFailure
}
