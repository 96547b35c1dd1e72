package behaviortree

import "time"

// Node is a single node in a behavior tree. Update advances the node by one
// tick and must always return a Status; it must be safe to call again after a
// terminal result. Reset clears any resumption or timing state so the next
// Update behaves as if the node had never been polled.
type Node interface {
	Update(delta time.Duration) Status
	Reset()
}

// Condition evaluates a boolean predicate.
type Condition struct {
	Fn func() bool
}

func (c *Condition) Update(time.Duration) Status {
	if c.Fn == nil {
		return StatusError
	}
	if c.Fn() {
		return StatusSuccess
	}
	return StatusFailure
}

func (c *Condition) Reset() {}

// Action executes an application callback and returns its status.
type Action struct {
	Fn func(delta time.Duration) Status
}

func (a *Action) Update(delta time.Duration) Status {
	if a.Fn == nil {
		return StatusError
	}
	return a.Fn(delta)
}

func (a *Action) Reset() {}

// Tree wraps the root node. The application polls it once per tick.
type Tree struct {
	Root Node
}

// Update runs one tick of the tree. A missing root is a structural error.
func (t *Tree) Update(delta time.Duration) Status {
	if t.Root == nil {
		return StatusError
	}
	return t.Root.Update(delta)
}

// Reset restarts the whole tree.
func (t *Tree) Reset() {
	if t.Root != nil {
		t.Root.Reset()
	}
}
