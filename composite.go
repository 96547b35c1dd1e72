package behaviortree

import "time"

const (
	// InfiniteChildren lifts the max-children cap.
	InfiniteChildren = -1

	noRunningChild = -1
)

// Composite owns an ordered list of children and remembers which child, if
// any, was left RUNNING on a previous tick. Selector and Sequence specialize
// its traversal primitives with their continue condition: FAILURE keeps a
// selector going, SUCCESS keeps a sequence going.
type Composite struct {
	children    []Node
	maxChildren int
	runningIdx  int
	ignoreError bool
}

func newComposite(children []Node) Composite {
	c := Composite{
		maxChildren: InfiniteChildren,
		runningIdx:  noRunningChild,
		ignoreError: true,
	}
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

// Children returns the live ordered child list.
func (c *Composite) Children() []Node {
	return c.children
}

// AddChild appends one child. A nil child is ignored. Returns whether the
// append occurred; only the max-children cap rejects a non-nil child.
func (c *Composite) AddChild(child Node) bool {
	if child == nil {
		return false
	}
	if c.maxChildren != InfiniteChildren && len(c.children) >= c.maxChildren {
		return false
	}
	c.children = append(c.children, child)
	return true
}

// AddChildren appends a batch atomically. The batch is rejected as a whole,
// with no partial mutation, when it holds no nodes or would exceed the cap.
func (c *Composite) AddChildren(children []Node) bool {
	adding := 0
	for _, child := range children {
		if child != nil {
			adding++
		}
	}
	if adding == 0 {
		return false
	}
	if c.maxChildren != InfiniteChildren && len(c.children)+adding > c.maxChildren {
		return false
	}
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
	return true
}

// ClearChildren detaches all children. When cleanup is set the detached
// subtrees are reset before the references are dropped.
func (c *Composite) ClearChildren(cleanup bool) {
	if cleanup {
		for _, child := range c.children {
			child.Reset()
		}
	}
	c.children = nil
	c.runningIdx = noRunningChild
}

// SetMaxChildren caps the child count. n must not be 0; InfiniteChildren
// lifts the cap, growing always succeeds. Shrinking below the current child
// count drops the trailing children (resetting them when cleanup is set) and
// truncates the list. The running-child index is cleared if truncation puts
// it out of range.
func (c *Composite) SetMaxChildren(n int, cleanup bool) bool {
	if n == 0 || n < InfiniteChildren {
		return false
	}
	c.maxChildren = n
	if n == InfiniteChildren || len(c.children) <= n {
		return true
	}
	if cleanup {
		for _, child := range c.children[n:] {
			child.Reset()
		}
	}
	c.children = c.children[:n]
	if c.runningIdx >= n {
		c.runningIdx = noRunningChild
	}
	return true
}

// SetIgnoreError decides whether a child ERROR counts as this composite's
// continue condition (true, the default) or aborts the traversal. Set it at
// build time; traversal only reads it.
func (c *Composite) SetIgnoreError(ignore bool) {
	c.ignoreError = ignore
}

func (c *Composite) runningChildValid() bool {
	return c.runningIdx != noRunningChild && c.runningIdx < len(c.children)
}

// updateRunningChild polls only the remembered running child. RUNNING keeps
// the index; any other result clears it and sets start to the following
// index so the caller can resume normal iteration without re-polling earlier
// siblings.
func (c *Composite) updateRunningChild(delta time.Duration, start *int) Status {
	st := c.children[c.runningIdx].Update(delta)
	if st == StatusRunning {
		return st
	}
	*start = c.runningIdx + 1
	c.runningIdx = noRunningChild
	return st
}

// updateChildren iterates children from start. A result equal to
// continueStatus moves on to the next child; ERROR moves on only under the
// ignore-error policy; RUNNING records the index and returns; anything else
// terminates with that result. Exhausting the children yields continueStatus.
func (c *Composite) updateChildren(start int, delta time.Duration, continueStatus Status) Status {
	for i := start; i < len(c.children); i++ {
		st := c.children[i].Update(delta)
		switch {
		case st == continueStatus:
		case st == StatusError:
			if !c.ignoreError {
				return st
			}
		case st == StatusRunning:
			c.runningIdx = i
			return st
		default:
			return st
		}
	}
	return continueStatus
}

func (c *Composite) resetChildren() {
	c.runningIdx = noRunningChild
	for _, child := range c.children {
		child.Reset()
	}
}
