package behaviortree

import (
	"math/rand"
	"time"
)

// Selector polls its children in order until one does not fail (logical OR).
// The first non-failing child decides the result; if every child fails, the
// selector fails. A child left RUNNING is resumed on the next tick without
// re-polling earlier siblings.
type Selector struct {
	Composite
}

// NewSelector creates a Selector. Nil children are ignored.
func NewSelector(children ...Node) *Selector {
	return &Selector{Composite: newComposite(children)}
}

func (s *Selector) Update(delta time.Duration) Status {
	return s.update(delta)
}

// update holds the traversal shared with RandomSelector.
func (s *Selector) update(delta time.Duration) Status {
	if len(s.children) == 0 {
		return StatusError
	}
	start := 0
	if s.runningChildValid() {
		switch st := s.updateRunningChild(delta, &start); st {
		case StatusSuccess, StatusRunning:
			return st
		case StatusError:
			if !s.ignoreError {
				return st
			}
		}
		// FAILURE or ignorable ERROR: keep trying from the next index.
	}
	return s.updateChildren(start, delta, StatusFailure)
}

func (s *Selector) Reset() {
	s.resetChildren()
}

// RandomSelector shuffles its children before a fresh pass, then behaves as
// a Selector. The order is never reshuffled while a child is remembered
// RUNNING, so a multi-tick child is always resumed at its remembered index.
type RandomSelector struct {
	Selector
	rng         *rand.Rand
	needShuffle bool
}

// NewRandomSelector creates a RandomSelector seeded from the clock.
// Nil children are ignored.
func NewRandomSelector(children ...Node) *RandomSelector {
	return &RandomSelector{
		Selector:    Selector{Composite: newComposite(children)},
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		needShuffle: true,
	}
}

// Reseed makes the shuffle order reproducible.
func (s *RandomSelector) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *RandomSelector) Update(delta time.Duration) Status {
	if len(s.children) == 0 {
		return StatusError
	}
	if s.runningIdx == noRunningChild && s.needShuffle && len(s.children) > 1 {
		s.rng.Shuffle(len(s.children), func(i, j int) {
			s.children[i], s.children[j] = s.children[j], s.children[i]
		})
	}
	st := s.update(delta)
	s.needShuffle = st != StatusRunning
	return st
}

func (s *RandomSelector) Reset() {
	s.resetChildren()
	s.needShuffle = true
}
