package behaviortree

import (
	"math/rand"
	"time"
)

// Sequence polls its children in order until one does not succeed (logical
// AND). The first non-succeeding child decides the result; if every child
// succeeds, the sequence succeeds. A resumed child that succeeds lets the
// sequence continue from the following sibling without re-polling earlier
// ones.
type Sequence struct {
	Composite
}

// NewSequence creates a Sequence. Nil children are ignored.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{Composite: newComposite(children)}
}

func (s *Sequence) Update(delta time.Duration) Status {
	return s.update(delta)
}

// update holds the traversal shared with RandomSequence.
func (s *Sequence) update(delta time.Duration) Status {
	if len(s.children) == 0 {
		return StatusError
	}
	start := 0
	if s.runningChildValid() {
		switch st := s.updateRunningChild(delta, &start); st {
		case StatusFailure, StatusRunning:
			return st
		case StatusError:
			if !s.ignoreError {
				return st
			}
		}
		// SUCCESS or ignorable ERROR: keep going from the next index.
	}
	return s.updateChildren(start, delta, StatusSuccess)
}

func (s *Sequence) Reset() {
	s.resetChildren()
}

// RandomSequence shuffles its children before a fresh pass, then behaves as
// a Sequence. Shuffling is suppressed while a child is remembered RUNNING,
// exactly as in RandomSelector.
type RandomSequence struct {
	Sequence
	rng         *rand.Rand
	needShuffle bool
}

// NewRandomSequence creates a RandomSequence seeded from the clock.
// Nil children are ignored.
func NewRandomSequence(children ...Node) *RandomSequence {
	return &RandomSequence{
		Sequence:    Sequence{Composite: newComposite(children)},
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		needShuffle: true,
	}
}

// Reseed makes the shuffle order reproducible.
func (s *RandomSequence) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *RandomSequence) Update(delta time.Duration) Status {
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

func (s *RandomSequence) Reset() {
	s.resetChildren()
	s.needShuffle = true
}
