package behaviortree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_EmptyUpdateErrors(t *testing.T) {
	assert.Equal(t, StatusError, NewSelector().Update(0))
	assert.Equal(t, StatusError, NewSequence().Update(0))
	assert.Equal(t, StatusError, NewRandomSelector().Update(0))
	assert.Equal(t, StatusError, NewRandomSequence().Update(0))
}

func TestAddChild_IgnoresNil(t *testing.T) {
	s := NewSelector()
	assert.False(t, s.AddChild(nil))
	assert.Empty(t, s.Children())
}

func TestAddChild_RejectedByCap(t *testing.T) {
	s := NewSelector()
	require.True(t, s.SetMaxChildren(2, false))

	assert.True(t, s.AddChild(newScripted(StatusFailure)))
	assert.True(t, s.AddChild(newScripted(StatusFailure)))
	assert.False(t, s.AddChild(newScripted(StatusFailure)))
	assert.Len(t, s.Children(), 2)
}

func TestAddChildren_RejectsEmptyBatch(t *testing.T) {
	s := NewSequence()
	assert.False(t, s.AddChildren(nil))
	assert.False(t, s.AddChildren([]Node{nil, nil}))
	assert.Empty(t, s.Children())
}

func TestAddChildren_AtomicUnderCap(t *testing.T) {
	s := NewSequence()
	require.True(t, s.SetMaxChildren(2, false))
	require.True(t, s.AddChild(newScripted(StatusSuccess)))

	// Batch of two would exceed the cap: no partial mutation.
	batch := []Node{newScripted(StatusSuccess), newScripted(StatusSuccess)}
	assert.False(t, s.AddChildren(batch))
	assert.Len(t, s.Children(), 1)

	assert.True(t, s.AddChildren([]Node{newScripted(StatusSuccess)}))
	assert.Len(t, s.Children(), 2)
}

func TestAddChildren_SkipsNilEntries(t *testing.T) {
	s := NewSelector()
	a, b := newScripted(StatusFailure), newScripted(StatusFailure)
	assert.True(t, s.AddChildren([]Node{a, nil, b}))

	children := s.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0].(*scripted))
	assert.Same(t, b, children[1].(*scripted))
}

func TestSetMaxChildren_ZeroRejected(t *testing.T) {
	s := NewSelector()
	assert.False(t, s.SetMaxChildren(0, false))
	assert.False(t, s.SetMaxChildren(-7, false))
	assert.True(t, s.SetMaxChildren(InfiniteChildren, false))
	assert.True(t, s.SetMaxChildren(3, false))
}

func TestSetMaxChildren_ShrinkTruncatesAndResets(t *testing.T) {
	kept1 := newScripted(StatusFailure)
	kept2 := newScripted(StatusFailure)
	dropped := newScripted(StatusFailure)
	s := NewSelector(kept1, kept2, dropped)

	assert.True(t, s.SetMaxChildren(2, true))
	assert.Len(t, s.Children(), 2)
	assert.Equal(t, 1, dropped.resets)
	assert.Equal(t, 0, kept1.resets)
	assert.Equal(t, 0, kept2.resets)
}

func TestSetMaxChildren_ShrinkWithoutCleanupDetachesOnly(t *testing.T) {
	dropped := newScripted(StatusFailure)
	s := NewSelector(newScripted(StatusFailure), dropped)

	assert.True(t, s.SetMaxChildren(1, false))
	assert.Len(t, s.Children(), 1)
	assert.Equal(t, 0, dropped.resets)
}

func TestSetMaxChildren_ClearsOutOfRangeRunningIndex(t *testing.T) {
	first := newScripted(StatusFailure)
	running := newScripted(StatusRunning, StatusRunning)
	s := NewSelector(first, running)

	require.Equal(t, StatusRunning, s.Update(0))

	// Truncation drops the remembered running child; the next pass starts
	// from the beginning instead of resuming a stale index.
	require.True(t, s.SetMaxChildren(1, false))
	assert.Equal(t, StatusFailure, s.Update(0))
	assert.Equal(t, 2, first.polls)
	assert.Equal(t, 1, running.polls)
}

func TestClearChildren_ResetsWhenCleanup(t *testing.T) {
	a, b := newScripted(StatusSuccess), newScripted(StatusSuccess)
	s := NewSequence(a, b)

	s.ClearChildren(true)
	assert.Empty(t, s.Children())
	assert.Equal(t, 1, a.resets)
	assert.Equal(t, 1, b.resets)
	assert.Equal(t, StatusError, s.Update(0))
}

func TestClearChildren_DetachOnly(t *testing.T) {
	a := newScripted(StatusSuccess)
	s := NewSequence(a)

	s.ClearChildren(false)
	assert.Empty(t, s.Children())
	assert.Equal(t, 0, a.resets)
}

func TestComposite_ResetCascades(t *testing.T) {
	a := newScripted(StatusRunning)
	b := newScripted(StatusFailure)
	s := NewSelector(b, a)

	require.Equal(t, StatusRunning, s.Update(0))
	s.Reset()

	assert.Equal(t, 1, a.resets)
	assert.Equal(t, 1, b.resets)

	// The remembered running child is forgotten: iteration starts over.
	require.Equal(t, StatusRunning, s.Update(0))
	assert.Equal(t, 2, b.polls)
}
