package behaviortree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeater_PollsExactlyNTimes(t *testing.T) {
	child := newScripted(StatusSuccess)
	r := NewRepeater(child, 5)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 5, child.polls)
}

func TestRepeater_AbsorbsFailures(t *testing.T) {
	child := newScripted(StatusFailure, StatusSuccess, StatusFailure)
	r := NewRepeater(child, 3)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 3, child.polls)
}

func TestRepeater_RunningStopsLoop(t *testing.T) {
	child := newScripted(StatusSuccess, StatusRunning)
	r := NewRepeater(child, 10)

	assert.Equal(t, StatusRunning, r.Update(0))
	assert.Equal(t, 2, child.polls)
}

func TestRepeater_ErrorStopsLoop(t *testing.T) {
	child := newScripted(StatusError)
	r := NewRepeater(child, 10)

	assert.Equal(t, StatusError, r.Update(0))
	assert.Equal(t, 1, child.polls)
}

func TestRepeater_ZeroRepeats(t *testing.T) {
	child := newScripted(StatusSuccess)
	r := NewRepeater(child, 0)

	assert.Equal(t, StatusError, r.Update(0))
	assert.Equal(t, 0, child.polls)
}

func TestRepeater_InfiniteCoercedToZero(t *testing.T) {
	r := NewRepeater(newScripted(StatusSuccess), RepeatInfinite)
	assert.Equal(t, 0, r.Repeat())
	assert.Equal(t, StatusError, r.Update(0))
}

func TestRepeater_NilChild(t *testing.T) {
	assert.Equal(t, StatusError, NewRepeater(nil, 3).Update(0))
}

func TestRepeatUntil_TargetReached(t *testing.T) {
	child := newScripted(StatusFailure, StatusFailure, StatusSuccess)
	r := NewRepeatUntil(child, 5, StatusSuccess)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 3, child.polls)
}

func TestRepeatUntil_Exhausted(t *testing.T) {
	child := newScripted(StatusFailure)
	r := NewRepeatUntil(child, 4, StatusSuccess)

	assert.Equal(t, StatusFailure, r.Update(0))
	assert.Equal(t, 4, child.polls)
}

func TestRepeatUntil_ZeroRepeats(t *testing.T) {
	r := NewRepeatUntil(newScripted(StatusSuccess), 0, StatusSuccess)
	assert.Equal(t, StatusError, r.Update(0))
}

func TestRepeatUntil_Infinite(t *testing.T) {
	child := newScripted(StatusFailure, StatusFailure, StatusFailure, StatusSuccess)
	r := NewRepeatUntil(child, RepeatInfinite, StatusSuccess)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 4, child.polls)
}

func TestRepeatUntil_NegativeCoercedToZero(t *testing.T) {
	r := NewRepeatUntil(newScripted(StatusSuccess), -5, StatusSuccess)
	assert.Equal(t, 0, r.Repeat())
	assert.Equal(t, StatusError, r.Update(0))
}

func TestRepeatUntil_NilChild(t *testing.T) {
	assert.Equal(t, StatusError, NewRepeatUntil(nil, 3, StatusSuccess).Update(0))
}

func TestRepeatUntilFail_SucceedsOnFailure(t *testing.T) {
	child := newScripted(StatusSuccess, StatusSuccess, StatusFailure)
	r := NewRepeatUntilFail(child, 5)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 3, child.polls)
}

func TestRepeatUntilSuccess_SucceedsOnSuccess(t *testing.T) {
	child := newScripted(StatusFailure, StatusSuccess)
	r := NewRepeatUntilSuccess(child, 5)

	assert.Equal(t, StatusSuccess, r.Update(0))
	assert.Equal(t, 2, child.polls)
}
