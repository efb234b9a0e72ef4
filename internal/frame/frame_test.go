package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHost struct {
	requests int
}

func (h *countingHost) RequestFrame() {
	h.requests++
}

func counter(limit int, seen *[]int) TaskFunc {
	n := 0
	return func() bool {
		n++
		*seen = append(*seen, n)
		return n >= limit
	}
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestRunsUntilDone(t *testing.T) {
	host := &countingHost{}
	s := NewScheduler(host)

	var seen []int
	h := s.Schedule(counter(3, &seen))
	assert.True(t, s.Pending())
	assert.Equal(t, 1, host.requests)

	for i := 0; i < 10; i++ {
		s.Tick()
	}

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 3, h.Frames())
	assert.True(t, closed(h.Done()))
	assert.NoError(t, h.Err())
	assert.False(t, s.Pending())
	assert.Nil(t, s.Active())
	// one request from Schedule, one after each unfinished frame
	assert.Equal(t, 3, host.requests)
}

func TestTickWithoutTask(t *testing.T) {
	s := NewScheduler(&countingHost{})
	assert.False(t, s.Tick())
}

func TestPreemption(t *testing.T) {
	s := NewScheduler(&countingHost{})

	var a, b []int
	ha := s.Schedule(counter(10, &a))
	s.Tick()
	s.Tick()

	hb := s.Schedule(counter(2, &b))
	require.True(t, closed(ha.Done()))
	assert.ErrorIs(t, ha.Err(), ErrCancelled)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	assert.Equal(t, []int{1, 2}, a, "preempted task never runs again")
	assert.Equal(t, []int{1, 2}, b)
	assert.NoError(t, hb.Err())
}

func TestCancel(t *testing.T) {
	s := NewScheduler(&countingHost{})

	var seen []int
	h := s.Schedule(counter(5, &seen))
	s.Tick()
	h.Cancel()
	h.Cancel()

	assert.False(t, s.Pending())
	assert.False(t, s.Tick())
	assert.Equal(t, []int{1}, seen)
	assert.ErrorIs(t, h.Err(), ErrCancelled)
}

func TestCancelStaleHandle(t *testing.T) {
	s := NewScheduler(&countingHost{})

	var a, b []int
	ha := s.Schedule(counter(5, &a))
	hb := s.Schedule(counter(5, &b))

	// cancelling the replaced handle leaves the new one alone
	ha.Cancel()
	assert.Same(t, hb, s.Active())
	s.Tick()
	assert.Equal(t, []int{1}, b)
}

func TestCancelFromTask(t *testing.T) {
	s := NewScheduler(&countingHost{})

	var h *Handle
	runs := 0
	h = s.Schedule(TaskFunc(func() bool {
		runs++
		h.Cancel()
		return false
	}))
	s.Tick()
	s.Tick()

	assert.Equal(t, 1, runs)
	assert.ErrorIs(t, h.Err(), ErrCancelled)
}
