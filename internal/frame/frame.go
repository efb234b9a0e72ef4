// Package frame drives per-frame work from the host's refresh signal.
//
// A Scheduler has a single slot. Schedule installs a task in it and asks
// the host for a refresh; every Tick runs the task once, and the scheduler
// keeps asking for refreshes until the task reports it is done. Installing a
// new task cancels the one already in the slot.
package frame

import (
	"errors"
	"sync"
)

// ErrCancelled is reported by a Handle whose task was cancelled or replaced
// before it finished.
var ErrCancelled = errors.New("frame task cancelled")

// Host produces visual refreshes. RequestFrame asks for one more refresh
// after the current one; it must not block.
type Host interface {
	RequestFrame()
}

// Task is run once per refresh until it returns true.
type Task interface {
	Frame() (done bool)
}

type TaskFunc func() bool

func (f TaskFunc) Frame() bool {
	return f()
}

// Handle refers to a scheduled task.
type Handle struct {
	s      *Scheduler
	task   Task
	frames int
	done   chan struct{}
	err    error
}

// Cancel removes the task from its scheduler if it is still installed.
// It is safe to call more than once and after completion.
func (h *Handle) Cancel() {
	h.s.cancel(h)
}

// Done is closed once the task has finished or been cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns nil if the task ran to completion and ErrCancelled if it was
// cancelled or preempted. It is only meaningful after Done is closed.
func (h *Handle) Err() error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.err
}

// Frames returns how many times the task has run.
func (h *Handle) Frames() int {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.frames
}

type Scheduler struct {
	mu        sync.Mutex
	host      Host
	current   *Handle
	requested bool
}

func NewScheduler(host Host) *Scheduler {
	return &Scheduler{host: host}
}

// Schedule installs task, cancelling any task already installed, and
// requests a frame for it.
func (s *Scheduler) Schedule(task Task) *Handle {
	h := &Handle{
		s:    s,
		task: task,
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.current != nil {
		s.finish(s.current, ErrCancelled)
	}
	s.current = h
	s.requested = true
	s.mu.Unlock()

	s.host.RequestFrame()
	return h
}

// Tick runs the installed task once if a frame was requested for it. It
// must be called from the render thread, once per host refresh. It returns
// true when a task ran.
func (s *Scheduler) Tick() bool {
	s.mu.Lock()
	h := s.current
	if h == nil || !s.requested {
		s.mu.Unlock()
		return false
	}
	s.requested = false
	s.mu.Unlock()

	done := h.task.Frame()

	s.mu.Lock()
	h.frames++
	if s.current != h {
		// cancelled or replaced while running
		s.mu.Unlock()
		return true
	}
	if done {
		s.finish(h, nil)
		s.current = nil
		s.mu.Unlock()
		return true
	}
	s.requested = true
	s.mu.Unlock()

	s.host.RequestFrame()
	return true
}

// Pending reports whether the next refresh will run a task.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.requested
}

// Active returns the installed handle, or nil.
func (s *Scheduler) Active() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Scheduler) cancel(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != h {
		return
	}
	s.finish(h, ErrCancelled)
	s.current = nil
	s.requested = false
}

// finish must be called with s.mu held.
func (s *Scheduler) finish(h *Handle, err error) {
	select {
	case <-h.done:
		return
	default:
	}
	h.err = err
	close(h.done)
}
