// Package debounce provides a cancellable debounce timer.
package debounce

import (
	"sync"
	"time"
)

// Timer delays a call until triggers have paused for the configured delay.
// Every Trigger replaces the pending call, only the latest one ever fires.
type Timer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// New makes a new debounce Timer.
func New(delay time.Duration) *Timer {
	return &Timer{delay: delay}
}

// Trigger schedules fn to run after the delay, cancelling the pending one.
func (t *Timer) Trigger(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	gen := t.gen

	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		// a timer that fired concurrently with Stop or Trigger is outdated
		fire := gen == t.gen
		if fire {
			t.timer = nil
		}
		t.mu.Unlock()

		if fire {
			fn()
		}
	})
}

// Stop cancels the pending call, if any.
// Returns true if a pending call was cancelled.
func (t *Timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopLocked()
}

func (t *Timer) stopLocked() bool {
	t.gen++
	if t.timer == nil {
		return false
	}
	t.timer.Stop()
	t.timer = nil
	return true
}
