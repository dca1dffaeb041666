// Package timer is the countdown collaborator for timed speech and
// discussion steps. The engine treats expiry as equivalent to a
// manual confirm; the callback fires at most once per countdown and
// carries no special concurrency semantics.
package timer

import (
	"sync"
	"time"
)

// Timer is a pausable one-shot countdown.
type Timer struct {
	mu        sync.Mutex
	initial   time.Duration
	remaining time.Duration
	startedAt time.Time
	running   bool
	fired     bool
	t         *time.Timer
	onExpire  func()
}

// New creates a stopped countdown. onExpire may be nil.
func New(initial time.Duration, onExpire func()) *Timer {
	return &Timer{
		initial:   initial,
		remaining: initial,
		onExpire:  onExpire,
	}
}

// Start begins or resumes the countdown. Starting a running or
// expired countdown is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.fired || t.remaining <= 0 {
		return
	}
	t.running = true
	t.startedAt = time.Now()
	t.t = time.AfterFunc(t.remaining, t.expire)
}

// Pause suspends the countdown, keeping the remaining duration.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.t.Stop()
	t.remaining -= time.Since(t.startedAt)
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.running = false
}

// Reset stops the countdown and restores the initial duration, arming
// the expiry callback again.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.t.Stop()
	}
	t.running = false
	t.fired = false
	t.remaining = t.initial
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return t.remaining
	}
	left := t.remaining - time.Since(t.startedAt)
	if left < 0 {
		left = 0
	}
	return left
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) expire() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	t.running = false
	t.remaining = 0
	callback := t.onExpire
	t.mu.Unlock()

	if callback != nil {
		callback()
	}
}
