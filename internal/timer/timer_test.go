package timer

import (
	"testing"
	"time"
)

func TestTimerFiresOnce(t *testing.T) {
	fired := make(chan struct{}, 2)
	tm := New(10*time.Millisecond, func() { fired <- struct{}{} })
	tm.Start()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("countdown never fired")
	}

	// Re-starting an expired countdown must not rearm it.
	tm.Start()
	select {
	case <-fired:
		t.Fatal("expired countdown fired again")
	case <-time.After(50 * time.Millisecond):
	}

	if tm.Running() {
		t.Error("expired countdown reports running")
	}
	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", tm.Remaining())
	}
}

func TestTimerPausePreventsExpiry(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := New(30*time.Millisecond, func() { fired <- struct{}{} })
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Pause()

	if tm.Running() {
		t.Error("paused countdown reports running")
	}
	remaining := tm.Remaining()
	if remaining <= 0 || remaining >= 30*time.Millisecond {
		t.Errorf("remaining = %v, want between 0 and 30ms", remaining)
	}

	select {
	case <-fired:
		t.Fatal("paused countdown fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestTimerResumeAfterPause(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := New(20*time.Millisecond, func() { fired <- struct{}{} })
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Pause()
	tm.Start()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("resumed countdown never fired")
	}
}

func TestTimerResetRearms(t *testing.T) {
	fired := make(chan struct{}, 2)
	tm := New(10*time.Millisecond, func() { fired <- struct{}{} })
	tm.Start()
	<-fired

	tm.Reset()
	if tm.Remaining() != 10*time.Millisecond {
		t.Errorf("remaining = %v, want 10ms after reset", tm.Remaining())
	}

	tm.Start()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("reset countdown never fired again")
	}
}

func TestTimerNilCallback(t *testing.T) {
	tm := New(5*time.Millisecond, nil)
	tm.Start()
	time.Sleep(20 * time.Millisecond)
	if tm.Running() {
		t.Error("countdown still running after expiry")
	}
}
