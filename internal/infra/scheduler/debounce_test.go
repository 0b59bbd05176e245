package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesTriggers(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() {
		calls.Add(1)
	})
	defer d.Stop()

	d.Trigger()
	d.Trigger()
	d.Trigger()

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single invocation after burst, got %d", got)
	}
}

func TestDebouncerFlushRunsImmediatelyAndCancelsTimer(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour, func() {
		calls.Add(1)
	})
	defer d.Stop()

	d.Trigger()
	d.Flush()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected flush to invoke immediately, got %d calls", got)
	}

	// The pending timer must have been cancelled by the flush.
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected no further invocation after flush, got %d calls", got)
	}
}

func TestDebouncerStopCancelsWithoutRunning(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() {
		calls.Add(1)
	})

	d.Trigger()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no invocation after stop, got %d calls", got)
	}
}
