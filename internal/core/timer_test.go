package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
	start := time.Unix(1000, 0)
	if !fs.ShouldStepAt(start) {
		t.Fatal("first call must step")
	}
	if fs.ShouldStepAt(start.Add(50 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.ShouldStepAt(start.Add(100 * time.Millisecond)) {
		t.Fatal("did not step after a full interval")
	}
	// A long stall yields one step now and at most one queued step.
	later := start.Add(5 * time.Second)
	if !fs.ShouldStepAt(later) || !fs.ShouldStepAt(later) || fs.ShouldStepAt(later) {
		t.Fatal("backlog after a stall must be capped at one extra step")
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", got)
	}
}
