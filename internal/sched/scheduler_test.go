package sched

import (
	"testing"
	"time"
)

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	calls := 0
	s.After(100*time.Millisecond, func() { calls++ })

	s.Advance(99 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired early: calls = %d", calls)
	}

	s.Advance(1 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected 1 call at due time, got %d", calls)
	}

	s.Advance(time.Second)
	if calls != 1 {
		t.Errorf("one-shot fired again: calls = %d", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after one-shot fired, expected 0", s.Len())
	}
}

func TestEveryRepeats(t *testing.T) {
	s := New()
	calls := 0
	s.Every(50*time.Millisecond, func() { calls++ })

	s.Advance(time.Second)
	if calls != 20 {
		t.Errorf("expected 20 calls in 1s at 50ms, got %d", calls)
	}
}

func TestCancelIsSynchronous(t *testing.T) {
	s := New()
	fired := false
	h := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Active(h) {
		t.Fatal("handle should be active after scheduling")
	}
	if !s.Cancel(h) {
		t.Fatal("Cancel() should report true for a pending task")
	}
	if s.Active(h) {
		t.Error("handle should be inactive after Cancel")
	}
	if s.Cancel(h) {
		t.Error("second Cancel() should report false")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
}

func TestCancelUnknownHandle(t *testing.T) {
	s := New()
	if s.Cancel(0) {
		t.Error("Cancel(0) should be false")
	}
	if s.Cancel(42) {
		t.Error("Cancel of unknown handle should be false")
	}
}

func TestOrderingAndClock(t *testing.T) {
	s := New()
	var order []string
	var at []time.Duration

	record := func(name string) func() {
		return func() {
			order = append(order, name)
			at = append(at, s.Now())
		}
	}

	s.After(30*time.Millisecond, record("c"))
	s.After(10*time.Millisecond, record("a"))
	s.After(20*time.Millisecond, record("b1"))
	s.After(20*time.Millisecond, record("b2"))

	if n := s.Advance(100 * time.Millisecond); n != 4 {
		t.Fatalf("Advance() fired %d, expected 4", n)
	}

	expected := []string{"a", "b1", "b2", "c"}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("order[%d] = %s, expected %s", i, order[i], name)
		}
	}

	expectedAt := []time.Duration{10, 20, 20, 30}
	for i, ms := range expectedAt {
		if at[i] != ms*time.Millisecond {
			t.Errorf("task %s saw Now() = %v, expected %v", order[i], at[i], ms*time.Millisecond)
		}
	}

	if s.Now() != 100*time.Millisecond {
		t.Errorf("Now() = %v after Advance, expected 100ms", s.Now())
	}
}

func TestCallbackCancelsOtherTask(t *testing.T) {
	s := New()
	secondFired := false
	var second Handle

	s.After(10*time.Millisecond, func() { s.Cancel(second) })
	second = s.After(20*time.Millisecond, func() { secondFired = true })

	s.Advance(time.Second)
	if secondFired {
		t.Error("task cancelled from a callback still fired")
	}
}

func TestRepeatingTaskCancelsItself(t *testing.T) {
	s := New()
	calls := 0
	var h Handle
	h = s.Every(10*time.Millisecond, func() {
		calls++
		if calls == 3 {
			s.Cancel(h)
		}
	})

	s.Advance(time.Second)
	if calls != 3 {
		t.Errorf("expected 3 calls before self-cancel, got %d", calls)
	}
	if s.Active(h) {
		t.Error("self-cancelled task still active")
	}
}

func TestCallbackSchedulesWithinSameAdvance(t *testing.T) {
	s := New()
	var nestedAt time.Duration

	s.After(10*time.Millisecond, func() {
		s.After(5*time.Millisecond, func() { nestedAt = s.Now() })
	})

	s.Advance(20 * time.Millisecond)
	if nestedAt != 15*time.Millisecond {
		t.Errorf("nested task ran at %v, expected 15ms", nestedAt)
	}
}

func TestNegativeDurations(t *testing.T) {
	s := New()
	fired := false
	s.After(-time.Second, func() { fired = true })

	s.Advance(-time.Second)
	if s.Now() != 0 {
		t.Errorf("negative Advance moved the clock to %v", s.Now())
	}
	if !fired {
		t.Error("past-due task should fire on the next Advance")
	}
}
