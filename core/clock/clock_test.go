package clock

import (
	"testing"
	"time"
)

func TestStopwatchElapsedSeconds(t *testing.T) {
	fake := NewFake()
	s := NewStopwatch(fake)
	if s.ElapsedSeconds() != 0 || s.Started() {
		t.Fatalf("unstarted stopwatch reports time")
	}
	s.Start()
	fake.Advance(999 * time.Millisecond)
	if got := s.ElapsedSeconds(); got != 0 {
		t.Fatalf("elapsed=%d want 0", got)
	}
	fake.Advance(time.Millisecond)
	if got := s.ElapsedSeconds(); got != 1 {
		t.Fatalf("elapsed=%d want 1", got)
	}
	fake.Advance(7 * time.Second)
	if got := s.ElapsedSeconds(); got != 8 {
		t.Fatalf("elapsed=%d want 8", got)
	}
}

func TestDeadlineFiresOnce(t *testing.T) {
	fake := NewFake()
	var d Deadline
	if d.Expired(fake.Now()) {
		t.Fatalf("unarmed deadline expired")
	}
	d.Arm(fake.Now(), 400*time.Millisecond)
	fake.Advance(399 * time.Millisecond)
	if d.Expired(fake.Now()) {
		t.Fatalf("expired early")
	}
	if r := d.Remaining(fake.Now()); r != time.Millisecond {
		t.Fatalf("remaining=%v want 1ms", r)
	}
	fake.Advance(time.Millisecond)
	if !d.Expired(fake.Now()) {
		t.Fatalf("did not expire at deadline")
	}
	if d.Expired(fake.Now()) || d.Active() {
		t.Fatalf("deadline fired twice")
	}
}

func TestSystemClockMoves(t *testing.T) {
	a := System.Now()
	time.Sleep(time.Millisecond)
	if !System.Now().After(a) {
		t.Fatalf("system clock did not advance")
	}
}
