package clock

import "time"

// Clock is the engine's time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System reads the wall clock.
var System Clock = systemClock{}

// Stopwatch measures time since Start against a Clock.
type Stopwatch struct {
	clock Clock
	start time.Time
}

func NewStopwatch(c Clock) *Stopwatch {
	return &Stopwatch{clock: c}
}

// Start resets the origin to the current time.
func (s *Stopwatch) Start() { s.start = s.clock.Now() }

// Started reports whether Start has been called.
func (s *Stopwatch) Started() bool { return !s.start.IsZero() }

// Elapsed is zero until Start is called.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return s.clock.Now().Sub(s.start)
}

// ElapsedSeconds truncates Elapsed to whole seconds.
func (s *Stopwatch) ElapsedSeconds() int {
	return int(s.Elapsed().Milliseconds() / 1000)
}

// Deadline is a one-shot timer polled once per frame.
type Deadline struct {
	at     time.Time
	active bool
}

// Arm sets the deadline d after now.
func (d *Deadline) Arm(now time.Time, after time.Duration) {
	d.at = now.Add(after)
	d.active = true
}

func (d *Deadline) Active() bool { return d.active }

// Expired reports, once, that now has reached the armed deadline.
func (d *Deadline) Expired(now time.Time) bool {
	if !d.active || now.Before(d.at) {
		return false
	}
	d.active = false
	return true
}

// Remaining is the time left before the deadline, or zero.
func (d *Deadline) Remaining(now time.Time) time.Duration {
	if !d.active {
		return 0
	}
	if r := d.at.Sub(now); r > 0 {
		return r
	}
	return 0
}
