package clock

import "time"

// Fake is a manually advanced Clock for tests and replays.
type Fake struct {
	T time.Time
}

func NewFake() *Fake {
	return &Fake{T: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *Fake) Now() time.Time { return f.T }

func (f *Fake) Advance(d time.Duration) { f.T = f.T.Add(d) }
