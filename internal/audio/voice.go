package audio

import "math"

const sampleRate = 44100

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// Cue names a sound played in response to a game event.
type Cue int

const (
	CueFlip Cue = iota
	CueMatch
	CueMiss
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueFlip:
		return "flip"
	case CueMatch:
		return "match"
	case CueMiss:
		return "miss"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

type note struct {
	freq   float64
	millis int
	square bool
}

var cueNotes = map[Cue][]note{
	CueFlip:  {{freq: 880, millis: 60}},
	CueMatch: {{freq: 660, millis: 80}, {freq: 990, millis: 120}},
	CueMiss:  {{freq: 220, millis: 180, square: true}},
	CueWin:   {{freq: 523, millis: 120}, {freq: 659, millis: 120}, {freq: 784, millis: 120}, {freq: 1047, millis: 300}},
}

// NewCueVoice returns a fresh voice for c, or nil for an unknown cue.
func NewCueVoice(c Cue, rate int) Voice {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	return &melody{notes: notes, rate: rate}
}

// melody plays notes back to back, each with an exponential decay envelope.
type melody struct {
	notes []note
	rate  int
	idx   int
	pos   int
}

func (m *melody) Sample() (float64, bool) {
	if m.idx >= len(m.notes) {
		return 0, true
	}
	n := m.notes[m.idx]
	length := m.rate * n.millis / 1000
	t := float64(m.pos) / float64(m.rate)
	env := math.Exp(-4 * float64(m.pos) / float64(length))
	v := math.Sin(2 * math.Pi * n.freq * t)
	if n.square {
		v = math.Copysign(1, v)
	}
	m.pos++
	if m.pos >= length {
		m.pos = 0
		m.idx++
	}
	return 0.4 * v * env, m.idx >= len(m.notes)
}
