package main

import (
	"os"
	"time"

	"github.com/ingyamilmolinar/roadsign/internal/audio"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

// main plays every cue once. Without an audio device the calls are no-ops
// rather than a crash.
func main() {
	logger := game_log.NewConsole(os.Stderr, game_log.LevelDebug)
	p := audio.NewPlayer(false, logger)
	defer p.Close()
	for _, c := range []audio.Cue{audio.CueFlip, audio.CueMatch, audio.CueMiss, audio.CueWin} {
		p.Play(c)
		time.Sleep(800 * time.Millisecond)
	}
}
