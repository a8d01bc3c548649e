//go:build test

package audio

import game_log "github.com/ingyamilmolinar/roadsign/internal/log"

// Player is silent under the test build tag.
type Player struct{}

func NewPlayer(bool, *game_log.Logger) *Player { return &Player{} }

func (p *Player) Play(Cue)     {}
func (p *Player) Close() error { return nil }
