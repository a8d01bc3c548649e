//go:build !test

package audio

import (
	"github.com/ebitengine/oto/v3"

	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

const bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio

// newContext is replaced in tests.
var newContext = oto.NewContext

// Player owns the process-wide oto context. The context is opened by
// NewPlayer, before the game loop starts, so the device wait never stalls a
// frame. A muted game never opens the audio device.
type Player struct {
	muted  bool
	logger *game_log.Logger

	ctx    *oto.Context
	mix    *mixer
	stream *oto.Player
}

func NewPlayer(muted bool, logger *game_log.Logger) *Player {
	p := &Player{muted: muted, logger: logger}
	if !muted {
		p.init()
	}
	return p
}

func (p *Player) init() {
	ctx, ready, err := newContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		// leave ctx nil; Play will no-op
		p.logger.Warnf("[AUDIO] No audio device: %v", err)
		return
	}
	<-ready
	p.ctx = ctx
	p.mix = &mixer{}
	p.stream = ctx.NewPlayer(p.mix)
	p.stream.SetBufferSize(bufferSizeBytes10ms)
	p.stream.Play()
	p.logger.Infof("[AUDIO] Audio context ready")
}

// Play queues the cue. It does nothing when muted or without a device.
func (p *Player) Play(c Cue) {
	if p.muted {
		return
	}
	v := NewCueVoice(c, sampleRate)
	if v == nil {
		return
	}
	if p.ctx == nil {
		return
	}
	p.mix.Schedule(v, 0)
	p.logger.Debugf("[AUDIO] Play %v", c)
}

// Close pauses the output stream.
func (p *Player) Close() error {
	if p.stream == nil {
		return nil
	}
	p.stream.Pause()
	return p.stream.Err()
}
