// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/polysine/audio"
)

// Player plays a mono source through the system's default audio
// device using oto. One Player owns one stream; create a new Player
// for the next one.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// New opens the audio device at the source's sample rate. Opening the
// device can take a moment; New blocks until it is ready.
func New(src audio.Source) (*Player, error) {
	if src.Channels() != 1 {
		return nil, ErrOnlyMonoSupported
	}

	op := &oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(newSourceReader(src)),
	}, nil
}

// Play starts playback. It returns immediately; use Wait to block
// until the stream has been fully played out.
func (p *Player) Play() {
	p.player.Play()
}

// Wait blocks until playback finishes.
func (p *Player) Wait() {
	for p.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
}

// Close stops playback and releases the device player.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
