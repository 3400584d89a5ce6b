package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"shootingsurvival/game"
)

const sampleRate = 44100

// Sounds plays short synthesized cues for tick outcomes
type Sounds struct {
	shoot  *audio.Player
	hit    *audio.Player
	kill   *audio.Player
	pickup *audio.Player
	over   *audio.Player
}

// NewSounds synthesizes the cues. A muted set plays nothing.
func NewSounds(muted bool) *Sounds {
	if muted {
		return &Sounds{}
	}
	ctx := audio.NewContext(sampleRate)
	return &Sounds{
		shoot:  ctx.NewPlayerFromBytes(beep(950, 0.05)),
		hit:    ctx.NewPlayerFromBytes(beep(180, 0.12)),
		kill:   ctx.NewPlayerFromBytes(beep(520, 0.06)),
		pickup: ctx.NewPlayerFromBytes(beep(1320, 0.10)),
		over:   ctx.NewPlayerFromBytes(beep(110, 0.40)),
	}
}

// Play picks the cues for what happened during a tick
func (s *Sounds) Play(res game.TickResult) {
	switch {
	case res.GameOver:
		play(s.over)
		return
	case res.PlayerHits > 0:
		play(s.hit)
	case res.Kills > 0:
		play(s.kill)
	}
	if res.Pickups > 0 {
		play(s.pickup)
	}
	if res.Fired > 0 {
		play(s.shoot)
	}
}

func play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// beep synthesizes a sine tone as 16-bit little-endian stereo PCM with a
// linear fade out
func beep(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4)
	const amp = 0.3
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * amp * fade
		s := int16(v * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
