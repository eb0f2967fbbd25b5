package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cue is a short melody played for an event.
type cue struct {
	wave  Wave
	gain  float64
	notes []note
}

const (
	attack  = 4 * time.Millisecond
	release = 20 * time.Millisecond
)

var cues = map[core.Event]cue{
	core.EventBrickBroken: {WaveSquare, 0.25, []note{{880, 45 * time.Millisecond}}},
	core.EventPaddleHit:   {WaveTriangle, 0.5, []note{{440, 60 * time.Millisecond}}},
	core.EventWallHit:     {WaveSine, 0.3, []note{{330, 35 * time.Millisecond}}},
	core.EventBallLost: {WaveSaw, 0.3, []note{
		{220, 90 * time.Millisecond},
		{147, 140 * time.Millisecond},
	}},
	core.EventGameOver: {WaveSquare, 0.25, []note{
		{392, 150 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{262, 300 * time.Millisecond},
	}},
	core.EventWin: {WaveSquare, 0.25, []note{
		{523.25, 100 * time.Millisecond},
		{659.25, 100 * time.Millisecond},
		{783.99, 100 * time.Millisecond},
		{1046.5, 250 * time.Millisecond},
	}},
}

// Cue returns the streamer for ev, or nil if ev is silent.
func Cue(ev core.Event, rate beep.SampleRate) beep.Streamer {
	c, ok := cues[ev]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		osc := newOscillator(n.freq, n.dur, c.wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, attack, release, rate))
	}
	return withVolume(beep.Seq(parts...), c.gain)
}

// cueLength returns how long the cue for ev plays.
func cueLength(ev core.Event) time.Duration {
	var d time.Duration
	for _, n := range cues[ev].notes {
		d += n.dur
	}
	return d
}
