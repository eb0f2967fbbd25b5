// Package audio plays short generated tones for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

type oscillator struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
}

// newOscillator returns a streamer producing d of wave at freq.
func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, left: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.left <= 0 {
		return 0, false
	}
	n := min(len(samples), o.left)
	step := o.freq / float64(o.rate)
	for i := 0; i < n; i++ {
		v := sample(o.wave, o.phase)
		samples[i][0], samples[i][1] = v, v
		o.phase += step
		o.phase -= math.Floor(o.phase)
	}
	o.left -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// sample evaluates wave at phase in [0, 1).
func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// envelope fades a streamer in over attack samples and out over the last
// release samples of total.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		s:       s,
		total:   rate.N(total),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if rest := e.total - pos; e.release > 0 && rest < e.release {
		g = min(g, max(float64(rest)/float64(e.release), 0))
	}
	return g
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain. Zero or less is silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
