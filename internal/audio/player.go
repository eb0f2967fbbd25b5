package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps how many cues can sound at once.
const maxVoices = 8

// Player turns game events into sound. A disabled Player accepts every
// call and plays nothing.
type Player struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
	mixer   *beep.Mixer
	log     *log.Logger
}

// NewPlayer creates a player. Nothing reaches the sound card before Init.
func NewPlayer(enabled bool, l *log.Logger) *Player {
	if l == nil {
		l = log.New(io.Discard)
	}
	return &Player{enabled: enabled, mixer: &beep.Mixer{}, log: l.WithPrefix("audio")}
}

// Enabled reports whether the player was asked to make sound.
func (p *Player) Enabled() bool { return p.enabled }

// Init opens the speaker. It is a no-op when the player is disabled or
// already running.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.enabled = false
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.log.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Play queues the cue of every distinct event in events.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || len(events) == 0 {
		return
	}
	streams := p.collect(events)
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	if p.mixer.Len()+len(streams) <= maxVoices {
		p.mixer.Add(streams...)
	}
	speaker.Unlock()
}

// collect builds one streamer per distinct audible event.
func (p *Player) collect(events []core.Event) []beep.Streamer {
	var seen [core.EventReset + 1]bool
	var streams []beep.Streamer
	for _, ev := range events {
		if ev < 0 || int(ev) >= len(seen) || seen[ev] {
			continue
		}
		seen[ev] = true
		if s := Cue(ev, sampleRate); s != nil {
			streams = append(streams, s)
		}
	}
	return streams
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
