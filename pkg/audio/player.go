package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note frequencies used by the cues.
const (
	noteE3 = 164.81
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

var chime = []float64{noteC5, noteE5, noteG5, noteC6}

// Player plays game cues through the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer returns an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// PlayLand plays a short low thud.
func (p *Player) PlayLand() {
	p.play(NewTone(sampleRate, Square, noteE3, 60*time.Millisecond, 0.08))
}

// PlayClear plays one rising note per cleared row, up to four.
func (p *Player) PlayClear(rows int) {
	if rows <= 0 {
		return
	}
	p.play(clearCue(rows))
}

// PlayGameOver plays a falling three-note phrase.
func (p *Player) PlayGameOver() {
	p.play(beep.Seq(
		NewTone(sampleRate, Sine, noteA4, 180*time.Millisecond, 0.2),
		NewTone(sampleRate, Sine, noteA4*3/4, 180*time.Millisecond, 0.2),
		NewTone(sampleRate, Sine, noteA4/2, 400*time.Millisecond, 0.2),
	))
}

// OnSpawn implements observability.GameHooks.
func (p *Player) OnSpawn(context.Context, string, string) {}

// OnLand implements observability.GameHooks.
func (p *Player) OnLand(_ context.Context, _ string, _ string, cleared int) {
	if cleared > 0 {
		p.PlayClear(cleared)
		return
	}
	p.PlayLand()
}

// OnGameOver implements observability.GameHooks.
func (p *Player) OnGameOver(context.Context, string, int, int, time.Duration) {
	p.PlayGameOver()
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func clearCue(rows int) beep.Streamer {
	if rows > len(chime) {
		rows = len(chime)
	}
	tones := make([]beep.Streamer, rows)
	for i := range tones {
		tones[i] = NewTone(sampleRate, Sine, chime[i], 90*time.Millisecond, 0.15)
	}
	return beep.Seq(tones...)
}
