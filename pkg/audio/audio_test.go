package audio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/matzehuels/tetrus/pkg/observability"
)

var _ observability.GameHooks = (*Player)(nil)

// drain streams s to completion and returns the samples produced.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
	}{
		{"short", 10 * time.Millisecond},
		{"long", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone := NewTone(sampleRate, Sine, noteA4, tt.d, 0.5)
			got := len(drain(tone))
			if want := sampleRate.N(tt.d); got != want || tone.Len() != want {
				t.Errorf("samples = %d, Len() = %d, want %d", got, tone.Len(), want)
			}
			if n, ok := tone.Stream(make([][2]float64, 8)); n != 0 || ok {
				t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
			}
		})
	}
}

func TestToneAmplitude(t *testing.T) {
	for _, wave := range []Wave{Sine, Square} {
		samples := drain(NewTone(sampleRate, wave, noteC5, 50*time.Millisecond, 0.25))
		if samples[0][0] != 0 {
			t.Errorf("wave %d: first sample = %v, want 0 (attack)", wave, samples[0][0])
		}
		for i, s := range samples {
			if math.Abs(s[0]) > 0.25+1e-9 {
				t.Fatalf("wave %d: sample %d = %v exceeds gain", wave, i, s[0])
			}
			if s[0] != s[1] {
				t.Fatalf("wave %d: sample %d channels differ", wave, i)
			}
		}
	}
}

func TestClearCueLength(t *testing.T) {
	note := sampleRate.N(90 * time.Millisecond)
	tests := []struct {
		rows, notes int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{6, 4},
	}

	for _, tt := range tests {
		if got := len(drain(clearCue(tt.rows))); got != tt.notes*note {
			t.Errorf("clearCue(%d) samples = %d, want %d", tt.rows, got, tt.notes*note)
		}
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	ctx := context.Background()

	p.OnSpawn(ctx, "g", "t")
	p.OnLand(ctx, "g", "floor", 0)
	p.OnLand(ctx, "g", "block", 2)
	p.OnGameOver(ctx, "g", 3, 2, time.Second)
	p.PlayClear(0)
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", p.mixer.Len())
	}
}
