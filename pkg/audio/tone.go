package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape of a tone.
type Wave int

const (
	Sine Wave = iota
	Square
)

// Tone is a finite, mono, enveloped oscillator. It implements beep.Streamer.
type Tone struct {
	wave    Wave
	freq    float64
	gain    float64
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
}

// NewTone returns a tone of the given frequency and duration. Attack and
// release each take a tenth of the duration.
func NewTone(rate beep.SampleRate, wave Wave, freq float64, d time.Duration, gain float64) *Tone {
	total := rate.N(d)
	edge := total / 10
	return &Tone{
		wave:    wave,
		freq:    freq,
		gain:    gain,
		rate:    rate,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

// Len returns the tone length in samples.
func (t *Tone) Len() int { return t.total }

// Stream fills samples until the tone ends.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case Square:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.gain * t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error { return nil }

func (t *Tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	default:
		return 1
	}
}
