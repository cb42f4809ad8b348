package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/rs/zerolog/log"
)

// toneGain keeps generated cues well below clipping when several overlap
const toneGain = 0.2

// NewTone returns a short sine beep of the given frequency and duration
// Falls back to silence if the frequency cannot be represented at sr
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		log.Warn().Err(err).Float64("freq", freq).Msg("Tone generation failed")
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), &envelope{Streamer: sine, total: sr.N(d)})
}

// envelope applies a linear fade-out and the cue gain to the wrapped streamer
type envelope struct {
	beep.Streamer
	pos   int
	total int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		amp := toneGain
		if e.total > 0 {
			amp *= 1 - float64(e.pos)/float64(e.total)
			if amp < 0 {
				amp = 0
			}
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

// SweepGenerator is a falling tone with an exponential decay, used for death cues
type SweepGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
	phase   float64
}

// NewSweep creates a sweep starting at freq and halving in pitch over d
func NewSweep(sr beep.SampleRate, freq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.freq * (1 - 0.5*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := toneGain * math.Exp(-progress*4) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
