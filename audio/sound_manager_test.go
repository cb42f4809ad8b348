package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	log.Logger = zerolog.Nop()
}

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayHit()
	sm.PlayDeath()
	sm.SetCue(CueHit, nil)
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected nothing queued while uninitialized, got %d", sm.mixer.Len())
	}
}

func TestNilSoundManager(t *testing.T) {
	var sm *SoundManager
	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected nil manager Initialize to be a no-op, got %v", err)
	}
	sm.PlayHit()
	sm.PlayDeath()
	sm.SetCue(CueDeath, nil)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Cleanup()
}

func TestPlayQueuesOnMixer(t *testing.T) {
	sm := NewSoundManager()
	sm.initialized = true

	sm.PlayHit()
	sm.PlayDeath()
	if sm.mixer.Len() != 2 {
		t.Errorf("Expected 2 queued cues, got %d", sm.mixer.Len())
	}
}

func TestGeneratedCueLengths(t *testing.T) {
	sm := NewSoundManager()

	tests := []struct {
		cue  Cue
		want int
	}{
		{CueHit, sampleRate.N(50 * time.Millisecond)},
		{CueDeath, sampleRate.N(150 * time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(sm.streamerFor(tt.cue))
			if n != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, n)
			}
			if peak == 0 || peak > toneGain {
				t.Errorf("Expected audible peak at most %v, got %v", toneGain, peak)
			}
		})
	}

	if sm.streamerFor(Cue(9)) != nil {
		t.Error("Expected no streamer for unknown cue")
	}
}

func TestSetCueUsesBuffer(t *testing.T) {
	sm := NewSoundManager()

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	tone, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		t.Fatal(err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(1000, tone))

	sm.SetCue(CueHit, buf)
	if n, _ := drain(sm.streamerFor(CueHit)); n != 1000 {
		t.Errorf("Expected buffered cue of 1000 samples, got %d", n)
	}

	sm.SetCue(CueHit, nil)
	if n, _ := drain(sm.streamerFor(CueHit)); n != sampleRate.N(50*time.Millisecond) {
		t.Errorf("Expected generated tone after reset, got %d samples", n)
	}
}

func TestSetCueResamples(t *testing.T) {
	sm := NewSoundManager()

	half := sampleRate / 2
	format := beep.Format{SampleRate: half, NumChannels: 2, Precision: 2}
	tone, err := generators.SineTone(half, 440)
	if err != nil {
		t.Fatal(err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(1000, tone))

	sm.SetCue(CueDeath, buf)
	n, _ := drain(sm.streamerFor(CueDeath))
	if n < 1900 || n > 2100 {
		t.Errorf("Expected about 2000 samples after resampling, got %d", n)
	}
}

func TestCueString(t *testing.T) {
	if CueHit.String() != "hit" || CueDeath.String() != "death" || Cue(7).String() != "unknown" {
		t.Error("Unexpected cue names")
	}
}
