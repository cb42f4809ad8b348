// Package audio plays the gameplay cues through the beep speaker
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-arena/constants"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Cue names a gameplay sound
type Cue uint8

const (
	CueHit Cue = iota
	CueDeath
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// SoundManager mixes gameplay cues into a single speaker stream
// All methods are safe on an uninitialized manager and on a nil *SoundManager
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[Cue]*beep.Buffer
	initialized bool
}

// NewSoundManager creates a manager playing generated tones until SetCue is called
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		buffers: make(map[Cue]*beep.Buffer),
	}
}

// Initialize opens the speaker, calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	if sm == nil {
		return nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Info().Int("sample_rate", int(sampleRate)).Msg("Audio initialized")
	return nil
}

// SetCue replaces the generated tone for c with a decoded sound, nil restores the tone
func (sm *SoundManager) SetCue(c Cue, buf *beep.Buffer) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if buf == nil {
		delete(sm.buffers, c)
		return
	}
	sm.buffers[c] = buf
}

// PlayHit plays the strike cue
func (sm *SoundManager) PlayHit() {
	sm.Play(CueHit)
}

// PlayDeath plays the enemy death cue
func (sm *SoundManager) PlayDeath() {
	sm.Play(CueDeath)
}

// Play queues c on the mixer, dropped silently when audio is not initialized
func (sm *SoundManager) Play(c Cue) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := sm.streamerFor(c)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamerFor builds a fresh streamer for c, caller holds mu
func (sm *SoundManager) streamerFor(c Cue) beep.Streamer {
	if buf, ok := sm.buffers[c]; ok {
		var s beep.Streamer = buf.Streamer(0, buf.Len())
		if buf.Format().SampleRate != sampleRate {
			s = beep.Resample(4, buf.Format().SampleRate, sampleRate, s)
		}
		return s
	}

	switch c {
	case CueHit:
		return NewTone(sampleRate, constants.HitToneFrequency, constants.HitToneDuration)
	case CueDeath:
		return NewSweep(sampleRate, constants.DeathToneFrequency, constants.DeathToneDuration)
	}
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
