package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Tones
const (
	HitToneFrequency   = 880.0
	HitToneDuration    = 50 * time.Millisecond
	DeathToneFrequency = 220.0
	DeathToneDuration  = 150 * time.Millisecond
)
