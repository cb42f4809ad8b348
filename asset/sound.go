package asset

import (
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

// LoadSound decodes a WAV file fully into memory, returning nil if it cannot be read
// The returned buffer can be replayed any number of times via Streamer
func LoadSound(path string) *beep.Buffer {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Unable to load sound")
		return nil
	}

	// wav.Decode takes ownership of f and closes it with the streamer
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		log.Warn().Err(err).Str("path", path).Msg("Unable to decode sound")
		return nil
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Sound stream error")
		return nil
	}
	return buffer
}
