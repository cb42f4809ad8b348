// Package asset loads images and sounds from disk
// Loaders never fail the caller: a missing or corrupt file is logged and yields nil
package asset

import (
	"image"
	_ "image/png"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadImage decodes the image at path, returning nil if it cannot be read
func LoadImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Unable to load image")
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Unable to decode image")
		return nil
	}
	return img
}
