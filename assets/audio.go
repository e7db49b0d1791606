package assets

import (
	"embed"
	"fmt"
)

//go:embed all:audio
var audioFS embed.FS

// ReadAudio returns the raw bytes of an embedded sound file, e.g.
// "audio/sfx/jump.wav". Decoding is left to the host.
func ReadAudio(path string) ([]byte, error) {
	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return data, nil
}
