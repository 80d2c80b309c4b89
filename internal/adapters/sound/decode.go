package sound

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// SupportedExtensions lists the file types the screen player can decode
var SupportedExtensions = []string{".mp3", ".ogg", ".oga", ".wav"}

// Decode turns an encoded sound file into a seekable PCM stream at sampleRate.
// The format is picked from the file extension.
func Decode(sampleRate int, name string, data []byte) (io.ReadSeeker, error) {
	src := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, src)
	case ".ogg", ".oga":
		return vorbis.DecodeWithSampleRate(sampleRate, src)
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnsupportedSound, ext, strings.Join(SupportedExtensions, ", "))
	}
}
