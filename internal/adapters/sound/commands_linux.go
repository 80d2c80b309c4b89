//go:build linux

package sound

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// systemCommand plays a file on Linux using paplay (PulseAudio) or aplay (ALSA)
func systemCommand(file string) (*exec.Cmd, error) {
	if path, err := exec.LookPath("paplay"); err == nil {
		return exec.Command(path, file), nil
	}
	// aplay only understands raw PCM containers
	if strings.EqualFold(filepath.Ext(file), ".wav") {
		if path, err := exec.LookPath("aplay"); err == nil {
			return exec.Command(path, "-q", file), nil
		}
	}
	return nil, fmt.Errorf("%w: neither paplay nor aplay can play %s", domain.ErrSoundUnavailable, file)
}

// systemSoundFiles lists freedesktop sounds to fall back to
func systemSoundFiles() []string {
	return []string{
		"/usr/share/sounds/freedesktop/stereo/bell.oga",
		"/usr/share/sounds/freedesktop/stereo/complete.oga",
		"/usr/share/sounds/freedesktop/stereo/bell.wav",
		"/usr/share/sounds/freedesktop/stereo/complete.wav",
	}
}
