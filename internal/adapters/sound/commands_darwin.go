//go:build darwin

package sound

import "os/exec"

// systemCommand plays a file on macOS using afplay
func systemCommand(file string) (*exec.Cmd, error) {
	return exec.Command("afplay", file), nil
}

// systemSoundFiles lists bundled sounds to fall back to
func systemSoundFiles() []string {
	return []string{
		"/System/Library/Sounds/Glass.aiff",
		"/System/Library/Sounds/Ping.aiff",
		"/System/Library/Sounds/Tink.aiff",
	}
}
