//go:build windows

package sound

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// systemCommand plays a file on Windows using PowerShell
func systemCommand(file string) (*exec.Cmd, error) {
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(file, "'", "''"))
	return exec.Command("powershell", "-NoProfile", "-c", script), nil
}

// systemSoundFiles lists bundled sounds to fall back to
func systemSoundFiles() []string {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		windir = `C:\Windows`
	}
	return []string{
		filepath.Join(windir, "Media", "Windows Ding.wav"),
		filepath.Join(windir, "Media", "chimes.wav"),
	}
}
