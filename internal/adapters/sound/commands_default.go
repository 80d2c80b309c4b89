//go:build !darwin && !linux && !windows

package sound

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// systemCommand has no player to run on unsupported platforms
func systemCommand(file string) (*exec.Cmd, error) {
	return nil, fmt.Errorf("%w: no system player on %s", domain.ErrSoundUnavailable, runtime.GOOS)
}

func systemSoundFiles() []string {
	return nil
}
