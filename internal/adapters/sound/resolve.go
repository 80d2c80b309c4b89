package sound

import (
	"fmt"
	"os"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
	"github.com/Adlai-Holler/ShameBell/internal/paths"
)

// ResolveSoundFile returns the sound file to play. A configured path must
// exist; without one the first available system sound is used. Failing
// both is an ErrSoundUnavailable.
func ResolveSoundFile(configured string) (string, error) {
	if configured != "" {
		path := paths.ExpandPath(configured)
		if err := checkFile(path); err != nil {
			return "", err
		}
		return path, nil
	}

	return firstAvailable(systemSoundFiles())
}

func firstAvailable(candidates []string) (string, error) {
	for _, candidate := range candidates {
		if checkFile(candidate) == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no sound file configured and no system sound found", domain.ErrSoundUnavailable)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSoundUnavailable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", domain.ErrSoundUnavailable, path)
	}
	return nil
}
