package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the default data directory when set.
const DataDirEnv = "TASKDECK_DATA_DIR"

// DefaultDataDir returns the default taskdeck data directory.
// The TASKDECK_DATA_DIR environment variable takes precedence.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "taskdeck"), nil
}
