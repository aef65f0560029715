package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// AppDirName is the per-user directory name used under the platform data home.
const AppDirName = "styr"

// DataDir returns the directory to store application data, creating it if needed.
// A non-empty override wins. Otherwise it mirrors common desktop app conventions:
// - Linux: $XDG_DATA_HOME/styr (~/.local/share/styr)
// - macOS: ~/Library/Application Support/styr
// - Windows: %APPDATA%/styr (falls back to UserConfigDir)
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		var err error
		dir, err = defaultDataDir(runtime.GOOS)
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure data directory: %w", err)
	}
	return dir, nil
}

func defaultDataDir(goos string) (string, error) {
	switch goos {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", AppDirName), nil
	case "windows":
		base := os.Getenv("APPDATA")
		if base == "" {
			var err error
			base, err = os.UserConfigDir()
			if err != nil {
				return "", fmt.Errorf("resolve config directory: %w", err)
			}
		}
		return filepath.Join(base, AppDirName), nil
	default:
		return filepath.Join(xdg.DataHome, AppDirName), nil
	}
}
