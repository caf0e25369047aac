package paths

import (
	"os"
	"path/filepath"
)

// GetHiitHome returns HIIT_HOME or the ~/.hiit default
func GetHiitHome() string {
	hiitHome := os.Getenv("HIIT_HOME")
	if hiitHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".hiit"
		}
		return filepath.Join(homeDir, ".hiit")
	}
	return ExpandPath(hiitHome)
}

// GetDBPath returns $HIIT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHiitHome(), "state.db")
}

// GetSettingsPath returns $HIIT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHiitHome(), "settings.json")
}

// GetSoundsPath returns $HIIT_HOME/sounds, where custom cue files live
func GetSoundsPath() string {
	return filepath.Join(GetHiitHome(), "sounds")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
