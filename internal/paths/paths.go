package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "repl"
	configFileName = ".replrc"
	logFileName    = "repl.log"
	historyDBName  = "history.db"
)

// AppDataDir returns the application directory for the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// AppLocalDataDir returns the OS-appropriate local data directory, where
// the command history lives.
//   - macOS: ~/Library/Application Support/repl
//   - Linux: $XDG_DATA_HOME/repl or ~/.local/share/repl
//   - Windows: %LOCALAPPDATA%\repl
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.replrc. REPL_CONFIG overrides it.
func ConfigFilePath() (string, error) {
	if p := os.Getenv("REPL_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}

// HistoryDBPath returns the path to the command history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), historyDBName)
}
