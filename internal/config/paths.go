package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".aftercare"

// DataDir returns the base directory for aftercare settings and logs.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML settings file.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// KeybindingsPath returns the default path of the keybinding overrides.
func KeybindingsPath() (string, error) {
	return dataPath("keybindings.json")
}

// UILogPath returns the log file used while the terminal UI owns the screen.
func UILogPath() (string, error) {
	return dataPath("ui.log")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
