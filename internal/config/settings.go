package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"aftercare/internal/recovery"
)

const (
	defaultLogLevel = "info"
	ThemeDark       = "dark"
	ThemeLight      = "light"
)

type Config struct {
	Recovery RecoveryConfig `toml:"recovery"`
	Logging  LoggingConfig  `toml:"logging"`
	UI       UIConfig       `toml:"ui"`
}

type RecoveryConfig struct {
	DefaultProcedure string `toml:"default_procedure"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	Theme       string              `toml:"theme"`
	Keybindings UIKeybindingsConfig `toml:"keybindings"`
}

type UIKeybindingsConfig struct {
	Path string `toml:"path"`
}

func DefaultConfig() Config {
	return Config{
		Recovery: RecoveryConfig{
			DefaultProcedure: recovery.ProcedureIDRhinoplasty,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
	}
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFromPath(path)
}

func LoadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultProcedure is the configured starting procedure. The id is not
// checked against the catalog here; callers surface unknown ids themselves.
func (c Config) DefaultProcedure() string {
	id := recovery.NormalizeProcedureID(c.Recovery.DefaultProcedure)
	if id == "" {
		return recovery.ProcedureIDRhinoplasty
	}
	return id
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) Theme() string {
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeDark
	}
}

func (c Config) DarkTheme() bool {
	return c.Theme() == ThemeDark
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	defaultPath, err := KeybindingsPath()
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(c.UI.Keybindings.Path)
	if path == "" {
		return defaultPath, nil
	}
	return resolveConfigPath(path)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
