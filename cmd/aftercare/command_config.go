package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"aftercare/internal/app"
	"aftercare/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath      string                  `json:"config_path" toml:"config_path"`
	KeybindingsPath string                  `json:"keybindings_path" toml:"keybindings_path"`
	Recovery        effectiveRecoveryConfig `json:"recovery" toml:"recovery"`
	Logging         effectiveLoggingConfig  `json:"logging" toml:"logging"`
	UI              effectiveUIConfig       `json:"ui" toml:"ui"`
	Keybindings     map[string]string       `json:"keybindings" toml:"keybindings"`
}

type effectiveRecoveryConfig struct {
	DefaultProcedure string `json:"default_procedure" toml:"default_procedure"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveUIConfig struct {
	Theme string `json:"theme" toml:"theme"`
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func (c *ConfigCommand) buildOutput(defaults bool) (configOutput, error) {
	configPath, err := config.ConfigPath()
	if err != nil {
		return configOutput{}, err
	}
	var cfg config.Config
	if defaults {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			return configOutput{}, err
		}
	}
	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return configOutput{}, err
	}
	var bindings *app.Keybindings
	if defaults {
		bindings = app.DefaultKeybindings()
	} else {
		bindings, err = app.LoadKeybindings(keybindingsPath)
		if err != nil {
			return configOutput{}, err
		}
	}
	return configOutput{
		ConfigPath:      configPath,
		KeybindingsPath: keybindingsPath,
		Recovery:        effectiveRecoveryConfig{DefaultProcedure: cfg.DefaultProcedure()},
		Logging:         effectiveLoggingConfig{Level: cfg.LogLevel()},
		UI:              effectiveUIConfig{Theme: cfg.Theme()},
		Keybindings:     bindings.Bindings(),
	}, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
