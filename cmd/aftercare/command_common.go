package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/sahilm/fuzzy"

	"aftercare/internal/config"
	"aftercare/internal/recovery"
)

const version = "dev"

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

// resolveProcedure picks the flag value when set and the configured default
// otherwise.
func resolveProcedure(flagValue string, cfg config.Config) string {
	if id := strings.TrimSpace(flagValue); id != "" {
		return id
	}
	return cfg.DefaultProcedure()
}

// withProcedureHint adds a "did you mean" suggestion to unknown procedure
// errors. Other errors pass through unchanged.
func withProcedureHint(err error, catalog *recovery.Catalog, requested string) error {
	if err == nil || !errors.Is(err, recovery.ErrUnknownProcedure) {
		return err
	}
	ids := catalog.IDs()
	query := recovery.NormalizeProcedureID(requested)
	if query != "" {
		if matches := fuzzy.Find(query, ids); len(matches) > 0 {
			return fmt.Errorf("%w (did you mean %q?)", err, matches[0].Str)
		}
	}
	return fmt.Errorf("%w (known procedures: %s)", err, strings.Join(ids, ", "))
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}

type VersionCommand struct {
	stdout  io.Writer
	version string
}

func NewVersionCommand(stdout io.Writer, version string) *VersionCommand {
	return &VersionCommand{stdout: stdout, version: version}
}

func (c *VersionCommand) Run(args []string) error {
	_, err := fmt.Fprintln(c.stdout, c.version)
	return err
}
