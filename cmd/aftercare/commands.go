package main

import (
	"io"
	"os"

	"aftercare/internal/app"
	"aftercare/internal/config"
	"aftercare/internal/logging"
	"aftercare/internal/recovery"
)

type commandRunner interface {
	Run(args []string) error
}

type uiRunner func(engine *recovery.Engine, selection *recovery.Selection, opts app.Options) error

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	engine     *recovery.Engine
	loadConfig func() (config.Config, error)
	newLogger  func(level string) logging.Logger
	openUILog  func() (io.WriteCloser, error)
	runUI      uiRunner
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		engine:     recovery.NewEngine(nil),
		loadConfig: config.LoadConfig,
		newLogger: func(level string) logging.Logger {
			return logging.New(stderr, logging.ParseLevel(level))
		},
		openUILog: openUILogFile,
		runUI:     app.Run,
		version:   buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"procedures": NewProceduresCommand(wiring.stdout, wiring.stderr, wiring.engine),
		"timeline":   NewTimelineCommand(wiring),
		"config":     NewConfigCommand(wiring.stdout, wiring.stderr),
		"ui":         NewUICommand(wiring),
		"version":    NewVersionCommand(wiring.stdout, wiring.version),
	}
}
