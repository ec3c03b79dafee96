package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"aftercare/internal/app"
	"aftercare/internal/config"
	"aftercare/internal/logging"
	"aftercare/internal/recovery"
)

type UICommand struct {
	stderr     io.Writer
	engine     *recovery.Engine
	loadConfig func() (config.Config, error)
	openUILog  func() (io.WriteCloser, error)
	runUI      uiRunner
	version    string
}

func NewUICommand(wiring commandWiring) *UICommand {
	return &UICommand{
		stderr:     wiring.stderr,
		engine:     wiring.engine,
		loadConfig: wiring.loadConfig,
		openUILog:  wiring.openUILog,
		runUI:      wiring.runUI,
		version:    wiring.version,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	procedure := fs.String("procedure", "", "starting procedure id (default from config)")
	day := fs.Int("day", recovery.MinDaysPostOp, "starting day since surgery (1-365)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog := c.configureUILogging(cfg.LogLevel())
	defer closeLog()

	procedureID := resolveProcedure(*procedure, cfg)
	sel, err := recovery.NewSelection(c.engine.Catalog(), procedureID)
	if err != nil {
		return withProcedureHint(err, c.engine.Catalog(), procedureID)
	}
	if days, clamped := sel.SetDaysPostOp(*day); clamped {
		logger.Warn("day clamped", logging.F("requested", *day), logging.F("day", days))
	}

	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return err
	}
	bindings, err := app.LoadKeybindings(keybindingsPath)
	if err != nil {
		return err
	}

	logger.Info("ui starting", logging.F("version", c.version), logging.F("procedure", sel.ProcedureID), logging.F("day", sel.DaysPostOp))
	return c.runUI(c.engine, sel, app.Options{
		Keybindings: bindings,
		Logger:      logger,
		DarkTheme:   cfg.DarkTheme(),
	})
}

// configureUILogging routes logs to the UI log file while the dashboard owns
// the terminal. Logging is disabled when the file cannot be opened.
func (c *UICommand) configureUILogging(level string) (logging.Logger, func()) {
	if c.openUILog == nil {
		return logging.Nop(), func() {}
	}
	file, err := c.openUILog()
	if err != nil {
		return logging.Nop(), func() {}
	}
	return logging.New(file, logging.ParseLevel(level)), func() { _ = file.Close() }
}

func openUILogFile() (io.WriteCloser, error) {
	logPath, err := config.UILogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
