package main

import (
	"flag"
	"io"

	"aftercare/internal/config"
	"aftercare/internal/logging"
	"aftercare/internal/recovery"
	"aftercare/internal/report"
)

type TimelineCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	engine     *recovery.Engine
	loadConfig func() (config.Config, error)
	newLogger  func(level string) logging.Logger
}

func NewTimelineCommand(wiring commandWiring) *TimelineCommand {
	return &TimelineCommand{
		stdout:     wiring.stdout,
		stderr:     wiring.stderr,
		engine:     wiring.engine,
		loadConfig: wiring.loadConfig,
		newLogger:  wiring.newLogger,
	}
}

func (c *TimelineCommand) Run(args []string) error {
	fs := flag.NewFlagSet("timeline", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	procedure := fs.String("procedure", "", "procedure id (default from config)")
	day := fs.Int("day", recovery.MinDaysPostOp, "days since surgery (1-365)")
	format := fs.String("format", string(report.FormatText), "output format: text|json|toml|yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resolvedFormat, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger := c.newLogger(cfg.LogLevel()).With(logging.F("component", "timeline"))

	procedureID := resolveProcedure(*procedure, cfg)
	sel, err := recovery.NewSelection(c.engine.Catalog(), procedureID)
	if err != nil {
		return withProcedureHint(err, c.engine.Catalog(), procedureID)
	}
	if days, clamped := sel.SetDaysPostOp(*day); clamped {
		logger.Warn("day clamped", logging.F("requested", *day), logging.F("day", days))
	}

	r, err := report.Build(c.engine, sel.Snapshot())
	if err != nil {
		return err
	}
	logger.Debug("timeline built", logging.F("procedure", r.ProcedureID), logging.F("day", r.DaysPostOp), logging.F("format", string(resolvedFormat)))
	return report.Write(c.stdout, resolvedFormat, r)
}
