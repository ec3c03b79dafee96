package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"aftercare/internal/recovery"
	"aftercare/internal/report"
)

type ProceduresCommand struct {
	stdout io.Writer
	stderr io.Writer
	engine *recovery.Engine
}

type procedureListEntry struct {
	ID         string `json:"id" toml:"id" yaml:"id"`
	Name       string `json:"name" toml:"name" yaml:"name"`
	Milestones int    `json:"milestones" toml:"milestones" yaml:"milestones"`
	LastDay    int    `json:"last_day" toml:"last_day" yaml:"last_day"`
}

type procedureListOutput struct {
	Procedures []procedureListEntry `json:"procedures" toml:"procedures" yaml:"procedures"`
}

func NewProceduresCommand(stdout, stderr io.Writer, engine *recovery.Engine) *ProceduresCommand {
	return &ProceduresCommand{
		stdout: stdout,
		stderr: stderr,
		engine: engine,
	}
}

func (c *ProceduresCommand) Run(args []string) error {
	fs := flag.NewFlagSet("procedures", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	format := fs.String("format", string(report.FormatText), "output format: text|json|toml|yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resolvedFormat, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}

	out := procedureListOutput{}
	for _, summary := range c.engine.ProcedureList() {
		proc, err := c.engine.Catalog().Lookup(summary.ID)
		if err != nil {
			return err
		}
		out.Procedures = append(out.Procedures, procedureListEntry{
			ID:         proc.ID,
			Name:       proc.Name,
			Milestones: len(proc.Milestones),
			LastDay:    proc.LastDayOffset(),
		})
	}
	if resolvedFormat == report.FormatText {
		printProcedures(c.stdout, out.Procedures)
		return nil
	}
	return report.Write(c.stdout, resolvedFormat, out)
}

func printProcedures(output io.Writer, procedures []procedureListEntry) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tMILESTONES\tLAST DAY")
	for _, proc := range procedures {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\n", proc.ID, proc.Name, proc.Milestones, proc.LastDay)
	}
	_ = writer.Flush()
}
