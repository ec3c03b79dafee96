package main

import (
	"fmt"
	"os"
)

const usageText = `aftercare shows where a patient is in their post-surgical recovery.

Usage:
  aftercare <command> [flags]

Commands:
  procedures  list the supported procedures
  timeline    print the milestone timeline for one day
  config      print configuration (effective or defaults)
  ui          run the terminal dashboard
  version     print the build version
  help        show help

Timeline flags:
  --procedure <id>     procedure id (default from config)
  --day <n>            days since surgery, clamped to 1-365 (default 1)
  --format <fmt>       text|json|toml|yaml (default text)

UI flags:
  --procedure <id>     starting procedure
  --day <n>            starting day

Environment:
  AFTERCARE_DISABLE_OSC52=1   never fall back to OSC52 terminal escapes when
                              copying from the ui (1|true|yes|on)

Examples:
  aftercare procedures
  aftercare timeline --procedure rhinoplasty --day 10
  aftercare timeline --procedure liposuction --day 42 --format json
  aftercare config --default --format toml
  aftercare ui --day 14
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
