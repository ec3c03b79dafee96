package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aftercare/internal/app"
	"aftercare/internal/config"
	"aftercare/internal/logging"
	"aftercare/internal/recovery"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type testHarness struct {
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	uiLog   *bytes.Buffer
	cfg     config.Config
	uiCalls []uiCall
	wiring  commandWiring
}

type uiCall struct {
	procedureID string
	day         int
	opts        app.Options
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	h := &testHarness{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		uiLog:  &bytes.Buffer{},
		cfg:    config.DefaultConfig(),
	}
	h.wiring = commandWiring{
		stdout:     h.stdout,
		stderr:     h.stderr,
		engine:     recovery.NewEngine(nil),
		loadConfig: func() (config.Config, error) { return h.cfg, nil },
		newLogger: func(level string) logging.Logger {
			return logging.New(h.stderr, logging.ParseLevel(level))
		},
		openUILog: func() (io.WriteCloser, error) { return nopWriteCloser{h.uiLog}, nil },
		runUI: func(engine *recovery.Engine, sel *recovery.Selection, opts app.Options) error {
			h.uiCalls = append(h.uiCalls, uiCall{procedureID: sel.ProcedureID, day: sel.DaysPostOp, opts: opts})
			return nil
		},
		version: "test",
	}
	return h
}

func (h *testHarness) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	runner, ok := buildCommands(h.wiring)[name]
	if !ok {
		t.Fatalf("command %q not registered", name)
	}
	return runner.Run(args)
}

func TestProceduresCommandPrintsTable(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "procedures"); err != nil {
		t.Fatalf("procedures: %v", err)
	}
	out := h.stdout.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and three rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "LAST DAY") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "rhinoplasty") || !strings.Contains(lines[2], "Breast Augmentation") {
		t.Fatalf("unexpected rows: %q", out)
	}
}

func TestProceduresCommandJSON(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "procedures", "--format", "json"); err != nil {
		t.Fatalf("procedures: %v", err)
	}
	var decoded procedureListOutput
	if err := json.Unmarshal(h.stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Procedures) != 3 || decoded.Procedures[0].LastDay != 365 || decoded.Procedures[2].LastDay != 90 {
		t.Fatalf("unexpected procedures: %#v", decoded.Procedures)
	}
}

func TestTimelineCommandText(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "timeline", "--procedure", "rhinoplasty", "--day", "5"); err != nil {
		t.Fatalf("timeline: %v", err)
	}
	out := h.stdout.String()
	if !strings.Contains(out, "Rhinoplasty: 5th day after surgery") || !strings.Contains(out, "Next: Bruising Fades on day 14") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if h.stderr.Len() != 0 {
		t.Fatalf("expected no log output, got %q", h.stderr.String())
	}
}

func TestTimelineCommandClampsDay(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "timeline", "--procedure", "liposuction", "--day", "400", "--format", "json"); err != nil {
		t.Fatalf("timeline: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(h.stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["days_post_op"] != float64(365) || decoded["progress_percent"] != float64(100) {
		t.Fatalf("unexpected clamped report: %v", decoded)
	}
	logLine := h.stderr.String()
	for _, want := range []string{"level=warn", `msg="day clamped"`, "requested=400", "day=365"} {
		if !strings.Contains(logLine, want) {
			t.Fatalf("expected %q in log %q", want, logLine)
		}
	}
}

func TestTimelineCommandUsesConfiguredProcedure(t *testing.T) {
	h := newTestHarness(t)
	h.cfg.Recovery.DefaultProcedure = "breast_augmentation"
	if err := h.run(t, "timeline", "--day", "42", "--format", "yaml"); err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "procedure: breast_augmentation") {
		t.Fatalf("unexpected output:\n%s", h.stdout.String())
	}
}

func TestTimelineCommandUnknownProcedureHint(t *testing.T) {
	h := newTestHarness(t)
	err := h.run(t, "timeline", "--procedure", "rhinoplsty")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, recovery.ErrUnknownProcedure) {
		t.Fatalf("expected ErrUnknownProcedure, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "rhinoplasty"?`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if h.stdout.Len() != 0 {
		t.Fatalf("expected no output on error")
	}
}

func TestTimelineCommandUnknownProcedureListsKnown(t *testing.T) {
	h := newTestHarness(t)
	err := h.run(t, "timeline", "--procedure", "zzz")
	if err == nil || !strings.Contains(err.Error(), "known procedures: rhinoplasty, breast_augmentation, liposuction") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimelineCommandRejectsFormat(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "timeline", "--format", "xml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestConfigCommandDefaultsTOML(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "config", "--default", "--format", "toml"); err != nil {
		t.Fatalf("config: %v", err)
	}
	out := h.stdout.String()
	for _, want := range []string{"[recovery]", "default_procedure", "rhinoplasty", "[logging]", "[keybindings]", "ui.dayForward"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigCommandEffectiveJSON(t *testing.T) {
	h := newTestHarness(t)
	dataDir, err := config.DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("[ui]\ntheme = \"light\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "keybindings.json"), []byte(`{"ui.quit":"x"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := h.run(t, "config"); err != nil {
		t.Fatalf("config: %v", err)
	}
	var decoded configOutput
	if err := json.Unmarshal(h.stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.UI.Theme != "light" || decoded.Keybindings[app.KeyCommandQuit] != "x" {
		t.Fatalf("unexpected config output: %#v", decoded)
	}
	if decoded.ConfigPath != filepath.Join(dataDir, "config.toml") {
		t.Fatalf("unexpected config path: %q", decoded.ConfigPath)
	}
}

func TestConfigCommandRejectsFormat(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "config", "--format", "yaml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestUICommandStartsDashboard(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "ui", "--procedure", "Liposuction", "--day", "0"); err != nil {
		t.Fatalf("ui: %v", err)
	}
	if len(h.uiCalls) != 1 {
		t.Fatalf("expected one ui run, got %d", len(h.uiCalls))
	}
	call := h.uiCalls[0]
	if call.procedureID != recovery.ProcedureIDLiposuction || call.day != recovery.MinDaysPostOp {
		t.Fatalf("unexpected ui selection: %#v", call)
	}
	if !call.opts.DarkTheme || call.opts.Keybindings == nil || call.opts.Logger == nil {
		t.Fatalf("unexpected ui options: %#v", call.opts)
	}
	log := h.uiLog.String()
	if !strings.Contains(log, `msg="day clamped"`) || !strings.Contains(log, `msg="ui starting"`) {
		t.Fatalf("expected ui log lines, got %q", log)
	}
	if h.stderr.Len() != 0 {
		t.Fatalf("ui must not log to the terminal, got %q", h.stderr.String())
	}
}

func TestUICommandUnknownProcedure(t *testing.T) {
	h := newTestHarness(t)
	err := h.run(t, "ui", "--procedure", "lipo")
	if err == nil || !strings.Contains(err.Error(), `did you mean "liposuction"?`) {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.uiCalls) != 0 {
		t.Fatalf("ui must not start on error")
	}
}

func TestVersionCommand(t *testing.T) {
	h := newTestHarness(t)
	if err := h.run(t, "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := h.stdout.String(); got != "test\n" {
		t.Fatalf("unexpected version output: %q", got)
	}
}
