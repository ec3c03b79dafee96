package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeybindingsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	bindings, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if got := bindings.KeyFor(KeyCommandDayForward, ""); got != "right" {
		t.Fatalf("unexpected default binding: %q", got)
	}
}

func TestLoadKeybindingsArrayOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	data := []byte(`[
  {"command":"ui.dayForward","key":"l"},
  {"command":"dayBack","key":"h"},
  {"command":"ui.unknown","key":"z"}
]`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	bindings, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if got := bindings.KeyFor(KeyCommandDayForward, ""); got != "l" {
		t.Fatalf("unexpected forward binding: %q", got)
	}
	if got := bindings.KeyFor(KeyCommandDayBack, ""); got != "h" {
		t.Fatalf("unexpected back binding: %q", got)
	}
	if _, ok := bindings.Bindings()["ui.unknown"]; ok {
		t.Fatalf("unknown commands must be ignored")
	}
}

func TestLoadKeybindingsMapOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	data := []byte(`{"ui.copySummary":"c","ui.quit":"  "}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	bindings, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if got := bindings.KeyFor(KeyCommandCopySummary, ""); got != "c" {
		t.Fatalf("unexpected copy binding: %q", got)
	}
	if got := bindings.KeyFor(KeyCommandQuit, ""); got != "q" {
		t.Fatalf("blank override should keep default, got %q", got)
	}
}

func TestLoadKeybindingsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	bindings, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if len(bindings.Bindings()) != len(KnownKeybindingCommands()) {
		t.Fatalf("expected a binding for every command")
	}
}

func TestLoadKeybindingsRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadKeybindings(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestKeyMapHelpUsesBoundKeys(t *testing.T) {
	keys := newKeyMap(NewKeybindings(map[string]string{KeyCommandPickProcedure: "ctrl+p"}))
	if got := keys.PickProcedure.Help().Key; got != "ctrl+p" {
		t.Fatalf("unexpected help key: %q", got)
	}
	if len(keys.FullHelp()) != 3 || len(keys.ShortHelp()) == 0 {
		t.Fatalf("unexpected help layout")
	}
}
