package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCopyTextToClipboardUsesSystemBackend(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})

	fallbackCalled := false
	clipboardWriteAll = func(string) error { return nil }
	clipboardWriteOSC52 = func(string) error {
		fallbackCalled = true
		return nil
	}

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodSystem || fallbackCalled {
		t.Fatalf("expected system method without fallback, got %v %v", method, fallbackCalled)
	}
}

func TestCopyTextToClipboardFallsBackToOSC52(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})

	clipboardWriteAll = func(string) error { return errors.New("exit status 1") }
	var got string
	clipboardWriteOSC52 = func(text string) error {
		got = text
		return nil
	}

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodOSC52 || got != "hello" {
		t.Fatalf("expected OSC52 fallback, got %v %q", method, got)
	}
}

func TestCopyTextToClipboardReportsMissingDisplay(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	clipboardWriteAll = func(string) error { return errors.New("exit status 1") }
	clipboardWriteOSC52 = func(string) error { return errors.New("OSC52 unavailable for this terminal") }

	_, err := copyTextToClipboard("hello")
	if err == nil || !strings.Contains(err.Error(), "no GUI clipboard available") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteOSC52SequenceTmuxWritesBothForms(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	t.Setenv("TERM", "screen-256color")
	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "hi"); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "\x1b]52;") != 2 || !strings.Contains(out, "\x1bPtmux;") {
		t.Fatalf("expected plain and tmux sequences, got %q", out)
	}
}

func TestShouldAttemptOSC52(t *testing.T) {
	t.Setenv("AFTERCARE_DISABLE_OSC52", "")
	t.Setenv("TERM", "xterm-256color")
	if !shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 for xterm")
	}
	t.Setenv("TERM", "dumb")
	if shouldAttemptOSC52() {
		t.Fatalf("expected no OSC52 for dumb terminal")
	}
	t.Setenv("TERM", "xterm")
	for _, value := range []string{"1", "true", "YES", " on "} {
		t.Setenv("AFTERCARE_DISABLE_OSC52", value)
		if shouldAttemptOSC52() {
			t.Fatalf("expected OSC52 disabled by AFTERCARE_DISABLE_OSC52=%q", value)
		}
	}
	for _, value := range []string{"0", "no", "off"} {
		t.Setenv("AFTERCARE_DISABLE_OSC52", value)
		if !shouldAttemptOSC52() {
			t.Fatalf("expected OSC52 allowed with AFTERCARE_DISABLE_OSC52=%q", value)
		}
	}
}
