package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"aftercare/internal/recovery"
)

func TestRenderTimelineBadges(t *testing.T) {
	engine := recovery.NewEngine(nil)
	states, err := engine.MilestoneStatuses(recovery.ProcedureIDRhinoplasty, 5)
	if err != nil {
		t.Fatalf("MilestoneStatuses: %v", err)
	}
	out := xansi.Strip(renderTimeline(states, 80))
	for _, want := range []string{"✓ day   1  Surgery Day", "● day   7  Cast/Splint Removal", "○ day 365  Final Result"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in timeline:\n%s", want, out)
		}
	}
}

func TestRenderNowNext(t *testing.T) {
	engine := recovery.NewEngine(nil)
	snap, err := engine.Snapshot(recovery.Selection{ProcedureID: recovery.ProcedureIDRhinoplasty, DaysPostOp: 13})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	out := xansi.Strip(renderNowNext(snap))
	if out != "Now: Bruising Fades\nNext: Return to Exercise on day 30 (in 17 days)" {
		t.Fatalf("unexpected now/next:\n%s", out)
	}

	snap, err = engine.Snapshot(recovery.Selection{ProcedureID: recovery.ProcedureIDBreastAugmentation, DaysPostOp: 365})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if out := xansi.Strip(renderNowNext(snap)); out != "All milestones complete." {
		t.Fatalf("unexpected final state: %q", out)
	}
}

func TestRenderDaySliderEnds(t *testing.T) {
	first := xansi.Strip(renderDaySlider(1, 60))
	last := xansi.Strip(renderDaySlider(365, 60))
	if !strings.HasPrefix(first, "day   1 1 ●") {
		t.Fatalf("unexpected first-day slider: %q", first)
	}
	if !strings.HasSuffix(last, "● 365") {
		t.Fatalf("unexpected last-day slider: %q", last)
	}
	if xansi.StringWidth(first) != xansi.StringWidth(last) {
		t.Fatalf("slider width should not depend on day")
	}
}

func TestCycleTabWraps(t *testing.T) {
	if got := cycleTab(tabAlerts, 1); got != tabHome {
		t.Fatalf("expected wrap to home, got %v", got)
	}
	if got := cycleTab(tabHome, -1); got != tabAlerts {
		t.Fatalf("expected wrap to alerts, got %v", got)
	}
	bar := xansi.Strip(renderTabBar(tabProgress, 0))
	if !strings.Contains(bar, "Home") || !strings.Contains(bar, "Progress") || !strings.Contains(bar, "Alerts") {
		t.Fatalf("unexpected tab bar: %q", bar)
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if got := renderMarkdown("\n\n", 40, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	out := xansi.Strip(renderMarkdown("# Title\n\nSome **bold** text.", 40, false))
	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Fatalf("unexpected markdown output:\n%s", out)
	}
}
