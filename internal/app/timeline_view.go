package app

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"aftercare/internal/content"
	"aftercare/internal/recovery"
	"aftercare/internal/report"
)

const minSliderWidth = 10

// renderDaySlider draws the post-op day as a marker on a 1-365 track.
func renderDaySlider(day, width int) string {
	label := fmt.Sprintf("day %3d ", day)
	trackWidth := width - len(label) - len(" 365") - 2
	if trackWidth < minSliderWidth {
		trackWidth = minSliderWidth
	}
	day, _ = recovery.ClampDaysPostOp(day)
	span := recovery.MaxDaysPostOp - recovery.MinDaysPostOp
	pos := (day - recovery.MinDaysPostOp) * (trackWidth - 1) / span
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(helpStyle.Render("1 "))
	b.WriteString(selectionStyle.Render(strings.Repeat("━", pos)))
	b.WriteString(currentStyle.Render("●"))
	b.WriteString(dividerStyle.Render(strings.Repeat("─", trackWidth-1-pos)))
	b.WriteString(helpStyle.Render(" 365"))
	return b.String()
}

func statusBadge(status recovery.MilestoneStatus) string {
	glyph := report.StatusGlyph(status.String())
	switch status {
	case recovery.MilestoneStatusComplete:
		return completeStyle.Render(glyph)
	case recovery.MilestoneStatusCurrent:
		return currentStyle.Render(glyph)
	default:
		return upcomingStyle.Render(glyph)
	}
}

// renderTimeline lists every milestone with its status badge. Descriptions
// are wrapped under the title when width allows.
func renderTimeline(states []recovery.MilestoneState, width int) string {
	lines := make([]string, 0, len(states)*2)
	for _, state := range states {
		title := state.Milestone.Title
		if state.Status == recovery.MilestoneStatusCurrent {
			title = currentStyle.Render(title)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			statusBadge(state.Status),
			milestoneDayStyle.Render(fmt.Sprintf("day %3d", state.Milestone.DayOffset)),
			title))
		desc := strings.TrimSpace(state.Milestone.Description)
		if desc == "" {
			continue
		}
		if width > 12 {
			desc = xansi.Wordwrap(desc, width-12, " ")
		}
		for _, line := range strings.Split(desc, "\n") {
			lines = append(lines, "            "+descriptionStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func renderNowNext(snap recovery.Snapshot) string {
	var lines []string
	if len(snap.Current) > 0 {
		titles := make([]string, 0, len(snap.Current))
		for _, ms := range snap.Current {
			titles = append(titles, ms.Title)
		}
		lines = append(lines, "Now: "+currentStyle.Render(strings.Join(titles, ", ")))
	}
	if snap.Next != nil {
		lines = append(lines, fmt.Sprintf("Next: %s on day %d (in %d days)", snap.Next.Title, snap.Next.DayOffset, snap.DaysUntilNext))
	}
	if len(lines) == 0 {
		lines = append(lines, statusStyle.Render("All milestones complete."))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHomeBody(width int) string {
	sections := []string{
		renderNowNext(m.snapshot),
		"",
		renderTimeline(m.snapshot.Milestones, width),
		"",
		renderMarkdown(content.MustLookup(content.DocumentEducation).Markdown, width, m.darkTheme),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderProgressBody(width int) string {
	snap := m.snapshot
	counts := snap.Counts()
	bar := m.progress.ViewAs(recovery.ProgressFraction(snap.DaysPostOp, recovery.DefaultHorizonDays))
	sections := []string{
		fmt.Sprintf("%s %d%%", bar, snap.ProgressPercent),
		statusStyle.Render(fmt.Sprintf("%s day of the %d-day recovery window", humanize.Ordinal(snap.DaysPostOp), recovery.DefaultHorizonDays)),
		"",
		fmt.Sprintf("%s %d complete   %s %d current   %s %d upcoming",
			statusBadge(recovery.MilestoneStatusComplete), counts[recovery.MilestoneStatusComplete],
			statusBadge(recovery.MilestoneStatusCurrent), counts[recovery.MilestoneStatusCurrent],
			statusBadge(recovery.MilestoneStatusUpcoming), counts[recovery.MilestoneStatusUpcoming]),
		"",
		renderMarkdown(content.MustLookup(content.DocumentWellness).Markdown, width, m.darkTheme),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderAlertsBody(width int) string {
	return renderMarkdown(content.MustLookup(content.DocumentWarnings).Markdown, width, m.darkTheme)
}
