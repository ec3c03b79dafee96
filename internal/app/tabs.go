package app

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type tab int

const (
	tabHome tab = iota
	tabProgress
	tabAlerts
)

var tabOrder = []tab{tabHome, tabProgress, tabAlerts}

func (t tab) String() string {
	switch t {
	case tabProgress:
		return "Progress"
	case tabAlerts:
		return "Alerts"
	default:
		return "Home"
	}
}

// cycleTab moves delta steps through tabOrder, wrapping at both ends.
func cycleTab(current tab, delta int) tab {
	n := len(tabOrder)
	idx := 0
	for i, t := range tabOrder {
		if t == current {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	return tabOrder[idx]
}

func renderTabBar(active tab, width int) string {
	parts := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		if t == active {
			parts = append(parts, tabActiveStyle.Render(t.String()))
			continue
		}
		parts = append(parts, tabStyle.Render(t.String()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width <= 0 {
		return bar
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, bar)
}

func renderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return dividerStyle.Render(strings.Repeat("─", width))
}
