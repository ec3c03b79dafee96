package app

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

const toastDuration = 3 * time.Second

func (m *Model) setStatusInfo(message string) {
	m.status = message
	m.showToast(toastLevelInfo, message)
}

func (m *Model) setStatusWarning(message string) {
	m.status = message
	m.showToast(toastLevelWarning, message)
}

func (m *Model) setStatusError(message string) {
	m.status = message
	m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = m.now().Add(toastDuration)
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) toastActive(at time.Time) bool {
	if strings.TrimSpace(m.toastText) == "" {
		return false
	}
	if m.toastUntil.IsZero() {
		return true
	}
	return at.Before(m.toastUntil)
}

func (m *Model) toastView() string {
	if !m.toastActive(m.now()) {
		return ""
	}
	var style lipgloss.Style
	switch m.toastLevel {
	case toastLevelWarning:
		style = toastWarningStyle
	case toastLevelError:
		style = toastErrorStyle
	default:
		style = toastInfoStyle
	}
	return style.Render(" " + m.toastText + " ")
}
