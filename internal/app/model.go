package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"aftercare/internal/logging"
	"aftercare/internal/recovery"
	"aftercare/internal/report"
)

const (
	minViewportWidth  = 40
	minContentHeight  = 6
	headerHeight      = 4
	weekStepDays      = 7
	defaultViewWidth  = 80
	defaultViewHeight = 24
)

type uiMode int

const (
	uiModeNormal uiMode = iota
	uiModePickProcedure
)

type toastExpiredMsg struct{}

type Options struct {
	Keybindings *Keybindings
	Logger      logging.Logger
	DarkTheme   bool
	// Now is used for toast expiry; tests pin it.
	Now func() time.Time
}

// Model is the recovery dashboard. It owns the Selection; every key press
// that changes it is followed by a fresh engine snapshot.
type Model struct {
	engine    *recovery.Engine
	selection *recovery.Selection
	logger    logging.Logger
	keys      KeyMap
	help      help.Model
	progress  progress.Model
	viewport  viewport.Model
	picker    *procedurePicker
	mode      uiMode
	tab       tab
	width     int
	height    int
	darkTheme bool
	now       func() time.Time

	snapshot recovery.Snapshot
	status   string

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
}

// NewModel builds the dashboard. A nil selection starts on the first catalog
// procedure at day 1.
func NewModel(engine *recovery.Engine, selection *recovery.Selection, opts Options) (Model, error) {
	if engine == nil {
		engine = recovery.NewEngine(nil)
	}
	if selection == nil {
		procedures := engine.ProcedureList()
		if len(procedures) == 0 {
			return Model{}, errors.New("catalog has no procedures")
		}
		var err error
		selection, err = recovery.NewSelection(engine.Catalog(), procedures[0].ID)
		if err != nil {
			return Model{}, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		engine:    engine,
		selection: selection,
		logger:    logger.With(logging.F("component", "ui")),
		keys:      newKeyMap(opts.Keybindings),
		help:      help.New(),
		progress:  progress.New(progress.WithWidth(minViewportWidth), progress.WithoutPercentage()),
		viewport:  viewport.New(viewport.WithWidth(minViewportWidth), viewport.WithHeight(minContentHeight)),
		picker:    newProcedurePicker(engine.ProcedureList()),
		mode:      uiModeNormal,
		tab:       tabHome,
		darkTheme: opts.DarkTheme,
		now:       now,
	}
	m.resize(defaultViewWidth, defaultViewHeight)
	m.refreshContent()
	return m, nil
}

func Run(engine *recovery.Engine, selection *recovery.Selection, opts Options) error {
	model, err := NewModel(engine, selection, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(&model)
	_, err = p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshContent()
		return m, nil
	case toastExpiredMsg:
		if !m.toastActive(m.now()) {
			m.clearToast()
		}
		return m, nil
	case tea.KeyPressMsg:
		if m.mode == uiModePickProcedure {
			return m, m.handlePickerKey(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.NextTab):
		m.setTab(cycleTab(m.tab, 1))
	case key.Matches(msg, m.keys.PrevTab):
		m.setTab(cycleTab(m.tab, -1))
	case key.Matches(msg, m.keys.TabHome):
		m.setTab(tabHome)
	case key.Matches(msg, m.keys.TabProgress):
		m.setTab(tabProgress)
	case key.Matches(msg, m.keys.TabAlerts):
		m.setTab(tabAlerts)
	case key.Matches(msg, m.keys.DayBack):
		return m.stepDays(-1), true
	case key.Matches(msg, m.keys.DayForward):
		return m.stepDays(1), true
	case key.Matches(msg, m.keys.WeekBack):
		return m.stepDays(-weekStepDays), true
	case key.Matches(msg, m.keys.WeekForward):
		return m.stepDays(weekStepDays), true
	case key.Matches(msg, m.keys.FirstDay):
		return m.setDays(recovery.MinDaysPostOp), true
	case key.Matches(msg, m.keys.LastDay):
		return m.setDays(recovery.MaxDaysPostOp), true
	case key.Matches(msg, m.keys.PickProcedure):
		m.picker.Open(m.selection.ProcedureID)
		m.mode = uiModePickProcedure
	case key.Matches(msg, m.keys.CopySummary):
		return m.copySummary(), true
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.mode = uiModeNormal
		m.status = "procedure unchanged"
		return nil
	case "enter":
		m.mode = uiModeNormal
		selected, ok := m.picker.Selected()
		if !ok {
			m.status = "procedure unchanged"
			return nil
		}
		return m.selectProcedure(selected.ID)
	case "up":
		m.picker.Move(-1)
	case "down":
		m.picker.Move(1)
	case "backspace":
		m.picker.BackspaceQuery()
	default:
		if msg.Text != "" {
			m.picker.AppendQuery(msg.Text)
		}
	}
	return nil
}

func (m *Model) selectProcedure(id string) tea.Cmd {
	if err := m.selection.SetProcedure(id); err != nil {
		m.logger.Warn("procedure change rejected", logging.F("procedure", id), logging.Err(err))
		m.setStatusError(err.Error())
		return m.toastExpiryCmd()
	}
	m.logger.Info("procedure selected", logging.F("procedure", m.selection.ProcedureID))
	m.refreshContent()
	m.viewport.GotoTop()
	m.setStatusInfo("procedure: " + m.snapshot.Procedure.Name)
	return m.toastExpiryCmd()
}

func (m *Model) stepDays(delta int) tea.Cmd {
	return m.setDays(m.selection.DaysPostOp + delta)
}

func (m *Model) setDays(n int) tea.Cmd {
	days, clamped := m.selection.SetDaysPostOp(n)
	m.refreshContent()
	if !clamped {
		m.status = ""
		return nil
	}
	m.logger.Debug("day clamped", logging.F("requested", n), logging.F("day", days))
	m.setStatusWarning(fmt.Sprintf("day stays within %d-%d", recovery.MinDaysPostOp, recovery.MaxDaysPostOp))
	return m.toastExpiryCmd()
}

func (m *Model) copySummary() tea.Cmd {
	text := report.FromSnapshot(m.snapshot).Text()
	if m.copyWithStatus(text, "timeline copied") {
		m.logger.Info("timeline copied", logging.F("procedure", m.snapshot.Procedure.ID), logging.F("day", m.snapshot.DaysPostOp))
	}
	return m.toastExpiryCmd()
}

func (m *Model) toastExpiryCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m *Model) setTab(t tab) {
	if m.tab == t {
		return
	}
	m.tab = t
	m.refreshContent()
	m.viewport.GotoTop()
}

// refreshContent recomputes the snapshot from the current selection and
// re-renders the body for the active tab.
func (m *Model) refreshContent() {
	snap, err := m.engine.Snapshot(m.selection.Snapshot())
	if err != nil {
		m.logger.Error("snapshot failed", logging.F("procedure", m.selection.ProcedureID), logging.F("day", m.selection.DaysPostOp), logging.Err(err))
		m.status = err.Error()
		m.viewport.SetContent(err.Error())
		return
	}
	m.snapshot = snap
	width := m.viewport.Width()
	var body string
	switch m.tab {
	case tabProgress:
		body = m.renderProgressBody(width)
	case tabAlerts:
		body = m.renderAlertsBody(width)
	default:
		body = m.renderHomeBody(width)
	}
	m.viewport.SetContent(body)
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultViewWidth
	}
	if height <= 0 {
		height = defaultViewHeight
	}
	m.width = width
	m.height = height
	contentWidth := max(width, minViewportWidth)
	m.help.SetWidth(contentWidth)
	m.progress.SetWidth(max(contentWidth-8, 10))
	footer := lipgloss.Height(m.help.View(m.keys)) + 2
	m.viewport.SetWidth(contentWidth)
	m.viewport.SetHeight(max(height-headerHeight-footer, minContentHeight))
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "aftercare: " + m.snapshot.Procedure.Name
	return v
}

func (m *Model) render() string {
	var body string
	if m.mode == uiModePickProcedure {
		body = lipgloss.Place(m.viewport.Width(), m.viewport.Height(), lipgloss.Center, lipgloss.Center, m.picker.View(m.width))
	} else {
		body = m.viewport.View()
	}
	lines := []string{
		m.headerLine(),
		renderTabBar(m.tab, m.width),
		renderDaySlider(m.snapshot.DaysPostOp, m.width),
		renderDivider(m.width),
		body,
		renderDivider(m.width),
		m.statusLine(),
		helpStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	return titleStyle.Render("aftercare") + "  " +
		selectionStyle.Render(m.snapshot.Procedure.Name) + "  " +
		statusStyle.Render(fmt.Sprintf("%d%% of %d days", m.snapshot.ProgressPercent, recovery.DefaultHorizonDays))
}

func (m *Model) statusLine() string {
	if toast := m.toastView(); toast != "" {
		return toast
	}
	return statusStyle.Render(m.status)
}
