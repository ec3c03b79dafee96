package app

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
)

const (
	KeyCommandQuit          = "ui.quit"
	KeyCommandNextTab       = "ui.nextTab"
	KeyCommandPrevTab       = "ui.prevTab"
	KeyCommandTabHome       = "ui.tabHome"
	KeyCommandTabProgress   = "ui.tabProgress"
	KeyCommandTabAlerts     = "ui.tabAlerts"
	KeyCommandDayBack       = "ui.dayBack"
	KeyCommandDayForward    = "ui.dayForward"
	KeyCommandWeekBack      = "ui.weekBack"
	KeyCommandWeekForward   = "ui.weekForward"
	KeyCommandFirstDay      = "ui.firstDay"
	KeyCommandLastDay       = "ui.lastDay"
	KeyCommandPickProcedure = "ui.pickProcedure"
	KeyCommandCopySummary   = "ui.copySummary"
	KeyCommandToggleHelp    = "ui.toggleHelp"
)

var defaultKeybindingByCommand = map[string]string{
	KeyCommandQuit:          "q",
	KeyCommandNextTab:       "tab",
	KeyCommandPrevTab:       "shift+tab",
	KeyCommandTabHome:       "1",
	KeyCommandTabProgress:   "2",
	KeyCommandTabAlerts:     "3",
	KeyCommandDayBack:       "left",
	KeyCommandDayForward:    "right",
	KeyCommandWeekBack:      "shift+left",
	KeyCommandWeekForward:   "shift+right",
	KeyCommandFirstDay:      "home",
	KeyCommandLastDay:       "end",
	KeyCommandPickProcedure: "p",
	KeyCommandCopySummary:   "y",
	KeyCommandToggleHelp:    "?",
}

// Keybindings maps UI commands to the key that triggers them. Overrides
// replace the default key for a command; unknown commands are ignored.
type Keybindings struct {
	byCommand map[string]string
}

type keybindingEntry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string]string, len(defaultKeybindingByCommand))
	for command, key := range defaultKeybindingByCommand {
		byCommand[command] = key
	}
	for command, key := range overrides {
		command = normalizeKeybindingCommand(command)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	return &Keybindings{byCommand: byCommand}
}

// LoadKeybindings reads a JSON override file. A missing or empty file yields
// the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultKeybindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeybindings(), nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return DefaultKeybindings(), nil
	}
	overrides, err := parseKeybindingOverrides(data)
	if err != nil {
		return nil, err
	}
	return NewKeybindings(overrides), nil
}

func (k *Keybindings) KeyFor(command, fallback string) string {
	command = normalizeKeybindingCommand(command)
	if command == "" {
		return fallback
	}
	if k != nil {
		if key := strings.TrimSpace(k.byCommand[command]); key != "" {
			return key
		}
	}
	if key := strings.TrimSpace(defaultKeybindingByCommand[command]); key != "" {
		return key
	}
	return fallback
}

func (k *Keybindings) Bindings() map[string]string {
	out := make(map[string]string, len(defaultKeybindingByCommand))
	for _, command := range KnownKeybindingCommands() {
		out[command] = k.KeyFor(command, defaultKeybindingByCommand[command])
	}
	return out
}

func KnownKeybindingCommands() []string {
	out := make([]string, 0, len(defaultKeybindingByCommand))
	for command := range defaultKeybindingByCommand {
		out = append(out, command)
	}
	sort.Strings(out)
	return out
}

func parseKeybindingOverrides(data []byte) (map[string]string, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var entries []keybindingEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		out := map[string]string{}
		for _, entry := range entries {
			command := normalizeKeybindingCommand(entry.Command)
			if command == "" {
				continue
			}
			out[command] = strings.TrimSpace(entry.Key)
		}
		return out, nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for command, key := range raw {
		command = normalizeKeybindingCommand(command)
		if command == "" {
			continue
		}
		out[command] = strings.TrimSpace(key)
	}
	return out, nil
}

// normalizeKeybindingCommand accepts commands with or without the "ui."
// prefix.
func normalizeKeybindingCommand(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}
	if !strings.HasPrefix(command, "ui.") {
		command = "ui." + command
	}
	return command
}

// KeyMap is the set of bindings the model matches key presses against. It
// also feeds the help line.
type KeyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	TabHome       key.Binding
	TabProgress   key.Binding
	TabAlerts     key.Binding
	DayBack       key.Binding
	DayForward    key.Binding
	WeekBack      key.Binding
	WeekForward   key.Binding
	FirstDay      key.Binding
	LastDay       key.Binding
	PickProcedure key.Binding
	CopySummary   key.Binding
	ToggleHelp    key.Binding
	Scroll        key.Binding
}

func newKeyMap(bindings *Keybindings) KeyMap {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	bind := func(command, help string) key.Binding {
		k := bindings.KeyFor(command, "")
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
	}
	return KeyMap{
		Quit:          bind(KeyCommandQuit, "quit"),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
		NextTab:       bind(KeyCommandNextTab, "next tab"),
		PrevTab:       bind(KeyCommandPrevTab, "prev tab"),
		TabHome:       bind(KeyCommandTabHome, "home"),
		TabProgress:   bind(KeyCommandTabProgress, "progress"),
		TabAlerts:     bind(KeyCommandTabAlerts, "alerts"),
		DayBack:       bind(KeyCommandDayBack, "day -1"),
		DayForward:    bind(KeyCommandDayForward, "day +1"),
		WeekBack:      bind(KeyCommandWeekBack, "day -7"),
		WeekForward:   bind(KeyCommandWeekForward, "day +7"),
		FirstDay:      bind(KeyCommandFirstDay, "first day"),
		LastDay:       bind(KeyCommandLastDay, "last day"),
		PickProcedure: bind(KeyCommandPickProcedure, "procedure"),
		CopySummary:   bind(KeyCommandCopySummary, "copy"),
		ToggleHelp:    bind(KeyCommandToggleHelp, "help"),
		Scroll:        key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DayBack, k.DayForward, k.NextTab, k.PickProcedure, k.ToggleHelp, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DayBack, k.DayForward, k.WeekBack, k.WeekForward, k.FirstDay, k.LastDay},
		{k.NextTab, k.PrevTab, k.TabHome, k.TabProgress, k.TabAlerts, k.Scroll},
		{k.PickProcedure, k.CopySummary, k.ToggleHelp, k.Quit},
	}
}
