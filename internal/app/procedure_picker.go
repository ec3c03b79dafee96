package app

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"aftercare/internal/recovery"
)

// procedurePicker is a typeahead list over the catalog. An empty query lists
// every procedure in catalog order; otherwise entries are ranked by fuzzy
// score against their id and display name.
type procedurePicker struct {
	options  []recovery.ProcedureSummary
	filtered []recovery.ProcedureSummary
	query    string
	selected int
}

func newProcedurePicker(options []recovery.ProcedureSummary) *procedurePicker {
	p := &procedurePicker{options: append([]recovery.ProcedureSummary(nil), options...)}
	p.applyFilter()
	return p
}

// Open resets the query and puts the cursor on currentID.
func (p *procedurePicker) Open(currentID string) {
	p.query = ""
	p.applyFilter()
	p.selected = 0
	for i, option := range p.filtered {
		if option.ID == currentID {
			p.selected = i
			break
		}
	}
}

func (p *procedurePicker) Query() string {
	return p.query
}

func (p *procedurePicker) AppendQuery(text string) {
	if text == "" {
		return
	}
	p.query += text
	p.applyFilter()
}

func (p *procedurePicker) BackspaceQuery() {
	if p.query == "" {
		return
	}
	runes := []rune(p.query)
	p.query = string(runes[:len(runes)-1])
	p.applyFilter()
}

func (p *procedurePicker) Move(delta int) {
	if len(p.filtered) == 0 {
		p.selected = 0
		return
	}
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.filtered) {
		p.selected = len(p.filtered) - 1
	}
}

func (p *procedurePicker) Selected() (recovery.ProcedureSummary, bool) {
	if p.selected < 0 || p.selected >= len(p.filtered) {
		return recovery.ProcedureSummary{}, false
	}
	return p.filtered[p.selected], true
}

func (p *procedurePicker) Filtered() []recovery.ProcedureSummary {
	return p.filtered
}

func (p *procedurePicker) applyFilter() {
	query := strings.TrimSpace(p.query)
	if query == "" {
		p.filtered = append(p.filtered[:0], p.options...)
		p.clampSelection()
		return
	}
	haystack := make([]string, len(p.options))
	for i, option := range p.options {
		haystack[i] = option.ID + " " + option.Name
	}
	matches := fuzzy.Find(query, haystack)
	p.filtered = p.filtered[:0]
	for _, match := range matches {
		p.filtered = append(p.filtered, p.options[match.Index])
	}
	p.clampSelection()
}

func (p *procedurePicker) clampSelection() {
	if p.selected >= len(p.filtered) {
		p.selected = len(p.filtered) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

func (p *procedurePicker) View(width int) string {
	lines := []string{titleStyle.Render("Select procedure"), helpStyle.Render("filter: " + p.query + "▏")}
	if len(p.filtered) == 0 {
		lines = append(lines, statusStyle.Render("no matching procedures"))
	}
	for i, option := range p.filtered {
		label := option.Name + " " + helpStyle.Render("("+option.ID+")")
		if i == p.selected {
			lines = append(lines, selectedStyle.Render("> "+option.Name)+" "+helpStyle.Render("("+option.ID+")"))
			continue
		}
		lines = append(lines, "  "+label)
	}
	lines = append(lines, helpStyle.Render("enter select • esc cancel"))
	frame := pickerFrameStyle
	if width > 4 {
		frame = frame.Width(min(width-2, 60))
	}
	return frame.Render(strings.Join(lines, "\n"))
}
