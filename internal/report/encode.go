package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"aftercare/internal/recovery"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const maxTitleWidth = 32

var ErrUnsupportedFormat = errors.New("invalid format: must be text, json, toml or yaml")

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatTOML):
		return FormatTOML, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Write encodes payload in the given format. Text output is only available
// for a Report.
func Write(out io.Writer, format Format, payload any) error {
	switch format {
	case FormatText:
		r, ok := payload.(Report)
		if !ok {
			return fmt.Errorf("text format not supported for %T", payload)
		}
		_, err := io.WriteString(out, r.Text())
		return err
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case FormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		return writeWithNewline(out, data)
	case FormatYAML:
		data, err := yaml.Marshal(payload)
		if err != nil {
			return err
		}
		return writeWithNewline(out, data)
	default:
		return ErrUnsupportedFormat
	}
}

func writeWithNewline(out io.Writer, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err := out.Write(data)
	return err
}

// Headline is the one-line summary used by the text report and the clipboard
// copy action.
func (r Report) Headline() string {
	return fmt.Sprintf("%s: %s day after surgery, %d%% through the %d-day recovery window",
		r.ProcedureName, humanize.Ordinal(r.DaysPostOp), r.ProgressPercent, r.HorizonDays)
}

func (r Report) Text() string {
	var b strings.Builder
	b.WriteString(r.Headline())
	b.WriteString("\n\n")

	titleWidth := len("MILESTONE")
	for _, row := range r.Milestones {
		titleWidth = max(titleWidth, runewidth.StringWidth(truncateTitle(row.Title)))
	}
	fmt.Fprintf(&b, "  %-8s %5s  %s\n", "STATUS", "DAY", "MILESTONE")
	for _, row := range r.Milestones {
		title := runewidth.FillRight(truncateTitle(row.Title), titleWidth)
		line := fmt.Sprintf("%s %-8s %5d  %s", StatusGlyph(row.Status), row.Status, row.Day, title)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}

	if len(r.Current) > 0 {
		b.WriteString("\nNow: ")
		b.WriteString(strings.Join(r.Current, ", "))
		b.WriteByte('\n')
	}
	if r.Next != nil {
		fmt.Fprintf(&b, "Next: %s on day %d (in %d days)\n", r.Next.Title, r.Next.Day, r.Next.InDays)
	}
	return b.String()
}

// StatusGlyph maps a milestone status to its badge. Unrecognised values get
// "?" so a bad row never passes for an upcoming one.
func StatusGlyph(status string) string {
	s := recovery.MilestoneStatus(status)
	if !s.IsValid() {
		return "?"
	}
	switch s {
	case recovery.MilestoneStatusComplete:
		return "✓"
	case recovery.MilestoneStatusCurrent:
		return "●"
	default:
		return "○"
	}
}

func truncateTitle(title string) string {
	return runewidth.Truncate(strings.TrimSpace(title), maxTitleWidth, "…")
}
