// Package report turns an engine snapshot into a timeline report that can be
// printed or serialised.
package report

import (
	"aftercare/internal/recovery"
)

type Report struct {
	ProcedureID     string         `json:"procedure" toml:"procedure" yaml:"procedure"`
	ProcedureName   string         `json:"procedure_name" toml:"procedure_name" yaml:"procedure_name"`
	DaysPostOp      int            `json:"days_post_op" toml:"days_post_op" yaml:"days_post_op"`
	ProgressPercent int            `json:"progress_percent" toml:"progress_percent" yaml:"progress_percent"`
	HorizonDays     int            `json:"horizon_days" toml:"horizon_days" yaml:"horizon_days"`
	Current         []string       `json:"current,omitempty" toml:"current,omitempty" yaml:"current,omitempty"`
	Next            *NextMilestone `json:"next,omitempty" toml:"next,omitempty" yaml:"next,omitempty"`
	Milestones      []MilestoneRow `json:"milestones" toml:"milestones" yaml:"milestones"`
}

type MilestoneRow struct {
	Day         int    `json:"day" toml:"day" yaml:"day"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Status      string `json:"status" toml:"status" yaml:"status"`
}

type NextMilestone struct {
	Day    int    `json:"day" toml:"day" yaml:"day"`
	Title  string `json:"title" toml:"title" yaml:"title"`
	InDays int    `json:"in_days" toml:"in_days" yaml:"in_days"`
}

func FromSnapshot(snap recovery.Snapshot) Report {
	out := Report{
		ProcedureID:     snap.Procedure.ID,
		ProcedureName:   snap.Procedure.Name,
		DaysPostOp:      snap.DaysPostOp,
		ProgressPercent: snap.ProgressPercent,
		HorizonDays:     recovery.DefaultHorizonDays,
		Milestones:      make([]MilestoneRow, 0, len(snap.Milestones)),
	}
	for _, state := range snap.Milestones {
		out.Milestones = append(out.Milestones, MilestoneRow{
			Day:         state.Milestone.DayOffset,
			Title:       state.Milestone.Title,
			Description: state.Milestone.Description,
			Status:      state.Status.String(),
		})
	}
	for _, ms := range snap.Current {
		out.Current = append(out.Current, ms.Title)
	}
	if snap.Next != nil {
		out.Next = &NextMilestone{
			Day:    snap.Next.DayOffset,
			Title:  snap.Next.Title,
			InDays: snap.DaysUntilNext,
		}
	}
	return out
}

// Build reads a snapshot for sel and converts it.
func Build(engine *recovery.Engine, sel recovery.Selection) (Report, error) {
	snap, err := engine.Snapshot(sel)
	if err != nil {
		return Report{}, err
	}
	return FromSnapshot(snap), nil
}
