package recovery

const (
	ProcedureIDRhinoplasty        = "rhinoplasty"
	ProcedureIDBreastAugmentation = "breast_augmentation"
	ProcedureIDLiposuction        = "liposuction"
)

const (
	MinDaysPostOp = 1
	MaxDaysPostOp = 365
)

// Milestone is one dated checkpoint in a recovery timeline.
type Milestone struct {
	DayOffset   int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Procedure is a named recovery plan. Milestones are ordered by strictly
// increasing DayOffset.
type Procedure struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Milestones []Milestone `json:"milestones"`
}

type ProcedureSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MilestoneStatus string

const (
	MilestoneStatusComplete MilestoneStatus = "complete"
	MilestoneStatusCurrent  MilestoneStatus = "current"
	MilestoneStatusUpcoming MilestoneStatus = "upcoming"
)

func (s MilestoneStatus) String() string {
	return string(s)
}

func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusComplete, MilestoneStatusCurrent, MilestoneStatusUpcoming:
		return true
	default:
		return false
	}
}

// MilestoneState pairs a milestone with its status for one daysPostOp value.
type MilestoneState struct {
	Milestone Milestone       `json:"milestone"`
	Status    MilestoneStatus `json:"status"`
}

func (p Procedure) Summary() ProcedureSummary {
	return ProcedureSummary{ID: p.ID, Name: p.Name}
}

// LastDayOffset is the day of the final milestone, or 0 for an empty plan.
func (p Procedure) LastDayOffset() int {
	if len(p.Milestones) == 0 {
		return 0
	}
	return p.Milestones[len(p.Milestones)-1].DayOffset
}

func cloneProcedure(in Procedure) Procedure {
	out := in
	out.Milestones = append([]Milestone(nil), in.Milestones...)
	return out
}

func validDaysPostOp(days int) bool {
	return days >= MinDaysPostOp && days <= MaxDaysPostOp
}

// ClampDaysPostOp bounds days to the supported range and reports whether the
// input had to be changed.
func ClampDaysPostOp(days int) (int, bool) {
	switch {
	case days < MinDaysPostOp:
		return MinDaysPostOp, true
	case days > MaxDaysPostOp:
		return MaxDaysPostOp, true
	default:
		return days, false
	}
}
