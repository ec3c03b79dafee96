package recovery

// Engine is the query surface the presentation layer reads from. It holds no
// selection state; every call recomputes from the catalog and its arguments.
type Engine struct {
	catalog *Catalog
	horizon int
}

func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog, horizon: DefaultHorizonDays}
}

func (e *Engine) Catalog() *Catalog {
	if e == nil || e.catalog == nil {
		return DefaultCatalog()
	}
	return e.catalog
}

func (e *Engine) ProcedureList() []ProcedureSummary {
	return e.Catalog().Procedures()
}

func (e *Engine) Milestones(procedureID string) ([]Milestone, error) {
	proc, err := e.Catalog().Lookup(procedureID)
	if err != nil {
		return nil, err
	}
	return proc.Milestones, nil
}

// MilestoneStatuses resolves every milestone of the procedure for one day.
// Days outside [MinDaysPostOp, MaxDaysPostOp] are rejected.
func (e *Engine) MilestoneStatuses(procedureID string, daysPostOp int) ([]MilestoneState, error) {
	if !validDaysPostOp(daysPostOp) {
		return nil, invalidDayError(daysPostOp)
	}
	milestones, err := e.Milestones(procedureID)
	if err != nil {
		return nil, err
	}
	return ResolveStatuses(milestones, daysPostOp), nil
}

func (e *Engine) ProgressPercent(daysPostOp int) int {
	horizon := DefaultHorizonDays
	if e != nil && e.horizon > 0 {
		horizon = e.horizon
	}
	return ProgressPercent(daysPostOp, horizon)
}

// Snapshot is everything a screen needs for one selection, computed in a
// single read.
type Snapshot struct {
	Procedure       ProcedureSummary `json:"procedure"`
	DaysPostOp      int              `json:"days_post_op"`
	ProgressPercent int              `json:"progress_percent"`
	Milestones      []MilestoneState `json:"milestones"`
	// Current may hold zero, one or several milestones.
	Current       []Milestone `json:"current,omitempty"`
	Next          *Milestone  `json:"next,omitempty"`
	DaysUntilNext int         `json:"days_until_next,omitempty"`
}

func (e *Engine) Snapshot(sel Selection) (Snapshot, error) {
	proc, err := e.Catalog().Lookup(sel.ProcedureID)
	if err != nil {
		return Snapshot{}, err
	}
	states, err := e.MilestoneStatuses(proc.ID, sel.DaysPostOp)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Procedure:       proc.Summary(),
		DaysPostOp:      sel.DaysPostOp,
		ProgressPercent: e.ProgressPercent(sel.DaysPostOp),
		Milestones:      states,
	}
	for _, state := range states {
		switch state.Status {
		case MilestoneStatusCurrent:
			snap.Current = append(snap.Current, state.Milestone)
		case MilestoneStatusUpcoming:
			if snap.Next == nil {
				next := state.Milestone
				snap.Next = &next
				snap.DaysUntilNext = next.DayOffset - sel.DaysPostOp
			}
		}
	}
	return snap, nil
}

// Counts tallies milestones per status.
func (s Snapshot) Counts() map[MilestoneStatus]int {
	out := map[MilestoneStatus]int{
		MilestoneStatusComplete: 0,
		MilestoneStatusCurrent:  0,
		MilestoneStatusUpcoming: 0,
	}
	for _, state := range s.Milestones {
		out[state.Status]++
	}
	return out
}
