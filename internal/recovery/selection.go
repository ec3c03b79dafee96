package recovery

// Selection is the host-owned recovery state: which procedure is shown and
// how many days have passed since surgery. Engine reads take it by value and
// never write to it.
//
// Day values are clamped here, at the host boundary, so engine queries always
// receive an in-range day.
type Selection struct {
	ProcedureID string
	DaysPostOp  int

	catalog *Catalog
}

// NewSelection starts on procedureID at day 1.
func NewSelection(catalog *Catalog, procedureID string) (*Selection, error) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	sel := &Selection{catalog: catalog, DaysPostOp: MinDaysPostOp}
	if err := sel.SetProcedure(procedureID); err != nil {
		return nil, err
	}
	return sel, nil
}

// SetProcedure replaces the selected procedure. Unknown ids leave the
// selection untouched.
func (s *Selection) SetProcedure(id string) error {
	if !s.catalogOrDefault().Has(id) {
		return unknownProcedureError(id)
	}
	s.ProcedureID = NormalizeProcedureID(id)
	return nil
}

// SetDaysPostOp stores n clamped to [MinDaysPostOp, MaxDaysPostOp] and
// returns the stored value and whether clamping happened.
func (s *Selection) SetDaysPostOp(n int) (int, bool) {
	days, clamped := ClampDaysPostOp(n)
	s.DaysPostOp = days
	return days, clamped
}

// StepDays moves the day by delta, clamped.
func (s *Selection) StepDays(delta int) (int, bool) {
	return s.SetDaysPostOp(s.DaysPostOp + delta)
}

// Procedure re-reads the selected procedure from the catalog on every call.
func (s *Selection) Procedure() (Procedure, error) {
	return s.catalogOrDefault().Lookup(s.ProcedureID)
}

// Milestones is catalog.Lookup(ProcedureID).Milestones.
func (s *Selection) Milestones() ([]Milestone, error) {
	proc, err := s.Procedure()
	if err != nil {
		return nil, err
	}
	return proc.Milestones, nil
}

func (s *Selection) Snapshot() Selection {
	if s == nil {
		return Selection{}
	}
	return Selection{ProcedureID: s.ProcedureID, DaysPostOp: s.DaysPostOp, catalog: s.catalog}
}

func (s *Selection) catalogOrDefault() *Catalog {
	if s == nil || s.catalog == nil {
		return DefaultCatalog()
	}
	return s.catalog
}
