package recovery

// currentWindowDays is how far past daysPostOp a milestone still counts as
// current. The window is closed, so several milestones can be current at once.
const currentWindowDays = 2

// ResolveStatus classifies one milestone for the given day.
func ResolveStatus(m Milestone, daysPostOp int) MilestoneStatus {
	switch {
	case m.DayOffset < daysPostOp:
		return MilestoneStatusComplete
	case m.DayOffset == daysPostOp,
		m.DayOffset >= daysPostOp && m.DayOffset <= daysPostOp+currentWindowDays:
		return MilestoneStatusCurrent
	default:
		return MilestoneStatusUpcoming
	}
}

// ResolveStatuses classifies every milestone in order.
func ResolveStatuses(milestones []Milestone, daysPostOp int) []MilestoneState {
	out := make([]MilestoneState, 0, len(milestones))
	for _, ms := range milestones {
		out = append(out, MilestoneState{
			Milestone: ms,
			Status:    ResolveStatus(ms, daysPostOp),
		})
	}
	return out
}
