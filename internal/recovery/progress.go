package recovery

import "math"

// DefaultHorizonDays is the fixed progress horizon. It does not depend on the
// selected procedure, so longer plans read 100% from day 90 onwards.
const DefaultHorizonDays = 90

// ProgressPercent returns round(min(days/horizon*100, 100)) bounded to
// [0, 100]. A non-positive horizon uses DefaultHorizonDays.
func ProgressPercent(daysPostOp, horizonDays int) int {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if daysPostOp <= 0 {
		return 0
	}
	pct := math.Min(float64(daysPostOp)/float64(horizonDays)*100, 100)
	return int(math.Round(pct))
}

// ProgressFraction is ProgressPercent scaled to [0, 1] for progress bars.
func ProgressFraction(daysPostOp, horizonDays int) float64 {
	return float64(ProgressPercent(daysPostOp, horizonDays)) / 100
}
