package generator

import "alcyxob/fitness-planner/internal/domain"

// Scheme is the set/rep prescription applied to every generated exercise.
type Scheme struct {
	Sets int
	Reps string
}

var (
	EnduranceScheme   = Scheme{Sets: 3, Reps: "12-15"}
	HypertrophyScheme = Scheme{Sets: 4, Reps: "8-12"}
	StrengthScheme    = Scheme{Sets: 5, Reps: "4-6"}
)

// SchemeForGoal maps a training goal to its scheme. Goals outside 1-9 are
// not rejected: anything at or below 3 is endurance, anything above 6 strength.
func SchemeForGoal(goal int) Scheme {
	switch {
	case goal <= domain.GoalEnduranceMax:
		return EnduranceScheme
	case goal <= domain.GoalHypertrophyMax:
		return HypertrophyScheme
	default:
		return StrengthScheme
	}
}
