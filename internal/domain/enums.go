package domain

// Goal is the body-composition target that drives plan personalization.
type Goal string

const (
	GoalCutting       Goal = "cutting"
	GoalBulking       Goal = "bulking"
	GoalRecomposition Goal = "recomposition"
)

// Goals lists every accepted goal in display order.
var Goals = []Goal{GoalCutting, GoalBulking, GoalRecomposition}

// IsValid reports whether g is one of the known goals.
func (g Goal) IsValid() bool {
	switch g {
	case GoalCutting, GoalBulking, GoalRecomposition:
		return true
	}
	return false
}

var goalLabels = map[Goal]string{
	GoalCutting:       "Cutting (Menurunkan Lemak)",
	GoalBulking:       "Bulking (Menambah Otot)",
	GoalRecomposition: "Body Recomposition",
}

// Label returns the human-facing goal name shown on the profile card.
func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return "Belum ditentukan"
}

// Intent identifies the kind of content requested from the generation layer.
type Intent string

const (
	IntentWorkoutPlan    Intent = "workout-plan"
	IntentNutritionPlan  Intent = "nutrition-plan"
	IntentSleepPlan      Intent = "sleep-plan"
	IntentWeeklySchedule Intent = "weekly-schedule"
	IntentChat           Intent = "chat"
)

// IsPlan reports whether the intent produces a cacheable plan document.
func (i Intent) IsPlan() bool {
	return i != IntentChat && i != ""
}
