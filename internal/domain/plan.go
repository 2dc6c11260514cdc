package domain

// PlanBundle is the aggregate returned by plan generation. It is never stored.
type PlanBundle struct {
	WorkoutPlan   string `json:"workoutPlan"`
	NutritionPlan string `json:"nutritionPlan"`
	SleepPlan     string `json:"sleepPlan"`
}

// ScheduleDay is one entry of a generated weekly schedule.
type ScheduleDay struct {
	Day     string `json:"day"`
	Workout string `json:"workout"`
}
