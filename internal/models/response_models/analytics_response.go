package response_models

type WeeklyVolumeEntry struct {
	Week   string  `json:"week"` // ISO week key, e.g. "2026-W34"
	Volume float64 `json:"volume"`
}

type AverageDurationEntry struct {
	Bucket      string  `json:"bucket"` // ISO week or month key
	AvgDuration float64 `json:"avg_duration_minutes"`
}

// MeasurementTrend holds one ascending-by-date series per tracked field,
// all aligned on the Dates axis.
type MeasurementTrend struct {
	Dates  []string  `json:"dates"`
	Weight []float64 `json:"weight"`
	Chest  []float64 `json:"chest"`
	Arms   []float64 `json:"arms"`
	Waist  []float64 `json:"waist"`
}

type TopExerciseEntry struct {
	ExerciseID     string  `json:"exercise_id"`
	ExerciseName   string  `json:"exercise_name"`
	TimesPerformed int64   `json:"times_performed"`
	TotalReps      int64   `json:"total_reps"`
	TotalLift      float64 `json:"total_lift"`
}
