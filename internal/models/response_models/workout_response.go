package response_models

type SessionResponse struct {
	ID            string `json:"id"`
	MemberID      string `json:"member_id"`
	SessionDate   string `json:"session_date"`
	TotalDuration int    `json:"total_duration"`
	Notes         string `json:"notes,omitempty"`
}

type LogResponse struct {
	ID             string  `json:"id"`
	SessionID      string  `json:"session_id"`
	ExerciseID     string  `json:"exercise_id"`
	ExerciseName   string  `json:"exercise_name,omitempty"`
	Sets           int     `json:"sets"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	CaloriesBurned float64 `json:"calories_burned"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
}
