package request_models

type CreateSessionRequest struct {
	MemberID      string `json:"member_id" binding:"required,uuid"`
	SessionDate   string `json:"session_date" binding:"required"` // YYYY-MM-DD
	TotalDuration int    `json:"total_duration" binding:"omitempty,gte=0"`
	Notes         string `json:"notes"`
}

type UpdateSessionRequest struct {
	SessionDate   *string `json:"session_date"`
	TotalDuration *int    `json:"total_duration" binding:"omitempty,gte=0"`
	Notes         *string `json:"notes"`
}

type CreateLogRequest struct {
	SessionID      string  `json:"session_id" binding:"required,uuid"`
	ExerciseID     string  `json:"exercise_id" binding:"required,uuid"`
	Sets           int     `json:"sets" binding:"required,gt=0"`
	Reps           int     `json:"reps" binding:"required,gt=0"`
	Weight         float64 `json:"weight" binding:"omitempty,gte=0"`
	CaloriesBurned float64 `json:"calories_burned" binding:"omitempty,gte=0"`
}

type UpdateLogRequest struct {
	ExerciseID     *string  `json:"exercise_id" binding:"omitempty,uuid"`
	Sets           *int     `json:"sets" binding:"omitempty,gt=0"`
	Reps           *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight         *float64 `json:"weight" binding:"omitempty,gte=0"`
	CaloriesBurned *float64 `json:"calories_burned" binding:"omitempty,gte=0"`
}
