package request_models

type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
}

type UpdateExerciseRequest struct {
	Name        *string `json:"name"`
	MuscleGroup *string `json:"muscle_group"`
	Equipment   *string `json:"equipment"`
}
