package request_models

type CreateMeasurementRequest struct {
	MemberID    string  `json:"member_id" binding:"required,uuid"`
	MeasureDate string  `json:"measure_date" binding:"required"` // YYYY-MM-DD
	Weight      float64 `json:"weight" binding:"omitempty,gte=0"`
	Chest       float64 `json:"chest" binding:"omitempty,gte=0"`
	Arms        float64 `json:"arms" binding:"omitempty,gte=0"`
	Waist       float64 `json:"waist" binding:"omitempty,gte=0"`
	Notes       string  `json:"notes"`
}

type UpdateMeasurementRequest struct {
	MeasureDate *string  `json:"measure_date"`
	Weight      *float64 `json:"weight" binding:"omitempty,gte=0"`
	Chest       *float64 `json:"chest" binding:"omitempty,gte=0"`
	Arms        *float64 `json:"arms" binding:"omitempty,gte=0"`
	Waist       *float64 `json:"waist" binding:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
}
