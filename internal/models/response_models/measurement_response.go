package response_models

type MeasurementResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	MeasureDate string  `json:"measure_date"`
	Weight      float64 `json:"weight"`
	Chest       float64 `json:"chest"`
	Arms        float64 `json:"arms"`
	Waist       float64 `json:"waist"`
	Notes       string  `json:"notes,omitempty"`
}
