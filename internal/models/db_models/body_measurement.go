package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BodyMeasurement struct {
	BaseModel
	MemberID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MeasureDate time.Time `gorm:"not null;index"`
	Weight      float64
	Chest       float64
	Arms        float64
	Waist       float64
	Notes       string
}
