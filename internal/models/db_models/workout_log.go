package db_models

import "github.com/google/uuid"

// WorkoutLog references its Exercise but does not own it, so exercise
// deletion is restricted while logs point at it.
type WorkoutLog struct {
	BaseModel
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ExerciseID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Sets           int       `gorm:"not null"`
	Reps           int       `gorm:"not null"`
	Weight         float64
	CaloriesBurned float64

	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:RESTRICT"`
}
