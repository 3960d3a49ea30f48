package db_models

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutSession struct {
	BaseModel
	MemberID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionDate   time.Time `gorm:"not null;index"`
	TotalDuration int       // minutes
	Notes         string

	Logs []WorkoutLog `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}
