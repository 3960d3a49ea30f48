package db_models

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Member carries both the gym profile and the login credentials.
// Role is written once at creation and never touched by updates.
type Member struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:member"`
	Name         string `gorm:"not null"`
	Age          int
	Gender       string
	JoinedDate   time.Time
	Phone        string
	Email        string

	Sessions     []WorkoutSession  `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Measurements []BodyMeasurement `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
