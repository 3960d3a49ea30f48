package db_models

type Exercise struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	MuscleGroup string
	Equipment   string
}
