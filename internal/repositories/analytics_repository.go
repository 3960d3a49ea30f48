package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	LogsWithSessionDate(ctx context.Context, memberID uuid.UUID, since time.Time) ([]LogVolumeRow, error)
	TopExercises(ctx context.Context, memberID uuid.UUID, limit int) ([]TopExerciseRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ---------- Row helpers ----------

type LogVolumeRow struct {
	Sets        int       `gorm:"column:sets"`
	Reps        int       `gorm:"column:reps"`
	Weight      float64   `gorm:"column:weight"`
	SessionDate time.Time `gorm:"column:session_date"`
}

type TopExerciseRow struct {
	ExerciseID     string  `gorm:"column:exercise_id"`
	ExerciseName   string  `gorm:"column:exercise_name"`
	TimesPerformed int64   `gorm:"column:times_performed"`
	TotalReps      int64   `gorm:"column:total_reps"`
	TotalLift      float64 `gorm:"column:total_lift"`
}

// LogsWithSessionDate fetches every log of the member's sessions from
// `since` onward, carrying the session date for week bucketing.
func (r *analyticsRepository) LogsWithSessionDate(ctx context.Context, memberID uuid.UUID, since time.Time) ([]LogVolumeRow, error) {
	var rows []LogVolumeRow
	err := r.db.WithContext(ctx).
		Table("workout_logs wl").
		Select("wl.sets, wl.reps, COALESCE(wl.weight, 0) AS weight, ws.session_date").
		Joins("JOIN workout_sessions ws ON wl.session_id = ws.id").
		Where("ws.member_id = ?", memberID).
		Where("ws.session_date >= ?", since).
		Find(&rows).Error
	return rows, err
}

func (r *analyticsRepository) TopExercises(ctx context.Context, memberID uuid.UUID, limit int) ([]TopExerciseRow, error) {
	var rows []TopExerciseRow
	err := r.db.WithContext(ctx).
		Table("workout_logs wl").
		Select(`
			e.id AS exercise_id,
			e.name AS exercise_name,
			COUNT(*) AS times_performed,
			SUM(wl.sets * wl.reps) AS total_reps,
			SUM(COALESCE(wl.weight, 0) * wl.sets * wl.reps) AS total_lift`).
		Joins("JOIN workout_sessions ws ON wl.session_id = ws.id").
		Joins("JOIN exercises e ON wl.exercise_id = e.id").
		Where("ws.member_id = ?", memberID).
		Group("e.id, e.name").
		Order("times_performed DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
