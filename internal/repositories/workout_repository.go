package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type WorkoutRepository interface {
	InsertSession(ctx context.Context, session *db_models.WorkoutSession) error
	FindSessionByID(ctx context.Context, id uuid.UUID) (*db_models.WorkoutSession, error)
	FindSessionsForMember(ctx context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.WorkoutSession, error)
	FindRecentSessions(ctx context.Context, limit int) ([]db_models.WorkoutSession, error)
	UpdateSession(ctx context.Context, session *db_models.WorkoutSession) error
	DeleteSession(ctx context.Context, id uuid.UUID) (int64, error)

	InsertLog(ctx context.Context, log *db_models.WorkoutLog) error
	FindLogByID(ctx context.Context, id uuid.UUID) (*db_models.WorkoutLog, error)
	FindLogsForSession(ctx context.Context, sessionID uuid.UUID) ([]db_models.WorkoutLog, error)
	UpdateLog(ctx context.Context, log *db_models.WorkoutLog) error
	DeleteLog(ctx context.Context, id uuid.UUID) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// ---------- Sessions ----------

func (r *workoutRepository) InsertSession(ctx context.Context, session *db_models.WorkoutSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *workoutRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*db_models.WorkoutSession, error) {
	var session db_models.WorkoutSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *workoutRepository) FindSessionsForMember(ctx context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.WorkoutSession, error) {
	tx := r.db.WithContext(ctx).Where("member_id = ?", memberID)
	if start != nil {
		tx = tx.Where("session_date >= ?", *start)
	}
	if end != nil {
		tx = tx.Where("session_date <= ?", *end)
	}

	var sessions []db_models.WorkoutSession
	err := tx.Order("session_date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *workoutRepository) FindRecentSessions(ctx context.Context, limit int) ([]db_models.WorkoutSession, error) {
	var sessions []db_models.WorkoutSession
	err := r.db.WithContext(ctx).
		Order("session_date DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *workoutRepository) UpdateSession(ctx context.Context, session *db_models.WorkoutSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// DeleteSession removes the session; its logs go through ON DELETE CASCADE.
func (r *workoutRepository) DeleteSession(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.WorkoutSession{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ---------- Logs ----------

func (r *workoutRepository) InsertLog(ctx context.Context, log *db_models.WorkoutLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *workoutRepository) FindLogByID(ctx context.Context, id uuid.UUID) (*db_models.WorkoutLog, error) {
	var workoutLog db_models.WorkoutLog
	err := r.db.WithContext(ctx).First(&workoutLog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workoutLog, nil
}

func (r *workoutRepository) FindLogsForSession(ctx context.Context, sessionID uuid.UUID) ([]db_models.WorkoutLog, error) {
	var logs []db_models.WorkoutLog
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

func (r *workoutRepository) UpdateLog(ctx context.Context, log *db_models.WorkoutLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *workoutRepository) DeleteLog(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.WorkoutLog{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
