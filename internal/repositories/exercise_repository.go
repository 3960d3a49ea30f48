package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *db_models.Exercise) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Exercise, error)
	FindByName(ctx context.Context, name string) (*db_models.Exercise, error)
	FindAll(ctx context.Context, limit int) ([]db_models.Exercise, error)
	Update(ctx context.Context, exercise *db_models.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountReferencingLogs(ctx context.Context, id uuid.UUID) (int64, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Insert(ctx context.Context, exercise *db_models.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Exercise, error) {
	var exercise db_models.Exercise
	err := r.db.WithContext(ctx).First(&exercise, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindByName(ctx context.Context, name string) (*db_models.Exercise, error) {
	var exercise db_models.Exercise
	err := r.db.WithContext(ctx).First(&exercise, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindAll(ctx context.Context, limit int) ([]db_models.Exercise, error) {
	var exercises []db_models.Exercise
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *db_models.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

func (r *exerciseRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Exercise{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *exerciseRepository) CountReferencingLogs(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WorkoutLog{}).
		Where("exercise_id = ?", id).
		Count(&n).Error
	return n, err
}
