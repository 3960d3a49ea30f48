package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type MeasurementRepository interface {
	Insert(ctx context.Context, measurement *db_models.BodyMeasurement) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.BodyMeasurement, error)
	FindForMember(ctx context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.BodyMeasurement, error)
	Update(ctx context.Context, measurement *db_models.BodyMeasurement) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type measurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) Insert(ctx context.Context, measurement *db_models.BodyMeasurement) error {
	return r.db.WithContext(ctx).Create(measurement).Error
}

func (r *measurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.BodyMeasurement, error) {
	var measurement db_models.BodyMeasurement
	err := r.db.WithContext(ctx).First(&measurement, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &measurement, nil
}

// FindForMember returns rows ordered by measure_date ascending, which the
// trend endpoint relies on.
func (r *measurementRepository) FindForMember(ctx context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.BodyMeasurement, error) {
	tx := r.db.WithContext(ctx).Where("member_id = ?", memberID)
	if start != nil {
		tx = tx.Where("measure_date >= ?", *start)
	}
	if end != nil {
		tx = tx.Where("measure_date <= ?", *end)
	}

	var measurements []db_models.BodyMeasurement
	err := tx.Order("measure_date ASC").Find(&measurements).Error
	return measurements, err
}

func (r *measurementRepository) Update(ctx context.Context, measurement *db_models.BodyMeasurement) error {
	return r.db.WithContext(ctx).Save(measurement).Error
}

func (r *measurementRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.BodyMeasurement{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
