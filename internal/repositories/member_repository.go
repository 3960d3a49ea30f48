package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Member, error)
	FindAll(ctx context.Context, limit, offset int) ([]db_models.Member, error)
	SearchByName(ctx context.Context, name string) ([]db_models.Member, error)
	FindByGender(ctx context.Context, gender string) ([]db_models.Member, error)
	Update(ctx context.Context, member *db_models.Member) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context, limit, offset int) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	return members, err
}

func (r *memberRepository) SearchByName(ctx context.Context, name string) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) FindByGender(ctx context.Context, gender string) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).
		Where("gender = ?", gender).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) Update(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete hard-deletes the row; sessions, logs and measurements go with it
// through the ON DELETE CASCADE constraints.
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Member{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
