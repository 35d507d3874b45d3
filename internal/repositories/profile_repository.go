package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *db_models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error

	// DecrementGenerations spends one credit with a conditional update so
	// concurrent calls can never drive the counter below zero. Returns false
	// when no credit was left to spend.
	DecrementGenerations(ctx context.Context, userID uuid.UUID) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

func (r *profileRepository) DecrementGenerations(ctx context.Context, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ? AND generations_remaining > 0", userID).
		Updates(map[string]interface{}{
			"generations_remaining": gorm.Expr("generations_remaining - 1"),
			"updated_at":            time.Now().Unix(),
		})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
