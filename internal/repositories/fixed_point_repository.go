package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type FixedPointRepository interface {
	// ListByPlanID returns fixed points ordered by scheduled time ascending.
	ListByPlanID(ctx context.Context, planID uuid.UUID) ([]db_models.FixedPoint, error)
	GetByIDForPlan(ctx context.Context, id string, planID uuid.UUID) (*db_models.FixedPoint, error)
	Create(ctx context.Context, point *db_models.FixedPoint) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fixedPointRepository struct {
	db *gorm.DB
}

func NewFixedPointRepository(db *gorm.DB) FixedPointRepository {
	return &fixedPointRepository{db: db}
}

func (r *fixedPointRepository) ListByPlanID(ctx context.Context, planID uuid.UUID) ([]db_models.FixedPoint, error) {
	var points []db_models.FixedPoint
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("scheduled_at ASC").
		Find(&points).Error

	if err != nil {
		return nil, err
	}

	return points, nil
}

func (r *fixedPointRepository) GetByIDForPlan(ctx context.Context, id string, planID uuid.UUID) (*db_models.FixedPoint, error) {
	var point db_models.FixedPoint
	err := r.db.WithContext(ctx).
		First(&point, "id = ? AND plan_id = ?", id, planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &point, nil
}

func (r *fixedPointRepository) Create(ctx context.Context, point *db_models.FixedPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *fixedPointRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().Unix()
	}
	return r.db.WithContext(ctx).
		Model(&db_models.FixedPoint{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *fixedPointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&db_models.FixedPoint{}).Error
}
