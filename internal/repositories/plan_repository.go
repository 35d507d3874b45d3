package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *db_models.Plan) error

	// GetByIDForOwner scopes by both id and owner so a foreign plan id
	// behaves exactly like a missing one.
	GetByIDForOwner(ctx context.Context, planID string, ownerID uuid.UUID) (*db_models.Plan, error)
	GetByID(ctx context.Context, planID string) (*db_models.Plan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int, status db_models.PlanStatus) ([]db_models.Plan, error)
	Update(ctx context.Context, planID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, planID uuid.UUID, ownerID uuid.UUID) error

	// ArchiveExpired flips every generated plan whose end date has passed
	// to archived and reports how many rows changed.
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) GetByIDForOwner(ctx context.Context, planID string, ownerID uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).
		First(&plan, "id = ? AND owner_id = ?", planID, ownerID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *planRepository) GetByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *planRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int, status db_models.PlanStatus) ([]db_models.Plan, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var plans []db_models.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, planID uuid.UUID, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().Unix()
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ?", planID).
		Updates(fields).Error
}

func (r *planRepository) Delete(ctx context.Context, planID uuid.UUID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", planID, ownerID).
		Delete(&db_models.Plan{}).Error
}

func (r *planRepository) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", db_models.PlanStatusGenerated, now).
		Updates(map[string]interface{}{
			"status":     db_models.PlanStatusArchived,
			"updated_at": now.Unix(),
		})
	return res.RowsAffected, res.Error
}
