package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"voyago/internal/models/db_models"
)

type FeedbackRepository interface {
	// Upsert keeps one row per (user, plan): a resubmission updates the
	// existing rating and comment in place.
	Upsert(ctx context.Context, feedback *db_models.Feedback) error
	GetByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Upsert(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "plan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(feedback).Error
}

func (r *feedbackRepository) GetByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).
		First(&feedback, "user_id = ? AND plan_id = ?", userID, planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &feedback, nil
}
