package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRating string

const (
	RatingThumbsUp   FeedbackRating = "thumbs_up"
	RatingThumbsDown FeedbackRating = "thumbs_down"
)

// Feedback holds one row per (user, plan); resubmission updates in place.
type Feedback struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_plan"`
	PlanID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_plan"`
	Rating    *FeedbackRating `gorm:"type:text"`
	Comment   *string         `gorm:"type:text"`
	CreatedAt int64           `gorm:"autoCreateTime"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
