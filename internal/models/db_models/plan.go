package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusGenerated PlanStatus = "generated"
	PlanStatusArchived  PlanStatus = "archived"
)

// Plan is a trip plan. GeneratedContent is non-null exactly from the moment
// generation succeeds; archival never clears it.
type Plan struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Destination string    `gorm:"not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	Notes       string         `gorm:"type:text"`
	Status      PlanStatus     `gorm:"size:16;default:'draft';index"`
	GeneratedContent datatypes.JSON `gorm:"type:jsonb"`

	FixedPoints []FixedPoint
}
