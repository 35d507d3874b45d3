package db_models

import (
	"time"

	"github.com/google/uuid"
)

// FixedPoint is a time-locked event (flight, reservation) the generated
// itinerary must keep at its exact time.
type FixedPoint struct {
	BaseModel
	PlanID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Location        string    `gorm:"not null"`
	ScheduledAt     time.Time `gorm:"not null"`
	DurationMinutes int
	Description     string `gorm:"type:text"`
}
