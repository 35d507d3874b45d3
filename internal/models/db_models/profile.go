package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TravelPace string

const (
	PaceSlow      TravelPace = "slow"
	PaceModerate  TravelPace = "moderate"
	PaceIntensive TravelPace = "intensive"
)

const DefaultGenerations = 3

// Profile shares its id with the owning Account.
type Profile struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GenerationsRemaining int            `gorm:"not null;default:3;check:generations_remaining >= 0"`
	TravelPace           TravelPace     `gorm:"size:16;default:'moderate'"`
	Preferences          pq.StringArray `gorm:"type:text[]"`
	OnboardingCompleted  bool           `gorm:"default:false"`
	CreatedAt            int64          `gorm:"autoCreateTime"`
	UpdatedAt            int64          `gorm:"autoUpdateTime"`
}
