package db_models

import "strings"

type ItemType string

const (
	ItemTypeActivity  ItemType = "activity"
	ItemTypeMeal      ItemType = "meal"
	ItemTypeTransport ItemType = "transport"
)

// GeneratedContent is the itinerary document stored on the plan row as jsonb.
// It is replaced atomically as a whole, never patched.
type GeneratedContent struct {
	Summary  string         `json:"summary"`
	Currency string         `json:"currency"`
	Days     []GeneratedDay `json:"days"`
}

type GeneratedDay struct {
	Date  string          `json:"date"`
	Items []GeneratedItem `json:"items"`
}

type GeneratedItem struct {
	ID                string   `json:"id"`
	Type              ItemType `json:"type"`
	Time              string   `json:"time"`
	Category          string   `json:"category"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	EstimatedPrice    *string  `json:"estimated_price"`
	EstimatedDuration *string  `json:"estimated_duration"`
}

// ItemTypeForCategory maps an AI-provided category to the item type consumed
// by the UI: "food" -> meal, "transport" -> transport, everything else is a
// plain activity.
func ItemTypeForCategory(category string) ItemType {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "food":
		return ItemTypeMeal
	case "transport":
		return ItemTypeTransport
	default:
		return ItemTypeActivity
	}
}
