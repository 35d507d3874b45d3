package response_models

import "voyago/internal/models/db_models"

type PlanSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Status      string `json:"status"`
}

type PlanDetailResponse struct {
	ID               string                      `json:"id"`
	Name             string                      `json:"name"`
	Destination      string                      `json:"destination"`
	StartDate        string                      `json:"start_date,omitempty"`
	EndDate          string                      `json:"end_date,omitempty"`
	Notes            string                      `json:"notes,omitempty"`
	Status           string                      `json:"status"`
	FixedPoints      []FixedPointResponse        `json:"fixed_points"`
	GeneratedContent *db_models.GeneratedContent `json:"generated_content,omitempty"`
}

type FixedPointResponse struct {
	ID              string `json:"id"`
	Location        string `json:"location"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Description     string `json:"description,omitempty"`
}

type ShareLinkResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}
