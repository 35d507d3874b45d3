package request_models

type AddFixedPointRequest struct {
	Location        string `json:"location" binding:"required,min=1,max=200"`
	ScheduledAt     string `json:"scheduled_at" binding:"required"` // RFC 3339
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	Description     string `json:"description" binding:"max=1000"`
}

type UpdateFixedPointRequest struct {
	Location        *string `json:"location" binding:"omitempty,min=1,max=200"`
	ScheduledAt     *string `json:"scheduled_at"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	Description     *string `json:"description" binding:"omitempty,max=1000"`
}
