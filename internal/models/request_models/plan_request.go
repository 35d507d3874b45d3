package request_models

type CreatePlanRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Destination string `json:"destination" binding:"required,min=1,max=100"`
	StartDate   string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" binding:"max=2000"`
}

type UpdatePlanRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Destination *string `json:"destination" binding:"omitempty,min=1,max=100"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes" binding:"omitempty,max=2000"`
}

type GeneratePlanRequest struct {
	Language string `json:"language" binding:"omitempty,min=2,max=8"`
}
