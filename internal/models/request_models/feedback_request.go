package request_models

type SubmitFeedbackRequest struct {
	PlanID  string  `json:"plan_id" binding:"required,uuid"`
	Rating  *string `json:"rating" binding:"omitempty,oneof=thumbs_up thumbs_down"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}
