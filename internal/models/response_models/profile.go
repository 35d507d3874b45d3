package response_models

type ProfileResponse struct {
	ID                   string   `json:"id"`
	GenerationsRemaining int      `json:"generations_remaining"`
	TravelPace           string   `json:"travel_pace"`
	Preferences          []string `json:"preferences"`
	OnboardingCompleted  bool     `json:"onboarding_completed"`
}

type FeedbackResponse struct {
	PlanID  string  `json:"plan_id"`
	Rating  *string `json:"rating"`
	Comment *string `json:"comment"`
}
