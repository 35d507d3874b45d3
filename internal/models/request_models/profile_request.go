package request_models

type UpdateProfileRequest struct {
	TravelPace          *string  `json:"travel_pace" binding:"omitempty,oneof=slow moderate intensive"`
	Preferences         []string `json:"preferences" binding:"omitempty,max=20,dive,min=1,max=50"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
}
