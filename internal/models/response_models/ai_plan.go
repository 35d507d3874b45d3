package response_models

// AIPlanResult is the discriminated response the LLM must produce: either a
// full itinerary (status "success") or a domain-level rejection (status
// "error"). The validate tags are enforced by the structured-response client
// before the orchestrator ever sees the value.
type AIPlanResult struct {
	Status string `json:"status" validate:"required,oneof=success error"`

	// success variant
	Summary   string       `json:"summary" validate:"required_if=Status success"`
	Currency  string       `json:"currency" validate:"required_if=Status success,omitempty,len=3"`
	Itinerary *AIItinerary `json:"itinerary" validate:"required_if=Status success"`

	// error variant
	ErrorType    string `json:"error_type" validate:"required_if=Status error,omitempty,oneof=unrealistic_plan invalid_location"`
	ErrorMessage string `json:"error_message" validate:"required_if=Status error"`
}

type AIItinerary struct {
	Destination string           `json:"destination"`
	Dates       string           `json:"dates"`
	Days        []AIItineraryDay `json:"days" validate:"min=1,dive"`
}

type AIItineraryDay struct {
	Date  string            `json:"date" validate:"required,datetime=2006-01-02"`
	Items []AIItineraryItem `json:"items" validate:"dive"`
}

type AIItineraryItem struct {
	Time              string  `json:"time" validate:"required"`
	Category          string  `json:"category" validate:"required"`
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description"`
	EstimatedPrice    *string `json:"estimated_price"`
	EstimatedDuration *string `json:"estimated_duration"`
}
