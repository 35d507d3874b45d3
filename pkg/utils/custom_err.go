package utils

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPlanNotFound       = errors.New("plan not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrFixedPointNotFound = errors.New("fixed point not found")
	ErrShareLinkNotFound  = errors.New("share link not found or expired")
	ErrFeedbackNotFound   = errors.New("no feedback submitted for this plan")

	ErrQuotaExhausted   = errors.New("no generations remaining")
	ErrPlanNotDraft     = errors.New("plan already generated")
	ErrPlanArchived     = errors.New("plan is archived and read-only")
	ErrPlanNotGenerated = errors.New("plan has no generated itinerary")
	ErrMissingPlanDates = errors.New("plan start and end dates are required")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")

	// AI endpoint failures, all surfaced to callers as upstream errors.
	ErrAIInvalidKey      = errors.New("ai provider rejected the API key")
	ErrAIRateLimited     = errors.New("ai provider rate limit exceeded")
	ErrAIBadRequest      = errors.New("ai provider rejected the request")
	ErrAIUnavailable     = errors.New("ai provider temporarily unavailable")
	ErrAIConnection      = errors.New("could not reach ai provider")
	ErrAIServiceError    = errors.New("ai provider error")
	ErrAIResponseInvalid = errors.New("invalid ai response")

	ErrCreditSpendFailed = errors.New("failed to record generation credit")
	ErrPlanPersistFailed = errors.New("failed to persist generated plan")
)

// GenerationRejectedError carries the AI's own rejection of a plan
// (unrealistic dates, unknown destination) back to the user verbatim.
type GenerationRejectedError struct {
	ErrorType string
	Message   string
}

func (e *GenerationRejectedError) Error() string {
	return fmt.Sprintf("generation rejected (%s): %s", e.ErrorType, e.Message)
}
