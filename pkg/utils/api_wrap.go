package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service-level errors into HTTP statuses.
// NotFound -> 404, Forbidden -> 403, Conflict -> 409, BadRequest -> 400,
// upstream AI / persistence-after-charge failures -> 502, everything else 500.
func HandleServiceError(c *gin.Context, err error) {
	var rejected *GenerationRejectedError
	if errors.As(err, &rejected) {
		RespondError(c, http.StatusBadRequest, rejected.Message)
		return
	}

	switch {
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrFixedPointNotFound),
		errors.Is(err, ErrShareLinkNotFound),
		errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrQuotaExhausted):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrPlanNotDraft),
		errors.Is(err, ErrPlanArchived),
		errors.Is(err, ErrPlanNotGenerated),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingPlanDates):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrAIInvalidKey),
		errors.Is(err, ErrAIRateLimited),
		errors.Is(err, ErrAIBadRequest),
		errors.Is(err, ErrAIUnavailable),
		errors.Is(err, ErrAIConnection),
		errors.Is(err, ErrAIServiceError),
		errors.Is(err, ErrAIResponseInvalid),
		errors.Is(err, ErrCreditSpendFailed),
		errors.Is(err, ErrPlanPersistFailed):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream service error")

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
