package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit feedback for a generated plan
// @Description Record a rating and/or comment; resubmitting replaces the previous feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} response_models.FeedbackResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	feedback, err := f.feedbackService.SubmitFeedback(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback submitted successfully")
}

// GetFeedback godoc
// @Summary Get feedback for a plan
// @Description Fetch the authenticated user's feedback on one plan
// @Tags Feedback
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.FeedbackResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/{planId} [get]
func (f *FeedbackController) GetFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedback, err := f.feedbackService.GetFeedback(c.Request.Context(), userID, c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback fetched successfully")
}
