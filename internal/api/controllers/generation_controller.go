package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{generationService: generationService}
}

// GeneratePlan godoc
// @Summary Generate an itinerary
// @Description Spend one generation credit to turn a draft plan into a full itinerary
// @Tags Generation
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param request body request_models.GeneratePlanRequest false "Generation options"
// @Success 200 {object} response_models.PlanDetailResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/generate [post]
func (g *GenerationController) GeneratePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.GeneratePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	plan, err := g.generationService.GeneratePlan(c.Request.Context(), userID, c.Param("planId"), req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}
