package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type FixedPointController struct {
	fixedPointService services.FixedPointServiceInterface
}

func NewFixedPointController(fixedPointService services.FixedPointServiceInterface) *FixedPointController {
	return &FixedPointController{fixedPointService: fixedPointService}
}

// ListFixedPoints godoc
// @Summary List fixed points
// @Description Fetch the fixed points of a plan ordered by scheduled time
// @Tags FixedPoints
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {array} response_models.FixedPointResponse
// @Security BearerAuth
// @Router /plans/{planId}/fixed-points [get]
func (f *FixedPointController) ListFixedPoints(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	points, err := f.fixedPointService.ListFixedPoints(c.Request.Context(), userID, c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Fixed points fetched successfully")
}

// AddFixedPoint godoc
// @Summary Add a fixed point
// @Description Attach a time-locked event to a draft plan
// @Tags FixedPoints
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param request body request_models.AddFixedPointRequest true "Fixed point payload"
// @Success 200 {object} response_models.FixedPointResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/fixed-points [post]
func (f *FixedPointController) AddFixedPoint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddFixedPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	point, err := f.fixedPointService.AddFixedPoint(c.Request.Context(), userID, c.Param("planId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Fixed point added successfully")
}

// UpdateFixedPoint godoc
// @Summary Update a fixed point
// @Description Edit a fixed point of a draft plan
// @Tags FixedPoints
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param pointId path string true "Fixed point ID"
// @Param request body request_models.UpdateFixedPointRequest true "Fixed point update payload"
// @Success 200 {object} response_models.FixedPointResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/fixed-points/{pointId} [put]
func (f *FixedPointController) UpdateFixedPoint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateFixedPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	point, err := f.fixedPointService.UpdateFixedPoint(c.Request.Context(), userID, c.Param("planId"), c.Param("pointId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Fixed point updated successfully")
}

// DeleteFixedPoint godoc
// @Summary Delete a fixed point
// @Description Remove a fixed point from a draft plan
// @Tags FixedPoints
// @Produce json
// @Param planId path string true "Plan ID"
// @Param pointId path string true "Fixed point ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/fixed-points/{pointId} [delete]
func (f *FixedPointController) DeleteFixedPoint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := f.fixedPointService.DeleteFixedPoint(c.Request.Context(), userID, c.Param("planId"), c.Param("pointId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Fixed point deleted successfully")
}
