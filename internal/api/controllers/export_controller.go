package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportPlanPDF godoc
// @Summary Export an itinerary as PDF
// @Description Download the generated itinerary of a plan as a PDF document
// @Tags Export
// @Produce application/pdf
// @Param planId path string true "Plan ID"
// @Success 200 {file} binary
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/export [get]
func (e *ExportController) ExportPlanPDF(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pdfBytes, filename, err := e.exportService.ExportPlanPDF(c.Request.Context(), userID, c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
