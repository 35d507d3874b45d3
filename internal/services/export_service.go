package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type ExportServiceInterface interface {
	// ExportPlanPDF renders the generated itinerary of an owned plan as a PDF
	// document. Draft plans have nothing to export.
	ExportPlanPDF(ctx context.Context, ownerID uuid.UUID, planID string) ([]byte, string, error)
}

type ExportService struct {
	planRepo       repositories.PlanRepository
	fixedPointRepo repositories.FixedPointRepository
}

func NewExportService(planRepo repositories.PlanRepository, fixedPointRepo repositories.FixedPointRepository) ExportServiceInterface {
	return &ExportService{
		planRepo:       planRepo,
		fixedPointRepo: fixedPointRepo,
	}
}

func (s *ExportService) ExportPlanPDF(ctx context.Context, ownerID uuid.UUID, planID string) ([]byte, string, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, "", utils.ErrPlanNotFound
	}

	if plan.Status == db_models.PlanStatusDraft || len(plan.GeneratedContent) == 0 {
		return nil, "", utils.ErrPlanNotGenerated
	}

	var content db_models.GeneratedContent
	if err := json.Unmarshal(plan.GeneratedContent, &content); err != nil {
		return nil, "", utils.ErrPlanNotGenerated
	}

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	pdfBytes, err := renderPlanPDF(plan, &content, points)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", plan.ID)
	return pdfBytes, filename, nil
}

func renderPlanPDF(plan *db_models.Plan, content *db_models.GeneratedContent, points []db_models.FixedPoint) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, plan.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s, %s to %s", plan.Destination,
		utils.FormatDate(plan.StartDate), utils.FormatDate(plan.EndDate)),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	if content.Summary != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, content.Summary, "", "L", false)
		pdf.Ln(2)
	}

	if len(points) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Fixed points", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, point := range points {
			line := fmt.Sprintf("%s  %s", point.ScheduledAt.UTC().Format("2006-01-02 15:04"), point.Location)
			if point.Description != "" {
				line += " - " + point.Description
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	for i, day := range content.Days {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Day %d - %s", i+1, day.Date), "", 1, "L", false, 0, "")

		for _, item := range day.Items {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(18, 5, item.Time, "", 0, "L", false, 0, "")
			title := item.Title
			if item.EstimatedPrice != nil && *item.EstimatedPrice != "" && *item.EstimatedPrice != "0" {
				title += fmt.Sprintf(" (%s %s)", *item.EstimatedPrice, content.Currency)
			}
			pdf.MultiCell(0, 5, title, "", "L", false)

			if item.Description != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetX(pdf.GetX() + 18)
				pdf.MultiCell(0, 4, item.Description, "", "L", false)
			}
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
