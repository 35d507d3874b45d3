package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const shareLinkTTL = 7 * 24 * time.Hour

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, ownerID uuid.UUID, req request_models.CreatePlanRequest) (*response_models.PlanDetailResponse, error)
	GetPlan(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.PlanDetailResponse, error)
	ListPlans(ctx context.Context, ownerID uuid.UUID, page, pageSize int, status string) ([]response_models.PlanSummaryResponse, error)
	UpdatePlan(ctx context.Context, ownerID uuid.UUID, planID string, req request_models.UpdatePlanRequest) (*response_models.PlanDetailResponse, error)
	DeletePlan(ctx context.Context, ownerID uuid.UUID, planID string) error
	ArchivePlan(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.PlanDetailResponse, error)
	CreateShareLink(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.ShareLinkResponse, error)
	GetSharedPlan(ctx context.Context, token string) (*response_models.PlanDetailResponse, error)
}

type PlanService struct {
	planRepo       repositories.PlanRepository
	fixedPointRepo repositories.FixedPointRepository
	shareTokens    mem.ShareTokenStore
}

func NewPlanService(
	planRepo repositories.PlanRepository,
	fixedPointRepo repositories.FixedPointRepository,
	shareTokens mem.ShareTokenStore,
) PlanServiceInterface {
	return &PlanService{
		planRepo:       planRepo,
		fixedPointRepo: fixedPointRepo,
		shareTokens:    shareTokens,
	}
}

func (s *PlanService) CreatePlan(ctx context.Context, ownerID uuid.UUID, req request_models.CreatePlanRequest) (*response_models.PlanDetailResponse, error) {
	startDate, endDate, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	plan := &db_models.Plan{
		OwnerID:     ownerID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       req.Notes,
		Status:      db_models.PlanStatusDraft,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		log.Printf("failed to create plan for owner %s: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}

	return planDetailResponse(plan, nil), nil
}

func (s *PlanService) GetPlan(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.PlanDetailResponse, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return planDetailResponse(plan, points), nil
}

func (s *PlanService) ListPlans(ctx context.Context, ownerID uuid.UUID, page, pageSize int, status string) ([]response_models.PlanSummaryResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	switch status {
	case "", string(db_models.PlanStatusDraft), string(db_models.PlanStatusGenerated), string(db_models.PlanStatusArchived):
	default:
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.planRepo.ListByOwner(ctx, ownerID, page, pageSize, db_models.PlanStatus(status))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.PlanSummaryResponse, 0, len(plans))
	for _, plan := range plans {
		summaries = append(summaries, response_models.PlanSummaryResponse{
			ID:          plan.ID.String(),
			Name:        plan.Name,
			Destination: plan.Destination,
			StartDate:   utils.FormatDate(plan.StartDate),
			EndDate:     utils.FormatDate(plan.EndDate),
			Status:      string(plan.Status),
		})
	}

	return summaries, nil
}

// UpdatePlan edits plan fields. Only drafts are editable: a generated plan is
// frozen against its content, an archived one is read-only.
func (s *PlanService) UpdatePlan(ctx context.Context, ownerID uuid.UUID, planID string, req request_models.UpdatePlanRequest) (*response_models.PlanDetailResponse, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.Status == db_models.PlanStatusArchived {
		return nil, utils.ErrPlanArchived
	}
	if plan.Status != db_models.PlanStatusDraft {
		return nil, utils.ErrPlanNotDraft
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
		plan.Name = *req.Name
	}
	if req.Destination != nil {
		fields["destination"] = *req.Destination
		plan.Destination = *req.Destination
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
		plan.Notes = *req.Notes
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		fields["start_date"] = start
		plan.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		fields["end_date"] = end
		plan.EndDate = &end
	}

	if plan.StartDate != nil && plan.EndDate != nil && plan.EndDate.Before(*plan.StartDate) {
		return nil, utils.ErrInvalidInput
	}

	if len(fields) > 0 {
		if err := s.planRepo.Update(ctx, plan.ID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return planDetailResponse(plan, points), nil
}

func (s *PlanService) DeletePlan(ctx context.Context, ownerID uuid.UUID, planID string) error {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	if err := s.planRepo.Delete(ctx, plan.ID, ownerID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// ArchivePlan retires a generated plan. The generated content stays on the
// row so the trip remains viewable.
func (s *PlanService) ArchivePlan(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.PlanDetailResponse, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.Status == db_models.PlanStatusArchived {
		return nil, utils.ErrPlanArchived
	}
	if plan.Status != db_models.PlanStatusGenerated {
		return nil, utils.ErrPlanNotGenerated
	}

	if err := s.planRepo.Update(ctx, plan.ID, map[string]interface{}{
		"status": db_models.PlanStatusArchived,
	}); err != nil {
		return nil, utils.ErrDatabaseError
	}
	plan.Status = db_models.PlanStatusArchived

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return planDetailResponse(plan, points), nil
}

func (s *PlanService) CreateShareLink(ctx context.Context, ownerID uuid.UUID, planID string) (*response_models.ShareLinkResponse, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.Status == db_models.PlanStatusDraft {
		return nil, utils.ErrPlanNotGenerated
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.shareTokens.Set(token, plan.ID.String(), shareLinkTTL)

	return &response_models.ShareLinkResponse{
		Token:     token,
		ExpiresIn: shareLinkTTL.String(),
	}, nil
}

func (s *PlanService) GetSharedPlan(ctx context.Context, token string) (*response_models.PlanDetailResponse, error) {
	planID, ok := s.shareTokens.Peek(token)
	if !ok {
		return nil, utils.ErrShareLinkNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		// The plan was deleted after the link was created.
		s.shareTokens.Revoke(token)
		return nil, utils.ErrShareLinkNotFound
	}

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return planDetailResponse(plan, points), nil
}

func parsePlanDates(startRaw, endRaw string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if startRaw != "" {
		start, err := utils.ParseDate(startRaw)
		if err != nil {
			return nil, nil, utils.ErrInvalidInput
		}
		startDate = &start
	}
	if endRaw != "" {
		end, err := utils.ParseDate(endRaw)
		if err != nil {
			return nil, nil, utils.ErrInvalidInput
		}
		endDate = &end
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, nil, utils.ErrInvalidInput
	}

	return startDate, endDate, nil
}

func planDetailResponse(plan *db_models.Plan, points []db_models.FixedPoint) *response_models.PlanDetailResponse {
	resp := &response_models.PlanDetailResponse{
		ID:          plan.ID.String(),
		Name:        plan.Name,
		Destination: plan.Destination,
		StartDate:   utils.FormatDate(plan.StartDate),
		EndDate:     utils.FormatDate(plan.EndDate),
		Notes:       plan.Notes,
		Status:      string(plan.Status),
		FixedPoints: make([]response_models.FixedPointResponse, 0, len(points)),
	}

	for _, point := range points {
		resp.FixedPoints = append(resp.FixedPoints, response_models.FixedPointResponse{
			ID:              point.ID.String(),
			Location:        point.Location,
			ScheduledAt:     point.ScheduledAt.UTC().Format(time.RFC3339),
			DurationMinutes: point.DurationMinutes,
			Description:     point.Description,
		})
	}

	if len(plan.GeneratedContent) > 0 {
		var content db_models.GeneratedContent
		if err := json.Unmarshal(plan.GeneratedContent, &content); err == nil {
			resp.GeneratedContent = &content
		} else {
			log.Printf("plan %s carries undecodable generated content: %v", plan.ID, err)
		}
	}

	return resp
}
