package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type FixedPointServiceInterface interface {
	ListFixedPoints(ctx context.Context, ownerID uuid.UUID, planID string) ([]response_models.FixedPointResponse, error)
	AddFixedPoint(ctx context.Context, ownerID uuid.UUID, planID string, req request_models.AddFixedPointRequest) (*response_models.FixedPointResponse, error)
	UpdateFixedPoint(ctx context.Context, ownerID uuid.UUID, planID, pointID string, req request_models.UpdateFixedPointRequest) (*response_models.FixedPointResponse, error)
	DeleteFixedPoint(ctx context.Context, ownerID uuid.UUID, planID, pointID string) error
}

type FixedPointService struct {
	planRepo       repositories.PlanRepository
	fixedPointRepo repositories.FixedPointRepository
}

func NewFixedPointService(planRepo repositories.PlanRepository, fixedPointRepo repositories.FixedPointRepository) FixedPointServiceInterface {
	return &FixedPointService{
		planRepo:       planRepo,
		fixedPointRepo: fixedPointRepo,
	}
}

func (s *FixedPointService) ListFixedPoints(ctx context.Context, ownerID uuid.UUID, planID string) ([]response_models.FixedPointResponse, error) {
	plan, err := s.ownedPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	points, err := s.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FixedPointResponse, 0, len(points))
	for _, point := range points {
		out = append(out, fixedPointResponse(&point))
	}

	return out, nil
}

// AddFixedPoint attaches a time-locked event to a draft plan. Generated and
// archived plans refuse fixed-point changes.
func (s *FixedPointService) AddFixedPoint(ctx context.Context, ownerID uuid.UUID, planID string, req request_models.AddFixedPointRequest) (*response_models.FixedPointResponse, error) {
	plan, err := s.ownedDraftPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	point := &db_models.FixedPoint{
		PlanID:          plan.ID,
		Location:        req.Location,
		ScheduledAt:     scheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}

	if err := s.fixedPointRepo.Create(ctx, point); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := fixedPointResponse(point)
	return &resp, nil
}

func (s *FixedPointService) UpdateFixedPoint(ctx context.Context, ownerID uuid.UUID, planID, pointID string, req request_models.UpdateFixedPointRequest) (*response_models.FixedPointResponse, error) {
	plan, err := s.ownedDraftPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	point, err := s.fixedPointRepo.GetByIDForPlan(ctx, pointID, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if point == nil {
		return nil, utils.ErrFixedPointNotFound
	}

	fields := map[string]interface{}{}
	if req.Location != nil {
		fields["location"] = *req.Location
		point.Location = *req.Location
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		fields["scheduled_at"] = scheduledAt.UTC()
		point.ScheduledAt = scheduledAt.UTC()
	}
	if req.DurationMinutes != nil {
		fields["duration_minutes"] = *req.DurationMinutes
		point.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		fields["description"] = *req.Description
		point.Description = *req.Description
	}

	if len(fields) > 0 {
		if err := s.fixedPointRepo.Update(ctx, point.ID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	resp := fixedPointResponse(point)
	return &resp, nil
}

func (s *FixedPointService) DeleteFixedPoint(ctx context.Context, ownerID uuid.UUID, planID, pointID string) error {
	plan, err := s.ownedDraftPlan(ctx, ownerID, planID)
	if err != nil {
		return err
	}

	point, err := s.fixedPointRepo.GetByIDForPlan(ctx, pointID, plan.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if point == nil {
		return utils.ErrFixedPointNotFound
	}

	if err := s.fixedPointRepo.Delete(ctx, point.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *FixedPointService) ownedPlan(ctx context.Context, ownerID uuid.UUID, planID string) (*db_models.Plan, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *FixedPointService) ownedDraftPlan(ctx context.Context, ownerID uuid.UUID, planID string) (*db_models.Plan, error) {
	plan, err := s.ownedPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	if plan.Status == db_models.PlanStatusArchived {
		return nil, utils.ErrPlanArchived
	}
	if plan.Status != db_models.PlanStatusDraft {
		return nil, utils.ErrPlanNotDraft
	}

	return plan, nil
}

func fixedPointResponse(point *db_models.FixedPoint) response_models.FixedPointResponse {
	return response_models.FixedPointResponse{
		ID:              point.ID.String(),
		Location:        point.Location,
		ScheduledAt:     point.ScheduledAt.UTC().Format(time.RFC3339),
		DurationMinutes: point.DurationMinutes,
		Description:     point.Description,
	}
}
