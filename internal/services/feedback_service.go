package services

import (
	"context"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type FeedbackServiceInterface interface {
	// SubmitFeedback records a rating and/or comment for a generated plan the
	// user owns. One row per (user, plan): resubmitting replaces the previous
	// values.
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.SubmitFeedbackRequest) (*response_models.FeedbackResponse, error)
	GetFeedback(ctx context.Context, userID uuid.UUID, planID string) (*response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	planRepo     repositories.PlanRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, planRepo repositories.PlanRepository) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		planRepo:     planRepo,
	}
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.SubmitFeedbackRequest) (*response_models.FeedbackResponse, error) {
	if req.Rating == nil && req.Comment == nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.planRepo.GetByIDForOwner(ctx, req.PlanID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.Status == db_models.PlanStatusDraft {
		return nil, utils.ErrPlanNotGenerated
	}

	feedback := &db_models.Feedback{
		UserID:  userID,
		PlanID:  plan.ID,
		Comment: req.Comment,
	}
	if req.Rating != nil {
		rating := db_models.FeedbackRating(*req.Rating)
		feedback.Rating = &rating
	}

	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return feedbackResponse(feedback), nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, userID uuid.UUID, planID string) (*response_models.FeedbackResponse, error) {
	plan, err := s.planRepo.GetByIDForOwner(ctx, planID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	feedback, err := s.feedbackRepo.GetByUserAndPlan(ctx, userID, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil {
		return nil, utils.ErrFeedbackNotFound
	}

	return feedbackResponse(feedback), nil
}

func feedbackResponse(feedback *db_models.Feedback) *response_models.FeedbackResponse {
	resp := &response_models.FeedbackResponse{
		PlanID:  feedback.PlanID.String(),
		Comment: feedback.Comment,
	}
	if feedback.Rating != nil {
		rating := string(*feedback.Rating)
		resp.Rating = &rating
	}
	return resp
}
