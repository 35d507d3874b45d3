package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	return profileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	fields := map[string]interface{}{}
	if req.TravelPace != nil {
		pace := db_models.TravelPace(*req.TravelPace)
		fields["travel_pace"] = pace
		profile.TravelPace = pace
	}
	if req.Preferences != nil {
		prefs := pq.StringArray(req.Preferences)
		fields["preferences"] = prefs
		profile.Preferences = prefs
	}
	if req.OnboardingCompleted != nil {
		fields["onboarding_completed"] = *req.OnboardingCompleted
		profile.OnboardingCompleted = *req.OnboardingCompleted
	}

	if len(fields) > 0 {
		if err := s.profileRepo.Update(ctx, userID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return profileResponse(profile), nil
}

func profileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:                   profile.ID.String(),
		GenerationsRemaining: profile.GenerationsRemaining,
		TravelPace:           string(profile.TravelPace),
		Preferences:          append([]string{}, profile.Preferences...),
		OnboardingCompleted:  profile.OnboardingCompleted,
	}
}
