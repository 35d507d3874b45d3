package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type GenerationServiceInterface interface {
	GeneratePlan(ctx context.Context, userID uuid.UUID, planID string, language string) (*response_models.PlanDetailResponse, error)
}

type GenerationService struct {
	profileRepo    repositories.ProfileRepository
	planRepo       repositories.PlanRepository
	fixedPointRepo repositories.FixedPointRepository
	promptService  PromptServiceInterface
	aiClient       utils.AIClientInterface
}

func NewGenerationService(
	profileRepo repositories.ProfileRepository,
	planRepo repositories.PlanRepository,
	fixedPointRepo repositories.FixedPointRepository,
	promptService PromptServiceInterface,
	aiClient utils.AIClientInterface,
) GenerationServiceInterface {
	return &GenerationService{
		profileRepo:    profileRepo,
		planRepo:       planRepo,
		fixedPointRepo: fixedPointRepo,
		promptService:  promptService,
		aiClient:       aiClient,
	}
}

// GeneratePlan runs the draft -> generated transition: quota check, plan
// load, prompt build, structured AI call, credit decrement, content persist.
// The credit is spent only after the AI call succeeds but before the plan row
// is written; a persist failure after the decrement is logged as CRITICAL and
// not compensated automatically.
func (g *GenerationService) GeneratePlan(ctx context.Context, userID uuid.UUID, planID string, language string) (*response_models.PlanDetailResponse, error) {
	profile, err := g.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if profile.GenerationsRemaining <= 0 {
		return nil, utils.ErrQuotaExhausted
	}

	plan, err := g.planRepo.GetByIDForOwner(ctx, planID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.Status != db_models.PlanStatusDraft {
		return nil, utils.ErrPlanNotDraft
	}

	if plan.StartDate == nil || plan.EndDate == nil {
		return nil, utils.ErrMissingPlanDates
	}

	fixedPoints, err := g.fixedPointRepo.ListByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	temperature := float32(0.2)
	var result response_models.AIPlanResult
	err = g.aiClient.GetStructuredResponse(ctx, utils.StructuredRequest{
		SystemPrompt: g.promptService.BuildSystemPrompt(plan, fixedPoints, profile, language),
		UserPrompt:   g.promptService.BuildUserPrompt(),
		Temperature:  &temperature,
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.Status == "error" {
		// No credit consumed, no plan mutation.
		return nil, &utils.GenerationRejectedError{
			ErrorType: result.ErrorType,
			Message:   result.ErrorMessage,
		}
	}

	spent, err := g.profileRepo.DecrementGenerations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCreditSpendFailed, err)
	}
	if !spent {
		// A concurrent generation drained the last credit between the check
		// and the spend.
		return nil, utils.ErrQuotaExhausted
	}

	content := buildGeneratedContent(&result)
	raw, err := json.Marshal(content)
	if err != nil {
		log.Printf("CRITICAL: credit spent for user %s but generated content for plan %s could not be encoded: %v", userID, plan.ID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPlanPersistFailed, err)
	}

	err = g.planRepo.Update(ctx, plan.ID, map[string]interface{}{
		"status":            db_models.PlanStatusGenerated,
		"generated_content": datatypes.JSON(raw),
	})
	if err != nil {
		// The user was charged a credit and the plan was not updated. Flagged
		// for manual reconciliation, no automatic refund.
		log.Printf("CRITICAL: credit spent for user %s but plan %s was not updated: %v", userID, plan.ID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPlanPersistFailed, err)
	}

	plan.Status = db_models.PlanStatusGenerated
	plan.GeneratedContent = datatypes.JSON(raw)

	return planDetailResponse(plan, fixedPoints), nil
}

func buildGeneratedContent(result *response_models.AIPlanResult) db_models.GeneratedContent {
	var sourceDays []response_models.AIItineraryDay
	if result.Itinerary != nil {
		sourceDays = result.Itinerary.Days
	}

	days := make([]db_models.GeneratedDay, 0, len(sourceDays))
	for _, day := range sourceDays {
		items := make([]db_models.GeneratedItem, 0, len(day.Items))
		for _, item := range day.Items {
			items = append(items, db_models.GeneratedItem{
				ID:                uuid.New().String(),
				Type:              db_models.ItemTypeForCategory(item.Category),
				Time:              utils.ConvertTo24Hour(item.Time),
				Category:          item.Category,
				Title:             item.Title,
				Description:       item.Description,
				EstimatedPrice:    item.EstimatedPrice,
				EstimatedDuration: item.EstimatedDuration,
			})
		}
		days = append(days, db_models.GeneratedDay{
			Date:  day.Date,
			Items: items,
		})
	}

	return db_models.GeneratedContent{
		Summary:  result.Summary,
		Currency: strings.ToUpper(result.Currency),
		Days:     days,
	}
}
