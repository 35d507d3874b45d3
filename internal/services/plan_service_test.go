package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

func newPlanFixture(plans ...*db_models.Plan) (PlanServiceInterface, *fakePlanRepo, *mem.ShareTokens) {
	planRepo := newFakePlanRepo(plans...)
	tokens := mem.NewShareTokens()
	svc := NewPlanService(planRepo, &fakeFixedPointRepo{}, tokens)
	return svc, planRepo, tokens
}

func TestCreatePlanDraft(t *testing.T) {
	svc, _, _ := newPlanFixture()
	ownerID := uuid.New()

	detail, err := svc.CreatePlan(context.Background(), ownerID, request_models.CreatePlanRequest{
		Name:        "Roman Holiday",
		Destination: "Rome",
		StartDate:   "2026-06-15",
		EndDate:     "2026-06-16",
	})

	require.NoError(t, err)
	assert.Equal(t, string(db_models.PlanStatusDraft), detail.Status)
	assert.Equal(t, "2026-06-15", detail.StartDate)
	assert.Equal(t, "2026-06-16", detail.EndDate)
	assert.Nil(t, detail.GeneratedContent)
	assert.NotEmpty(t, detail.ID)
}

func TestCreatePlanRejectsInvertedDates(t *testing.T) {
	svc, _, _ := newPlanFixture()

	_, err := svc.CreatePlan(context.Background(), uuid.New(), request_models.CreatePlanRequest{
		Name:        "Backwards",
		Destination: "Rome",
		StartDate:   "2026-06-16",
		EndDate:     "2026-06-15",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetPlanScopedToOwner(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	svc, _, _ := newPlanFixture(plan)

	detail, err := svc.GetPlan(context.Background(), ownerID, plan.ID.String())
	require.NoError(t, err)
	assert.Equal(t, plan.ID.String(), detail.ID)

	// A foreign caller sees not-found, not forbidden.
	_, err = svc.GetPlan(context.Background(), uuid.New(), plan.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestUpdatePlanStatusGates(t *testing.T) {
	ownerID := uuid.New()
	name := "Renamed"

	t.Run("draft is editable", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		svc, _, _ := newPlanFixture(plan)

		detail, err := svc.UpdatePlan(context.Background(), ownerID, plan.ID.String(), request_models.UpdatePlanRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", detail.Name)
	})

	t.Run("generated is frozen", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		plan.Status = db_models.PlanStatusGenerated
		svc, planRepo, _ := newPlanFixture(plan)

		_, err := svc.UpdatePlan(context.Background(), ownerID, plan.ID.String(), request_models.UpdatePlanRequest{Name: &name})
		assert.ErrorIs(t, err, utils.ErrPlanNotDraft)
		assert.Empty(t, planRepo.updates)
	})

	t.Run("archived is read-only", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		plan.Status = db_models.PlanStatusArchived
		svc, planRepo, _ := newPlanFixture(plan)

		_, err := svc.UpdatePlan(context.Background(), ownerID, plan.ID.String(), request_models.UpdatePlanRequest{Name: &name})
		assert.ErrorIs(t, err, utils.ErrPlanArchived)
		assert.Empty(t, planRepo.updates)
	})
}

func TestArchivePlanTransitions(t *testing.T) {
	ownerID := uuid.New()

	t.Run("generated becomes archived", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		plan.Status = db_models.PlanStatusGenerated
		svc, _, _ := newPlanFixture(plan)

		detail, err := svc.ArchivePlan(context.Background(), ownerID, plan.ID.String())
		require.NoError(t, err)
		assert.Equal(t, string(db_models.PlanStatusArchived), detail.Status)
	})

	t.Run("draft cannot be archived", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		svc, _, _ := newPlanFixture(plan)

		_, err := svc.ArchivePlan(context.Background(), ownerID, plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrPlanNotGenerated)
	})

	t.Run("archiving twice conflicts", func(t *testing.T) {
		plan := romeDraftPlan(ownerID)
		plan.Status = db_models.PlanStatusArchived
		svc, _, _ := newPlanFixture(plan)

		_, err := svc.ArchivePlan(context.Background(), ownerID, plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrPlanArchived)
	})
}

func TestArchivePreservesGeneratedContent(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	plan.Status = db_models.PlanStatusGenerated

	raw, err := json.Marshal(db_models.GeneratedContent{Summary: "two days in Rome", Currency: "EUR"})
	require.NoError(t, err)
	plan.GeneratedContent = datatypes.JSON(raw)

	svc, _, _ := newPlanFixture(plan)

	detail, err := svc.ArchivePlan(context.Background(), ownerID, plan.ID.String())
	require.NoError(t, err)
	require.NotNil(t, detail.GeneratedContent)
	assert.Equal(t, "two days in Rome", detail.GeneratedContent.Summary)
}

func TestShareLinkLifecycle(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	plan.Status = db_models.PlanStatusGenerated
	svc, _, tokens := newPlanFixture(plan)

	link, err := svc.CreateShareLink(context.Background(), ownerID, plan.ID.String())
	require.NoError(t, err)
	assert.Len(t, link.Token, 64)

	shared, err := svc.GetSharedPlan(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, plan.ID.String(), shared.ID)

	tokens.Revoke(link.Token)
	_, err = svc.GetSharedPlan(context.Background(), link.Token)
	assert.ErrorIs(t, err, utils.ErrShareLinkNotFound)
}

func TestShareLinkRequiresGeneratedPlan(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	svc, _, _ := newPlanFixture(plan)

	_, err := svc.CreateShareLink(context.Background(), ownerID, plan.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotGenerated)
}

func TestGetSharedPlanDeletedPlanRevokesToken(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	plan.Status = db_models.PlanStatusGenerated
	svc, planRepo, _ := newPlanFixture(plan)

	link, err := svc.CreateShareLink(context.Background(), ownerID, plan.ID.String())
	require.NoError(t, err)

	delete(planRepo.plans, plan.ID)

	_, err = svc.GetSharedPlan(context.Background(), link.Token)
	assert.ErrorIs(t, err, utils.ErrShareLinkNotFound)
}

func TestListPlansRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newPlanFixture()

	_, err := svc.ListPlans(context.Background(), uuid.New(), 1, 20, "pending")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
