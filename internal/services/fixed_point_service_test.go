package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

func TestAddFixedPointToDraft(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	planRepo := newFakePlanRepo(plan)
	pointRepo := &fakeFixedPointRepo{}
	svc := NewFixedPointService(planRepo, pointRepo)

	point, err := svc.AddFixedPoint(context.Background(), ownerID, plan.ID.String(), request_models.AddFixedPointRequest{
		Location:        "Teatro dell'Opera",
		ScheduledAt:     "2026-06-15T18:30:00Z",
		DurationMinutes: 150,
		Description:     "Tosca",
	})

	require.NoError(t, err)
	assert.Equal(t, "Teatro dell'Opera", point.Location)
	assert.Equal(t, "2026-06-15T18:30:00Z", point.ScheduledAt)
	assert.NotEmpty(t, point.ID)
	assert.Len(t, pointRepo.points, 1)
}

func TestAddFixedPointRejectsBadTimestamp(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	svc := NewFixedPointService(newFakePlanRepo(plan), &fakeFixedPointRepo{})

	_, err := svc.AddFixedPoint(context.Background(), ownerID, plan.ID.String(), request_models.AddFixedPointRequest{
		Location:    "Somewhere",
		ScheduledAt: "tomorrow evening",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestFixedPointMutationsNeedDraftPlan(t *testing.T) {
	ownerID := uuid.New()

	for _, tc := range []struct {
		status  db_models.PlanStatus
		wantErr error
	}{
		{db_models.PlanStatusGenerated, utils.ErrPlanNotDraft},
		{db_models.PlanStatusArchived, utils.ErrPlanArchived},
	} {
		t.Run(string(tc.status), func(t *testing.T) {
			plan := romeDraftPlan(ownerID)
			plan.Status = tc.status
			pointRepo := &fakeFixedPointRepo{}
			svc := NewFixedPointService(newFakePlanRepo(plan), pointRepo)

			_, err := svc.AddFixedPoint(context.Background(), ownerID, plan.ID.String(), request_models.AddFixedPointRequest{
				Location:    "Anywhere",
				ScheduledAt: "2026-06-15T09:00:00Z",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, pointRepo.points)

			err = svc.DeleteFixedPoint(context.Background(), ownerID, plan.ID.String(), uuid.New().String())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDeleteFixedPoint(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	pointRepo := &fakeFixedPointRepo{points: []db_models.FixedPoint{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, PlanID: plan.ID, Location: "FCO Airport"},
	}}
	svc := NewFixedPointService(newFakePlanRepo(plan), pointRepo)

	pointID := pointRepo.points[0].ID.String()
	require.NoError(t, svc.DeleteFixedPoint(context.Background(), ownerID, plan.ID.String(), pointID))
	assert.Empty(t, pointRepo.points)

	err := svc.DeleteFixedPoint(context.Background(), ownerID, plan.ID.String(), pointID)
	assert.ErrorIs(t, err, utils.ErrFixedPointNotFound)
}

func TestUpdateFixedPoint(t *testing.T) {
	ownerID := uuid.New()
	plan := romeDraftPlan(ownerID)
	pointRepo := &fakeFixedPointRepo{points: []db_models.FixedPoint{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, PlanID: plan.ID, Location: "FCO Airport"},
	}}
	svc := NewFixedPointService(newFakePlanRepo(plan), pointRepo)

	location := "Ciampino Airport"
	point, err := svc.UpdateFixedPoint(context.Background(), ownerID, plan.ID.String(), pointRepo.points[0].ID.String(),
		request_models.UpdateFixedPointRequest{Location: &location})

	require.NoError(t, err)
	assert.Equal(t, "Ciampino Airport", point.Location)
}
