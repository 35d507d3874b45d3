package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/db_models"
)

func TestRunSweep(t *testing.T) {
	ownerID := uuid.New()

	past := time.Now().UTC().AddDate(0, 0, -7)
	future := time.Now().UTC().AddDate(0, 0, 7)

	expired := romeDraftPlan(ownerID)
	expired.Status = db_models.PlanStatusGenerated
	expired.EndDate = &past

	upcoming := romeDraftPlan(ownerID)
	upcoming.Status = db_models.PlanStatusGenerated
	upcoming.EndDate = &future

	draft := romeDraftPlan(ownerID)
	draft.EndDate = &past

	planRepo := newFakePlanRepo(expired, upcoming, draft)
	svc := NewArchiveService(planRepo)

	count, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, db_models.PlanStatusArchived, expired.Status)
	assert.Equal(t, db_models.PlanStatusGenerated, upcoming.Status)
	// Drafts never expire, whatever their dates say.
	assert.Equal(t, db_models.PlanStatusDraft, draft.Status)
}

func TestBuildDailySpec(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"default", "", "0 3 * * *", false},
		{"morning", "07:30", "30 7 * * *", false},
		{"midnight", "00:00", "0 0 * * *", false},
		{"no colon", "0730", "", true},
		{"out of range", "25:00", "", true},
		{"garbage", "soonish", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := buildDailySpec(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec)
		})
	}
}
