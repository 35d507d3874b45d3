package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type fakeProfileRepo struct {
	profile      *db_models.Profile
	getErr       error
	decrementErr error
	decremented  int
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *db_models.Profile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.profile == nil || f.profile.ID != userID {
		return nil, nil
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (f *fakeProfileRepo) DecrementGenerations(ctx context.Context, userID uuid.UUID) (bool, error) {
	if f.decrementErr != nil {
		return false, f.decrementErr
	}
	if f.profile == nil || f.profile.ID != userID || f.profile.GenerationsRemaining <= 0 {
		return false, nil
	}
	f.profile.GenerationsRemaining--
	f.decremented++
	return true, nil
}

type fakePlanRepo struct {
	plans     map[uuid.UUID]*db_models.Plan
	updates   []map[string]interface{}
	updateErr error
	archived  int64
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	repo := &fakePlanRepo{plans: map[uuid.UUID]*db_models.Plan{}}
	for _, plan := range plans {
		repo.plans[plan.ID] = plan
	}
	return repo
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *db_models.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) GetByIDForOwner(ctx context.Context, planID string, ownerID uuid.UUID) (*db_models.Plan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, nil
	}
	plan, ok := f.plans[id]
	if !ok || plan.OwnerID != ownerID {
		return nil, nil
	}
	return plan, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, nil
	}
	plan, ok := f.plans[id]
	if !ok {
		return nil, nil
	}
	return plan, nil
}

func (f *fakePlanRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int, status db_models.PlanStatus) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, plan := range f.plans {
		if plan.OwnerID != ownerID {
			continue
		}
		if status != "" && plan.Status != status {
			continue
		}
		out = append(out, *plan)
	}
	return out, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, planID uuid.UUID, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fields)

	plan, ok := f.plans[planID]
	if !ok {
		return nil
	}
	if status, ok := fields["status"]; ok {
		plan.Status = status.(db_models.PlanStatus)
	}
	if content, ok := fields["generated_content"]; ok {
		plan.GeneratedContent = content.(datatypes.JSON)
	}
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, planID uuid.UUID, ownerID uuid.UUID) error {
	delete(f.plans, planID)
	return nil
}

func (f *fakePlanRepo) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	for _, plan := range f.plans {
		if plan.Status == db_models.PlanStatusGenerated && plan.EndDate != nil && plan.EndDate.Before(now) {
			plan.Status = db_models.PlanStatusArchived
			count++
		}
	}
	f.archived += count
	return count, nil
}

type fakeFixedPointRepo struct {
	points []db_models.FixedPoint
}

func (f *fakeFixedPointRepo) ListByPlanID(ctx context.Context, planID uuid.UUID) ([]db_models.FixedPoint, error) {
	var out []db_models.FixedPoint
	for _, point := range f.points {
		if point.PlanID == planID {
			out = append(out, point)
		}
	}
	return out, nil
}

func (f *fakeFixedPointRepo) GetByIDForPlan(ctx context.Context, id string, planID uuid.UUID) (*db_models.FixedPoint, error) {
	for i := range f.points {
		if f.points[i].ID.String() == id && f.points[i].PlanID == planID {
			return &f.points[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFixedPointRepo) Create(ctx context.Context, point *db_models.FixedPoint) error {
	if point.ID == uuid.Nil {
		point.ID = uuid.New()
	}
	f.points = append(f.points, *point)
	return nil
}

func (f *fakeFixedPointRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (f *fakeFixedPointRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.points {
		if f.points[i].ID == id {
			f.points = append(f.points[:i], f.points[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	return account, nil
}

type fakeFeedbackRepo struct {
	rows map[string]*db_models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: map[string]*db_models.Feedback{}}
}

func feedbackKey(userID, planID uuid.UUID) string {
	return userID.String() + "/" + planID.String()
}

func (f *fakeFeedbackRepo) Upsert(ctx context.Context, feedback *db_models.Feedback) error {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	f.rows[feedbackKey(feedback.UserID, feedback.PlanID)] = feedback
	return nil
}

func (f *fakeFeedbackRepo) GetByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.Feedback, error) {
	row, ok := f.rows[feedbackKey(userID, planID)]
	if !ok {
		return nil, nil
	}
	return row, nil
}

// fakeAIClient copies a canned AIPlanResult into out, or fails with err.
type fakeAIClient struct {
	result  *response_models.AIPlanResult
	err     error
	calls   int
	lastReq utils.StructuredRequest
}

func (f *fakeAIClient) GetStructuredResponse(ctx context.Context, req utils.StructuredRequest, out any) error {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return f.err
	}
	target, ok := out.(*response_models.AIPlanResult)
	if !ok {
		panic("unexpected output type")
	}
	*target = *f.result
	return nil
}
