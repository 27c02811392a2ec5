package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
)

// fakeRequestStore keeps requests in memory and counts writes so tests can
// assert that failed validations never touch the store.
type fakeRequestStore struct {
	requests       map[uuid.UUID]*models.Request
	steps          *fakeStepStore
	writes         int
	failNextUpdate bool
}

func newFakeRequestStore(requests ...*models.Request) *fakeRequestStore {
	s := &fakeRequestStore{requests: map[uuid.UUID]*models.Request{}}
	for _, req := range requests {
		s.requests[req.ID] = req
	}
	return s
}

func (s *fakeRequestStore) GetAll(ctx context.Context) ([]models.Request, error) {
	out := make([]models.Request, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (s *fakeRequestStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	clone := *req
	clone.ApprovalSteps = append([]models.ApprovalStep(nil), req.ApprovalSteps...)
	if s.steps != nil {
		clone.ApprovalSteps, _ = s.steps.ListByRequest(ctx, id)
	}
	return &clone, nil
}

func (s *fakeRequestStore) Create(ctx context.Context, req *models.Request) error {
	s.writes++
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req.UpdatedAt = req.CreatedAt
	clone := *req
	s.requests[req.ID] = &clone
	return nil
}

func (s *fakeRequestStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, submittedAt *time.Time) error {
	if s.failNextUpdate {
		s.failNextUpdate = false
		return assert.AnError
	}
	s.writes++
	req, ok := s.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	req.Status = status
	if submittedAt != nil {
		req.SubmittedAt = submittedAt
	}
	return nil
}

func (s *fakeRequestStore) snapshot() map[uuid.UUID]*models.Request {
	snap := make(map[uuid.UUID]*models.Request, len(s.requests))
	for id, req := range s.requests {
		clone := *req
		snap[id] = &clone
	}
	return snap
}

type fakeStepStore struct {
	steps          map[uuid.UUID][]*models.ApprovalStep
	writes         int
	failNextCreate bool
}

func newFakeStepStore() *fakeStepStore {
	return &fakeStepStore{steps: map[uuid.UUID][]*models.ApprovalStep{}}
}

func (s *fakeStepStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.ApprovalStep, error) {
	var out []models.ApprovalStep
	for _, step := range s.steps[requestID] {
		out = append(out, *step)
	}
	return out, nil
}

func (s *fakeStepStore) snapshot() map[uuid.UUID][]*models.ApprovalStep {
	snap := make(map[uuid.UUID][]*models.ApprovalStep, len(s.steps))
	for id, steps := range s.steps {
		clones := make([]*models.ApprovalStep, len(steps))
		for i, step := range steps {
			clone := *step
			clones[i] = &clone
		}
		snap[id] = clones
	}
	return snap
}

func (s *fakeStepStore) Create(ctx context.Context, step *models.ApprovalStep) error {
	if s.failNextCreate {
		s.failNextCreate = false
		return assert.AnError
	}
	s.writes++
	if step.ID == uuid.Nil {
		step.ID = uuid.New()
	}
	if step.Status == "" {
		step.Status = models.StepStatusPending
	}
	clone := *step
	s.steps[step.RequestID] = append(s.steps[step.RequestID], &clone)
	return nil
}

func (s *fakeStepStore) FirstPending(ctx context.Context, requestID uuid.UUID) (*models.ApprovalStep, error) {
	for _, step := range s.steps[requestID] {
		if step.Status == models.StepStatusPending {
			clone := *step
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNoPendingStep
}

func (s *fakeStepStore) Resolve(ctx context.Context, stepID uuid.UUID, status string, approverID uuid.UUID, comment *string, decidedAt time.Time) error {
	s.writes++
	for _, steps := range s.steps {
		for _, step := range steps {
			if step.ID == stepID {
				step.Status = status
				step.ApproverID = &approverID
				step.Comments = comment
				step.ApprovedAt = &decidedAt
				return nil
			}
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeStepStore) Reassign(ctx context.Context, stepID uuid.UUID, approverID uuid.UUID) error {
	s.writes++
	for _, steps := range s.steps {
		for _, step := range steps {
			if step.ID == stepID && step.Status == models.StepStatusPending {
				step.ApproverID = &approverID
				return nil
			}
		}
	}
	return apperrors.ErrResourceNotFound
}

type fakeProfileStore struct {
	profiles map[uuid.UUID]*models.Profile
}

func newFakeProfileStore(profiles ...*models.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: map[uuid.UUID]*models.Profile{}}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *fakeProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) ListByRoles(ctx context.Context, roles []models.Role, limit int) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range s.profiles {
		out = append(out, *p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeTxRunner mirrors transactional semantics over the in-memory stores:
// when the wrapped function fails, both stores revert to their pre-call
// snapshots. A write issued outside the runner is not protected, which is
// exactly what the rollback tests rely on to catch regressions.
type fakeTxRunner struct {
	requests *fakeRequestStore
	steps    *fakeStepStore
}

func (r *fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	reqSnap := r.requests.snapshot()
	reqWrites := r.requests.writes
	stepSnap := r.steps.snapshot()
	stepWrites := r.steps.writes

	if err := fn(ctx); err != nil {
		r.requests.requests = reqSnap
		r.requests.writes = reqWrites
		r.steps.steps = stepSnap
		r.steps.writes = stepWrites
		return err
	}
	return nil
}

func newTestService(reqStore *fakeRequestStore, stepStore *fakeStepStore, profileStore *fakeProfileStore) RequestService {
	reqStore.steps = stepStore
	tx := &fakeTxRunner{requests: reqStore, steps: stepStore}
	svc := NewRequestService(reqStore, stepStore, profileStore, tx, zerolog.Nop())

	// Deterministic clock advancing one minute per call.
	tick := 0
	svc.(*requestServiceImpl).now = func() time.Time {
		tick++
		return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC).Add(time.Duration(tick-1) * time.Minute)
	}
	return svc
}

func TestSubmitRequestStampsTimeAndOpensStep(t *testing.T) {
	req := &models.Request{ID: uuid.New(), UserID: uuid.New(), Status: models.StatusDraft}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	got, err := svc.SubmitRequest(context.Background(), req.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, got.Status)
	require.NotNil(t, got.SubmittedAt)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), *got.SubmittedAt,
		"submission must be stamped with the service clock")

	steps, _ := stepStore.ListByRequest(context.Background(), req.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].StepOrder)
	assert.Equal(t, models.StepStatusPending, steps[0].Status)
}

func TestSubmitRequestRefusesNonDraft(t *testing.T) {
	req := &models.Request{ID: uuid.New(), Status: models.StatusApproved}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	_, err := svc.SubmitRequest(context.Background(), req.ID)

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Zero(t, reqStore.writes)
	assert.Zero(t, stepStore.writes)
}

func TestRejectRequestRequiresComment(t *testing.T) {
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	for _, comment := range []string{"", "   ", "\n\t"} {
		_, err := svc.RejectRequest(context.Background(), req.ID, uuid.New(), comment)
		assert.ErrorIs(t, err, apperrors.ErrRejectReasonRequired)
	}

	// A validation failure must never leave a partial decision behind.
	assert.Zero(t, reqStore.writes)
	assert.Zero(t, stepStore.writes)
}

func TestApproveRequestResolvesPendingStep(t *testing.T) {
	approver := uuid.New()
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	require.NoError(t, stepStore.Create(context.Background(),
		&models.ApprovalStep{RequestID: req.ID, StepOrder: 1}))
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	got, err := svc.ApproveRequest(context.Background(), req.ID, approver, "")

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)

	steps, _ := stepStore.ListByRequest(context.Background(), req.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, models.StepStatusApproved, steps[0].Status)
	require.NotNil(t, steps[0].ApproverID)
	assert.Equal(t, approver, *steps[0].ApproverID)
	assert.Nil(t, steps[0].Comments, "blank comment stays unset")
}

func TestApproveRequestRefusesTerminalStatus(t *testing.T) {
	req := &models.Request{ID: uuid.New(), Status: models.StatusCompleted}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	_, err := svc.ApproveRequest(context.Background(), req.ID, uuid.New(), "ok")

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Zero(t, reqStore.writes)
	assert.Zero(t, stepStore.writes)
}

// A failed status write rolls the step resolution back, so the decision is
// retryable instead of stranding an approved step behind an undecided
// request.
func TestApproveRequestRollsBackStepOnFailedStatusWrite(t *testing.T) {
	approver := uuid.New()
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	require.NoError(t, stepStore.Create(context.Background(),
		&models.ApprovalStep{RequestID: req.ID, StepOrder: 1}))
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	reqStore.failNextUpdate = true
	_, err := svc.ApproveRequest(context.Background(), req.ID, approver, "ok")
	require.Error(t, err)

	steps, _ := stepStore.ListByRequest(context.Background(), req.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, models.StepStatusPending, steps[0].Status,
		"a rolled-back decision must leave the step pending")
	assert.Equal(t, models.StatusInReview, reqStore.requests[req.ID].Status)

	// The retry finds the step still pending and succeeds.
	got, err := svc.ApproveRequest(context.Background(), req.ID, approver, "ok")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)

	steps, _ = stepStore.ListByRequest(context.Background(), req.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, models.StepStatusApproved, steps[0].Status)
}

// The inverse failure on submit: when the step insert fails, the status
// move rolls back and the draft can be resubmitted.
func TestSubmitRequestRollsBackStatusOnFailedStepInsert(t *testing.T) {
	req := &models.Request{ID: uuid.New(), UserID: uuid.New(), Status: models.StatusDraft}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	stepStore.failNextCreate = true
	_, err := svc.SubmitRequest(context.Background(), req.ID)
	require.Error(t, err)

	assert.Equal(t, models.StatusDraft, reqStore.requests[req.ID].Status,
		"a rolled-back submit must leave the request in draft")
	steps, _ := stepStore.ListByRequest(context.Background(), req.ID)
	assert.Empty(t, steps)

	got, err := svc.SubmitRequest(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, got.Status)
}

func TestDelegateRequestRequiresTarget(t *testing.T) {
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	_, err := svc.DelegateRequest(context.Background(), req.ID, uuid.Nil)

	assert.ErrorIs(t, err, apperrors.ErrDelegateRequired)
	assert.Zero(t, stepStore.writes)
}

func TestDelegateRequestRefusesUnknownTarget(t *testing.T) {
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	_, err := svc.DelegateRequest(context.Background(), req.ID, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Zero(t, stepStore.writes)
}

func TestDelegateRequestReassignsPendingStep(t *testing.T) {
	delegate := &models.Profile{ID: uuid.New(), Email: "paul.durand@formadesk.app"}
	req := &models.Request{ID: uuid.New(), Status: models.StatusInReview}
	reqStore := newFakeRequestStore(req)
	stepStore := newFakeStepStore()
	require.NoError(t, stepStore.Create(context.Background(),
		&models.ApprovalStep{RequestID: req.ID, StepOrder: 1}))
	svc := newTestService(reqStore, stepStore, newFakeProfileStore(delegate))

	got, err := svc.DelegateRequest(context.Background(), req.ID, delegate.ID)

	require.NoError(t, err)
	// Delegation moves the step, not the request status.
	assert.Equal(t, models.StatusInReview, got.Status)

	steps, _ := stepStore.ListByRequest(context.Background(), req.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, models.StepStatusPending, steps[0].Status)
	require.NotNil(t, steps[0].ApproverID)
	assert.Equal(t, delegate.ID, *steps[0].ApproverID)
}

func TestListRequestsRejectsUnknownQueue(t *testing.T) {
	svc := newTestService(newFakeRequestStore(), newFakeStepStore(), newFakeProfileStore())

	_, err := svc.ListRequests(context.Background(), uuid.New(), QueueFilter("mine"), nil, "")

	assert.Error(t, err)
}

func TestListRequestsRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeRequestStore(), newFakeStepStore(), newFakeProfileStore())

	_, err := svc.ListRequests(context.Background(), uuid.New(), QueueAll,
		[]models.RequestStatus{"pending"}, "")

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestGetStatsCoversEveryStatus(t *testing.T) {
	reqStore := newFakeRequestStore(
		&models.Request{ID: uuid.New(), Status: models.StatusDraft},
		&models.Request{ID: uuid.New(), Status: models.StatusDraft},
		&models.Request{ID: uuid.New(), Status: models.StatusInReview},
	)
	svc := newTestService(reqStore, newFakeStepStore(), newFakeProfileStore())

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[models.StatusDraft])
	assert.Equal(t, 1, stats.ByStatus[models.StatusInReview])
	// Unused statuses are present with an explicit zero.
	for _, status := range models.AllRequestStatuses {
		_, ok := stats.ByStatus[status]
		assert.True(t, ok, "status %s missing from stats", status)
	}
}

// Full lifecycle: a draft is submitted then rejected with a reason, and the
// timeline reflects every stage.
func TestRequestLifecycleToRejection(t *testing.T) {
	userID := uuid.New()
	approver := uuid.New()
	reqStore := newFakeRequestStore()
	stepStore := newFakeStepStore()
	svc := newTestService(reqStore, stepStore, newFakeProfileStore())

	created, err := svc.CreateRequest(context.Background(), userID, &dto.CreateRequestRequest{
		TrainingID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, created.Status)

	submitted, err := svc.SubmitRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, submitted.Status)

	underReview, err := svc.StartReview(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInReview, underReview.Status)

	rejected, err := svc.RejectRequest(context.Background(), created.ID, approver, "Over budget")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	events, err := svc.GetTimeline(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, TimelineEventRejected, events[0].Type)
	assert.Equal(t, "Over budget", events[0].Comment)

	// Terminal status refuses further moves.
	_, err = svc.UpdateStatus(context.Background(), created.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
