package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
	"github.com/formadesk/formadesk/internal/pkg/metrics"
)

// delegateCandidateLimit caps the delegate picker. A pagination default,
// not a domain rule.
const delegateCandidateLimit = 50

// RequestStore is the persistence surface the request service needs for
// requests themselves.
type RequestStore interface {
	GetAll(ctx context.Context) ([]models.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error)
	Create(ctx context.Context, req *models.Request) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, submittedAt *time.Time) error
}

// ApprovalStepStore is the persistence surface for approval steps.
type ApprovalStepStore interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.ApprovalStep, error)
	Create(ctx context.Context, step *models.ApprovalStep) error
	FirstPending(ctx context.Context, requestID uuid.UUID) (*models.ApprovalStep, error)
	Resolve(ctx context.Context, stepID uuid.UUID, status string, approverID uuid.UUID, comment *string, decidedAt time.Time) error
	Reassign(ctx context.Context, stepID uuid.UUID, approverID uuid.UUID) error
}

// ProfileStore is the read surface for delegate candidate lookup.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ListByRoles(ctx context.Context, roles []models.Role, limit int) ([]models.Profile, error)
}

// TxRunner executes a function atomically. Store calls made with the
// context the function receives commit or roll back together.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RequestService defines the interface for training request operations
type RequestService interface {
	ListRequests(ctx context.Context, viewerID uuid.UUID, queue QueueFilter, statuses []models.RequestStatus, search string) ([]models.Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	CreateRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateRequestRequest) (*models.Request, error)
	SubmitRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	StartReview(ctx context.Context, id uuid.UUID) (*models.Request, error)
	ApproveRequest(ctx context.Context, id uuid.UUID, approverID uuid.UUID, comment string) (*models.Request, error)
	RejectRequest(ctx context.Context, id uuid.UUID, approverID uuid.UUID, comment string) (*models.Request, error)
	DelegateRequest(ctx context.Context, id uuid.UUID, delegateTo uuid.UUID) (*models.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, to models.RequestStatus) (*models.Request, error)
	GetTimeline(ctx context.Context, id uuid.UUID) ([]dto.TimelineEventResponse, error)
	GetStats(ctx context.Context) (*dto.RequestStatsResponse, error)
	ListDelegateCandidates(ctx context.Context) ([]models.Profile, error)
}

// requestServiceImpl implements RequestService
type requestServiceImpl struct {
	requestStore RequestStore
	stepStore    ApprovalStepStore
	profileStore ProfileStore
	tx           TxRunner
	logger       zerolog.Logger
	now          func() time.Time
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestStore RequestStore,
	stepStore ApprovalStepStore,
	profileStore ProfileStore,
	tx TxRunner,
	logger zerolog.Logger,
) RequestService {
	return &requestServiceImpl{
		requestStore: requestStore,
		stepStore:    stepStore,
		profileStore: profileStore,
		tx:           tx,
		logger:       logger,
		now:          time.Now,
	}
}

// ListRequests loads the canonical list (already ordered newest first) and
// derives the visible subset in memory.
func (s *requestServiceImpl) ListRequests(ctx context.Context, viewerID uuid.UUID, queue QueueFilter, statuses []models.RequestStatus, search string) ([]models.Request, error) {
	if queue == "" {
		queue = QueueAll
	}
	if !queue.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown queue filter: %s", queue))
	}
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	requests, err := s.requestStore.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load requests")
		return nil, err
	}

	return FilterRequests(requests, viewerID, queue, statuses, search), nil
}

// GetRequest returns one request with its approval steps.
func (s *requestServiceImpl) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	return s.requestStore.GetByID(ctx, id)
}

// CreateRequest opens a new request in draft for the given user.
func (s *requestServiceImpl) CreateRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateRequestRequest) (*models.Request, error) {
	request := &models.Request{
		ID:            uuid.New(),
		UserID:        userID,
		TrainingID:    req.TrainingID,
		SessionID:     req.SessionID,
		Status:        models.StatusDraft,
		Justification: req.Justification,
	}

	if err := s.requestStore.Create(ctx, request); err != nil {
		s.logger.Error().Err(err).Str("userID", userID.String()).Msg("Failed to create request")
		return nil, err
	}

	s.logger.Info().
		Str("requestID", request.ID.String()).
		Str("trainingID", req.TrainingID.String()).
		Msg("Request created")

	return s.requestStore.GetByID(ctx, request.ID)
}

// SubmitRequest moves a draft to submitted, stamping the submission time
// and opening the first approval step.
func (s *requestServiceImpl) SubmitRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	request, err := s.requestStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.IsValidTransition(request.Status, models.StatusSubmitted) {
		return nil, transitionError(request.Status, models.StatusSubmitted)
	}

	// The status move and the first approval step commit together, so a
	// failed step insert leaves the request in draft and retryable.
	submittedAt := s.now()
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.requestStore.UpdateStatus(ctx, id, models.StatusSubmitted, &submittedAt); err != nil {
			return err
		}

		step := &models.ApprovalStep{
			RequestID: id,
			StepOrder: 1,
			Status:    models.StepStatusPending,
		}
		return s.stepStore.Create(ctx, step)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("requestID", id.String()).Msg("Failed to submit request")
		return nil, err
	}

	s.logger.Info().Str("requestID", id.String()).Msg("Request submitted")

	return s.requestStore.GetByID(ctx, id)
}

// StartReview moves a submitted request under review.
func (s *requestServiceImpl) StartReview(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	return s.UpdateStatus(ctx, id, models.StatusInReview)
}

// ApproveRequest approves the request with an optional comment, resolving
// its pending approval step.
func (s *requestServiceImpl) ApproveRequest(ctx context.Context, id uuid.UUID, approverID uuid.UUID, comment string) (*models.Request, error) {
	request, err := s.decide(ctx, id, approverID, models.StatusApproved, models.StepStatusApproved, optionalComment(comment))
	if err != nil {
		return nil, err
	}

	metrics.RecordDecision("approved")
	return request, nil
}

// RejectRequest rejects the request. The comment is mandatory: an empty or
// whitespace-only reason fails before any write happens, so a validation
// failure never leaves a half-applied decision behind.
func (s *requestServiceImpl) RejectRequest(ctx context.Context, id uuid.UUID, approverID uuid.UUID, comment string) (*models.Request, error) {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return nil, apperrors.ErrRejectReasonRequired
	}

	request, err := s.decide(ctx, id, approverID, models.StatusRejected, models.StepStatusRejected, &comment)
	if err != nil {
		return nil, err
	}

	metrics.RecordDecision("rejected")
	return request, nil
}

// decide applies an approve/reject transition and resolves the first
// pending step. The status move is validated before anything is written.
func (s *requestServiceImpl) decide(ctx context.Context, id uuid.UUID, approverID uuid.UUID, to models.RequestStatus, stepStatus string, comment *string) (*models.Request, error) {
	request, err := s.requestStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.IsValidTransition(request.Status, to) {
		return nil, transitionError(request.Status, to)
	}

	step, err := s.stepStore.FirstPending(ctx, id)
	if err != nil {
		return nil, err
	}

	// Step resolution and the status move commit together, so a failed
	// status write never strands a resolved step behind an undecided
	// request.
	decidedAt := s.now()
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stepStore.Resolve(ctx, step.ID, stepStatus, approverID, comment, decidedAt); err != nil {
			return err
		}
		return s.requestStore.UpdateStatus(ctx, id, to, nil)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("requestID", id.String()).
		Str("approverID", approverID.String()).
		Str("decision", string(to)).
		Msg("Request decided")

	return s.requestStore.GetByID(ctx, id)
}

// DelegateRequest hands the pending approval step to another user. The
// target must exist; a nil target is refused before any lookup.
func (s *requestServiceImpl) DelegateRequest(ctx context.Context, id uuid.UUID, delegateTo uuid.UUID) (*models.Request, error) {
	if delegateTo == uuid.Nil {
		return nil, apperrors.ErrDelegateRequired
	}

	if _, err := s.profileStore.GetByID(ctx, delegateTo); err != nil {
		return nil, err
	}

	step, err := s.stepStore.FirstPending(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.stepStore.Reassign(ctx, step.ID, delegateTo); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("requestID", id.String()).
		Str("delegateTo", delegateTo.String()).
		Msg("Request delegated")

	metrics.RecordDecision("delegated")

	return s.requestStore.GetByID(ctx, id)
}

// UpdateStatus applies a bare status transition, e.g. approved to scheduled
// once a session is booked, or scheduled to completed.
func (s *requestServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, to models.RequestStatus) (*models.Request, error) {
	if !to.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	request, err := s.requestStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.IsValidTransition(request.Status, to) {
		return nil, transitionError(request.Status, to)
	}

	if err := s.requestStore.UpdateStatus(ctx, id, to, nil); err != nil {
		return nil, err
	}

	return s.requestStore.GetByID(ctx, id)
}

// GetTimeline builds the activity timeline of one request.
func (s *requestServiceImpl) GetTimeline(ctx context.Context, id uuid.UUID) ([]dto.TimelineEventResponse, error) {
	request, err := s.requestStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return BuildRequestTimeline(request), nil
}

// GetStats counts requests per status over the full set.
func (s *requestServiceImpl) GetStats(ctx context.Context) (*dto.RequestStatsResponse, error) {
	requests, err := s.requestStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.RequestStatsResponse{
		Total:    len(requests),
		ByStatus: make(map[models.RequestStatus]int, len(models.AllRequestStatuses)),
	}
	for _, status := range models.AllRequestStatuses {
		stats.ByStatus[status] = 0
	}
	for _, req := range requests {
		stats.ByStatus[req.Status]++
	}

	return stats, nil
}

// ListDelegateCandidates returns up to 50 users holding an approver role.
func (s *requestServiceImpl) ListDelegateCandidates(ctx context.Context) ([]models.Profile, error) {
	roles := []models.Role{models.RoleManager, models.RoleHRAdmin, models.RoleSuperAdmin}
	return s.profileStore.ListByRoles(ctx, roles, delegateCandidateLimit)
}

func optionalComment(comment string) *string {
	if strings.TrimSpace(comment) == "" {
		return nil
	}
	return &comment
}

func transitionError(from, to models.RequestStatus) error {
	return apperrors.NewCustomError(
		apperrors.ErrInvalidTransition,
		fmt.Sprintf("cannot move a request from %s to %s", from, to),
	)
}
