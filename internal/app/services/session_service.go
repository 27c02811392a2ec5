package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// SessionService defines the interface for training session operations
type SessionService interface {
	GetAllSessions(ctx context.Context) ([]models.TrainingSession, error)
	GetSessionsByTraining(ctx context.Context, trainingID uuid.UUID) ([]models.TrainingSession, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*models.TrainingSession, error)
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.TrainingSession, error)
	UpdateSession(ctx context.Context, id uuid.UUID, req *dto.UpdateSessionRequest) (*models.TrainingSession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// sessionServiceImpl implements SessionService
type sessionServiceImpl struct {
	sessionRepo  *repositories.SessionRepository
	trainingRepo *repositories.TrainingRepository
	logger       zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessionRepo *repositories.SessionRepository,
	trainingRepo *repositories.TrainingRepository,
	logger zerolog.Logger,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo:  sessionRepo,
		trainingRepo: trainingRepo,
		logger:       logger,
	}
}

// GetAllSessions lists every session with its training title.
func (s *sessionServiceImpl) GetAllSessions(ctx context.Context) ([]models.TrainingSession, error) {
	return s.sessionRepo.GetAll(ctx)
}

// GetSessionsByTraining lists the sessions of one training.
func (s *sessionServiceImpl) GetSessionsByTraining(ctx context.Context, trainingID uuid.UUID) ([]models.TrainingSession, error) {
	if _, err := s.trainingRepo.GetByID(ctx, trainingID); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListByTraining(ctx, trainingID)
}

// GetSessionByID retrieves one session.
func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, id uuid.UUID) (*models.TrainingSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// CreateSession schedules a session for an existing training.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.TrainingSession, error) {
	training, err := s.trainingRepo.GetByID(ctx, req.TrainingID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.SessionStatusScheduled
	}

	session := &models.TrainingSession{
		ID:              uuid.New(),
		TrainingID:      req.TrainingID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		Instructor:      req.Instructor,
		MaxParticipants: req.MaxParticipants,
		Status:          status,
		TrainingTitle:   &training.Title,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("trainingID", req.TrainingID.String()).Msg("Failed to create session")
		return nil, err
	}

	s.logger.Info().Str("sessionID", session.ID.String()).Msg("Session scheduled")

	return session, nil
}

// UpdateSession applies a partial update to a session.
func (s *sessionServiceImpl) UpdateSession(ctx context.Context, id uuid.UUID, req *dto.UpdateSessionRequest) (*models.TrainingSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		session.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		session.EndDate = req.EndDate
	}
	if req.Location != nil {
		session.Location = req.Location
	}
	if req.Instructor != nil {
		session.Instructor = req.Instructor
	}
	if req.MaxParticipants != nil {
		session.MaxParticipants = req.MaxParticipants
	}
	if req.Status != nil {
		session.Status = *req.Status
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes a session.
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, id)
}
