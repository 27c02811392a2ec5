package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// TrainingService defines the interface for catalog operations
type TrainingService interface {
	GetAllTrainings(ctx context.Context, filter *dto.TrainingFilterRequest) ([]models.Training, error)
	GetTrainingByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	CreateTraining(ctx context.Context, createdBy uuid.UUID, req *dto.CreateTrainingRequest) (*models.Training, error)
	UpdateTraining(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainingRequest) (*models.Training, error)
	DeleteTraining(ctx context.Context, id uuid.UUID) error
}

// trainingServiceImpl implements TrainingService
type trainingServiceImpl struct {
	trainingRepo *repositories.TrainingRepository
	logger       zerolog.Logger
}

// NewTrainingService creates a new TrainingService
func NewTrainingService(trainingRepo *repositories.TrainingRepository, logger zerolog.Logger) TrainingService {
	return &trainingServiceImpl{
		trainingRepo: trainingRepo,
		logger:       logger,
	}
}

// GetAllTrainings lists catalog entries matching the filter.
func (s *trainingServiceImpl) GetAllTrainings(ctx context.Context, filter *dto.TrainingFilterRequest) ([]models.Training, error) {
	repoFilter := repositories.TrainingFilter{}
	if filter != nil {
		if filter.Category != nil {
			repoFilter.Category = *filter.Category
		}
		if filter.Status != nil {
			repoFilter.Status = *filter.Status
		}
		if filter.Search != nil {
			repoFilter.Search = *filter.Search
		}
	}

	return s.trainingRepo.GetAll(ctx, repoFilter)
}

// GetTrainingByID retrieves one catalog entry.
func (s *trainingServiceImpl) GetTrainingByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	return s.trainingRepo.GetByID(ctx, id)
}

// CreateTraining adds a catalog entry. Status defaults to active.
func (s *trainingServiceImpl) CreateTraining(ctx context.Context, createdBy uuid.UUID, req *dto.CreateTrainingRequest) (*models.Training, error) {
	status := req.Status
	if status == "" {
		status = models.TrainingStatusActive
	}

	training := &models.Training{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Provider:      req.Provider,
		Cost:          req.Cost,
		DurationHours: req.DurationHours,
		Status:        status,
		CreatedBy:     &createdBy,
	}

	if err := s.trainingRepo.Create(ctx, training); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("Failed to create training")
		return nil, err
	}

	s.logger.Info().Str("trainingID", training.ID.String()).Msg("Training created")

	return training, nil
}

// UpdateTraining applies a partial update to a catalog entry.
func (s *trainingServiceImpl) UpdateTraining(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainingRequest) (*models.Training, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		training.Title = *req.Title
	}
	if req.Description != nil {
		training.Description = req.Description
	}
	if req.Category != nil {
		training.Category = req.Category
	}
	if req.Provider != nil {
		training.Provider = req.Provider
	}
	if req.Cost != nil {
		training.Cost = req.Cost
	}
	if req.DurationHours != nil {
		training.DurationHours = req.DurationHours
	}
	if req.Status != nil {
		training.Status = *req.Status
	}

	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}

	return training, nil
}

// DeleteTraining removes a catalog entry.
func (s *trainingServiceImpl) DeleteTraining(ctx context.Context, id uuid.UUID) error {
	return s.trainingRepo.Delete(ctx, id)
}
