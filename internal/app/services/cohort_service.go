package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// CohortService defines the interface for cohort operations
type CohortService interface {
	GetAllCohorts(ctx context.Context) ([]models.Cohort, error)
	GetCohortByID(ctx context.Context, id uuid.UUID) (*models.Cohort, error)
	CreateCohort(ctx context.Context, req *dto.CreateCohortRequest) (*models.Cohort, error)
	UpdateCohort(ctx context.Context, id uuid.UUID, req *dto.UpdateCohortRequest) (*models.Cohort, error)
	DeleteCohort(ctx context.Context, id uuid.UUID) error
}

// cohortServiceImpl implements CohortService
type cohortServiceImpl struct {
	cohortRepo *repositories.CohortRepository
	logger     zerolog.Logger
}

// NewCohortService creates a new CohortService
func NewCohortService(cohortRepo *repositories.CohortRepository, logger zerolog.Logger) CohortService {
	return &cohortServiceImpl{cohortRepo: cohortRepo, logger: logger}
}

func (s *cohortServiceImpl) GetAllCohorts(ctx context.Context) ([]models.Cohort, error) {
	return s.cohortRepo.GetAll(ctx)
}

func (s *cohortServiceImpl) GetCohortByID(ctx context.Context, id uuid.UUID) (*models.Cohort, error) {
	return s.cohortRepo.GetByID(ctx, id)
}

func (s *cohortServiceImpl) CreateCohort(ctx context.Context, req *dto.CreateCohortRequest) (*models.Cohort, error) {
	cohort := &models.Cohort{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.cohortRepo.Create(ctx, cohort); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create cohort")
		return nil, err
	}

	return cohort, nil
}

func (s *cohortServiceImpl) UpdateCohort(ctx context.Context, id uuid.UUID, req *dto.UpdateCohortRequest) (*models.Cohort, error) {
	cohort, err := s.cohortRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cohort.Name = *req.Name
	}
	if req.Description != nil {
		cohort.Description = req.Description
	}
	if req.StartDate != nil {
		cohort.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		cohort.EndDate = req.EndDate
	}

	if err := s.cohortRepo.Update(ctx, cohort); err != nil {
		return nil, err
	}

	return cohort, nil
}

func (s *cohortServiceImpl) DeleteCohort(ctx context.Context, id uuid.UUID) error {
	return s.cohortRepo.Delete(ctx, id)
}
