package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// CommunityService defines the interface for practice community operations
type CommunityService interface {
	GetAllCommunities(ctx context.Context, search string) ([]models.Community, error)
	GetCommunityByID(ctx context.Context, id uuid.UUID) (*models.Community, error)
	CreateCommunity(ctx context.Context, createdBy uuid.UUID, req *dto.CreateCommunityRequest) (*models.Community, error)
	UpdateCommunity(ctx context.Context, id uuid.UUID, req *dto.UpdateCommunityRequest) (*models.Community, error)
	DeleteCommunity(ctx context.Context, id uuid.UUID) error
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityRepo *repositories.CommunityRepository
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityRepo *repositories.CommunityRepository, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{communityRepo: communityRepo, logger: logger}
}

func (s *communityServiceImpl) GetAllCommunities(ctx context.Context, search string) ([]models.Community, error) {
	return s.communityRepo.GetAll(ctx, search)
}

func (s *communityServiceImpl) GetCommunityByID(ctx context.Context, id uuid.UUID) (*models.Community, error) {
	return s.communityRepo.GetByID(ctx, id)
}

func (s *communityServiceImpl) CreateCommunity(ctx context.Context, createdBy uuid.UUID, req *dto.CreateCommunityRequest) (*models.Community, error) {
	community := &models.Community{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		CreatedBy:   &createdBy,
	}

	if err := s.communityRepo.Create(ctx, community); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create community")
		return nil, err
	}

	return community, nil
}

func (s *communityServiceImpl) UpdateCommunity(ctx context.Context, id uuid.UUID, req *dto.UpdateCommunityRequest) (*models.Community, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		community.Name = *req.Name
	}
	if req.Description != nil {
		community.Description = req.Description
	}
	if req.IsPrivate != nil {
		community.IsPrivate = *req.IsPrivate
	}

	if err := s.communityRepo.Update(ctx, community); err != nil {
		return nil, err
	}

	return community, nil
}

func (s *communityServiceImpl) DeleteCommunity(ctx context.Context, id uuid.UUID) error {
	return s.communityRepo.Delete(ctx, id)
}
