package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// OrgUnitService defines the interface for organizational unit operations
type OrgUnitService interface {
	GetAllOrgUnits(ctx context.Context) ([]models.OrgUnit, error)
	GetOrgUnitByID(ctx context.Context, id uuid.UUID) (*models.OrgUnit, error)
	CreateOrgUnit(ctx context.Context, req *dto.CreateOrgUnitRequest) (*models.OrgUnit, error)
	UpdateOrgUnit(ctx context.Context, id uuid.UUID, req *dto.UpdateOrgUnitRequest) (*models.OrgUnit, error)
	DeleteOrgUnit(ctx context.Context, id uuid.UUID) error
}

// orgUnitServiceImpl implements OrgUnitService
type orgUnitServiceImpl struct {
	orgUnitRepo *repositories.OrgUnitRepository
	logger      zerolog.Logger
}

// NewOrgUnitService creates a new OrgUnitService
func NewOrgUnitService(orgUnitRepo *repositories.OrgUnitRepository, logger zerolog.Logger) OrgUnitService {
	return &orgUnitServiceImpl{orgUnitRepo: orgUnitRepo, logger: logger}
}

func (s *orgUnitServiceImpl) GetAllOrgUnits(ctx context.Context) ([]models.OrgUnit, error) {
	return s.orgUnitRepo.GetAll(ctx)
}

func (s *orgUnitServiceImpl) GetOrgUnitByID(ctx context.Context, id uuid.UUID) (*models.OrgUnit, error) {
	return s.orgUnitRepo.GetByID(ctx, id)
}

func (s *orgUnitServiceImpl) CreateOrgUnit(ctx context.Context, req *dto.CreateOrgUnitRequest) (*models.OrgUnit, error) {
	unit := &models.OrgUnit{
		ID:          uuid.New(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}

	if err := s.orgUnitRepo.Create(ctx, unit); err != nil {
		s.logger.Error().Err(err).Str("code", req.Code).Msg("Failed to create organizational unit")
		return nil, err
	}

	return unit, nil
}

func (s *orgUnitServiceImpl) UpdateOrgUnit(ctx context.Context, id uuid.UUID, req *dto.UpdateOrgUnitRequest) (*models.OrgUnit, error) {
	unit, err := s.orgUnitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Code != nil {
		unit.Code = *req.Code
	}
	if req.Description != nil {
		unit.Description = req.Description
	}

	if err := s.orgUnitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}

	return unit, nil
}

func (s *orgUnitServiceImpl) DeleteOrgUnit(ctx context.Context, id uuid.UUID) error {
	return s.orgUnitRepo.Delete(ctx, id)
}
