package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// AssetService defines the interface for computer asset operations
type AssetService interface {
	GetAllAssets(ctx context.Context) ([]models.ComputerAsset, error)
	GetAssetByID(ctx context.Context, id uuid.UUID) (*models.ComputerAsset, error)
	CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*models.ComputerAsset, error)
	UpdateAsset(ctx context.Context, id uuid.UUID, req *dto.UpdateAssetRequest) (*models.ComputerAsset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// assetServiceImpl implements AssetService
type assetServiceImpl struct {
	assetRepo *repositories.AssetRepository
	logger    zerolog.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo *repositories.AssetRepository, logger zerolog.Logger) AssetService {
	return &assetServiceImpl{assetRepo: assetRepo, logger: logger}
}

func (s *assetServiceImpl) GetAllAssets(ctx context.Context) ([]models.ComputerAsset, error) {
	return s.assetRepo.GetAll(ctx)
}

func (s *assetServiceImpl) GetAssetByID(ctx context.Context, id uuid.UUID) (*models.ComputerAsset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetServiceImpl) CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*models.ComputerAsset, error) {
	status := req.Status
	if status == "" {
		status = models.AssetStatusAvailable
	}

	asset := &models.ComputerAsset{
		ID:              uuid.New(),
		Name:            req.Name,
		Type:            req.Type,
		Version:         req.Version,
		Status:          status,
		LicenseRequired: req.LicenseRequired,
		Notes:           req.Notes,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create asset")
		return nil, err
	}

	return asset, nil
}

func (s *assetServiceImpl) UpdateAsset(ctx context.Context, id uuid.UUID, req *dto.UpdateAssetRequest) (*models.ComputerAsset, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Type != nil {
		asset.Type = *req.Type
	}
	if req.Version != nil {
		asset.Version = req.Version
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.LicenseRequired != nil {
		asset.LicenseRequired = *req.LicenseRequired
	}
	if req.Notes != nil {
		asset.Notes = req.Notes
	}

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetServiceImpl) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return s.assetRepo.Delete(ctx, id)
}
