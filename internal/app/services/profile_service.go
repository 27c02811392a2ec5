package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// ProfileService defines the interface for profile and role administration
type ProfileService interface {
	GetAllProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	GetUserRoles(ctx context.Context, userID uuid.UUID) ([]models.Role, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role models.Role) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role models.Role) error
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	profileRepo *repositories.ProfileRepository
	roleRepo    *repositories.RoleRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo *repositories.ProfileRepository,
	roleRepo *repositories.RoleRepository,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		logger:      logger,
	}
}

func (s *profileServiceImpl) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

func (s *profileServiceImpl) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update; nil fields are left unchanged.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.OrgUnitID != nil {
		profile.OrgUnitID = req.OrgUnitID
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByID(ctx, id)
}

func (s *profileServiceImpl) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("profileID", id.String()).Msg("Profile deleted")
	return nil
}

func (s *profileServiceImpl) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]models.Role, error) {
	return s.roleRepo.ListByUser(ctx, userID)
}

// AssignRole grants a role after confirming the user exists.
func (s *profileServiceImpl) AssignRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	if _, err := s.profileRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.roleRepo.Assign(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info().
		Str("userID", userID.String()).
		Str("role", string(role)).
		Msg("Role assigned")

	return nil
}

func (s *profileServiceImpl) RevokeRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	return s.roleRepo.Revoke(ctx, userID, role)
}
