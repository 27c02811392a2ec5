package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository      *ProfileRepository
	RoleRepository         *RoleRepository
	TokenRepository        *TokenRepository
	RequestRepository      *RequestRepository
	ApprovalStepRepository *ApprovalStepRepository
	TrainingRepository     *TrainingRepository
	SessionRepository      *SessionRepository
	CohortRepository       *CohortRepository
	CommunityRepository    *CommunityRepository
	AssetRepository        *AssetRepository
	WorkOrderRepository    *WorkOrderRepository
	OrgUnitRepository      *OrgUnitRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:      NewProfileRepository(db),
		RoleRepository:         NewRoleRepository(db),
		TokenRepository:        NewTokenRepository(db),
		RequestRepository:      NewRequestRepository(db),
		ApprovalStepRepository: NewApprovalStepRepository(db),
		TrainingRepository:     NewTrainingRepository(db),
		SessionRepository:      NewSessionRepository(db),
		CohortRepository:       NewCohortRepository(db),
		CommunityRepository:    NewCommunityRepository(db),
		AssetRepository:        NewAssetRepository(db),
		WorkOrderRepository:    NewWorkOrderRepository(db),
		OrgUnitRepository:      NewOrgUnitRepository(db),
	}
}
