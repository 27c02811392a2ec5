package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCohortRequest is the payload to create a cohort.
type CreateCohortRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UpdateCohortRequest modifies a cohort. Nil fields are left unchanged.
type UpdateCohortRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// CreateCommunityRequest is the payload to create a community.
type CreateCommunityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	IsPrivate   bool    `json:"isPrivate"`
}

// UpdateCommunityRequest modifies a community. Nil fields are left unchanged.
type UpdateCommunityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPrivate   *bool   `json:"isPrivate,omitempty"`
}

// CreateAssetRequest is the payload to register an IT asset.
type CreateAssetRequest struct {
	Name            string  `json:"name" binding:"required"`
	Type            string  `json:"type" binding:"required,oneof=hardware software"`
	Version         *string `json:"version,omitempty"`
	Status          string  `json:"status" binding:"omitempty,oneof=available assigned maintenance retired"`
	LicenseRequired bool    `json:"licenseRequired"`
	Notes           *string `json:"notes,omitempty"`
}

// UpdateAssetRequest modifies an asset. Nil fields are left unchanged.
type UpdateAssetRequest struct {
	Name            *string `json:"name,omitempty"`
	Type            *string `json:"type,omitempty" binding:"omitempty,oneof=hardware software"`
	Version         *string `json:"version,omitempty"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=available assigned maintenance retired"`
	LicenseRequired *bool   `json:"licenseRequired,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateWorkOrderRequest is the payload to open a work order.
type CreateWorkOrderRequest struct {
	Description string     `json:"description" binding:"required"`
	AssetID     *uuid.UUID `json:"assetId,omitempty"`
	Status      string     `json:"status" binding:"omitempty,oneof=pending in_progress done cancelled"`
}

// UpdateWorkOrderStatusRequest moves a work order to a new status.
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress done cancelled"`
}

// CreateOrgUnitRequest is the payload to create an organizational unit.
type CreateOrgUnitRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateOrgUnitRequest modifies an organizational unit. Nil fields are left
// unchanged.
type UpdateOrgUnitRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateProfileRequest carries the mutable profile fields; nil means
// unchanged.
type UpdateProfileRequest struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	OrgUnitID *uuid.UUID `json:"orgUnitId,omitempty"`
}

// AssignRoleRequest grants a role to a user.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager hr_admin super_admin"`
}

// ProfileResponse is the public view of a profile, used for delegate
// candidate lists among others.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}
