package models

import (
	"time"

	"github.com/google/uuid"
)

// Asset types and statuses
const (
	AssetTypeHardware = "hardware"
	AssetTypeSoftware = "software"

	AssetStatusAvailable   = "available"
	AssetStatusAssigned    = "assigned"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

// ComputerAsset defines an IT asset based on the 'computer_assets' table.
type ComputerAsset struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Type            string    `json:"type" db:"type"`
	Version         *string   `json:"version,omitempty" db:"version"`
	Status          string    `json:"status" db:"status"`
	LicenseRequired bool      `json:"licenseRequired" db:"license_required"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Work order statuses
const (
	WorkOrderStatusPending    = "pending"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusDone       = "done"
	WorkOrderStatusCancelled  = "cancelled"
)

// WorkOrder defines an IT work order based on the 'work_orders' table.
// RequesterName is joined on list queries.
type WorkOrder struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Description   string     `json:"description" db:"description"`
	AssetID       *uuid.UUID `json:"assetId,omitempty" db:"asset_id"`
	UserID        uuid.UUID  `json:"userId" db:"user_id"`
	Status        string     `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	RequesterName *string    `json:"requesterName,omitempty"`
}
