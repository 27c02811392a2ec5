package models

import (
	"time"

	"github.com/google/uuid"
)

// Training statuses
const (
	TrainingStatusActive   = "active"
	TrainingStatusArchived = "archived"
)

// Training defines a catalog entry based on the 'trainings' table.
type Training struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Category      *string    `json:"category,omitempty" db:"category"`
	Provider      *string    `json:"provider,omitempty" db:"provider"`
	Cost          *float64   `json:"cost,omitempty" db:"cost"`
	DurationHours *int       `json:"durationHours,omitempty" db:"duration_hours"`
	Status        string     `json:"status" db:"status"`
	CreatedBy     *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
