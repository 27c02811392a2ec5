package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateSessionRequest is the payload to schedule a training session.
type CreateSessionRequest struct {
	TrainingID      uuid.UUID  `json:"trainingId" binding:"required"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Instructor      *string    `json:"instructor,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty" binding:"omitempty,gt=0"`
	Status          string     `json:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
}

// UpdateSessionRequest modifies a session. Nil fields are left unchanged.
type UpdateSessionRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Instructor      *string    `json:"instructor,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty" binding:"omitempty,gt=0"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
}
