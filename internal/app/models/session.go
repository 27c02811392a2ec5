package models

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusOngoing   = "ongoing"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// TrainingSession defines a scheduled occurrence of a training, based on the
// 'training_sessions' table. TrainingTitle is joined on list queries.
type TrainingSession struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TrainingID      uuid.UUID  `json:"trainingId" db:"training_id"`
	StartDate       *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate         *time.Time `json:"endDate,omitempty" db:"end_date"`
	Location        *string    `json:"location,omitempty" db:"location"`
	Instructor      *string    `json:"instructor,omitempty" db:"instructor"`
	MaxParticipants *int       `json:"maxParticipants,omitempty" db:"max_participants"`
	Status          string     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	TrainingTitle   *string    `json:"trainingTitle,omitempty"`
}
