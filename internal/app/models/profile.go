package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile defines the user identity model based on the 'profiles' table.
// Authentication credentials live on the same row; the password hash is
// never serialized.
type Profile struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	OrgUnitID *uuid.UUID `json:"orgUnitId,omitempty" db:"org_unit_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used in lists and timelines.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
