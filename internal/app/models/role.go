package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is an application role from the 'user_roles' table. A user may hold
// several roles at once.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleHRAdmin    Role = "hr_admin"
	RoleSuperAdmin Role = "super_admin"
)

// AllRoles lists every assignable role.
var AllRoles = []Role{RoleEmployee, RoleManager, RoleHRAdmin, RoleSuperAdmin}

// IsValid reports whether the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHRAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// UserRole is a single role grant.
type UserRole struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
