package auth

import (
	"github.com/formadesk/formadesk/internal/app/models"
)

// approverRoles are the roles allowed to decide on a request inline.
var approverRoles = map[models.Role]struct{}{
	models.RoleManager:    {},
	models.RoleHRAdmin:    {},
	models.RoleSuperAdmin: {},
}

// IsApprover reports whether the role set contains at least one role with
// approval authority.
func IsApprover(roles []models.Role) bool {
	for _, role := range roles {
		if _, ok := approverRoles[role]; ok {
			return true
		}
	}
	return false
}

// CanQuickDecide reports whether a viewer with the given roles may
// approve, reject or delegate the request inline. Both conditions are
// required: an approver role and a request currently under review.
func CanQuickDecide(roles []models.Role, status models.RequestStatus) bool {
	return IsApprover(roles) && status == models.StatusInReview
}
