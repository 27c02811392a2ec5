package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formadesk/formadesk/internal/app/models"
)

func TestIsApprover(t *testing.T) {
	assert.True(t, IsApprover([]models.Role{models.RoleManager}))
	assert.True(t, IsApprover([]models.Role{models.RoleHRAdmin}))
	assert.True(t, IsApprover([]models.Role{models.RoleSuperAdmin}))
	assert.True(t, IsApprover([]models.Role{models.RoleEmployee, models.RoleManager}),
		"one approver role among several is enough")

	assert.False(t, IsApprover(nil))
	assert.False(t, IsApprover([]models.Role{}))
	assert.False(t, IsApprover([]models.Role{models.RoleEmployee}))
}

func TestCanQuickDecide(t *testing.T) {
	cases := []struct {
		name   string
		roles  []models.Role
		status models.RequestStatus
		want   bool
	}{
		{"manager on request under review", []models.Role{models.RoleManager}, models.StatusInReview, true},
		{"hr admin on request under review", []models.Role{models.RoleHRAdmin}, models.StatusInReview, true},
		{"super admin on request under review", []models.Role{models.RoleSuperAdmin}, models.StatusInReview, true},
		{"employee on request under review", []models.Role{models.RoleEmployee}, models.StatusInReview, false},
		{"no roles at all", nil, models.StatusInReview, false},
		{"manager on draft", []models.Role{models.RoleManager}, models.StatusDraft, false},
		{"manager on submitted", []models.Role{models.RoleManager}, models.StatusSubmitted, false},
		{"manager on approved", []models.Role{models.RoleManager}, models.StatusApproved, false},
		{"manager on rejected", []models.Role{models.RoleManager}, models.StatusRejected, false},
		{"manager on completed", []models.Role{models.RoleManager}, models.StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanQuickDecide(tc.roles, tc.status))
		})
	}
}
