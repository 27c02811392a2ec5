package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
	"github.com/formadesk/formadesk/internal/pkg/dberrors"
)

// RoleRepository handles database operations for user role assignments
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// ListByUser returns the roles held by a user.
func (r *RoleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Role, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("error scanning role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// Assign grants a role to a user. Assigning a role twice maps to
// ErrRoleAlreadySet, a missing user to ErrUserNotFound.
func (r *RoleRepository) Assign(ctx context.Context, userID uuid.UUID, role models.Role) error {
	query := `INSERT INTO user_roles (id, user_id, role) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, role)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err) {
			return apperrors.ErrRoleAlreadySet
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error assigning role: %w", err)
	}

	return nil
}

// Revoke removes a role from a user.
func (r *RoleRepository) Revoke(ctx context.Context, userID uuid.UUID, role models.Role) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, role)
	if err != nil {
		return fmt.Errorf("error revoking role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
