package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
	"github.com/formadesk/formadesk/internal/pkg/dberrors"
)

// OrgUnitRepository handles database operations for organizational units
type OrgUnitRepository struct {
	db *pgxpool.Pool
}

// NewOrgUnitRepository creates a new organizational unit repository
func NewOrgUnitRepository(db *pgxpool.Pool) *OrgUnitRepository {
	return &OrgUnitRepository{db: db}
}

const orgUnitColumns = `id, name, code, description, created_at, updated_at`

func scanOrgUnit(row pgx.Row) (*models.OrgUnit, error) {
	var u models.OrgUnit
	err := row.Scan(&u.ID, &u.Name, &u.Code, &u.Description, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll lists organizational units by name.
func (r *OrgUnitRepository) GetAll(ctx context.Context) ([]models.OrgUnit, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orgUnitColumns+` FROM organizational_units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing organizational units: %w", err)
	}
	defer rows.Close()

	var units []models.OrgUnit
	for rows.Next() {
		u, err := scanOrgUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning organizational unit: %w", err)
		}
		units = append(units, *u)
	}

	return units, rows.Err()
}

// GetByID retrieves an organizational unit.
func (r *OrgUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OrgUnit, error) {
	unit, err := scanOrgUnit(r.db.QueryRow(ctx, `SELECT `+orgUnitColumns+` FROM organizational_units WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrgUnitNotFound
		}
		return nil, fmt.Errorf("error retrieving organizational unit: %w", err)
	}

	return unit, nil
}

// Create inserts an organizational unit. Codes are unique.
func (r *OrgUnitRepository) Create(ctx context.Context, unit *models.OrgUnit) error {
	query := `
		INSERT INTO organizational_units (id, name, code, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, unit.ID, unit.Name, unit.Code, unit.Description).
		Scan(&unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating organizational unit: %w", err)
	}

	return nil
}

// Update modifies an organizational unit.
func (r *OrgUnitRepository) Update(ctx context.Context, unit *models.OrgUnit) error {
	query := `
		UPDATE organizational_units
		SET name = $1, code = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, unit.Name, unit.Code, unit.Description, unit.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error updating organizational unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrgUnitNotFound
	}

	return nil
}

// Delete removes an organizational unit.
func (r *OrgUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM organizational_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting organizational unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrgUnitNotFound
	}

	return nil
}
