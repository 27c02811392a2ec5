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
)

// CohortRepository handles database operations for learner cohorts
type CohortRepository struct {
	db *pgxpool.Pool
}

// NewCohortRepository creates a new cohort repository
func NewCohortRepository(db *pgxpool.Pool) *CohortRepository {
	return &CohortRepository{db: db}
}

const cohortColumns = `id, name, description, start_date, end_date, created_at, updated_at`

func scanCohort(row pgx.Row) (*models.Cohort, error) {
	var c models.Cohort
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll lists cohorts by name.
func (r *CohortRepository) GetAll(ctx context.Context) ([]models.Cohort, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cohortColumns+` FROM cohorts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []models.Cohort
	for rows.Next() {
		c, err := scanCohort(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning cohort: %w", err)
		}
		cohorts = append(cohorts, *c)
	}

	return cohorts, rows.Err()
}

// GetByID retrieves a cohort.
func (r *CohortRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Cohort, error) {
	cohort, err := scanCohort(r.db.QueryRow(ctx, `SELECT `+cohortColumns+` FROM cohorts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}

	return cohort, nil
}

// Create inserts a cohort.
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	query := `
		INSERT INTO cohorts (id, name, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if cohort.ID == uuid.Nil {
		cohort.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		cohort.ID, cohort.Name, cohort.Description, cohort.StartDate, cohort.EndDate,
	).Scan(&cohort.CreatedAt, &cohort.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating cohort: %w", err)
	}

	return nil
}

// Update modifies a cohort.
func (r *CohortRepository) Update(ctx context.Context, cohort *models.Cohort) error {
	query := `
		UPDATE cohorts
		SET name = $1, description = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		cohort.Name, cohort.Description, cohort.StartDate, cohort.EndDate, cohort.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating cohort: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCohortNotFound
	}

	return nil
}

// Delete removes a cohort.
func (r *CohortRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cohorts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCohortNotFound
	}

	return nil
}
