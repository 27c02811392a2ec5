package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
	"github.com/formadesk/formadesk/internal/pkg/logger"
)

// TrainingFilter narrows the catalog listing. Zero values mean "no filter".
type TrainingFilter struct {
	Category string
	Status   string
	Search   string
}

// TrainingRepository handles database operations for the training catalog
type TrainingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *pgxpool.Pool) *TrainingRepository {
	return &TrainingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var trainingColumns = []string{
	"id", "title", "description", "category", "provider",
	"cost", "duration_hours", "status", "created_by", "created_at", "updated_at",
}

func scanTraining(row pgx.Row) (*models.Training, error) {
	var t models.Training
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Provider,
		&t.Cost, &t.DurationHours, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll lists catalog entries matching the filter, newest first.
func (r *TrainingRepository) GetAll(ctx context.Context, filter TrainingFilter) ([]models.Training, error) {
	builder := r.sb.Select(trainingColumns...).
		From("trainings").
		OrderBy("created_at DESC")

	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building training list SQL")
		return nil, fmt.Errorf("failed to build training list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing trainings: %w", err)
	}
	defer rows.Close()

	var trainings []models.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning training: %w", err)
		}
		trainings = append(trainings, *t)
	}

	return trainings, rows.Err()
}

// GetByID retrieves a catalog entry.
func (r *TrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	sql, args, err := r.sb.Select(trainingColumns...).
		From("trainings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build training query: %w", err)
	}

	training, err := scanTraining(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("error retrieving training: %w", err)
	}

	return training, nil
}

// Create inserts a catalog entry.
func (r *TrainingRepository) Create(ctx context.Context, training *models.Training) error {
	if training.ID == uuid.Nil {
		training.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("trainings").
		Columns("id", "title", "description", "category", "provider", "cost", "duration_hours", "status", "created_by").
		Values(training.ID, training.Title, training.Description, training.Category,
			training.Provider, training.Cost, training.DurationHours, training.Status, training.CreatedBy).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create training query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&training.CreatedAt, &training.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating training: %w", err)
	}

	return nil
}

// Update modifies a catalog entry.
func (r *TrainingRepository) Update(ctx context.Context, training *models.Training) error {
	sql, args, err := r.sb.Update("trainings").
		Set("title", training.Title).
		Set("description", training.Description).
		Set("category", training.Category).
		Set("provider", training.Provider).
		Set("cost", training.Cost).
		Set("duration_hours", training.DurationHours).
		Set("status", training.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": training.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update training query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTrainingNotFound
	}

	return nil
}

// Delete removes a catalog entry.
func (r *TrainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("trainings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete training query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTrainingNotFound
	}

	return nil
}
