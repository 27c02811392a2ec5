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

// SessionRepository handles database operations for training sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionSelect = `
	SELECT s.id, s.training_id, s.start_date, s.end_date, s.location,
	       s.instructor, s.max_participants, s.status, s.created_at, s.updated_at,
	       t.title
	FROM training_sessions s
	JOIN trainings t ON t.id = s.training_id
`

func scanSession(row pgx.Row) (*models.TrainingSession, error) {
	var s models.TrainingSession
	err := row.Scan(
		&s.ID, &s.TrainingID, &s.StartDate, &s.EndDate, &s.Location,
		&s.Instructor, &s.MaxParticipants, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.TrainingTitle,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll lists sessions with their training title, soonest start first.
func (r *SessionRepository) GetAll(ctx context.Context) ([]models.TrainingSession, error) {
	rows, err := r.db.Query(ctx, sessionSelect+` ORDER BY s.start_date NULLS LAST, s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.TrainingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// ListByTraining lists the sessions of one training.
func (r *SessionRepository) ListByTraining(ctx context.Context, trainingID uuid.UUID) ([]models.TrainingSession, error) {
	rows, err := r.db.Query(ctx, sessionSelect+` WHERE s.training_id = $1 ORDER BY s.start_date NULLS LAST`, trainingID)
	if err != nil {
		return nil, fmt.Errorf("error listing training sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.TrainingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// GetByID retrieves a single session.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TrainingSession, error) {
	session, err := scanSession(r.db.QueryRow(ctx, sessionSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	return session, nil
}

// Create inserts a session. A dangling training_id maps to ErrTrainingNotFound.
func (r *SessionRepository) Create(ctx context.Context, session *models.TrainingSession) error {
	query := `
		INSERT INTO training_sessions (id, training_id, start_date, end_date, location, instructor, max_participants, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		session.ID, session.TrainingID, session.StartDate, session.EndDate,
		session.Location, session.Instructor, session.MaxParticipants, session.Status,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTrainingNotFound
		}
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// Update modifies a session.
func (r *SessionRepository) Update(ctx context.Context, session *models.TrainingSession) error {
	query := `
		UPDATE training_sessions
		SET start_date = $1, end_date = $2, location = $3, instructor = $4,
		    max_participants = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		session.StartDate, session.EndDate, session.Location, session.Instructor,
		session.MaxParticipants, session.Status, session.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM training_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}
