package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/db"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
)

// RequestRepository handles database operations for training requests
type RequestRepository struct {
	db *pgxpool.Pool
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestSelectColumns = `
	r.id, r.user_id, r.training_id, r.session_id, r.status, r.justification,
	r.submitted_at, r.created_at, r.updated_at,
	t.title, t.cost, t.category,
	p.first_name, p.last_name, p.email
`

func scanRequest(row pgx.Row) (*models.Request, error) {
	var r models.Request
	var training models.TrainingSummary
	var requester models.ProfileSummary

	err := row.Scan(
		&r.ID, &r.UserID, &r.TrainingID, &r.SessionID, &r.Status, &r.Justification,
		&r.SubmittedAt, &r.CreatedAt, &r.UpdatedAt,
		&training.Title, &training.Cost, &training.Category,
		&requester.FirstName, &requester.LastName, &requester.Email,
	)
	if err != nil {
		return nil, err
	}

	r.Training = &training
	r.Requester = &requester
	return &r, nil
}

// GetAll retrieves every request with its joined training and requester
// snapshots, ordered newest first. Filtering happens in memory afterwards,
// so the canonical ordering is established here.
func (r *RequestRepository) GetAll(ctx context.Context) ([]models.Request, error) {
	query := `
		SELECT ` + requestSelectColumns + `
		FROM requests r
		JOIN trainings t ON t.id = r.training_id
		JOIN profiles p ON p.id = r.user_id
		ORDER BY r.created_at DESC
	`

	rows, err := db.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	defer rows.Close()

	var requests []models.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		requests = append(requests, *req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.Request{}
	}
	return requests, nil
}

// GetByID retrieves a single request with its approval steps.
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	query := `
		SELECT ` + requestSelectColumns + `
		FROM requests r
		JOIN trainings t ON t.id = r.training_id
		JOIN profiles p ON p.id = r.user_id
		WHERE r.id = $1
	`

	req, err := scanRequest(db.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving request: %w", err)
	}

	steps, err := r.listSteps(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApprovalSteps = steps

	return req, nil
}

func (r *RequestRepository) listSteps(ctx context.Context, requestID uuid.UUID) ([]models.ApprovalStep, error) {
	query := `
		SELECT id, request_id, step_order, status, approver_id, approved_at, comments, created_at
		FROM approval_steps
		WHERE request_id = $1
		ORDER BY step_order
	`

	rows, err := db.Conn(ctx, r.db).Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("error listing approval steps: %w", err)
	}
	defer rows.Close()

	var steps []models.ApprovalStep
	for rows.Next() {
		var step models.ApprovalStep
		if err := rows.Scan(
			&step.ID, &step.RequestID, &step.StepOrder, &step.Status,
			&step.ApproverID, &step.ApprovedAt, &step.Comments, &step.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning approval step: %w", err)
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}

// Create inserts a new request. The status is expected to be draft.
func (r *RequestRepository) Create(ctx context.Context, req *models.Request) error {
	query := `
		INSERT INTO requests (id, user_id, training_id, session_id, status, justification)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	err := db.Conn(ctx, r.db).QueryRow(ctx, query,
		req.ID, req.UserID, req.TrainingID, req.SessionID, req.Status, req.Justification,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	return nil
}

// UpdateStatus moves a request to a new status. When submittedAt is non-nil
// the submission timestamp is stamped in the same write.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, submittedAt *time.Time) error {
	var tag pgconn.CommandTag
	var err error

	if submittedAt != nil {
		tag, err = db.Conn(ctx, r.db).Exec(ctx, `
			UPDATE requests SET status = $1, submitted_at = $2, updated_at = NOW()
			WHERE id = $3
		`, status, *submittedAt, id)
	} else {
		tag, err = db.Conn(ctx, r.db).Exec(ctx, `
			UPDATE requests SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, status, id)
	}
	if err != nil {
		return fmt.Errorf("error updating request status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}
