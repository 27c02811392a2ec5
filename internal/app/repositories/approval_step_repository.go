package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/db"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
)

// ApprovalStepRepository handles database operations for approval steps
type ApprovalStepRepository struct {
	db *pgxpool.Pool
}

// NewApprovalStepRepository creates a new approval step repository
func NewApprovalStepRepository(db *pgxpool.Pool) *ApprovalStepRepository {
	return &ApprovalStepRepository{db: db}
}

// ListByRequest returns the steps of a request ordered by step_order.
func (r *ApprovalStepRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.ApprovalStep, error) {
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

// Create inserts a pending step for a request.
func (r *ApprovalStepRepository) Create(ctx context.Context, step *models.ApprovalStep) error {
	query := `
		INSERT INTO approval_steps (id, request_id, step_order, status, approver_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	if step.ID == uuid.Nil {
		step.ID = uuid.New()
	}
	if step.Status == "" {
		step.Status = models.StepStatusPending
	}

	err := db.Conn(ctx, r.db).QueryRow(ctx, query,
		step.ID, step.RequestID, step.StepOrder, step.Status, step.ApproverID,
	).Scan(&step.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating approval step: %w", err)
	}

	return nil
}

// FirstPending returns the lowest-order pending step of a request, or
// ErrNoPendingStep when every step has been resolved.
func (r *ApprovalStepRepository) FirstPending(ctx context.Context, requestID uuid.UUID) (*models.ApprovalStep, error) {
	query := `
		SELECT id, request_id, step_order, status, approver_id, approved_at, comments, created_at
		FROM approval_steps
		WHERE request_id = $1 AND status = $2
		ORDER BY step_order
		LIMIT 1
	`

	var step models.ApprovalStep
	err := db.Conn(ctx, r.db).QueryRow(ctx, query, requestID, models.StepStatusPending).Scan(
		&step.ID, &step.RequestID, &step.StepOrder, &step.Status,
		&step.ApproverID, &step.ApprovedAt, &step.Comments, &step.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoPendingStep
		}
		return nil, fmt.Errorf("error retrieving pending step: %w", err)
	}

	return &step, nil
}

// Resolve marks a step approved or rejected, recording who decided, when,
// and an optional comment.
func (r *ApprovalStepRepository) Resolve(ctx context.Context, stepID uuid.UUID, status string, approverID uuid.UUID, comment *string, decidedAt time.Time) error {
	query := `
		UPDATE approval_steps
		SET status = $1, approver_id = $2, approved_at = $3, comments = $4
		WHERE id = $5
	`

	tag, err := db.Conn(ctx, r.db).Exec(ctx, query, status, approverID, decidedAt, comment, stepID)
	if err != nil {
		return fmt.Errorf("error resolving approval step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoPendingStep
	}

	return nil
}

// Reassign hands a pending step to a different approver.
func (r *ApprovalStepRepository) Reassign(ctx context.Context, stepID uuid.UUID, approverID uuid.UUID) error {
	query := `
		UPDATE approval_steps
		SET approver_id = $1
		WHERE id = $2 AND status = $3
	`

	tag, err := db.Conn(ctx, r.db).Exec(ctx, query, approverID, stepID, models.StepStatusPending)
	if err != nil {
		return fmt.Errorf("error reassigning approval step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoPendingStep
	}

	return nil
}
