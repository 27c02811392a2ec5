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

// WorkOrderRepository handles database operations for IT work orders
type WorkOrderRepository struct {
	db *pgxpool.Pool
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *pgxpool.Pool) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

const workOrderSelect = `
	SELECT w.id, w.description, w.asset_id, w.user_id, w.status, w.created_at, w.updated_at,
	       p.first_name || ' ' || p.last_name AS requester_name
	FROM work_orders w
	JOIN profiles p ON p.id = w.user_id
`

func scanWorkOrder(row pgx.Row) (*models.WorkOrder, error) {
	var w models.WorkOrder
	err := row.Scan(
		&w.ID, &w.Description, &w.AssetID, &w.UserID, &w.Status,
		&w.CreatedAt, &w.UpdatedAt, &w.RequesterName,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetAll lists work orders with their requester name, newest first.
func (r *WorkOrderRepository) GetAll(ctx context.Context) ([]models.WorkOrder, error) {
	rows, err := r.db.Query(ctx, workOrderSelect+` ORDER BY w.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing work orders: %w", err)
	}
	defer rows.Close()

	var orders []models.WorkOrder
	for rows.Next() {
		w, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning work order: %w", err)
		}
		orders = append(orders, *w)
	}

	return orders, rows.Err()
}

// GetByID retrieves a work order.
func (r *WorkOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkOrder, error) {
	order, err := scanWorkOrder(r.db.QueryRow(ctx, workOrderSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("error retrieving work order: %w", err)
	}

	return order, nil
}

// Create inserts a work order. A dangling asset_id maps to ErrAssetNotFound.
func (r *WorkOrderRepository) Create(ctx context.Context, order *models.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, description, asset_id, user_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		order.ID, order.Description, order.AssetID, order.UserID, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAssetNotFound
		}
		return fmt.Errorf("error creating work order: %w", err)
	}

	return nil
}

// Update modifies a work order.
func (r *WorkOrderRepository) Update(ctx context.Context, order *models.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET description = $1, asset_id = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, order.Description, order.AssetID, order.Status, order.ID)
	if err != nil {
		return fmt.Errorf("error updating work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWorkOrderNotFound
	}

	return nil
}

// Delete removes a work order.
func (r *WorkOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWorkOrderNotFound
	}

	return nil
}
