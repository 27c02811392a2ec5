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

// AssetRepository handles database operations for computer assets
type AssetRepository struct {
	db *pgxpool.Pool
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, name, type, version, status, license_required, notes, created_at, updated_at`

func scanAsset(row pgx.Row) (*models.ComputerAsset, error) {
	var a models.ComputerAsset
	err := row.Scan(
		&a.ID, &a.Name, &a.Type, &a.Version, &a.Status,
		&a.LicenseRequired, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll lists assets by name.
func (r *AssetRepository) GetAll(ctx context.Context) ([]models.ComputerAsset, error) {
	rows, err := r.db.Query(ctx, `SELECT `+assetColumns+` FROM computer_assets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}
	defer rows.Close()

	var assets []models.ComputerAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning asset: %w", err)
		}
		assets = append(assets, *a)
	}

	return assets, rows.Err()
}

// GetByID retrieves an asset.
func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ComputerAsset, error) {
	asset, err := scanAsset(r.db.QueryRow(ctx, `SELECT `+assetColumns+` FROM computer_assets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("error retrieving asset: %w", err)
	}

	return asset, nil
}

// Create inserts an asset.
func (r *AssetRepository) Create(ctx context.Context, asset *models.ComputerAsset) error {
	query := `
		INSERT INTO computer_assets (id, name, type, version, status, license_required, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		asset.ID, asset.Name, asset.Type, asset.Version, asset.Status,
		asset.LicenseRequired, asset.Notes,
	).Scan(&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating asset: %w", err)
	}

	return nil
}

// Update modifies an asset.
func (r *AssetRepository) Update(ctx context.Context, asset *models.ComputerAsset) error {
	query := `
		UPDATE computer_assets
		SET name = $1, type = $2, version = $3, status = $4, license_required = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		asset.Name, asset.Type, asset.Version, asset.Status,
		asset.LicenseRequired, asset.Notes, asset.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// Delete removes an asset.
func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM computer_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}
