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
)

// CommunityRepository handles database operations for practice communities
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var communityColumns = []string{"id", "name", "description", "is_private", "created_by", "created_at", "updated_at"}

func scanCommunity(row pgx.Row) (*models.Community, error) {
	var c models.Community
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsPrivate, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll lists communities by name. When search is non-empty the name and
// description are matched case-insensitively.
func (r *CommunityRepository) GetAll(ctx context.Context, search string) ([]models.Community, error) {
	builder := r.sb.Select(communityColumns...).
		From("communities").
		OrderBy("name ASC")

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build community list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing communities: %w", err)
	}
	defer rows.Close()

	var communities []models.Community
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning community: %w", err)
		}
		communities = append(communities, *c)
	}

	return communities, rows.Err()
}

// GetByID retrieves a community.
func (r *CommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Community, error) {
	sql, args, err := r.sb.Select(communityColumns...).
		From("communities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build community query: %w", err)
	}

	community, err := scanCommunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error retrieving community: %w", err)
	}

	return community, nil
}

// Create inserts a community.
func (r *CommunityRepository) Create(ctx context.Context, community *models.Community) error {
	if community.ID == uuid.Nil {
		community.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("communities").
		Columns("id", "name", "description", "is_private", "created_by").
		Values(community.ID, community.Name, community.Description, community.IsPrivate, community.CreatedBy).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create community query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&community.CreatedAt, &community.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating community: %w", err)
	}

	return nil
}

// Update modifies a community.
func (r *CommunityRepository) Update(ctx context.Context, community *models.Community) error {
	sql, args, err := r.sb.Update("communities").
		Set("name", community.Name).
		Set("description", community.Description).
		Set("is_private", community.IsPrivate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": community.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update community query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating community: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}

// Delete removes a community.
func (r *CommunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("communities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete community query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting community: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}
