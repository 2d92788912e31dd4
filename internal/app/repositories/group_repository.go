package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/dberrors"
)

// GroupRepository handles database operations for groups
type GroupRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	// List returns all groups ordered by title, for the post form's
	// group selector.
	List(ctx context.Context) ([]models.Group, error)
	Create(ctx context.Context, group *models.Group) (int64, error)
}

type groupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE id = $1`
	return r.scanGroup(r.db.QueryRow(ctx, query, id))
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE slug = $1`
	return r.scanGroup(r.db.QueryRow(ctx, query, slug))
}

func (r *groupRepository) scanGroup(row pgx.Row) (*models.Group, error) {
	var group models.Group
	err := row.Scan(&group.ID, &group.Title, &group.Slug, &group.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error getting group: %w", err)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	query := `SELECT id, title, slug, description FROM groups ORDER BY title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Title, &group.Slug, &group.Description); err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) (int64, error) {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, group.Title, group.Slug, group.Description).Scan(&group.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, fmt.Errorf("group title or slug already exists: %w", err)
		}
		return 0, fmt.Errorf("error creating group: %w", err)
	}

	return group.ID, nil
}
