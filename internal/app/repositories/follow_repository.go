package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artemn/yatube/internal/pkg/apperrors"
)

// FollowRepository handles database operations for follow relations.
// The (user_id, author_id) pair is unique at the storage layer; Create
// leans on that constraint for idempotency under concurrent requests.
type FollowRepository interface {
	Create(ctx context.Context, userID, authorID int64) error
	Delete(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
}

type followRepository struct {
	db *pgxpool.Pool
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *pgxpool.Pool) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the relation. A concurrent duplicate lands on the
// unique constraint and is swallowed, repeated follows stay no-ops.
func (r *followRepository) Create(ctx context.Context, userID, authorID int64) error {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT follows_user_author_key DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, authorID); err != nil {
		return fmt.Errorf("error creating follow: %w", err)
	}
	return nil
}

// Delete removes the relation, returning ErrFollowNotFound when none
// exists.
func (r *followRepository) Delete(ctx context.Context, userID, authorID int64) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("error deleting follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFollowNotFound
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking follow: %w", err)
	}
	return exists, nil
}
