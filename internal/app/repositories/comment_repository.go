package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artemn/yatube/internal/app/models"
)

// CommentRepository handles database operations for comments
type CommentRepository interface {
	// ListByPost returns all comments on a post, newest first, with
	// their authors eagerly loaded.
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (int64, error)
}

type commentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.created, c.post_id, c.author_id,
			u.username, u.first_name, u.last_name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created DESC, c.id DESC
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var (
			comment models.Comment
			author  models.User
		)
		err := rows.Scan(
			&comment.ID,
			&comment.Text,
			&comment.Created,
			&comment.PostID,
			&comment.AuthorID,
			&author.Username,
			&author.FirstName,
			&author.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		author.ID = comment.AuthorID
		comment.Author = &author
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (text, post_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created
	`

	err := r.db.QueryRow(ctx, query,
		comment.Text, comment.PostID, comment.AuthorID,
	).Scan(&comment.ID, &comment.Created)
	if err != nil {
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	return comment.ID, nil
}
