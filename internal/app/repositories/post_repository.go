package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/apperrors"
)

// PostRepository handles database operations for posts. All listing
// methods eagerly load the author and the group (single joined query)
// and annotate each row with its comment count; ordering is always
// pub_date descending.
type PostRepository interface {
	CountFeed(ctx context.Context) (int64, error)
	ListFeed(ctx context.Context, offset, limit int) ([]models.Post, error)

	CountByGroup(ctx context.Context, groupID int64) (int64, error)
	ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]models.Post, error)

	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]models.Post, error)

	// The follow feed covers posts by every author userID follows.
	CountFollowFeed(ctx context.Context, userID int64) (int64, error)
	ListFollowFeed(ctx context.Context, userID int64, offset, limit int) ([]models.Post, error)

	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	// Delete removes the post; its comments cascade at the storage
	// layer.
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) PostRepository {
	return &postRepository{db: db}
}

// postSelect is the shared projection for post listings: author and
// group joined in, comment count annotated per row.
const postSelect = `
	SELECT p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image,
		u.username, u.first_name, u.last_name,
		g.title, g.slug,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

func (r *postRepository) CountFeed(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts`)
}

func (r *postRepository) ListFeed(ctx context.Context, offset, limit int) ([]models.Post, error) {
	query := postSelect + `
		ORDER BY p.pub_date DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, limit, offset)
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]models.Post, error) {
	query := postSelect + `
		WHERE p.group_id = $1
		ORDER BY p.pub_date DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, groupID, limit, offset)
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]models.Post, error) {
	query := postSelect + `
		WHERE p.author_id = $1
		ORDER BY p.pub_date DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, authorID, limit, offset)
}

func (r *postRepository) CountFollowFeed(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM posts
		WHERE author_id IN (SELECT author_id FROM follows WHERE user_id = $1)
	`
	return r.count(ctx, query, userID)
}

func (r *postRepository) ListFollowFeed(ctx context.Context, userID int64, offset, limit int) ([]models.Post, error) {
	query := postSelect + `
		WHERE p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)
		ORDER BY p.pub_date DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (text, author_id, group_id, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pub_date
	`

	err := r.db.QueryRow(ctx, query,
		post.Text, post.AuthorID, post.GroupID, post.Image,
	).Scan(&post.ID, &post.PubDate)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return post.ID, nil
}

// Update mutates text, group and image; pub_date and author are
// immutable.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET text = $1, group_id = $2, image = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, post.Text, post.GroupID, post.Image, post.ID)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}
	return total, nil
}

func (r *postRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var (
		post       models.Post
		author     models.User
		groupTitle *string
		groupSlug  *string
	)

	err := row.Scan(
		&post.ID,
		&post.Text,
		&post.PubDate,
		&post.AuthorID,
		&post.GroupID,
		&post.Image,
		&author.Username,
		&author.FirstName,
		&author.LastName,
		&groupTitle,
		&groupSlug,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	author.ID = post.AuthorID
	post.Author = &author
	if post.GroupID != nil && groupTitle != nil && groupSlug != nil {
		post.Group = &models.Group{ID: *post.GroupID, Title: *groupTitle, Slug: *groupSlug}
	}

	return &post, nil
}
