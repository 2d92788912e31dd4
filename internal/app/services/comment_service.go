package services

import (
	"context"
	"fmt"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/apperrors"
)

// CommentService implements comment submission against a post.
type CommentService interface {
	// Add creates a comment by actorID on the post addressed by
	// (username, postID). The pair must resolve, otherwise
	// ErrPostNotFound.
	Add(ctx context.Context, actorID int64, username string, postID int64, text string) (*models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) Add(ctx context.Context, actorID int64, username string, postID int64, text string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author == nil || post.Author.Username != username {
		return nil, apperrors.ErrPostNotFound
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: actorID,
	}
	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("error adding comment: %w", err)
	}

	return comment, nil
}
