package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/filestorage"
	"github.com/artemn/yatube/internal/pkg/logger"
)

const imageSubDir = "posts"

// PostInput is a validated post mutation: trimmed non-empty text, a
// resolved optional group and an optional already-validated upload.
type PostInput struct {
	Text    string
	GroupID *int64
	Image   *multipart.FileHeader
}

// PostService implements the post lifecycle. Posts are addressed by
// (author username, post id); a pair that does not match an existing
// post resolves to ErrPostNotFound. Mutations by anyone but the author
// return ErrNotPostAuthor.
type PostService interface {
	// Detail loads the post, its comments (newest first) and the
	// author profile as seen by viewerID.
	Detail(ctx context.Context, username string, postID, viewerID int64) (*models.Post, []models.Comment, *models.Profile, error)
	Create(ctx context.Context, authorID int64, input PostInput) (*models.Post, error)
	Update(ctx context.Context, actorID int64, username string, postID int64, input PostInput) (*models.Post, error)
	// Delete removes the post; its comments cascade at the storage
	// layer, the stored image is removed best-effort.
	Delete(ctx context.Context, actorID int64, username string, postID int64) error
	// GetForEdit loads the post for the edit form, applying the same
	// author checks as Update without mutating anything.
	GetForEdit(ctx context.Context, actorID int64, username string, postID int64) (*models.Post, error)
}

type postService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
	storage     *filestorage.LocalStorage
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	storage *filestorage.LocalStorage,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

// getOwned loads a post by (username, id) and verifies ownership.
func (s *postService) getOwned(ctx context.Context, actorID int64, username string, postID int64) (*models.Post, error) {
	post, err := s.loadByAuthor(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, apperrors.ErrNotPostAuthor
	}
	return post, nil
}

// loadByAuthor resolves the (username, id) pair; a post that exists
// under a different author is treated as not found.
func (s *postService) loadByAuthor(ctx context.Context, username string, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author == nil || post.Author.Username != username {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

func (s *postService) Detail(ctx context.Context, username string, postID, viewerID int64) (*models.Post, []models.Comment, *models.Profile, error) {
	post, err := s.loadByAuthor(ctx, username, postID)
	if err != nil {
		return nil, nil, nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading comments: %w", err)
	}

	profile, err := s.userRepo.GetProfile(ctx, username, viewerID)
	if err != nil {
		return nil, nil, nil, err
	}

	return post, comments, profile, nil
}

func (s *postService) Create(ctx context.Context, authorID int64, input PostInput) (*models.Post, error) {
	post := &models.Post{
		Text:     input.Text,
		AuthorID: authorID,
		GroupID:  input.GroupID,
	}

	if input.Image != nil {
		path, err := s.storage.Save(input.Image, imageSubDir)
		if err != nil {
			return nil, fmt.Errorf("error storing image: %w", err)
		}
		post.Image = &path
	}

	if _, err := s.postRepo.Create(ctx, post); err != nil {
		s.discardImage(post.Image, 0)
		return nil, err
	}

	logger.Info().Int64("postId", post.ID).Int64("authorId", authorID).Msg("Post created")
	return post, nil
}

func (s *postService) Update(ctx context.Context, actorID int64, username string, postID int64, input PostInput) (*models.Post, error) {
	post, err := s.getOwned(ctx, actorID, username, postID)
	if err != nil {
		return nil, err
	}

	oldImage := post.Image
	post.Text = input.Text
	post.GroupID = input.GroupID

	var newImage *string
	if input.Image != nil {
		path, err := s.storage.Save(input.Image, imageSubDir)
		if err != nil {
			return nil, fmt.Errorf("error storing image: %w", err)
		}
		newImage = &path
		post.Image = newImage
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		// The row kept the old image, so the replacement is an orphan.
		s.discardImage(newImage, post.ID)
		return nil, err
	}

	if newImage != nil && oldImage != nil {
		s.discardImage(oldImage, post.ID)
	}

	return post, nil
}

// discardImage removes a stored image file best-effort.
func (s *postService) discardImage(image *string, postID int64) {
	if image == nil {
		return
	}
	if err := s.storage.Delete(*image); err != nil {
		logger.Warn().Err(err).Int64("postId", postID).Str("image", *image).Msg("Failed to delete stored image")
	}
}

func (s *postService) Delete(ctx context.Context, actorID int64, username string, postID int64) error {
	post, err := s.getOwned(ctx, actorID, username, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return err
	}

	s.discardImage(post.Image, post.ID)

	logger.Info().Int64("postId", post.ID).Int64("actorId", actorID).Msg("Post deleted")
	return nil
}

func (s *postService) GetForEdit(ctx context.Context, actorID int64, username string, postID int64) (*models.Post, error) {
	return s.getOwned(ctx, actorID, username, postID)
}
