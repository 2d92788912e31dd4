package services

import (
	"context"

	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/logger"
)

// FollowService implements the follow graph actions. Follow is
// idempotent: self-follow and duplicate follow create nothing and
// return no error. The storage-layer unique constraint on the pair
// remains the authoritative guard; the checks here are a courtesy.
type FollowService interface {
	Follow(ctx context.Context, actorID int64, username string) error
	// Unfollow removes the relation; a missing relation is
	// ErrFollowNotFound.
	Unfollow(ctx context.Context, actorID int64, username string) error
}

type followService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) FollowService {
	return &followService{followRepo: followRepo, userRepo: userRepo}
}

func (s *followService) Follow(ctx context.Context, actorID int64, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if author.ID == actorID {
		return nil
	}

	exists, err := s.followRepo.Exists(ctx, actorID, author.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.followRepo.Create(ctx, actorID, author.ID); err != nil {
		return err
	}

	logger.Debug().Int64("userId", actorID).Int64("authorId", author.ID).Msg("Follow created")
	return nil
}

func (s *followService) Unfollow(ctx context.Context, actorID int64, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, actorID, author.ID)
}
