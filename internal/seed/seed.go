package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/auth"
	"github.com/artemn/yatube/internal/pkg/logger"
)

// CreateDefaultData creates the starter groups and a demo author for
// development environments. Existing records are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	groupRepo := repositories.NewGroupRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	logger.Info().Msg("Checking/Creating default data (groups, demo author)...")
	var finalErr error

	groups := []models.Group{
		{Title: "Cats", Slug: "cats", Description: "Posts about cats"},
		{Title: "Travel", Slug: "travel", Description: "Trip reports and photos"},
		{Title: "Books", Slug: "books", Description: "What we are reading"},
	}
	for i := range groups {
		g := &groups[i]
		if _, err := groupRepo.GetBySlug(ctx, g.Slug); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrGroupNotFound) {
			logger.Error().Err(err).Str("slug", g.Slug).Msg("Error checking default group")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := groupRepo.Create(ctx, g); err != nil {
			logger.Error().Err(err).Str("slug", g.Slug).Msg("Error creating default group")
			finalErr = errors.Join(finalErr, err)
		}
	}

	const demoUsername = "leo"
	if _, err := userRepo.GetByUsername(ctx, demoUsername); err == nil {
		return finalErr
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		logger.Error().Err(err).Msg("Error checking demo author")
		return errors.Join(finalErr, err)
	}

	hash, err := auth.HashPassword("changeme-dev-only")
	if err != nil {
		return errors.Join(finalErr, err)
	}
	demo := &models.User{
		Username:  demoUsername,
		Email:     "leo@example.com",
		Password:  hash,
		FirstName: "Leo",
		LastName:  "Tolstoy",
	}
	if _, err := userRepo.Create(ctx, demo); err != nil &&
		!errors.Is(err, apperrors.ErrUsernameTaken) && !errors.Is(err, apperrors.ErrEmailTaken) {
		logger.Error().Err(err).Msg("Error creating demo author")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
