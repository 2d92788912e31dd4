package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/artemn/yatube/internal/app/models/dto"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/cache"
	"github.com/artemn/yatube/internal/pkg/helpers"
)

// FeedService assembles the paginated post feeds. The public feeds
// (index, group) go through the short-TTL fragment cache; the profile
// and follow feeds depend on the viewer and always hit the store.
type FeedService interface {
	Index(ctx context.Context, page int) (*dto.IndexPage, error)
	Group(ctx context.Context, slug string, page int) (*dto.GroupPage, error)
	Profile(ctx context.Context, username string, viewerID int64, page int) (*dto.ProfilePage, error)
	FollowFeed(ctx context.Context, viewerID int64, page int) (*dto.FollowPage, error)
}

type feedService struct {
	postRepo  repositories.PostRepository
	groupRepo repositories.GroupRepository
	userRepo  repositories.UserRepository
	pageCache *cache.PageCache
}

// NewFeedService creates a new FeedService. pageCache may be nil,
// disabling fragment caching.
func NewFeedService(
	postRepo repositories.PostRepository,
	groupRepo repositories.GroupRepository,
	userRepo repositories.UserRepository,
	pageCache *cache.PageCache,
) FeedService {
	return &feedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		pageCache: pageCache,
	}
}

// Index returns all posts, newest first.
func (s *feedService) Index(ctx context.Context, page int) (*dto.IndexPage, error) {
	total, err := s.postRepo.CountFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting feed: %w", err)
	}

	// Key on the clamped page number so out-of-range requests share
	// the last page's entry instead of minting keys per raw value.
	pg, offset, limit := helpers.Paginate(page, total, helpers.DefaultPageSize)
	key := cache.Key("feed:index", "page", strconv.Itoa(pg.Number))
	var cached dto.IndexPage
	if s.pageCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	posts, err := s.postRepo.ListFeed(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing feed: %w", err)
	}

	result := &dto.IndexPage{Posts: posts, Page: pg}
	s.pageCache.Set(ctx, key, result)
	return result, nil
}

// Group returns the posts filed under the group identified by slug.
func (s *feedService) Group(ctx context.Context, slug string, page int) (*dto.GroupPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("error counting group feed: %w", err)
	}

	pg, offset, limit := helpers.Paginate(page, total, helpers.DefaultPageSize)
	key := cache.Key("feed:group", slug, "page", strconv.Itoa(pg.Number))
	var cached dto.GroupPage
	if s.pageCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	posts, err := s.postRepo.ListByGroup(ctx, group.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing group feed: %w", err)
	}

	result := &dto.GroupPage{Group: *group, Posts: posts, Page: pg}
	s.pageCache.Set(ctx, key, result)
	return result, nil
}

// Profile returns the posts by one author plus the author's
// follow-graph counters as seen by viewerID (0 for anonymous).
func (s *feedService) Profile(ctx context.Context, username string, viewerID int64, page int) (*dto.ProfilePage, error) {
	profile, err := s.userRepo.GetProfile(ctx, username, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("error counting profile feed: %w", err)
	}

	pg, offset, limit := helpers.Paginate(page, total, helpers.DefaultPageSize)
	posts, err := s.postRepo.ListByAuthor(ctx, profile.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing profile feed: %w", err)
	}

	return &dto.ProfilePage{Profile: *profile, Posts: posts, Page: pg}, nil
}

// FollowFeed returns posts authored by anyone viewerID follows.
func (s *feedService) FollowFeed(ctx context.Context, viewerID int64, page int) (*dto.FollowPage, error) {
	total, err := s.postRepo.CountFollowFeed(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error counting follow feed: %w", err)
	}

	pg, offset, limit := helpers.Paginate(page, total, helpers.DefaultPageSize)
	posts, err := s.postRepo.ListFollowFeed(ctx, viewerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing follow feed: %w", err)
	}

	return &dto.FollowPage{Posts: posts, Page: pg}, nil
}
