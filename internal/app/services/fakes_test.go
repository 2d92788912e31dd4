package services

import (
	"context"
	"sort"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They keep the
// same contracts as the SQL implementations: sentinel errors for
// missing rows, newest-first ordering, idempotent follow creation.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(username string) *models.User {
	u := &models.User{ID: r.nextID, Username: username, Email: username + "@example.com"}
	r.users[u.ID] = u
	r.nextID++
	return u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetProfile(ctx context.Context, username string, viewerID int64) (*models.Profile, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &models.Profile{User: *u}, nil
}

type fakeFollowRepo struct {
	pairs map[[2]int64]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{pairs: map[[2]int64]bool{}}
}

func (r *fakeFollowRepo) Create(ctx context.Context, userID, authorID int64) error {
	r.pairs[[2]int64{userID, authorID}] = true
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, userID, authorID int64) error {
	key := [2]int64{userID, authorID}
	if !r.pairs[key] {
		return apperrors.ErrFollowNotFound
	}
	delete(r.pairs, key)
	return nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	return r.pairs[[2]int64{userID, authorID}], nil
}

type fakePostRepo struct {
	users    *fakeUserRepo
	follows  *fakeFollowRepo
	comments *fakeCommentRepo
	posts    map[int64]*models.Post
	nextID   int64
}

func newFakePostRepo(users *fakeUserRepo, follows *fakeFollowRepo) *fakePostRepo {
	return &fakePostRepo{users: users, follows: follows, posts: map[int64]*models.Post{}, nextID: 1}
}

func (r *fakePostRepo) add(authorID int64, text string) *models.Post {
	p := &models.Post{ID: r.nextID, Text: text, AuthorID: authorID}
	if author, ok := r.users.users[authorID]; ok {
		cp := *author
		p.Author = &cp
	}
	r.posts[p.ID] = p
	r.nextID++
	return p
}

// newestFirst returns the selected posts ordered by descending id,
// standing in for the pub_date ordering of the SQL layer.
func (r *fakePostRepo) newestFirst(match func(*models.Post) bool) []models.Post {
	var out []models.Post
	for _, p := range r.posts {
		if match(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func window(posts []models.Post, offset, limit int) []models.Post {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (r *fakePostRepo) CountFeed(ctx context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) ListFeed(ctx context.Context, offset, limit int) ([]models.Post, error) {
	return window(r.newestFirst(func(*models.Post) bool { return true }), offset, limit), nil
}

func (r *fakePostRepo) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	return int64(len(r.newestFirst(func(p *models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}))), nil
}

func (r *fakePostRepo) ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]models.Post, error) {
	return window(r.newestFirst(func(p *models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), offset, limit), nil
}

func (r *fakePostRepo) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return int64(len(r.newestFirst(func(p *models.Post) bool { return p.AuthorID == authorID }))), nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]models.Post, error) {
	return window(r.newestFirst(func(p *models.Post) bool { return p.AuthorID == authorID }), offset, limit), nil
}

func (r *fakePostRepo) followedAuthors(userID int64) map[int64]bool {
	out := map[int64]bool{}
	for pair := range r.follows.pairs {
		if pair[0] == userID {
			out[pair[1]] = true
		}
	}
	return out
}

func (r *fakePostRepo) CountFollowFeed(ctx context.Context, userID int64) (int64, error) {
	authors := r.followedAuthors(userID)
	return int64(len(r.newestFirst(func(p *models.Post) bool { return authors[p.AuthorID] }))), nil
}

func (r *fakePostRepo) ListFollowFeed(ctx context.Context, userID int64, offset, limit int) ([]models.Post, error) {
	authors := r.followedAuthors(userID)
	return window(r.newestFirst(func(p *models.Post) bool { return authors[p.AuthorID] }), offset, limit), nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	post.ID = r.nextID
	r.nextID++
	cp := *post
	if author, ok := r.users.users[post.AuthorID]; ok {
		a := *author
		cp.Author = &a
	}
	r.posts[post.ID] = &cp
	return post.ID, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	stored, ok := r.posts[post.ID]
	if !ok {
		return apperrors.ErrPostNotFound
	}
	stored.Text = post.Text
	stored.GroupID = post.GroupID
	stored.Image = post.Image
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(r.posts, id)
	// Mirror the ON DELETE CASCADE on comments.post_id.
	if r.comments != nil {
		delete(r.comments.comments, id)
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[int64][]models.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64][]models.Comment{}, nextID: 1}
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	list := r.comments[postID]
	out := make([]models.Comment, len(list))
	// Newest first.
	for i, c := range list {
		out[len(list)-1-i] = c
	}
	return out, nil
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.PostID] = append(r.comments[comment.PostID], *comment)
	return comment.ID, nil
}

type fakeGroupRepo struct {
	groups map[int64]*models.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[int64]*models.Group{}}
}

func (r *fakeGroupRepo) add(id int64, title, slug string) *models.Group {
	g := &models.Group{ID: id, Title: title, Slug: slug}
	r.groups[id] = g
	return g
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGroupRepo) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	for _, g := range r.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, apperrors.ErrGroupNotFound
}

func (r *fakeGroupRepo) List(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	for _, g := range r.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *models.Group) (int64, error) {
	group.ID = int64(len(r.groups) + 1)
	cp := *group
	r.groups[group.ID] = &cp
	return group.ID, nil
}
