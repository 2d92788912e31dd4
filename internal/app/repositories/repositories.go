// Package repositories contains the data access layer: one interface
// per entity backed by raw SQL over a pgx pool. Uniqueness and
// foreign-key rules live in the schema, not here.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    UserRepository
	GroupRepository   GroupRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	FollowRepository  FollowRepository
}

// NewRepositories initializes all repositories against the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		GroupRepository:   NewGroupRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
		FollowRepository:  NewFollowRepository(db),
	}
}
