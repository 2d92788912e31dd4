package apperrors

import "errors"

// Resource errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrFollowNotFound = errors.New("follow not found")
)

// Authorization errors
var (
	// ErrNotPostAuthor is returned when an actor tries to mutate a post
	// they do not own. Controllers turn it into a redirect to the post
	// page instead of an error page.
	ErrNotPostAuthor = errors.New("actor is not the post author")
)

// Account errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
)
