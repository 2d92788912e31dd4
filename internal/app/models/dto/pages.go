// Package dto defines the per-view page contexts handed to the
// templates. Every view has one struct with fixed fields; nothing is
// merged in dynamically at render time.
package dto

import (
	"github.com/artemn/yatube/internal/app/forms"
	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/helpers"
)

// IndexPage is the context for the main feed.
type IndexPage struct {
	Posts []models.Post `json:"posts"`
	Page  helpers.Page  `json:"page"`

	// Viewer is attached at render time and never cached.
	Viewer *models.User `json:"-"`
}

// GroupPage is the context for one group's feed.
type GroupPage struct {
	Group models.Group  `json:"group"`
	Posts []models.Post `json:"posts"`
	Page  helpers.Page  `json:"page"`

	Viewer *models.User `json:"-"`
}

// ProfilePage is the context for one author's feed, including the
// follow-graph counters and whether the viewer follows the author.
type ProfilePage struct {
	Profile models.Profile `json:"profile"`
	Posts   []models.Post  `json:"posts"`
	Page    helpers.Page   `json:"page"`

	Viewer *models.User `json:"-"`
}

// FollowPage is the context for the personalized follow feed.
type FollowPage struct {
	Posts []models.Post `json:"posts"`
	Page  helpers.Page  `json:"page"`

	Viewer *models.User `json:"-"`
}

// PostPage is the context for the post detail view: the post, its
// comments (newest first), the author profile and a comment form.
type PostPage struct {
	Profile  models.Profile
	Post     models.Post
	Comments []models.Comment
	Form     *forms.CommentForm

	Viewer *models.User
}

// PostFormPage is the context for the post create/edit form. Post is
// nil when creating.
type PostFormPage struct {
	Form   *forms.PostForm
	Groups []models.Group
	Post   *models.Post

	Viewer *models.User
}

// LoginPage is the context for the login form. Next is the return
// path restored after a successful login.
type LoginPage struct {
	Form *forms.LoginForm
	Next string

	Viewer *models.User
}

// SignupPage is the context for the registration form.
type SignupPage struct {
	Form *forms.SignupForm

	Viewer *models.User
}

// ErrorPage is the context for the 404/500 pages.
type ErrorPage struct {
	Path string

	Viewer *models.User
}
