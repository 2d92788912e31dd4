package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/forms"
	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/app/models/dto"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/middleware"
	"github.com/artemn/yatube/internal/pkg/apperrors"
)

// PostController implements the post lifecycle pages: detail, create,
// edit and delete.
type PostController struct {
	postService services.PostService
	groupRepo   repositories.GroupRepository
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, groupRepo repositories.GroupRepository) *PostController {
	return &PostController{
		postService: postService,
		groupRepo:   groupRepo,
	}
}

// postID parses the :post_id route parameter; a malformed id behaves
// like a missing post.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func postURL(username string, id int64) string {
	return "/" + username + "/" + strconv.FormatInt(id, 10) + "/"
}

// Detail renders a single post with its comments and an empty comment
// form.
// GET /:username/:post_id/
func (ctrl *PostController) Detail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	username := c.Param("username")
	post, comments, profile, err := ctrl.postService.Detail(c.Request.Context(), username, id, middleware.ActorID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, tmplPost, dto.PostPage{
		Profile:  *profile,
		Post:     *post,
		Comments: comments,
		Form:     &forms.CommentForm{Errors: forms.Errors{}},
		Viewer:   middleware.Viewer(c),
	})
}

// New renders the empty post form.
// GET /new/ (login required)
func (ctrl *PostController) New(c *gin.Context) {
	ctrl.renderPostForm(c, &forms.PostForm{Errors: forms.Errors{}}, nil)
}

// Create handles the new post submission: on success the post is
// persisted for the actor and the client goes back to the index; on
// validation failure the form is redisplayed with its errors.
// POST /new/ (login required)
func (ctrl *PostController) Create(c *gin.Context) {
	form := forms.BindPostForm(c)
	if !form.Validate(c.Request.Context(), ctrl.groupRepo) {
		ctrl.renderPostForm(c, form, nil)
		return
	}

	_, err := ctrl.postService.Create(c.Request.Context(), middleware.ActorID(c), services.PostInput{
		Text:    form.Text,
		GroupID: form.GroupID,
		Image:   form.Image,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Edit renders the edit form for the actor's own post. A non-author
// is silently sent to the post page instead.
// GET /:username/:post_id/edit/ (login required)
func (ctrl *PostController) Edit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	username := c.Param("username")
	post, err := ctrl.postService.GetForEdit(c.Request.Context(), middleware.ActorID(c), username, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotPostAuthor) {
			c.Redirect(http.StatusFound, postURL(username, id))
			return
		}
		handleError(c, err)
		return
	}

	form := &forms.PostForm{Text: post.Text, Errors: forms.Errors{}}
	if post.GroupID != nil {
		form.GroupRaw = strconv.FormatInt(*post.GroupID, 10)
		form.GroupID = post.GroupID
	}
	ctrl.renderPostForm(c, form, post)
}

// Update handles the edit submission with the same author guard as
// Edit.
// POST /:username/:post_id/edit/ (login required)
func (ctrl *PostController) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	username := c.Param("username")
	form := forms.BindPostForm(c)
	if !form.Validate(c.Request.Context(), ctrl.groupRepo) {
		post, err := ctrl.postService.GetForEdit(c.Request.Context(), middleware.ActorID(c), username, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotPostAuthor) {
				c.Redirect(http.StatusFound, postURL(username, id))
				return
			}
			handleError(c, err)
			return
		}
		ctrl.renderPostForm(c, form, post)
		return
	}

	_, err := ctrl.postService.Update(c.Request.Context(), middleware.ActorID(c), username, id, services.PostInput{
		Text:    form.Text,
		GroupID: form.GroupID,
		Image:   form.Image,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotPostAuthor) {
			c.Redirect(http.StatusFound, postURL(username, id))
			return
		}
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, postURL(username, id))
}

// Delete removes the actor's own post and returns to the caller's
// next path, defaulting to the actor's profile. A non-author is
// silently sent to the post page, nothing is deleted.
// GET /:username/:post_id/delete/ (login required)
func (ctrl *PostController) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	username := c.Param("username")
	err := ctrl.postService.Delete(c.Request.Context(), middleware.ActorID(c), username, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotPostAuthor) {
			c.Redirect(http.StatusFound, postURL(username, id))
			return
		}
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(c, "/"+username+"/"))
}

// renderPostForm redisplays the create/edit form; a failed validation
// still answers 200 with the errors inline.
func (ctrl *PostController) renderPostForm(c *gin.Context, form *forms.PostForm, post *models.Post) {
	groups, err := ctrl.groupRepo.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, tmplPostNew, dto.PostFormPage{
		Form:   form,
		Groups: groups,
		Post:   post,
		Viewer: middleware.Viewer(c),
	})
}
