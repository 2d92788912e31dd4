package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/forms"
	"github.com/artemn/yatube/internal/app/models/dto"
	"github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/middleware"
)

// CommentController handles comment submission on posts.
type CommentController struct {
	commentService services.CommentService
	postService    services.PostService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService, postService services.PostService) *CommentController {
	return &CommentController{commentService: commentService, postService: postService}
}

// Add creates a comment on the addressed post and returns to its
// detail page. An invalid submission redisplays the detail page with
// the form errors and creates nothing.
// POST /:username/:post_id/comment/ (login required)
func (ctrl *CommentController) Add(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		renderNotFound(c)
		return
	}

	username := c.Param("username")
	form := forms.BindCommentForm(c)
	if !form.Validate() {
		post, comments, profile, err := ctrl.postService.Detail(c.Request.Context(), username, id, middleware.ActorID(c))
		if err != nil {
			handleError(c, err)
			return
		}
		c.HTML(http.StatusOK, tmplPost, dto.PostPage{
			Profile:  *profile,
			Post:     *post,
			Comments: comments,
			Form:     form,
			Viewer:   middleware.Viewer(c),
		})
		return
	}

	_, err := ctrl.commentService.Add(c.Request.Context(), middleware.ActorID(c), username, id, form.Text)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, postURL(username, id))
}
