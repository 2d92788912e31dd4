package forms

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CommentForm carries the comment submission on the post detail page.
type CommentForm struct {
	Text string `form:"text" validate:"required"`

	Errors Errors `form:"-"`
}

// BindCommentForm reads the comment submission off the request.
func BindCommentForm(c *gin.Context) *CommentForm {
	return &CommentForm{
		Text:   strings.TrimSpace(c.PostForm("text")),
		Errors: Errors{},
	}
}

// Validate checks the form and fills Errors.
func (f *CommentForm) Validate() bool {
	if err := validate.Struct(f); err != nil {
		f.Errors["text"] = "Enter the comment text"
	}
	return len(f.Errors) == 0
}
