package forms

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/imaging"
)

// PostForm carries the new/edit post submission: required text, an
// optional group and an optional image upload.
type PostForm struct {
	Text     string                `form:"text" validate:"required"`
	GroupRaw string                `form:"group"` // raw select value, "" for no group
	Image    *multipart.FileHeader `form:"-"`

	GroupID *int64 `form:"-"` // resolved during validation
	Errors  Errors `form:"-"`
}

// BindPostForm reads the multipart submission off the request. Binding
// never fails validation by itself; Validate decides that.
func BindPostForm(c *gin.Context) *PostForm {
	form := &PostForm{Errors: Errors{}}
	form.Text = strings.TrimSpace(c.PostForm("text"))
	form.GroupRaw = strings.TrimSpace(c.PostForm("group"))
	if file, err := c.FormFile("image"); err == nil {
		form.Image = file
	}
	return form
}

// Validate checks the form and fills Errors. The group, when supplied,
// must resolve to an existing group; the image, when supplied, must be
// a decodable payload. No mutation happens on a failed validation.
func (f *PostForm) Validate(ctx context.Context, groups repositories.GroupRepository) bool {
	if err := validate.Struct(f); err != nil {
		f.Errors["text"] = "Enter the post text"
	}

	if f.GroupRaw != "" {
		id, err := strconv.ParseInt(f.GroupRaw, 10, 64)
		if err != nil {
			f.Errors["group"] = "Select an existing group"
		} else {
			group, err := groups.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, apperrors.ErrGroupNotFound) {
					f.Errors["group"] = "Select an existing group"
				} else {
					f.Errors["group"] = "Group could not be checked, try again"
				}
			} else {
				f.GroupID = &group.ID
			}
		}
	}

	if f.Image != nil {
		if err := checkImage(f.Image); err != nil {
			f.Errors["image"] = "Upload a valid image file"
		}
	}

	return len(f.Errors) == 0
}

func checkImage(header *multipart.FileHeader) error {
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = imaging.Detect(file)
	return err
}
