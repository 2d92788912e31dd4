package forms

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SignupForm carries the account registration submission.
type SignupForm struct {
	Username  string `form:"username" validate:"required,alphanum,max=150"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=8"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`

	Errors Errors `form:"-"`
}

// BindSignupForm reads the signup submission off the request.
func BindSignupForm(c *gin.Context) *SignupForm {
	return &SignupForm{
		Username:  strings.TrimSpace(c.PostForm("username")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Password:  c.PostForm("password"),
		FirstName: strings.TrimSpace(c.PostForm("first_name")),
		LastName:  strings.TrimSpace(c.PostForm("last_name")),
		Errors:    Errors{},
	}
}

// Validate checks the form and fills Errors.
func (f *SignupForm) Validate() bool {
	err := validate.Struct(f)
	if err == nil {
		return true
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			switch fe.Field() {
			case "Username":
				f.Errors["username"] = "Enter a username of letters and digits"
			case "Email":
				f.Errors["email"] = "Enter a valid email address"
			case "Password":
				f.Errors["password"] = "Enter a password of at least 8 characters"
			case "FirstName":
				f.Errors["first_name"] = "First name is too long"
			case "LastName":
				f.Errors["last_name"] = "Last name is too long"
			}
		}
	}
	return len(f.Errors) == 0
}

// LoginForm carries the login submission.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`

	Errors Errors `form:"-"`
}

// BindLoginForm reads the login submission off the request.
func BindLoginForm(c *gin.Context) *LoginForm {
	return &LoginForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
		Errors:   Errors{},
	}
}

// Validate checks the form and fills Errors.
func (f *LoginForm) Validate() bool {
	if f.Username == "" {
		f.Errors["username"] = "Enter your username"
	}
	if f.Password == "" {
		f.Errors["password"] = "Enter your password"
	}
	return len(f.Errors) == 0
}
