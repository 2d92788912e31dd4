package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/forms"
	"github.com/artemn/yatube/internal/app/models/dto"
	"github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/auth"
)

// AuthController implements login, signup and logout. The rest of the
// application only depends on the session cookie these handlers set
// and clear.
type AuthController struct {
	authService  services.AuthService
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookieMaxAge int, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// LoginForm renders the login page.
// GET /auth/login/
func (ctrl *AuthController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, tmplLogin, dto.LoginPage{
		Form: &forms.LoginForm{Errors: forms.Errors{}},
		Next: safeNext(c, "/"),
	})
}

// Login verifies the credentials, sets the session cookie and sends
// the client to the next path restored from the login redirect.
// POST /auth/login/
func (ctrl *AuthController) Login(c *gin.Context) {
	form := forms.BindLoginForm(c)
	next := safeNext(c, "/")

	if !form.Validate() {
		c.HTML(http.StatusOK, tmplLogin, dto.LoginPage{Form: form, Next: next})
		return
	}

	token, _, err := ctrl.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			form.Errors["username"] = "Wrong username or password"
			c.HTML(http.StatusOK, tmplLogin, dto.LoginPage{Form: form, Next: next})
			return
		}
		handleError(c, err)
		return
	}

	c.SetCookie(auth.SessionCookie, token, ctrl.cookieMaxAge, "/", "", ctrl.cookieSecure, true)
	c.Redirect(http.StatusFound, next)
}

// SignupForm renders the registration page.
// GET /auth/signup/
func (ctrl *AuthController) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, tmplSignup, dto.SignupPage{
		Form: &forms.SignupForm{Errors: forms.Errors{}},
	})
}

// Signup registers an account and sends the client to the login page.
// POST /auth/signup/
func (ctrl *AuthController) Signup(c *gin.Context) {
	form := forms.BindSignupForm(c)
	if !form.Validate() {
		c.HTML(http.StatusOK, tmplSignup, dto.SignupPage{Form: form})
		return
	}

	_, err := ctrl.authService.SignUp(c.Request.Context(), services.SignupInput{
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUsernameTaken):
			form.Errors["username"] = "This username is already taken"
		case errors.Is(err, apperrors.ErrEmailTaken):
			form.Errors["email"] = "This email is already registered"
		default:
			handleError(c, err)
			return
		}
		c.HTML(http.StatusOK, tmplSignup, dto.SignupPage{Form: form})
		return
	}

	c.Redirect(http.StatusFound, "/auth/login/")
}

// Logout clears the session cookie.
// GET /auth/logout/
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", ctrl.cookieSecure, true)
	c.Redirect(http.StatusFound, "/")
}
