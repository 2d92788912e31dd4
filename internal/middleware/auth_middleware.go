package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/auth"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// LoginURL is where unauthenticated requests to guarded routes are
// sent, with the original path restored via the next parameter.
const LoginURL = "/auth/login/"

// AuthMiddleware resolves the session cookie into the acting user.
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// CurrentUser resolves the viewer from the session cookie, if any, and
// stores the identity on the context. Anonymous requests pass through
// untouched; so do requests with a stale or invalid cookie.
func (m *AuthMiddleware) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err == nil && token != "" {
			if claims, err := m.sessions.Validate(token); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// LoginRequired guards a route: anonymous requests are redirected to
// the login page carrying the original path in next. Expects
// CurrentUser to have run.
func (m *AuthMiddleware) LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxUserID); !ok {
			next := url.Values{"next": {c.Request.URL.Path}}
			c.Redirect(http.StatusFound, LoginURL+"?"+next.Encode())
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorID returns the authenticated user's id, or 0 for anonymous.
func ActorID(c *gin.Context) int64 {
	if id, ok := c.Get(ctxUserID); ok {
		if userID, ok := id.(int64); ok {
			return userID
		}
	}
	return 0
}

// Viewer returns the authenticated user for template rendering, or
// nil for anonymous requests.
func Viewer(c *gin.Context) *models.User {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return nil
	}
	userID, ok := id.(int64)
	if !ok {
		return nil
	}
	username, _ := c.Get(ctxUsername)
	name, _ := username.(string)
	return &models.User{ID: userID, Username: name}
}
