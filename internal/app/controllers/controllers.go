// Package controllers contains the gin handlers. Handlers bind and
// validate input, call one service, and answer with a rendered
// template or a redirect; error mapping is shared in handleError.
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/models/dto"
	"github.com/artemn/yatube/internal/middleware"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/logger"
)

// handleError maps service errors onto the error pages: missing
// resources render 404, everything else logs and renders 500.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFollowNotFound):
		renderNotFound(c)
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		renderServerError(c)
	}
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, tmplNotFound, dto.ErrorPage{
		Path:   c.Request.URL.Path,
		Viewer: middleware.Viewer(c),
	})
	c.Abort()
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, tmplServerError, dto.ErrorPage{
		Path:   c.Request.URL.Path,
		Viewer: middleware.Viewer(c),
	})
	c.Abort()
}

// safeNext returns the caller-specified return path when it is a
// site-local path, else the fallback. Keeps redirects on this origin.
// The path may arrive as a query parameter or as a hidden form field.
func safeNext(c *gin.Context, fallback string) string {
	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}
