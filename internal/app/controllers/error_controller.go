package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/pkg/logger"
)

// ErrorController owns the two terminal pages. Both are passive
// renderers.
type ErrorController struct{}

// NewErrorController creates a new ErrorController
func NewErrorController() *ErrorController {
	return &ErrorController{}
}

// NotFound renders the 404 page for unmatched routes.
func (ctrl *ErrorController) NotFound(c *gin.Context) {
	renderNotFound(c)
}

// Recovery renders the 500 page after a panic has been recovered.
func (ctrl *ErrorController) Recovery(c *gin.Context, recovered interface{}) {
	logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
	renderServerError(c)
}
