package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/middleware"
)

const followFeedURL = "/follow/"

// FollowController handles the follow/unfollow actions.
type FollowController struct {
	followService services.FollowService
}

// NewFollowController creates a new FollowController
func NewFollowController(followService services.FollowService) *FollowController {
	return &FollowController{followService: followService}
}

// Follow subscribes the actor to the named author. Following yourself
// or someone you already follow changes nothing; either way the
// client is redirected to next or the follow feed.
// GET /:username/follow/ (login required)
func (ctrl *FollowController) Follow(c *gin.Context) {
	err := ctrl.followService.Follow(c.Request.Context(), middleware.ActorID(c), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(c, followFeedURL))
}

// Unfollow removes the actor's subscription to the named author; a
// subscription that does not exist is a 404.
// GET /:username/unfollow/ (login required)
func (ctrl *FollowController) Unfollow(c *gin.Context) {
	err := ctrl.followService.Unfollow(c.Request.Context(), middleware.ActorID(c), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(c, followFeedURL))
}
