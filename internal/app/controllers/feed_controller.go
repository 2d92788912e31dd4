package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/middleware"
	"github.com/artemn/yatube/internal/pkg/helpers"
)

// FeedController renders the four post feeds.
type FeedController struct {
	feedService services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// Index renders the main feed: all posts, newest first, page size 10.
// GET /
func (ctrl *FeedController) Index(c *gin.Context) {
	page := helpers.ParsePage(c.Query("page"))

	result, err := ctrl.feedService.Index(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}

	result.Viewer = middleware.Viewer(c)
	c.HTML(http.StatusOK, tmplIndex, result)
}

// GroupPosts renders one group's feed, addressed by slug.
// GET /group/:slug/
func (ctrl *FeedController) GroupPosts(c *gin.Context) {
	page := helpers.ParsePage(c.Query("page"))

	result, err := ctrl.feedService.Group(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		handleError(c, err)
		return
	}

	result.Viewer = middleware.Viewer(c)
	c.HTML(http.StatusOK, tmplGroup, result)
}

// Profile renders one author's feed with follower/following counters.
// GET /:username/
func (ctrl *FeedController) Profile(c *gin.Context) {
	page := helpers.ParsePage(c.Query("page"))

	result, err := ctrl.feedService.Profile(c.Request.Context(), c.Param("username"), middleware.ActorID(c), page)
	if err != nil {
		handleError(c, err)
		return
	}

	result.Viewer = middleware.Viewer(c)
	c.HTML(http.StatusOK, tmplProfile, result)
}

// FollowIndex renders posts by the authors the viewer follows.
// GET /follow/ (login required)
func (ctrl *FeedController) FollowIndex(c *gin.Context) {
	page := helpers.ParsePage(c.Query("page"))

	result, err := ctrl.feedService.FollowFeed(c.Request.Context(), middleware.ActorID(c), page)
	if err != nil {
		handleError(c, err)
		return
	}

	result.Viewer = middleware.Viewer(c)
	c.HTML(http.StatusOK, tmplFollow, result)
}
