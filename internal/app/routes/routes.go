package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artemn/yatube/internal/app/controllers"
	"github.com/artemn/yatube/internal/middleware"
)

// SetupRouter configures all application routes. The username-keyed
// routes are registered last so static prefixes (/new/, /follow/,
// /group/, /auth/) win over the :username parameter.
func SetupRouter(
	router *gin.Engine,
	feedController *controllers.FeedController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	followController *controllers.FollowController,
	authController *controllers.AuthController,
	errorController *controllers.ErrorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(authMiddleware.CurrentUser())

	router.NoRoute(errorController.NotFound)

	// Public feeds
	router.GET("/", feedController.Index)
	router.GET("/group/:slug/", feedController.GroupPosts)

	// Account surface
	auth := router.Group("/auth")
	{
		auth.GET("/login/", authController.LoginForm)
		auth.POST("/login/", authController.Login)
		auth.GET("/signup/", authController.SignupForm)
		auth.POST("/signup/", authController.Signup)
		auth.GET("/logout/", authController.Logout)
	}

	// Guarded routes
	guarded := router.Group("")
	guarded.Use(authMiddleware.LoginRequired())
	{
		guarded.GET("/new/", postController.New)
		guarded.POST("/new/", postController.Create)
		guarded.GET("/follow/", feedController.FollowIndex)

		guarded.GET("/:username/follow/", followController.Follow)
		guarded.GET("/:username/unfollow/", followController.Unfollow)
		guarded.GET("/:username/:post_id/edit/", postController.Edit)
		guarded.POST("/:username/:post_id/edit/", postController.Update)
		guarded.GET("/:username/:post_id/delete/", postController.Delete)
		guarded.POST("/:username/:post_id/comment/", commentController.Add)
	}

	// Public username-keyed pages
	router.GET("/:username/", feedController.Profile)
	router.GET("/:username/:post_id/", postController.Detail)
}
