package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/controllers"
	"github.com/chirpnet/backend/src/middleware"
)

// PostRoutes sets up post-related routes for the feed, creation, deletion, details, comments, likes, and reposts
func PostRoutes(app *fiber.App) {
	post := app.Group("/api/v1/posts", middleware.ProtectRoute)

	post.Get("/", controllers.GetFeedPosts)
	post.Post("/create", controllers.CreatePost)
	post.Delete("/delete/:id", controllers.DeletePost)
	post.Get("/:id", controllers.GetPostByID)
	post.Post("/:id/comment", controllers.CreateComment)
	post.Post("/:id/like", controllers.LikePost)
	post.Post("/:id/repost", controllers.RepostPost)
}
