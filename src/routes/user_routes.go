package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/controllers"
	"github.com/chirpnet/backend/src/middleware"
)

// UserRoutes sets up user-related routes for profiles, search, and the follow graph
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute)

	user.Get("/search", controllers.SearchUsers)
	user.Put("/profile", controllers.UpdateProfile)
	user.Get("/:username", controllers.GetProfile)
	user.Post("/:username/follow", controllers.FollowUser)
	user.Get("/:username/followers", controllers.GetFollowers)
	user.Get("/:username/following", controllers.GetFollowing)
}
