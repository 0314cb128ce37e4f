package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/controllers"
	"github.com/chirpnet/backend/src/middleware"
)

// NotificationRoutes sets up notification routes for listing and the unread badge counter
func NotificationRoutes(app *fiber.App) {
	notification := app.Group("/api/v1/notifications", middleware.ProtectRoute)

	notification.Get("/", controllers.GetUserNotifications)
	notification.Get("/unread-count", controllers.GetUnreadCount)
}
