package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/lib"
	"github.com/chirpnet/backend/src/models"
	"github.com/chirpnet/backend/src/services"
)

// GetUserNotifications returns all notifications for the authenticated user,
// newest first, and marks the unread ones as read in the same transaction
func GetUserNotifications(c *fiber.Ctx) error {
	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	notifications, err := services.New(lib.DB).ListNotifications(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// GetUnreadCount returns the badge counter without mutating read state
func GetUnreadCount(c *fiber.Ctx) error {
	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	count, err := services.New(lib.DB).UnreadCount(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"unread": count,
	})
}
