package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/lib"
	"github.com/chirpnet/backend/src/models"
)

// ProtectRoute is a middleware that checks for a valid JWT token, authenticates the user, and attaches user data to the request context
func ProtectRoute(c *fiber.Ctx) error {

	// Obtener token del header Authorization
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No autorizado - Token no proporcionado",
		})
	}

	// Extraer el token (formato esperado: "Bearer <token>")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No autorizado - Formato de token inválido",
		})
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No autorizado - Token inválido",
		})
	}

	// Las claims numéricas llegan como float64
	userIDClaim, ok := decoded["userId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No autorizado - Token inválido",
		})
	}

	var user models.User
	if err := lib.DB.First(&user, uint(userIDClaim)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Usuario no encontrado",
		})
	}

	user.Password = ""

	c.Locals("user", user)

	return c.Next()
}
