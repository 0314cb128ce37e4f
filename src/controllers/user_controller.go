package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/lib"
	"github.com/chirpnet/backend/src/models"
	"github.com/chirpnet/backend/src/services"
)

// GetProfile returns a user's public profile with their posts
func GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	svc := services.New(lib.DB)

	profile, err := svc.UserByUsername(username)
	if err != nil {
		return respondError(c, err)
	}

	posts, err := svc.UserPosts(username)
	if err != nil {
		return respondError(c, err)
	}

	profile.Password = ""

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  profile,
		"posts": posts,
	})
}

// UpdateProfile edits the authenticated user's own profile
func UpdateProfile(c *fiber.Ctx) error {
	type UpdateProfileRequest struct {
		Username       *string `json:"username,omitempty"`
		Bio            *string `json:"bio,omitempty"`
		ProfilePicture *string `json:"profile_picture,omitempty"`
		CoverPicture   *string `json:"cover_picture,omitempty"`
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	// Las imágenes llegan como payloads al media resolver; aquí solo se
	// persiste la referencia generada
	input := services.UpdateProfileInput{
		Username: req.Username,
		Bio:      req.Bio,
	}
	if req.ProfilePicture != nil {
		ref := lib.NewMediaReference("profile_pics")
		input.ProfilePicture = &ref
	}
	if req.CoverPicture != nil {
		ref := lib.NewMediaReference("covers")
		input.CoverPicture = &ref
	}

	updated, err := services.New(lib.DB).UpdateProfile(user.ID, input)
	if err != nil {
		return respondError(c, err)
	}

	updated.Password = ""

	return c.Status(fiber.StatusOK).JSON(updated)
}

// SearchUsers finds users by username substring, excluding the requester
func SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	results, err := services.New(lib.DB).SearchUsers(user.ID, query)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// FollowUser toggles following the user identified by username
func FollowUser(c *fiber.Ctx) error {
	username := c.Params("username")

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	svc := services.New(lib.DB)

	target, err := svc.UserByUsername(username)
	if err != nil {
		return respondError(c, err)
	}

	result, err := svc.ToggleFollow(user.ID, target.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetFollowers lists the users following the named user
func GetFollowers(c *fiber.Ctx) error {
	followers, err := services.New(lib.DB).Followers(c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(followers)
}

// GetFollowing lists the users the named user follows
func GetFollowing(c *fiber.Ctx) error {
	following, err := services.New(lib.DB).Following(c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(following)
}
