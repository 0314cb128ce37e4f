package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chirpnet/backend/src/lib"
	"github.com/chirpnet/backend/src/models"
	"github.com/chirpnet/backend/src/services"
)

// GetFeedPosts returns posts for the authenticated user's home feed: their own
// posts plus posts from everyone they follow, newest first
func GetFeedPosts(c *fiber.Ctx) error {
	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	feed, err := services.New(lib.DB).HomeFeed(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(feed)
}

// CreatePost creates a new post for the authenticated user, optionally with an attachment
func CreatePost(c *fiber.Ctx) error {
	type CreatePostRequest struct {
		Content string `json:"content"`
		Image   string `json:"image,omitempty"`
		Video   string `json:"video,omitempty"`
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	// Los bytes los guarda el media resolver externo; el core solo persiste
	// la referencia opaca
	var imageRef, videoRef string
	if req.Image != "" {
		imageRef = lib.NewMediaReference("post_images")
	}
	if req.Video != "" {
		videoRef = lib.NewMediaReference("post_videos")
	}

	post, err := services.New(lib.DB).CreatePost(user.ID, services.CreatePostInput{
		Content: req.Content,
		Image:   imageRef,
		Video:   videoRef,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost deletes a post by ID if the authenticated user is the author
func DeletePost(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	// Obtener usuario autenticado
	user := c.Locals("user").(models.User)

	if err := services.New(lib.DB).DeletePost(user.ID, postID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// GetPostByID returns a post by its ID, including populated author, likes and comments
func GetPostByID(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	post, err := services.New(lib.DB).GetPost(postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// CreateComment adds a new comment to a post by its ID
func CreateComment(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	type CreateCommentRequest struct {
		Content string `json:"content"`
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	comment, err := services.New(lib.DB).AddComment(user.ID, postID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// LikePost toggles a like/unlike for a post by the authenticated user
func LikePost(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	result, err := services.New(lib.DB).ToggleLike(user.ID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// RepostPost toggles a repost of a post by the authenticated user
func RepostPost(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	// Obtener usuario autenticado del middleware
	user := c.Locals("user").(models.User)

	result, err := services.New(lib.DB).ToggleRepost(user.ID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func parsePostID(c *fiber.Ctx) (uint, error) {
	postID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(postID), nil
}
