package server

import (
	"errors"

	"commons/internal/models"
	"commons/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is the payload for editing a post's content.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// GetPosts returns the visible post listing
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c)

	posts, err := s.postService.ListPosts(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// GetPost returns a single post by ID
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// CreatePost creates a new post authored by the authenticated user
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost edits a post's content; only the author may edit
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		AuthorID: currentUserID(c),
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost removes a post and its comments; only the author may delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return nil
	}

	err = s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		AuthorID: currentUserID(c),
		PostID:   postID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// HidePost hides a post and all comments under it
func (s *Server) HidePost(c *fiber.Ctx) error {
	return s.setPostHidden(c, true, "Post hidden")
}

// RestorePost un-hides a post and all comments under it
func (s *Server) RestorePost(c *fiber.Ctx) error {
	return s.setPostHidden(c, false, "Post restored")
}

func (s *Server) setPostHidden(c *fiber.Ctx, hidden bool, message string) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return nil
	}

	err = s.postService.SetPostHidden(c.UserContext(), postID, hidden, currentUserID(c))
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return respondServiceError(c, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"message": message})
}
