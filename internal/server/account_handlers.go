package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the authenticated user's account
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// DeactivateMyAccount soft-deactivates the account and hides its content
func (s *Server) DeactivateMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.accountService.Deactivate(c.UserContext(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Account deactivated"})
}

// ScheduleMyDeletion arms the deferred hard deletion for the account
func (s *Server) ScheduleMyDeletion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	deadline, err := s.accountService.ScheduleDeletion(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Account deletion scheduled",
		"deletion_at": deadline,
	})
}

// CancelMyDeletion disarms a pending deletion without reactivating content
func (s *Server) CancelMyDeletion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.accountService.CancelDeletion(c.UserContext(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Account deletion cancelled"})
}
