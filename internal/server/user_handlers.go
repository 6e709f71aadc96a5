package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /users. Profiles only; password hashes never serialize.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	profiles, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	if profiles == nil {
		profiles = []models.UserProfile{}
	}
	return c.JSON(profiles)
}
