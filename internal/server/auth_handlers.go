package server

import (
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register. On success the response carries the new
// user's public profile; no session or token is issued.
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.authService.Register(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// Login handles POST /login. Credentials are verified and the profile is
// returned; unknown email and wrong password are indistinguishable.
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.authService.Login(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}
