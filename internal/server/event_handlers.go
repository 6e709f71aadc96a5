package server

import (
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetEvents handles GET /events. Every event carries its owner attribution.
func (s *Server) GetEvents(c *fiber.Ctx) error {
	events, err := s.eventService.ListEvents(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	if events == nil {
		events = []*models.Event{}
	}
	return c.JSON(events)
}

// GetUserEvents handles GET /events/user/:userId.
func (s *Server) GetUserEvents(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	events, err := s.eventService.ListEventsByOwner(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if events == nil {
		events = []*models.Event{}
	}
	return c.JSON(events)
}

// CreateEvent handles POST /events.
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req service.CreateEventInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.CreateEvent(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(event)
}

// UpdateEvent handles PUT /events/:eventId. All descriptive fields are
// overwritten; ownership never transfers.
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "eventId", "event ID")
	if err != nil {
		return nil
	}

	var req service.CreateEventInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, svcErr := s.eventService.UpdateEvent(c.Context(), service.UpdateEventInput{
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(event)
}

// DeleteEvent handles DELETE /events/:eventId.
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "eventId", "event ID")
	if err != nil {
		return nil
	}

	if err := s.eventService.DeleteEvent(c.Context(), eventID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Event deleted successfully",
	})
}
