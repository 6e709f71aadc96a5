package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

type EventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	enricher  *Enricher
}

type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	OwnerID     uint   `json:"owner_id"`
}

type UpdateEventInput struct {
	EventID     uint
	Title       string
	Description string
	Location    string
	Date        string
}

func NewEventService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	enricher *Enricher,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		enricher:  enricher,
	}
}

// ListEvents returns all events with owner attribution attached.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.enricher.AttachEventOwners(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListEventsByOwner returns one owner's events with attribution attached.
func (s *EventService) ListEventsByOwner(ctx context.Context, ownerID uint) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.enricher.AttachEventOwners(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent validates the title and the owner reference, then inserts.
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	exists, err := s.userRepo.ExistsByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewOwnerNotFoundError(in.OwnerID)
	}

	event := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		OwnerID:     in.OwnerID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent overwrites every mutable field of an existing event.
// Ownership never transfers.
func (s *EventService) UpdateEvent(ctx context.Context, in UpdateEventInput) (*models.Event, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Location = in.Location
	event.Date = in.Date
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes the event permanently.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}
