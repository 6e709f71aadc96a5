package service

import (
	"context"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	t.Parallel()

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		svc := NewEventService(noopEventRepo(), userRepo, NewEnricher(userRepo, nil))
		_, err := svc.CreateEvent(context.Background(), CreateEventInput{Title: "Meetup", OwnerID: 99})
		assertAppErrorCode(t, err, models.CodeOwnerNotFound)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		svc := NewEventService(noopEventRepo(), userRepo, NewEnricher(userRepo, nil))
		_, err := svc.CreateEvent(context.Background(), CreateEventInput{OwnerID: 1})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("valid owner", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.existsByIDFn = func(_ context.Context, id uint) (bool, error) { return id == 1, nil }
		eventRepo := noopEventRepo()
		eventRepo.createFn = func(_ context.Context, ev *models.Event) error {
			ev.ID = 1
			return nil
		}
		svc := NewEventService(eventRepo, userRepo, NewEnricher(userRepo, nil))

		event, err := svc.CreateEvent(context.Background(), CreateEventInput{
			Title:       "Meetup",
			Description: "Monthly Go meetup",
			Location:    "Studio 3",
			Date:        "2026-10-01",
			OwnerID:     1,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), event.ID)
		assert.Equal(t, "Meetup", event.Title)
		assert.Equal(t, uint(1), event.OwnerID)
	})
}

func TestEventService_UpdateEvent_OverwritesAllFields(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	eventRepo := noopEventRepo()
	eventRepo.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
		return &models.Event{
			ID:          id,
			Title:       "Old",
			Description: "old desc",
			Location:    "old loc",
			Date:        "2026-01-01",
			OwnerID:     3,
		}, nil
	}
	svc := NewEventService(eventRepo, userRepo, NewEnricher(userRepo, nil))

	event, err := svc.UpdateEvent(context.Background(), UpdateEventInput{
		EventID:     1,
		Title:       "New",
		Description: "",
		Location:    "new loc",
		Date:        "2026-02-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", event.Title)
	assert.Equal(t, "", event.Description, "update overwrites all descriptive fields")
	assert.Equal(t, "new loc", event.Location)
	assert.Equal(t, "2026-02-02", event.Date)
	assert.Equal(t, uint(3), event.OwnerID, "update must not transfer ownership")
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	svc := NewEventService(noopEventRepo(), userRepo, NewEnricher(userRepo, nil))
	_, err := svc.UpdateEvent(context.Background(), UpdateEventInput{EventID: 42, Title: "New"})
	assertAppErrorCode(t, err, models.CodeNotFound)
}
