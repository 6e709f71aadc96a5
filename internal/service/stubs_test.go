package service

import (
	"context"
	"errors"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-stub repositories shared by the service tests in this package.

type userRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByIDsFn   func(ctx context.Context, ids []uint) ([]models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	existsByIDFn func(ctx context.Context, id uint) (bool, error)
	createFn     func(ctx context.Context, user *models.User) error
	listFn       func(ctx context.Context) ([]models.User, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return nil, models.NewNotFoundError("User", id) },
		getByIDsFn:   func(_ context.Context, _ []uint) ([]models.User, error) { return nil, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsByIDFn: func(_ context.Context, _ uint) (bool, error) { return false, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		listFn:       func(_ context.Context) ([]models.User, error) { return nil, nil },
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.existsByIDFn(ctx, id)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

type postRepoStub struct {
	listFn        func(ctx context.Context) ([]*models.Post, error)
	listByOwnerFn func(ctx context.Context, ownerID uint) ([]*models.Post, error)
	getByIDFn     func(ctx context.Context, id uint) (*models.Post, error)
	createFn      func(ctx context.Context, post *models.Post) error
	updateFn      func(ctx context.Context, post *models.Post) error
	deleteFn      func(ctx context.Context, id uint) error
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn:        func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		listByOwnerFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Post, error) { return nil, models.NewNotFoundError("Post", id) },
		createFn:      func(_ context.Context, _ *models.Post) error { return nil },
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) { return s.listFn(ctx) }

func (s *postRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Post, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

type eventRepoStub struct {
	listFn        func(ctx context.Context) ([]*models.Event, error)
	listByOwnerFn func(ctx context.Context, ownerID uint) ([]*models.Event, error)
	getByIDFn     func(ctx context.Context, id uint) (*models.Event, error)
	createFn      func(ctx context.Context, event *models.Event) error
	updateFn      func(ctx context.Context, event *models.Event) error
	deleteFn      func(ctx context.Context, id uint) error
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		listFn:        func(_ context.Context) ([]*models.Event, error) { return nil, nil },
		listByOwnerFn: func(_ context.Context, _ uint) ([]*models.Event, error) { return nil, nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Event, error) { return nil, models.NewNotFoundError("Event", id) },
		createFn:      func(_ context.Context, _ *models.Event) error { return nil },
		updateFn:      func(_ context.Context, _ *models.Event) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *eventRepoStub) List(ctx context.Context) ([]*models.Event, error) { return s.listFn(ctx) }

func (s *eventRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Event, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}

func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateFn(ctx, event)
}

func (s *eventRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
