package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every user's public profile; password hashes never
// leave the repository layer.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *users[i].Profile())
	}
	return profiles, nil
}
