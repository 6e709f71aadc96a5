// Package service contains the application's business logic.
package service

import (
	"context"

	"pulse/internal/auth"
	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user with a hashed password and returns the public
// profile. Duplicate emails surface as DuplicateEmail via the unique index.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserProfile, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Name, email, and password are required")
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Profile(), nil
}

// Login verifies credentials and returns the user's profile. Unknown email
// and wrong password produce the identical error so neither case leaks.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.UserProfile, error) {
	if in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}

	if !auth.CheckPassword(in.Password, user.Password) {
		return nil, models.NewInvalidCredentialsError()
	}

	return user.Profile(), nil
}
