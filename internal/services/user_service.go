package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/repository"
)

// userService handles user-related business logic.
type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserServicer.
func NewUserService(users repository.UserRepository) UserServicer {
	return &userService{users: users}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *userService) Register(email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves a user by ID.
func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
