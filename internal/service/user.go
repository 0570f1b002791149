package service

import (
	"errors"
	"fmt"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for portal accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username      string           `json:"username" validate:"required,min=3,max=150"`
	Password      string           `json:"password" validate:"required,min=8,max=72"`
	FirstName     string           `json:"first_name" validate:"max=150"`
	LastName      string           `json:"last_name" validate:"max=150"`
	Email         string           `json:"email" validate:"omitempty,email"`
	PositionTitle string           `json:"position_title" validate:"max=150"`
	LoginRole     models.LoginRole `json:"login_role" validate:"omitempty,oneof=admin manager user"`
}

// UpdateUserRequest represents the request to update a user; nil fields are left unchanged
type UpdateUserRequest struct {
	FirstName     *string           `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName      *string           `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Email         *string           `json:"email,omitempty" validate:"omitempty,email"`
	PositionTitle *string           `json:"position_title,omitempty" validate:"omitempty,max=150"`
	LoginRole     *models.LoginRole `json:"login_role,omitempty" validate:"omitempty,oneof=admin manager user"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID            uuid.UUID        `json:"id"`
	Username      string           `json:"username"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	FullName      string           `json:"full_name"`
	Email         string           `json:"email"`
	PositionTitle string           `json:"position_title"`
	LoginRole     models.LoginRole `json:"login_role"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     string           `json:"created_at"`
}

// CreateUserResponse carries the created user and the onboarding wizard entry point
type CreateUserResponse struct {
	User       UserResponse `json:"user"`
	OnboardURL string       `json:"onboard_url"`
}

// OnboardURL returns the wizard entry point for a user
func OnboardURL(userID uuid.UUID) string {
	return fmt.Sprintf("/api/v1/users/%s/onboarding", userID)
}

// Create creates a user with a bcrypt-hashed password
func (s *UserService) Create(req *CreateUserRequest) (*CreateUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.LoginRole
	if role == "" {
		role = models.LoginRoleUser
	}

	user := &models.User{
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PositionTitle: req.PositionTitle,
		LoginRole:     role,
		PasswordHash:  string(hash),
		IsActive:      true,
	}
	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserResponse{
		User:       *toUserResponse(user),
		OnboardURL: OnboardURL(user.ID),
	}, nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// List retrieves users, optionally filtered by login role
func (s *UserService) List(role models.LoginRole) ([]UserResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown login role %q", role))
	}
	users, err := s.repo.GetAll(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

// Update changes profile fields, the login role or the active flag
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PositionTitle != nil {
		user.PositionTitle = *req.PositionTitle
	}
	if req.LoginRole != nil {
		user.LoginRole = *req.LoginRole
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		FullName:      user.FullName(),
		Email:         user.Email,
		PositionTitle: user.PositionTitle,
		LoginRole:     user.LoginRole,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}
