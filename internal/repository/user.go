package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by login name
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users, optionally filtered by login role
func (r *UserRepository) GetAll(role models.LoginRole) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("username ASC")
	if role != "" {
		query = query.Where("login_role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetActiveByRoles retrieves active users holding any of the given login roles
func (r *UserRepository) GetActiveByRoles(roles ...models.LoginRole) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("is_active = ? AND login_role IN ?", true, roles).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
