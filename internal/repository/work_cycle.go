package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkCycleRepository handles database operations for work cycles
type WorkCycleRepository struct {
	db *gorm.DB
}

// NewWorkCycleRepository creates a new work cycle repository
func NewWorkCycleRepository(db *gorm.DB) *WorkCycleRepository {
	return &WorkCycleRepository{db: db}
}

// Create creates a new work cycle
func (r *WorkCycleRepository) Create(cycle *models.WorkCycle) error {
	return r.db.Omit("Assignments").Create(cycle).Error
}

// GetByID retrieves a work cycle by ID
func (r *WorkCycleRepository) GetByID(id uuid.UUID) (*models.WorkCycle, error) {
	var cycle models.WorkCycle
	err := r.db.First(&cycle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// GetWithAssignments retrieves a work cycle with its assignment rows
func (r *WorkCycleRepository) GetWithAssignments(id uuid.UUID) (*models.WorkCycle, error) {
	var cycle models.WorkCycle
	err := r.db.Preload("Assignments").First(&cycle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// List retrieves work cycles newest due date first, optionally filtered by active flag
func (r *WorkCycleRepository) List(active *bool) ([]models.WorkCycle, error) {
	var cycles []models.WorkCycle
	query := r.db.Order("due_at DESC")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	if err := query.Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// Update updates a work cycle
func (r *WorkCycleRepository) Update(cycle *models.WorkCycle) error {
	return r.db.Omit("Assignments").Save(cycle).Error
}

// SetActive flips the active flag; repeating the same value is a no-op
func (r *WorkCycleRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.WorkCycle{}).Where("id = ?", id).Update("is_active", active).Error
}

// Delete deletes a work cycle; assignments, items and their children cascade
func (r *WorkCycleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkCycle{}, "id = ?", id).Error
}
