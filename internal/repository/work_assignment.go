package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkAssignmentRepository handles database operations for assignment audit rows
type WorkAssignmentRepository struct {
	db *gorm.DB
}

// NewWorkAssignmentRepository creates a new work assignment repository
func NewWorkAssignmentRepository(db *gorm.DB) *WorkAssignmentRepository {
	return &WorkAssignmentRepository{db: db}
}

// CreateBatch inserts assignment rows
func (r *WorkAssignmentRepository) CreateBatch(assignments []models.WorkAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Create(&assignments).Error
}

// ListByWorkCycle retrieves the assignment rows of a cycle
func (r *WorkAssignmentRepository) ListByWorkCycle(workCycleID uuid.UUID) ([]models.WorkAssignment, error) {
	var assignments []models.WorkAssignment
	err := r.db.Where("work_cycle_id = ?", workCycleID).
		Order("assignee_type ASC, created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteByWorkCycle removes every assignment row of a cycle
func (r *WorkAssignmentRepository) DeleteByWorkCycle(workCycleID uuid.UUID) error {
	return r.db.Delete(&models.WorkAssignment{}, "work_cycle_id = ?", workCycleID).Error
}

// DeleteByAssignee removes the rows pointing at a user or team
func (r *WorkAssignmentRepository) DeleteByAssignee(assignee models.Assignee) error {
	return r.db.Delete(&models.WorkAssignment{}, "assignee_type = ? AND assignee_id = ?", assignee.Type, assignee.ID).Error
}
