package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrgAssignmentRepository handles database operations for onboarding results
type OrgAssignmentRepository struct {
	db *gorm.DB
}

// NewOrgAssignmentRepository creates a new org assignment repository
func NewOrgAssignmentRepository(db *gorm.DB) *OrgAssignmentRepository {
	return &OrgAssignmentRepository{db: db}
}

// GetByUserID retrieves the org placement of a user
func (r *OrgAssignmentRepository) GetByUserID(userID uuid.UUID) (*models.OrgAssignment, error) {
	var assignment models.OrgAssignment
	err := r.db.First(&assignment, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Upsert creates or replaces the org placement of a user
func (r *OrgAssignmentRepository) Upsert(assignment *models.OrgAssignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"division_id", "section_id", "service_id", "unit_id", "updated_at"}),
	}).Create(assignment).Error
}
