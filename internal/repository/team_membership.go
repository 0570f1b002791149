package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMembershipRepository handles database operations for team memberships
type TeamMembershipRepository struct {
	db *gorm.DB
}

// NewTeamMembershipRepository creates a new team membership repository
func NewTeamMembershipRepository(db *gorm.DB) *TeamMembershipRepository {
	return &TeamMembershipRepository{db: db}
}

// Create adds a user to a team
func (r *TeamMembershipRepository) Create(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// Get retrieves the membership of a user in a team
func (r *TeamMembershipRepository) Get(teamID, userID uuid.UUID) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.First(&membership, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByTeam retrieves the memberships of a team with their users
func (r *TeamMembershipRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetMemberUserIDs returns the user ids of a team's members
func (r *TeamMembershipRepository) GetMemberUserIDs(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMembership{}).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetOldestByUser returns the first team a user joined
func (r *TeamMembershipRepository) GetOldestByUser(userID uuid.UUID) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByUsers retrieves the memberships of a set of users, oldest first
func (r *TeamMembershipRepository) ListByUsers(userIDs []uuid.UUID) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	if len(userIDs) == 0 {
		return memberships, nil
	}
	err := r.db.Preload("Team").
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Delete removes a user from a team
func (r *TeamMembershipRepository) Delete(teamID, userID uuid.UUID) error {
	result := r.db.Delete(&models.TeamMembership{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByTeam removes every membership of a team
func (r *TeamMembershipRepository) DeleteByTeam(teamID uuid.UUID) error {
	return r.db.Delete(&models.TeamMembership{}, "team_id = ?", teamID).Error
}
