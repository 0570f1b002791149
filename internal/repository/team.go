package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySiblingName retrieves a team by name under the given parent (nil for top level)
func (r *TeamRepository) GetBySiblingName(parentID *uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	query := r.db.Where("name = ?", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams filtered by type and parent; empty filters are ignored
func (r *TeamRepository) List(teamType models.TeamType, parentID *uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Order("name ASC")
	if teamType != "" {
		query = query.Where("team_type = ?", teamType)
	}
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetChain returns the team and its ancestors ordered from the division down
func (r *TeamRepository) GetChain(id uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Raw(`
		WITH RECURSIVE chain AS (
			SELECT id, parent_id, 0 AS depth FROM teams WHERE id = ?
			UNION ALL
			SELECT t.id, t.parent_id, c.depth + 1 FROM teams t JOIN chain c ON t.id = c.parent_id
			WHERE c.depth < 8
		)
		SELECT teams.* FROM teams JOIN chain ON chain.id = teams.id
		ORDER BY chain.depth DESC`, id).Scan(&teams).Error
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return teams, nil
}

// CountChildren counts the direct child teams of a team
func (r *TeamRepository) CountChildren(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
