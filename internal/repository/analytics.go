package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var statColumns = []string{
	"total_items", "pending_count", "in_progress_count", "complete_count", "late_count", "overdue_count",
	"pending_review_count", "approved_count", "revision_count",
	"completion_rate", "late_rate", "total_files", "avg_files_per_submission",
	"last_refreshed_at", "updated_at",
}

// AnalyticsRepository handles the derived analytics tables
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// UpsertWorkCycle writes the per-cycle projection
func (r *AnalyticsRepository) UpsertWorkCycle(analytics *models.WorkCycleAnalytics) error {
	return r.db.Omit("WorkCycle").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_cycle_id"}},
		DoUpdates: clause.AssignmentColumns(statColumns),
	}).Create(analytics).Error
}

// UpsertTeamWorkCycle writes the per-team projection of a cycle
func (r *AnalyticsRepository) UpsertTeamWorkCycle(analytics *models.TeamWorkCycleAnalytics) error {
	return r.db.Omit("WorkCycle", "Team").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_cycle_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns(statColumns),
	}).Create(analytics).Error
}

// CreateSnapshot appends a history row
func (r *AnalyticsRepository) CreateSnapshot(snapshot *models.WorkCycleAnalyticsSnapshot) error {
	return r.db.Omit("WorkCycle").Create(snapshot).Error
}

// UpsertUser writes the per-user projection
func (r *AnalyticsRepository) UpsertUser(analytics *models.UserSubmissionAnalytics) error {
	return r.db.Omit("User").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(append([]string{"last_submitted_at"}, statColumns...)),
	}).Create(analytics).Error
}

// GetWorkCycle retrieves the projection of a cycle
func (r *AnalyticsRepository) GetWorkCycle(workCycleID uuid.UUID) (*models.WorkCycleAnalytics, error) {
	var analytics models.WorkCycleAnalytics
	err := r.db.First(&analytics, "work_cycle_id = ?", workCycleID).Error
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// ListTeamWorkCycle retrieves the per-team projections of a cycle
func (r *AnalyticsRepository) ListTeamWorkCycle(workCycleID uuid.UUID) ([]models.TeamWorkCycleAnalytics, error) {
	var rows []models.TeamWorkCycleAnalytics
	err := r.db.Preload("Team").
		Where("work_cycle_id = ?", workCycleID).
		Order("completion_rate DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSnapshots retrieves the history of a cycle oldest first
func (r *AnalyticsRepository) ListSnapshots(workCycleID uuid.UUID) ([]models.WorkCycleAnalyticsSnapshot, error) {
	var snapshots []models.WorkCycleAnalyticsSnapshot
	err := r.db.Where("work_cycle_id = ?", workCycleID).Order("taken_at ASC").Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// GetUser retrieves the projection of a user
func (r *AnalyticsRepository) GetUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error) {
	var analytics models.UserSubmissionAnalytics
	err := r.db.First(&analytics, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}
