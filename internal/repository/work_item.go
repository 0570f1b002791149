package repository

import (
	"time"

	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkItemRepository handles database operations for work items.
// Items are only written through Create and Save so the BeforeSave hook always runs.
type WorkItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository creates a new work item repository
func NewWorkItemRepository(db *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

// Create creates a new work item
func (r *WorkItemRepository) Create(item *models.WorkItem) error {
	return r.db.Omit("WorkCycle", "Owner", "Attachments", "Messages").Create(item).Error
}

// GetByID retrieves a work item by ID
func (r *WorkItemRepository) GetByID(id uuid.UUID) (*models.WorkItem, error) {
	var item models.WorkItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetWithRelations retrieves a work item with its cycle, owner and attachments
func (r *WorkItemRepository) GetWithRelations(id uuid.UUID) (*models.WorkItem, error) {
	var item models.WorkItem
	err := r.db.
		Preload("WorkCycle").
		Preload("Owner").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByCycleAndOwner retrieves the item of an owner in a cycle, active or not
func (r *WorkItemRepository) GetByCycleAndOwner(workCycleID, ownerID uuid.UUID) (*models.WorkItem, error) {
	var item models.WorkItem
	err := r.db.First(&item, "work_cycle_id = ? AND owner_id = ?", workCycleID, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves work items matching the filter with cycle and owner loaded
func (r *WorkItemRepository) List(filter WorkItemFilter) ([]models.WorkItem, error) {
	var items []models.WorkItem
	query := r.db.Preload("WorkCycle").Preload("Owner").Order("created_at ASC")
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.WorkCycleID != nil {
		query = query.Where("work_cycle_id = ?", *filter.WorkCycleID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListOpenDueBetween retrieves active, unfinished items of active cycles due in [from, to]
func (r *WorkItemRepository) ListOpenDueBetween(from, to time.Time) ([]models.WorkItem, error) {
	var items []models.WorkItem
	err := r.openItems().
		Where("work_cycles.due_at >= ? AND work_cycles.due_at <= ?", from, to).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListOpenPastDue retrieves active, unfinished items of active cycles whose due date has passed
func (r *WorkItemRepository) ListOpenPastDue(now time.Time) ([]models.WorkItem, error) {
	var items []models.WorkItem
	err := r.openItems().
		Where("work_cycles.due_at < ?", now).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WorkItemRepository) openItems() *gorm.DB {
	return r.db.
		Joins("JOIN work_cycles ON work_cycles.id = work_items.work_cycle_id").
		Preload("WorkCycle").
		Preload("Owner").
		Where("work_cycles.is_active = ? AND work_items.is_active = ? AND work_items.status <> ?",
			true, true, models.WorkItemStatusDone).
		Order("work_cycles.due_at ASC")
}

// ListCycleProgress counts active and done items per active cycle
func (r *WorkItemRepository) ListCycleProgress() ([]CycleProgress, error) {
	var progress []CycleProgress
	err := r.db.Model(&models.WorkItem{}).
		Select("work_items.work_cycle_id AS work_cycle_id, COUNT(*) AS total, "+
			"COUNT(*) FILTER (WHERE work_items.status = ?) AS done", models.WorkItemStatusDone).
		Joins("JOIN work_cycles ON work_cycles.id = work_items.work_cycle_id").
		Where("work_cycles.is_active = ? AND work_items.is_active = ?", true, true).
		Group("work_items.work_cycle_id").
		Scan(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// Save persists every column of the item
func (r *WorkItemRepository) Save(item *models.WorkItem) error {
	return r.db.Omit("WorkCycle", "Owner", "Attachments", "Messages").Save(item).Error
}
