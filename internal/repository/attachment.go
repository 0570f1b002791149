package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for work item attachments
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates a new attachment
func (r *AttachmentRepository) Create(attachment *models.WorkItemAttachment) error {
	return r.db.Omit("Folder", "UploadedBy").Create(attachment).Error
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(id uuid.UUID) (*models.WorkItemAttachment, error) {
	var attachment models.WorkItemAttachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetByIDs retrieves the attachments with the given ids; missing ids are simply absent
func (r *AttachmentRepository) GetByIDs(ids []uuid.UUID) ([]models.WorkItemAttachment, error) {
	var attachments []models.WorkItemAttachment
	if len(ids) == 0 {
		return attachments, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// ListByWorkItem retrieves the attachments of an item, optionally of one type
func (r *AttachmentRepository) ListByWorkItem(workItemID uuid.UUID, attachmentType models.AttachmentType) ([]models.WorkItemAttachment, error) {
	var attachments []models.WorkItemAttachment
	query := r.db.Where("work_item_id = ?", workItemID).Order("created_at ASC")
	if attachmentType != "" {
		query = query.Where("attachment_type = ?", attachmentType)
	}
	if err := query.Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// ListByFolder retrieves the attachments placed in a folder
func (r *AttachmentRepository) ListByFolder(folderID uuid.UUID) ([]models.WorkItemAttachment, error) {
	var attachments []models.WorkItemAttachment
	err := r.db.Where("folder_id = ?", folderID).Order("original_name ASC").Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// CountByWorkItem counts the attachments of an item
func (r *AttachmentRepository) CountByWorkItem(workItemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkItemAttachment{}).Where("work_item_id = ?", workItemID).Count(&count).Error
	return count, err
}

// CountByWorkItems counts attachments per item for a set of items
func (r *AttachmentRepository) CountByWorkItems(workItemIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(workItemIDs))
	if len(workItemIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		WorkItemID uuid.UUID
		Count      int
	}
	err := r.db.Model(&models.WorkItemAttachment{}).
		Select("work_item_id, COUNT(*) AS count").
		Where("work_item_id IN ?", workItemIDs).
		Group("work_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.WorkItemID] = row.Count
	}
	return counts, nil
}

// CountByFolder counts the attachments placed in a folder
func (r *AttachmentRepository) CountByFolder(folderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkItemAttachment{}).Where("folder_id = ?", folderID).Count(&count).Error
	return count, err
}

// ListWorkCycleIDsByFolder returns the distinct work cycles owning the attachments in a folder
func (r *AttachmentRepository) ListWorkCycleIDsByFolder(folderID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.WorkItemAttachment{}).
		Joins("JOIN work_items ON work_items.id = work_item_attachments.work_item_id").
		Where("work_item_attachments.folder_id = ?", folderID).
		Distinct().
		Pluck("work_items.work_cycle_id", &ids).Error
	return ids, err
}

// UpdateFolder moves an attachment to another folder
func (r *AttachmentRepository) UpdateFolder(id uuid.UUID, folderID uuid.UUID) error {
	result := r.db.Model(&models.WorkItemAttachment{}).Where("id = ?", id).Update("folder_id", folderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates an attachment
func (r *AttachmentRepository) Update(attachment *models.WorkItemAttachment) error {
	return r.db.Omit("Folder", "UploadedBy").Save(attachment).Error
}

// Delete deletes an attachment row
func (r *AttachmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkItemAttachment{}, "id = ?", id).Error
}
