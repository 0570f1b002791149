package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxFolderDepth bounds the ancestor walk; the allowed-parent table nests at most ten levels
const maxFolderDepth = 32

// FolderRepository handles database operations for document folders
type FolderRepository struct {
	db *gorm.DB
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// Create creates a new folder
func (r *FolderRepository) Create(folder *models.DocumentFolder) error {
	return r.db.Omit("Parent", "WorkCycle", "CreatedBy").Create(folder).Error
}

// GetByID retrieves a folder by ID
func (r *FolderRepository) GetByID(id uuid.UUID) (*models.DocumentFolder, error) {
	var folder models.DocumentFolder
	err := r.db.First(&folder, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetRoot retrieves the single parentless folder
func (r *FolderRepository) GetRoot() (*models.DocumentFolder, error) {
	var folder models.DocumentFolder
	err := r.db.First(&folder, "parent_id IS NULL").Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetByParentAndName retrieves a folder by name under a parent (nil parent means top level)
func (r *FolderRepository) GetByParentAndName(parentID *uuid.UUID, name string) (*models.DocumentFolder, error) {
	var folder models.DocumentFolder
	query := r.db.Where("name = ?", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// ListChildren retrieves the direct subfolders of a folder
func (r *FolderRepository) ListChildren(parentID uuid.UUID) ([]models.DocumentFolder, error) {
	var folders []models.DocumentFolder
	err := r.db.Where("parent_id = ?", parentID).Order("name ASC").Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// GetPath returns the folder and its ancestors ordered root first
func (r *FolderRepository) GetPath(id uuid.UUID) ([]models.DocumentFolder, error) {
	var folders []models.DocumentFolder
	err := r.db.Raw(`
		WITH RECURSIVE ancestors AS (
			SELECT id, parent_id, 0 AS depth FROM document_folders WHERE id = ?
			UNION ALL
			SELECT f.id, f.parent_id, a.depth + 1 FROM document_folders f JOIN ancestors a ON f.id = a.parent_id
			WHERE a.depth < ?
		)
		SELECT DISTINCT document_folders.* FROM document_folders JOIN ancestors ON ancestors.id = document_folders.id`,
		id, maxFolderDepth).Scan(&folders).Error
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return models.NewFolderArena(folders).Path(id)
}

// CountChildren counts the direct subfolders of a folder
func (r *FolderRepository) CountChildren(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DocumentFolder{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// CountByWorkCycle counts the folders bound to a work cycle
func (r *FolderRepository) CountByWorkCycle(workCycleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DocumentFolder{}).Where("work_cycle_id = ?", workCycleID).Count(&count).Error
	return count, err
}

// Update updates a folder
func (r *FolderRepository) Update(folder *models.DocumentFolder) error {
	return r.db.Omit("Parent", "WorkCycle", "CreatedBy").Save(folder).Error
}

// Delete deletes a folder
func (r *FolderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DocumentFolder{}, "id = ?", id).Error
}
