package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderService manages the document folder tree
type FolderService struct {
	folders     repository.FolderRepositoryInterface
	attachments repository.AttachmentRepositoryInterface
	resolver    *folderResolver
	validator   *validator.Validate
}

// NewFolderService creates a new folder service
func NewFolderService(folders repository.FolderRepositoryInterface, attachments repository.AttachmentRepositoryInterface, memberships repository.TeamMembershipRepositoryInterface, teams repository.TeamRepositoryInterface, validator *validator.Validate) *FolderService {
	return &FolderService{
		folders:     folders,
		attachments: attachments,
		resolver:    newFolderResolver(folders, memberships, teams),
		validator:   validator,
	}
}

// CreateFolderRequest represents the request to create a manual folder
type CreateFolderRequest struct {
	Name     string    `json:"name" validate:"required,max=255"`
	ParentID uuid.UUID `json:"parent_id" validate:"required"`
}

// RenameFolderRequest represents the request to rename a folder
type RenameFolderRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// MoveFolderRequest represents the request to move a folder
type MoveFolderRequest struct {
	ParentID uuid.UUID `json:"parent_id" validate:"required"`
}

// FolderResponse represents a folder
type FolderResponse struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	FolderType        models.FolderType `json:"folder_type"`
	TypeLabel         string            `json:"type_label"`
	ParentID          *uuid.UUID        `json:"parent_id,omitempty"`
	WorkCycleID       *uuid.UUID        `json:"workcycle_id,omitempty"`
	IsSystemGenerated bool              `json:"is_system_generated"`
	CreatedAt         string            `json:"created_at"`
}

// FolderContents is a folder with its breadcrumb, subfolders and files
type FolderContents struct {
	Folder     FolderResponse       `json:"folder"`
	Breadcrumb []FolderResponse     `json:"breadcrumb"`
	Children   []FolderResponse     `json:"children"`
	Files      []AttachmentResponse `json:"files"`
}

// Root returns the root folder, creating it on first use
func (s *FolderService) Root() (*FolderResponse, error) {
	root, err := s.resolver.root()
	if err != nil {
		return nil, err
	}
	return toFolderResponse(root), nil
}

// Contents lists a folder's breadcrumb, subfolders and files
func (s *FolderService) Contents(id uuid.UUID) (*FolderContents, error) {
	path, err := folderPath(s.folders, id)
	if err != nil {
		return nil, err
	}
	children, err := s.folders.ListChildren(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list subfolders: %w", err)
	}
	files, err := s.attachments.ListByFolder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	contents := &FolderContents{
		Folder:     *toFolderResponse(&path[len(path)-1]),
		Breadcrumb: toFolderResponses(path),
		Children:   toFolderResponses(children),
		Files:      make([]AttachmentResponse, len(files)),
	}
	for i := range files {
		contents.Files[i] = *toAttachmentResponse(&files[i])
	}
	return contents, nil
}

// GetPath returns the breadcrumb from the root down to the folder
func (s *FolderService) GetPath(id uuid.UUID) ([]FolderResponse, error) {
	path, err := folderPath(s.folders, id)
	if err != nil {
		return nil, err
	}
	return toFolderResponses(path), nil
}

// Create creates a manual folder under an existing folder
func (s *FolderService) Create(actor Actor, req *CreateFolderRequest) (*FolderResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	parentPath, err := folderPath(s.folders, req.ParentID)
	if err != nil {
		return nil, err
	}

	folder := &models.DocumentFolder{
		Name:        strings.TrimSpace(req.Name),
		FolderType:  models.FolderTypeAttachment,
		ParentID:    &req.ParentID,
		CreatedByID: &actor.UserID,
	}
	if err := models.ValidateFolder(folder, parentPath); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(req.ParentID, folder.Name, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.folders.Create(folder); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFolderExists
		}
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return toFolderResponse(folder), nil
}

// Rename renames a manual folder
func (s *FolderService) Rename(actor Actor, id uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	folder, err := s.folders.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFolderNotFound, "get folder")
	}
	if folder.IsSystemGenerated {
		return nil, apperrors.NewRuleError(apperrors.ErrSystemFolderProtected, "System folders cannot be renamed.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "Folder name is required.")
	}
	if folder.ParentID != nil {
		if err := s.ensureUniqueName(*folder.ParentID, name, folder.ID); err != nil {
			return nil, err
		}
	}

	folder.Name = name
	if err := s.folders.Update(folder); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFolderExists
		}
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}
	return toFolderResponse(folder), nil
}

// Move re-parents a manual folder after revalidating it against the new ancestry
func (s *FolderService) Move(actor Actor, id uuid.UUID, req *MoveFolderRequest) (*FolderResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	folder, err := s.folders.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFolderNotFound, "get folder")
	}
	if folder.IsSystemGenerated {
		return nil, apperrors.NewRuleError(apperrors.ErrSystemFolderProtected, "System folders cannot be moved.")
	}

	parentPath, err := folderPath(s.folders, req.ParentID)
	if err != nil {
		return nil, err
	}

	folder.ParentID = &req.ParentID
	if err := models.ValidateFolder(folder, parentPath); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(req.ParentID, folder.Name, folder.ID); err != nil {
		return nil, err
	}
	if err := s.validateSubtreeFiles(append(parentPath, *folder)); err != nil {
		return nil, err
	}

	if err := s.folders.Update(folder); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFolderExists
		}
		return nil, fmt.Errorf("failed to move folder: %w", err)
	}
	return toFolderResponse(folder), nil
}

// Delete removes an empty manual folder
func (s *FolderService) Delete(actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	folder, err := s.folders.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrFolderNotFound, "get folder")
	}
	if folder.IsSystemGenerated {
		return apperrors.NewRuleError(apperrors.ErrSystemFolderProtected, "System folders cannot be deleted.")
	}

	children, err := s.folders.CountChildren(id)
	if err != nil {
		return fmt.Errorf("failed to count subfolders: %w", err)
	}
	if children > 0 {
		return apperrors.NewRuleError(apperrors.ErrFolderNotEmpty, "Folder must be empty. Remove subfolders first.")
	}

	files, err := s.attachments.CountByFolder(id)
	if err != nil {
		return fmt.Errorf("failed to count files: %w", err)
	}
	if files > 0 {
		return apperrors.NewRuleError(apperrors.ErrFolderNotEmpty, "Folder must be empty. Remove files first.")
	}

	if err := s.folders.Delete(id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}

func (s *FolderService) ensureUniqueName(parentID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.folders.GetByParentAndName(&parentID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing folder by name: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrFolderExists
	}
	return nil
}

// validateSubtreeFiles checks every file under the last folder of path against its new location
func (s *FolderService) validateSubtreeFiles(path []models.DocumentFolder) error {
	pending := [][]models.DocumentFolder{path}
	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]
		folder := current[len(current)-1]

		cycleIDs, err := s.attachments.ListWorkCycleIDsByFolder(folder.ID)
		if err != nil {
			return fmt.Errorf("failed to list files in folder: %w", err)
		}
		for _, cycleID := range cycleIDs {
			if err := models.ValidateAttachmentPlacement(cycleID, current); err != nil {
				return err
			}
		}

		children, err := s.folders.ListChildren(folder.ID)
		if err != nil {
			return fmt.Errorf("failed to list subfolders: %w", err)
		}
		for _, child := range children {
			next := make([]models.DocumentFolder, len(current), len(current)+1)
			copy(next, current)
			pending = append(pending, append(next, child))
		}
	}
	return nil
}

// folderPath loads the root-first chain of a folder, keeping typed tree errors intact
func folderPath(folders repository.FolderRepositoryInterface, id uuid.UUID) ([]models.DocumentFolder, error) {
	path, err := folders.GetPath(id)
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, lookupError(err, apperrors.ErrFolderNotFound, "get folder path")
	}
	return path, nil
}

func toFolderResponse(f *models.DocumentFolder) *FolderResponse {
	return &FolderResponse{
		ID:                f.ID,
		Name:              f.Name,
		FolderType:        f.FolderType,
		TypeLabel:         f.FolderType.Label(),
		ParentID:          f.ParentID,
		WorkCycleID:       f.WorkCycleID,
		IsSystemGenerated: f.IsSystemGenerated,
		CreatedAt:         f.CreatedAt.Format(time.RFC3339),
	}
}

func toFolderResponses(folders []models.DocumentFolder) []FolderResponse {
	responses := make([]FolderResponse, len(folders))
	for i := range folders {
		responses[i] = *toFolderResponse(&folders[i])
	}
	return responses
}
