package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AttachmentService stores work item files and places them in the folder tree
type AttachmentService struct {
	attachments repository.AttachmentRepositoryInterface
	workItems   repository.WorkItemRepositoryInterface
	folders     repository.FolderRepositoryInterface
	tx          repository.TransactionManagerInterface
	storage     storage.Storage
	resolver    *folderResolver
	validator   *validator.Validate
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(stores *repository.Stores, tx repository.TransactionManagerInterface, store storage.Storage, validator *validator.Validate) *AttachmentService {
	return &AttachmentService{
		attachments: stores.Attachments,
		workItems:   stores.WorkItems,
		folders:     stores.Folders,
		tx:          tx,
		storage:     store,
		resolver:    newFolderResolver(stores.Folders, stores.Memberships, stores.Teams),
		validator:   validator,
	}
}

// MoveAttachmentsRequest represents the request to move files into a folder
type MoveAttachmentsRequest struct {
	AttachmentIDs []uuid.UUID `json:"attachment_ids" validate:"required,min=1"`
	FolderID      uuid.UUID   `json:"folder_id" validate:"required"`
}

// RenameAttachmentRequest represents the request to rename a file
type RenameAttachmentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// AttachmentResponse represents a stored file
type AttachmentResponse struct {
	ID             uuid.UUID             `json:"id"`
	WorkItemID     uuid.UUID             `json:"work_item_id"`
	AttachmentType models.AttachmentType `json:"attachment_type"`
	TypeLabel      string                `json:"type_label"`
	FolderID       *uuid.UUID            `json:"folder_id,omitempty"`
	OriginalName   string                `json:"original_name"`
	ContentType    string                `json:"content_type"`
	Size           int64                 `json:"size"`
	UploadedByID   *uuid.UUID            `json:"uploaded_by_id,omitempty"`
	CreatedAt      string                `json:"created_at"`
}

// Download is an open file stream; the caller closes Body
type Download struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// ResolveFolder returns the default folder for a file of attachmentType on the item
func (s *AttachmentService) ResolveFolder(actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType) (*FolderResponse, error) {
	item, err := s.workItems.GetWithRelations(workItemID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !attachmentType.IsValid() {
		return nil, apperrors.NewValidationError("attachment_type", fmt.Sprintf("unknown attachment type %q", attachmentType))
	}

	path, err := s.resolver.resolve(item, attachmentType, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toFolderResponse(&path[len(path)-1]), nil
}

// Upload stores files on a work item. A file that fails to store is logged and skipped.
func (s *AttachmentService) Upload(ctx context.Context, actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType, files []UploadedFile) ([]AttachmentResponse, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("files", "At least one file is required.")
	}
	if !attachmentType.IsValid() {
		return nil, apperrors.NewValidationError("attachment_type", fmt.Sprintf("unknown attachment type %q", attachmentType))
	}

	item, err := s.workItems.GetWithRelations(workItemID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !item.IsActive {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "This work item is no longer active.")
	}
	if item.IsDone() && !actor.IsAdmin() {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Completed work items cannot be modified.")
	}

	path, err := s.resolver.resolve(item, attachmentType, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateAttachmentPlacement(item.WorkCycleID, path); err != nil {
		return nil, err
	}
	folder := &path[len(path)-1]

	log := logger.WithContext(ctx).WithField("work_item_id", item.ID)
	stored := make([]AttachmentResponse, 0, len(files))
	for _, f := range files {
		attachment, err := s.store(ctx, actor, item, folder, attachmentType, f)
		if err != nil {
			log.WithError(err).WithField("file", f.Name).Warn("Skipping attachment that failed to store")
			continue
		}
		stored = append(stored, *toAttachmentResponse(attachment))
	}
	return stored, nil
}

func (s *AttachmentService) store(ctx context.Context, actor Actor, item *models.WorkItem, folder *models.DocumentFolder, attachmentType models.AttachmentType, f UploadedFile) (*models.WorkItemAttachment, error) {
	body, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer body.Close()

	key := storage.ObjectKey(f.Name)
	if err := s.storage.Save(ctx, key, body, f.Size, f.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	attachment := &models.WorkItemAttachment{
		WorkItemID:     item.ID,
		AttachmentType: attachmentType,
		FolderID:       &folder.ID,
		FilePath:       key,
		OriginalName:   storage.SanitizeName(f.Name),
		ContentType:    f.ContentType,
		Size:           f.Size,
		UploadedByID:   &actor.UserID,
	}
	if err := s.attachments.Create(attachment); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("key", key).Warn("Failed to remove orphaned object")
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}
	return attachment, nil
}

// ListByWorkItem lists the files of an item, optionally of one type
func (s *AttachmentService) ListByWorkItem(actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType) ([]AttachmentResponse, error) {
	if attachmentType != "" && !attachmentType.IsValid() {
		return nil, apperrors.NewValidationError("attachment_type", fmt.Sprintf("unknown attachment type %q", attachmentType))
	}
	item, err := s.workItems.GetByID(workItemID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	rows, err := s.attachments.ListByWorkItem(workItemID, attachmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	responses := make([]AttachmentResponse, len(rows))
	for i := range rows {
		responses[i] = *toAttachmentResponse(&rows[i])
	}
	return responses, nil
}

// Move places files into a folder. Every file is checked before any is moved.
func (s *AttachmentService) Move(actor Actor, req *MoveAttachmentsRequest) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	path, err := folderPath(s.folders, req.FolderID)
	if err != nil {
		return err
	}

	ids := uniqueIDs(req.AttachmentIDs)
	attachments, err := s.attachments.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to load attachments: %w", err)
	}
	if len(attachments) != len(ids) {
		return apperrors.ErrAttachmentNotFound
	}

	cycleOf := make(map[uuid.UUID]uuid.UUID)
	for _, a := range attachments {
		cycleID, ok := cycleOf[a.WorkItemID]
		if !ok {
			item, err := s.workItems.GetByID(a.WorkItemID)
			if err != nil {
				return lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
			}
			cycleID = item.WorkCycleID
			cycleOf[a.WorkItemID] = cycleID
		}
		if err := models.ValidateAttachmentPlacement(cycleID, path); err != nil {
			return err
		}
	}

	return s.tx.WithinTransaction(func(stores *repository.Stores) error {
		for _, a := range attachments {
			if err := stores.Attachments.UpdateFolder(a.ID, req.FolderID); err != nil {
				return fmt.Errorf("failed to move attachment: %w", err)
			}
		}
		return nil
	})
}

// Rename changes the display name of a file
func (s *AttachmentService) Rename(actor Actor, id uuid.UUID, req *RenameAttachmentRequest) (*AttachmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	attachment, err := s.attachments.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAttachmentNotFound, "get attachment")
	}
	attachment.OriginalName = storage.SanitizeName(req.Name)
	if err := s.attachments.Update(attachment); err != nil {
		return nil, fmt.Errorf("failed to rename attachment: %w", err)
	}
	return toAttachmentResponse(attachment), nil
}

// Delete removes the stored object and then the row. Owners may delete until the item is submitted.
func (s *AttachmentService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	attachment, err := s.attachments.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrAttachmentNotFound, "get attachment")
	}
	item, err := s.workItems.GetByID(attachment.WorkItemID)
	if err != nil {
		return lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}

	if !actor.IsAdmin() {
		if !actor.Owns(item) {
			return apperrors.ErrPermissionDenied
		}
		if item.IsDone() {
			return apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Completed work items cannot be modified.")
		}
	}

	if err := s.storage.Delete(ctx, attachment.FilePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	if err := s.attachments.Delete(id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// Download opens the stored file for the owner or an admin
func (s *AttachmentService) Download(ctx context.Context, actor Actor, id uuid.UUID) (*Download, error) {
	attachment, err := s.attachments.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAttachmentNotFound, "get attachment")
	}
	item, err := s.workItems.GetByID(attachment.WorkItemID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	body, err := s.storage.Open(ctx, attachment.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Download{
		Name:        storage.SanitizeName(attachment.OriginalName),
		ContentType: contentType,
		Size:        attachment.Size,
		Body:        body,
	}, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func toAttachmentResponse(a *models.WorkItemAttachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:             a.ID,
		WorkItemID:     a.WorkItemID,
		AttachmentType: a.AttachmentType,
		TypeLabel:      a.AttachmentType.Label(),
		FolderID:       a.FolderID,
		OriginalName:   a.OriginalName,
		ContentType:    a.ContentType,
		Size:           a.Size,
		UploadedByID:   a.UploadedByID,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
