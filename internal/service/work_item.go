package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkItemService drives the status, review and chat lifecycle of work items
type WorkItemService struct {
	workItems     repository.WorkItemRepositoryInterface
	messages      repository.MessageRepositoryInterface
	attachments   repository.AttachmentRepositoryInterface
	uploads       AttachmentServiceInterface
	notifications NotificationServiceInterface
	analytics     AnalyticsServiceInterface
	publisher     events.Publisher
	validator     *validator.Validate
}

// NewWorkItemService creates a new work item service
func NewWorkItemService(stores *repository.Stores, uploads AttachmentServiceInterface, notifications NotificationServiceInterface, analytics AnalyticsServiceInterface, publisher events.Publisher, validator *validator.Validate) *WorkItemService {
	return &WorkItemService{
		workItems:     stores.WorkItems,
		messages:      stores.Messages,
		attachments:   stores.Attachments,
		uploads:       uploads,
		notifications: notifications,
		analytics:     analytics,
		publisher:     publisher,
		validator:     validator,
	}
}

// ListWorkItemsQuery filters a work item listing
type ListWorkItemsQuery struct {
	WorkCycleID     *uuid.UUID
	OwnerID         *uuid.UUID
	Status          models.WorkItemStatus
	IncludeInactive bool
}

// UpdateStatusRequest represents a self-service status change
type UpdateStatusRequest struct {
	Status models.WorkItemStatus `json:"status" validate:"required"`
}

// UpdateContextRequest represents the owner's annotation of an item
type UpdateContextRequest struct {
	StatusLabel string `json:"status_label" validate:"max=255"`
	Message     string `json:"message"`
}

// SubmitRequest carries a submission; files may be empty when attachments already exist
type SubmitRequest struct {
	AttachmentType models.AttachmentType
	Message        string
	Files          []UploadedFile
}

// ReviewRequest represents an admin review decision
type ReviewRequest struct {
	Decision models.ReviewDecision `json:"decision" validate:"required"`
}

// PostMessageRequest represents a chat message
type PostMessageRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

// WorkItemResponse represents a work item
type WorkItemResponse struct {
	ID             uuid.UUID             `json:"id"`
	WorkCycleID    uuid.UUID             `json:"workcycle_id"`
	WorkCycleTitle string                `json:"workcycle_title,omitempty"`
	DueAt          *time.Time            `json:"due_at,omitempty"`
	OwnerID        uuid.UUID             `json:"owner_id"`
	OwnerName      string                `json:"owner_name,omitempty"`
	Status         models.WorkItemStatus `json:"status"`
	StatusLabel    string                `json:"status_label"`
	ReviewDecision models.ReviewDecision `json:"review_decision"`
	Message        string                `json:"message"`
	SubmittedAt    *time.Time            `json:"submitted_at,omitempty"`
	IsActive       bool                  `json:"is_active"`
	InactiveReason models.InactiveReason `json:"inactive_reason,omitempty"`
	InactiveAt     *time.Time            `json:"inactive_at,omitempty"`
	Timeliness     models.Timeliness     `json:"timeliness,omitempty"`
	Attachments    []AttachmentResponse  `json:"attachments,omitempty"`
}

// MessageResponse represents a chat message
type MessageResponse struct {
	ID         uuid.UUID        `json:"id"`
	SenderID   uuid.UUID        `json:"sender_id"`
	SenderName string           `json:"sender_name"`
	SenderRole models.LoginRole `json:"sender_role"`
	Message    string           `json:"message"`
	CreatedAt  string           `json:"created_at"`
}

// List lists work items. Non-staff actors only ever see their own.
func (s *WorkItemService) List(actor Actor, query ListWorkItemsQuery) ([]WorkItemResponse, error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", query.Status))
	}

	filter := repository.WorkItemFilter{
		OwnerID:     query.OwnerID,
		WorkCycleID: query.WorkCycleID,
		Status:      query.Status,
		ActiveOnly:  !query.IncludeInactive,
	}
	if !actor.IsStaff() {
		owner := actor.UserID
		filter.OwnerID = &owner
	}

	items, err := s.workItems.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	now := time.Now()
	responses := make([]WorkItemResponse, len(items))
	for i := range items {
		responses[i] = *toWorkItemResponse(&items[i], now)
	}
	return responses, nil
}

// Get returns an item with its attachments to the owner or staff
func (s *WorkItemService) Get(actor Actor, id uuid.UUID) (*WorkItemResponse, error) {
	item, err := s.workItems.GetWithRelations(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}
	return toWorkItemResponse(item, time.Now()), nil
}

// UpdateStatus moves an open item between not_started and working_on_it
func (s *WorkItemService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateStatusRequest) (*WorkItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.ownedActiveItem(actor, id)
	if err != nil {
		return nil, err
	}
	if item.IsDone() || (req.Status != models.WorkItemStatusNotStarted && req.Status != models.WorkItemStatusWorkingOnIt) {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Invalid status change.")
	}

	if item.Status != req.Status {
		item.Status = req.Status
		if err := s.workItems.Save(item); err != nil {
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
		s.refresh(ctx, item)
	}
	return toWorkItemResponse(item, time.Now()), nil
}

// UpdateContext sets the owner's status label and message on an open item
func (s *WorkItemService) UpdateContext(actor Actor, id uuid.UUID, req *UpdateContextRequest) (*WorkItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.ownedActiveItem(actor, id)
	if err != nil {
		return nil, err
	}
	if item.IsDone() {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Completed work items cannot be modified.")
	}

	item.StatusLabel = strings.TrimSpace(req.StatusLabel)
	item.Message = req.Message
	if err := s.workItems.Save(item); err != nil {
		return nil, fmt.Errorf("failed to update work item: %w", err)
	}
	return toWorkItemResponse(item, time.Now()), nil
}

// Submit stores any new files and marks the item done.
// It fails while the item is done or when it ends up with no attachment at all.
func (s *WorkItemService) Submit(ctx context.Context, actor Actor, id uuid.UUID, req *SubmitRequest) (*WorkItemResponse, error) {
	item, err := s.ownedActiveItem(actor, id)
	if err != nil {
		return nil, err
	}
	if item.IsDone() {
		return nil, apperrors.NewValidationError("", "This work item has already been submitted.")
	}

	attachmentType := req.AttachmentType
	if attachmentType == "" {
		attachmentType = models.AttachmentTypeMOV
	}
	if !attachmentType.IsValid() {
		return nil, apperrors.NewValidationError("attachment_type", fmt.Sprintf("unknown attachment type %q", attachmentType))
	}

	if len(req.Files) > 0 {
		if _, err := s.uploads.Upload(ctx, actor, item.ID, attachmentType, req.Files); err != nil {
			return nil, err
		}
	}

	count, err := s.attachments.CountByWorkItem(item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewValidationError("", "At least one attachment is required.")
	}

	item.Status = models.WorkItemStatusDone
	item.ReviewDecision = models.ReviewDecisionPending
	item.SubmittedAt = nil
	if req.Message != "" {
		item.Message = req.Message
	}
	if err := s.workItems.Save(item); err != nil {
		return nil, fmt.Errorf("failed to submit work item: %w", err)
	}

	logger.WithContext(ctx).WithField("work_item_id", item.ID).Info("Work item submitted")
	full, err := s.workItems.GetWithRelations(item.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "reload work item")
	}

	notifyQuietly(ctx, "submission", func() error { return s.notifications.NotifySubmission(ctx, full) })
	s.refresh(ctx, full)
	publish(ctx, s.publisher, events.New(events.WorkItemSubmitted, full.WorkCycleID.String(), map[string]interface{}{
		"work_item_id": full.ID,
		"workcycle_id": full.WorkCycleID,
		"owner_id":     full.OwnerID,
		"submitted_at": full.SubmittedAt,
	}))
	return toWorkItemResponse(full, time.Now()), nil
}

// SetReviewDecision records an admin decision on a submitted item
func (s *WorkItemService) SetReviewDecision(ctx context.Context, actor Actor, id uuid.UUID, req *ReviewRequest) (*WorkItemResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Decision.IsValid() {
		return nil, apperrors.NewValidationError("decision", fmt.Sprintf("unknown review decision %q", req.Decision))
	}

	item, err := s.workItems.GetWithRelations(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !item.IsDone() {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Only submitted work items can be reviewed.")
	}

	item.ReviewDecision = req.Decision
	if err := s.workItems.Save(item); err != nil {
		return nil, fmt.Errorf("failed to save review decision: %w", err)
	}

	notifyQuietly(ctx, "review", func() error { return s.notifications.NotifyReview(ctx, item) })
	s.refresh(ctx, item)
	publish(ctx, s.publisher, events.New(events.WorkItemReviewed, item.WorkCycleID.String(), map[string]interface{}{
		"work_item_id": item.ID,
		"decision":     item.ReviewDecision,
		"reviewer_id":  actor.UserID,
	}))
	return toWorkItemResponse(item, time.Now()), nil
}

// PostMessage appends a chat message from the owner or an admin
func (s *WorkItemService) PostMessage(ctx context.Context, actor Actor, id uuid.UUID, req *PostMessageRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperrors.NewValidationError("message", "Message cannot be empty.")
	}

	item, err := s.workItems.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	msg := &models.WorkItemMessage{
		WorkItemID: item.ID,
		SenderID:   actor.UserID,
		SenderRole: actor.Role,
		Message:    text,
	}
	if err := s.messages.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	notifyQuietly(ctx, "chat", func() error { return s.notifications.NotifyChat(ctx, item, msg) })
	return toMessageResponse(msg), nil
}

// ListMessages lists the chat of an item in creation order
func (s *WorkItemService) ListMessages(actor Actor, id uuid.UUID) ([]MessageResponse, error) {
	item, err := s.workItems.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) && !actor.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	messages, err := s.messages.ListByWorkItem(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *toMessageResponse(&messages[i])
	}
	return responses, nil
}

func (s *WorkItemService) ownedActiveItem(actor Actor, id uuid.UUID) (*models.WorkItem, error) {
	item, err := s.workItems.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	if !actor.Owns(item) {
		return nil, apperrors.ErrPermissionDenied
	}
	if !item.IsActive {
		return nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "This work item is no longer active.")
	}
	return item, nil
}

// refresh recomputes the cycle and owner projections after a committed change
func (s *WorkItemService) refresh(ctx context.Context, item *models.WorkItem) {
	log := logger.WithContext(ctx).WithField("work_item_id", item.ID)
	if _, err := s.analytics.RefreshWorkCycle(item.WorkCycleID, false); err != nil {
		log.WithError(err).Warn("Failed to refresh work cycle analytics")
	}
	if _, err := s.analytics.RefreshUser(item.OwnerID); err != nil {
		log.WithError(err).Warn("Failed to refresh user analytics")
	}
}

func toWorkItemResponse(item *models.WorkItem, now time.Time) *WorkItemResponse {
	resp := &WorkItemResponse{
		ID:             item.ID,
		WorkCycleID:    item.WorkCycleID,
		OwnerID:        item.OwnerID,
		Status:         item.Status,
		StatusLabel:    item.StatusLabel,
		ReviewDecision: item.ReviewDecision,
		Message:        item.Message,
		SubmittedAt:    item.SubmittedAt,
		IsActive:       item.IsActive,
		InactiveReason: item.InactiveReason,
		InactiveAt:     item.InactiveAt,
	}
	if item.WorkCycle != nil {
		due := item.WorkCycle.DueAt
		resp.WorkCycleTitle = item.WorkCycle.Title
		resp.DueAt = &due
		resp.Timeliness = item.Timeliness(due, now)
	}
	if item.Owner != nil {
		resp.OwnerName = item.Owner.FullName()
	}
	for i := range item.Attachments {
		resp.Attachments = append(resp.Attachments, *toAttachmentResponse(&item.Attachments[i]))
	}
	return resp
}

func toMessageResponse(m *models.WorkItemMessage) *MessageResponse {
	resp := &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderRole: m.SenderRole,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.FullName()
	}
	return resp
}
