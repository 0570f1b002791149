package service

import (
	"context"
	"errors"
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
	"gorm.io/gorm"
)

// WorkCycleService creates work cycles and keeps their work items in step with the assignees
type WorkCycleService struct {
	workCycles    repository.WorkCycleRepositoryInterface
	workItems     repository.WorkItemRepositoryInterface
	folders       repository.FolderRepositoryInterface
	tx            repository.TransactionManagerInterface
	analytics     AnalyticsServiceInterface
	notifications NotificationServiceInterface
	publisher     events.Publisher
	validator     *validator.Validate
}

// NewWorkCycleService creates a new work cycle service
func NewWorkCycleService(stores *repository.Stores, tx repository.TransactionManagerInterface, analytics AnalyticsServiceInterface, notifications NotificationServiceInterface, publisher events.Publisher, validator *validator.Validate) *WorkCycleService {
	return &WorkCycleService{
		workCycles:    stores.WorkCycles,
		workItems:     stores.WorkItems,
		folders:       stores.Folders,
		tx:            tx,
		analytics:     analytics,
		notifications: notifications,
		publisher:     publisher,
		validator:     validator,
	}
}

// CreateWorkCycleRequest represents the request to create and assign a work cycle
type CreateWorkCycleRequest struct {
	Title       string      `json:"title" validate:"required,max=255"`
	Description string      `json:"description"`
	DueAt       time.Time   `json:"due_at" validate:"required"`
	UserIDs     []uuid.UUID `json:"user_ids"`
	TeamID      *uuid.UUID  `json:"team_id,omitempty"`
}

// UpdateWorkCycleRequest represents the request to edit a work cycle
type UpdateWorkCycleRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at" validate:"required"`
}

// ReassignRequest represents the new assignee set of a work cycle
type ReassignRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
	TeamID  *uuid.UUID  `json:"team_id,omitempty"`
	Note    string      `json:"note"`
}

// AssignmentResponse is one assignee of a cycle
type AssignmentResponse struct {
	AssigneeType models.AssigneeType `json:"assignee_type"`
	AssigneeID   uuid.UUID           `json:"assignee_id"`
}

// WorkCycleResponse represents a work cycle
type WorkCycleResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	DueAt       time.Time            `json:"due_at"`
	CreatedByID *uuid.UUID           `json:"created_by_id,omitempty"`
	IsActive    bool                 `json:"is_active"`
	Assignments []AssignmentResponse `json:"assignments,omitempty"`
	ItemCount   int                  `json:"item_count,omitempty"`
	CreatedAt   string               `json:"created_at"`
}

// ReassignResult counts the work item changes made by a reassignment
type ReassignResult struct {
	Created     int `json:"created"`
	Reactivated int `json:"reactivated"`
	Deactivated int `json:"deactivated"`
}

const missingAssigneeMessage = "Assign the work cycle to at least one user or team."

// CreateWithAssignments creates the cycle, its assignment rows and one work item per distinct owner
// in a single transaction.
func (s *WorkCycleService) CreateWithAssignments(ctx context.Context, actor Actor, req *CreateWorkCycleRequest) (*WorkCycleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.UserIDs) == 0 && req.TeamID == nil {
		return nil, apperrors.NewValidationError("", missingAssigneeMessage)
	}

	cycle := &models.WorkCycle{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueAt:       req.DueAt,
		CreatedByID: &actor.UserID,
		IsActive:    true,
	}

	var owners []uuid.UUID
	err := s.tx.WithinTransaction(func(stores *repository.Stores) error {
		assignees, targets, err := resolveAssignees(stores, req.UserIDs, req.TeamID)
		if err != nil {
			return err
		}

		if err := stores.WorkCycles.Create(cycle); err != nil {
			return fmt.Errorf("failed to create work cycle: %w", err)
		}
		rows := assignmentRows(cycle.ID, assignees)
		if err := stores.Assignments.CreateBatch(rows); err != nil {
			return fmt.Errorf("failed to create assignments: %w", err)
		}
		for _, ownerID := range targets {
			if err := stores.WorkItems.Create(models.NewWorkItem(cycle.ID, ownerID)); err != nil {
				return fmt.Errorf("failed to create work item: %w", err)
			}
		}
		cycle.Assignments = rows
		owners = targets
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"workcycle_id": cycle.ID,
		"items":        len(owners),
	}).Info("Work cycle created")

	s.refresh(ctx, cycle.ID, false)
	publish(ctx, s.publisher, events.New(events.WorkCycleCreated, cycle.ID.String(), map[string]interface{}{
		"workcycle_id": cycle.ID,
		"title":        cycle.Title,
		"due_at":       cycle.DueAt,
		"owner_ids":    owners,
	}))

	resp := toWorkCycleResponse(cycle)
	resp.ItemCount = len(owners)
	return resp, nil
}

// Reassign brings the cycle's work items in line with a new assignee set.
// Removed owners are archived, returning owners are reactivated and new owners get a fresh item.
// Repeating the same set changes nothing.
func (s *WorkCycleService) Reassign(ctx context.Context, actor Actor, id uuid.UUID, req *ReassignRequest) (*ReassignResult, error) {
	if len(req.UserIDs) == 0 && req.TeamID == nil {
		return nil, apperrors.NewValidationError("", missingAssigneeMessage)
	}

	result := &ReassignResult{}
	err := s.tx.WithinTransaction(func(stores *repository.Stores) error {
		if _, err := stores.WorkCycles.GetByID(id); err != nil {
			return lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
		}

		assignees, targets, err := resolveAssignees(stores, req.UserIDs, req.TeamID)
		if err != nil {
			return err
		}
		wanted := make(map[uuid.UUID]bool, len(targets))
		for _, ownerID := range targets {
			wanted[ownerID] = true
		}

		existing, err := stores.WorkItems.List(repository.WorkItemFilter{WorkCycleID: &id})
		if err != nil {
			return fmt.Errorf("failed to list work items: %w", err)
		}
		byOwner := make(map[uuid.UUID]*models.WorkItem, len(existing))
		for i := range existing {
			item := &existing[i]
			byOwner[item.OwnerID] = item
			if item.IsActive && !wanted[item.OwnerID] {
				item.Deactivate(models.InactiveReasonReassigned, req.Note)
				if err := stores.WorkItems.Save(item); err != nil {
					return fmt.Errorf("failed to deactivate work item: %w", err)
				}
				result.Deactivated++
			}
		}

		for _, ownerID := range targets {
			item, ok := byOwner[ownerID]
			switch {
			case !ok:
				if err := stores.WorkItems.Create(models.NewWorkItem(id, ownerID)); err != nil {
					return fmt.Errorf("failed to create work item: %w", err)
				}
				result.Created++
			case !item.IsActive:
				item.Reactivate()
				if err := stores.WorkItems.Save(item); err != nil {
					return fmt.Errorf("failed to reactivate work item: %w", err)
				}
				result.Reactivated++
			}
		}

		if err := stores.Assignments.DeleteByWorkCycle(id); err != nil {
			return fmt.Errorf("failed to clear assignments: %w", err)
		}
		if err := stores.Assignments.CreateBatch(assignmentRows(id, assignees)); err != nil {
			return fmt.Errorf("failed to create assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"workcycle_id": id,
		"created":      result.Created,
		"reactivated":  result.Reactivated,
		"deactivated":  result.Deactivated,
	}).Info("Work cycle reassigned")

	s.refresh(ctx, id, false)
	publish(ctx, s.publisher, events.New(events.WorkCycleReassigned, id.String(), map[string]interface{}{
		"workcycle_id": id,
		"performed_by": actor.UserID,
		"created":      result.Created,
		"reactivated":  result.Reactivated,
		"deactivated":  result.Deactivated,
	}))
	return result, nil
}

// GetByID retrieves a cycle with its assignees
func (s *WorkCycleService) GetByID(id uuid.UUID) (*WorkCycleResponse, error) {
	cycle, err := s.workCycles.GetWithAssignments(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	return toWorkCycleResponse(cycle), nil
}

// List retrieves cycles, optionally filtered by the active flag
func (s *WorkCycleService) List(active *bool) ([]WorkCycleResponse, error) {
	cycles, err := s.workCycles.List(active)
	if err != nil {
		return nil, fmt.Errorf("failed to list work cycles: %w", err)
	}
	responses := make([]WorkCycleResponse, len(cycles))
	for i := range cycles {
		responses[i] = *toWorkCycleResponse(&cycles[i])
	}
	return responses, nil
}

// ListItems lists the work items of a cycle
func (s *WorkCycleService) ListItems(id uuid.UUID, includeInactive bool) ([]WorkItemResponse, error) {
	if _, err := s.workCycles.GetByID(id); err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	items, err := s.workItems.List(repository.WorkItemFilter{WorkCycleID: &id, ActiveOnly: !includeInactive})
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

// Update edits the title, description or due date
func (s *WorkCycleService) Update(ctx context.Context, id uuid.UUID, req *UpdateWorkCycleRequest) (*WorkCycleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cycle, err := s.workCycles.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	cycle.Title = strings.TrimSpace(req.Title)
	cycle.Description = req.Description
	cycle.DueAt = req.DueAt
	if err := s.workCycles.Update(cycle); err != nil {
		return nil, fmt.Errorf("failed to update work cycle: %w", err)
	}

	s.refresh(ctx, id, false)
	return toWorkCycleResponse(cycle), nil
}

// SetActive archives or restores a cycle
func (s *WorkCycleService) SetActive(id uuid.UUID, active bool) (*WorkCycleResponse, error) {
	cycle, err := s.workCycles.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	if cycle.IsActive != active {
		if err := s.workCycles.SetActive(id, active); err != nil {
			return nil, fmt.Errorf("failed to update work cycle: %w", err)
		}
		cycle.IsActive = active
	}
	return toWorkCycleResponse(cycle), nil
}

// Delete removes a cycle that has no filed documents
func (s *WorkCycleService) Delete(id uuid.UUID) error {
	if _, err := s.workCycles.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	folders, err := s.folders.CountByWorkCycle(id)
	if err != nil {
		return fmt.Errorf("failed to count work cycle folders: %w", err)
	}
	if folders > 0 {
		return apperrors.NewRuleError(apperrors.ErrFolderNotEmpty, "Work cycle has filed documents and cannot be deleted.")
	}
	if err := s.workCycles.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work cycle: %w", err)
	}
	return nil
}

// AutoCloseCompleted deactivates every active cycle whose active items are all done,
// notifies the owners and snapshots the final analytics. Closing twice is a no-op.
func (s *WorkCycleService) AutoCloseCompleted(ctx context.Context) (int, error) {
	progress, err := s.workItems.ListCycleProgress()
	if err != nil {
		return 0, fmt.Errorf("failed to load cycle progress: %w", err)
	}

	log := logger.WithContext(ctx)
	closed := 0
	var errs []error
	for _, p := range progress {
		if p.Total == 0 || p.Done != p.Total {
			continue
		}
		if err := s.closeCycle(ctx, p.WorkCycleID); err != nil {
			errs = append(errs, err)
			continue
		}
		closed++
		log.WithField("workcycle_id", p.WorkCycleID).Info("Work cycle auto-closed")
	}
	return closed, errors.Join(errs...)
}

func (s *WorkCycleService) closeCycle(ctx context.Context, id uuid.UUID) error {
	cycle, err := s.workCycles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get work cycle %s: %w", id, err)
	}

	items, err := s.workItems.List(repository.WorkItemFilter{WorkCycleID: &id, ActiveOnly: true})
	if err != nil {
		return fmt.Errorf("failed to list work items of %s: %w", id, err)
	}
	if err := s.workCycles.SetActive(id, false); err != nil {
		return fmt.Errorf("failed to close work cycle %s: %w", id, err)
	}
	cycle.IsActive = false

	owners := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		owners = append(owners, item.OwnerID)
	}
	notifyQuietly(ctx, "cycle completed", func() error {
		_, err := s.notifications.NotifyCycleCompleted(ctx, cycle, owners)
		return err
	})
	s.refresh(ctx, id, true)
	publish(ctx, s.publisher, events.New(events.WorkCycleClosed, id.String(), map[string]interface{}{
		"workcycle_id": id,
		"owner_ids":    owners,
	}))
	return nil
}

func (s *WorkCycleService) refresh(ctx context.Context, id uuid.UUID, snapshot bool) {
	if _, err := s.analytics.RefreshWorkCycle(id, snapshot); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("workcycle_id", id).Warn("Failed to refresh work cycle analytics")
	}
}

// resolveAssignees checks the requested users and team and returns the assignee rows
// and the deduplicated owners (team members first, then explicit users)
func resolveAssignees(stores *repository.Stores, userIDs []uuid.UUID, teamID *uuid.UUID) ([]models.Assignee, []uuid.UUID, error) {
	var assignees []models.Assignee
	var owners []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			owners = append(owners, id)
		}
	}

	if teamID != nil {
		if _, err := stores.Teams.GetByID(*teamID); err != nil {
			return nil, nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
		}
		members, err := stores.Memberships.GetMemberUserIDs(*teamID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list team members: %w", err)
		}
		assignees = append(assignees, models.TeamAssignee(*teamID))
		for _, id := range members {
			add(id)
		}
	}

	explicit := make(map[uuid.UUID]bool)
	for _, userID := range userIDs {
		if explicit[userID] {
			continue
		}
		explicit[userID] = true
		if _, err := stores.Users.GetByID(userID); err != nil {
			return nil, nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
		}
		assignees = append(assignees, models.UserAssignee(userID))
		add(userID)
	}
	return assignees, owners, nil
}

func assignmentRows(workCycleID uuid.UUID, assignees []models.Assignee) []models.WorkAssignment {
	rows := make([]models.WorkAssignment, len(assignees))
	for i, a := range assignees {
		rows[i] = models.NewWorkAssignment(workCycleID, a)
	}
	return rows
}

func toWorkCycleResponse(cycle *models.WorkCycle) *WorkCycleResponse {
	resp := &WorkCycleResponse{
		ID:          cycle.ID,
		Title:       cycle.Title,
		Description: cycle.Description,
		DueAt:       cycle.DueAt,
		CreatedByID: cycle.CreatedByID,
		IsActive:    cycle.IsActive,
		CreatedAt:   cycle.CreatedAt.Format(time.RFC3339),
	}
	for _, a := range cycle.Assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{AssigneeType: a.AssigneeType, AssigneeID: a.AssigneeID})
	}
	return resp
}
