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

	"github.com/google/uuid"
)

const chatPreviewLength = 200

// NotificationService creates and reads in-app notifications
type NotificationService struct {
	notifications repository.NotificationRepositoryInterface
	users         repository.UserRepositoryInterface
	workItems     repository.WorkItemRepositoryInterface
	publisher     events.Publisher
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepositoryInterface, users repository.UserRepositoryInterface, workItems repository.WorkItemRepositoryInterface, publisher events.Publisher) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		workItems:     workItems,
		publisher:     publisher,
	}
}

// NotificationResponse represents a notification returned to its recipient
type NotificationResponse struct {
	ID          uuid.UUID               `json:"id"`
	Type        models.NotificationType `json:"type"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	WorkItemID  *uuid.UUID              `json:"work_item_id,omitempty"`
	WorkCycleID *uuid.UUID              `json:"workcycle_id,omitempty"`
	IsRead      bool                    `json:"is_read"`
	CreatedAt   string                  `json:"created_at"`
}

// Notify stores a notification. With a dedup key an existing row wins and false is returned.
func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) (bool, error) {
	created := true
	if n.DedupKey != nil {
		var err error
		created, err = s.notifications.CreateIfAbsent(n)
		if err != nil {
			return false, fmt.Errorf("failed to create notification: %w", err)
		}
	} else if err := s.notifications.Create(n); err != nil {
		return false, fmt.Errorf("failed to create notification: %w", err)
	}

	if created {
		publish(ctx, s.publisher, events.New(events.NotificationCreated, n.RecipientID.String(), map[string]interface{}{
			"notification_id": n.ID,
			"recipient_id":    n.RecipientID,
			"type":            n.Type,
			"title":           n.Title,
		}))
	}
	return created, nil
}

// NotifySubmission tells every active admin and manager that an item was submitted
func (s *NotificationService) NotifySubmission(ctx context.Context, item *models.WorkItem) error {
	staff, err := s.users.GetActiveByRoles(models.LoginRoleAdmin, models.LoginRoleManager)
	if err != nil {
		return fmt.Errorf("failed to list reviewers: %w", err)
	}

	message := fmt.Sprintf("%s submitted %s", ownerName(item), cycleTitle(item))
	for _, u := range staff {
		if _, err := s.Notify(ctx, &models.Notification{
			RecipientID: u.ID,
			Type:        models.NotificationTypeStatus,
			Title:       "Work Submitted",
			Message:     message,
			WorkItemID:  &item.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

// NotifyReview tells the owner about an approved or revision decision
func (s *NotificationService) NotifyReview(ctx context.Context, item *models.WorkItem) error {
	if item.ReviewDecision != models.ReviewDecisionApproved && item.ReviewDecision != models.ReviewDecisionRevision {
		return nil
	}
	_, err := s.Notify(ctx, &models.Notification{
		RecipientID: item.OwnerID,
		Type:        models.NotificationTypeReview,
		Title:       "Review Update",
		Message:     fmt.Sprintf("Your work was marked as %s", strings.ToUpper(string(item.ReviewDecision))),
		WorkItemID:  &item.ID,
	})
	return err
}

// NotifyChat tells the owner about a message posted by someone else
func (s *NotificationService) NotifyChat(ctx context.Context, item *models.WorkItem, msg *models.WorkItemMessage) error {
	if msg.SenderID == item.OwnerID {
		return nil
	}
	text := msg.Message
	if runes := []rune(text); len(runes) > chatPreviewLength {
		text = string(runes[:chatPreviewLength])
	}
	_, err := s.Notify(ctx, &models.Notification{
		RecipientID: item.OwnerID,
		Type:        models.NotificationTypeChat,
		Title:       "New message",
		Message:     text,
		WorkItemID:  &item.ID,
	})
	return err
}

// RemindDeadlineNear reminds owners of open items due within days of now; returns rows created
func (s *NotificationService) RemindDeadlineNear(ctx context.Context, now time.Time, days int) (int, error) {
	items, err := s.workItems.ListOpenDueBetween(now, now.AddDate(0, 0, days))
	if err != nil {
		return 0, fmt.Errorf("failed to list items due soon: %w", err)
	}

	created := 0
	for i := range items {
		item := &items[i]
		key := fmt.Sprintf("deadline-near:%s", item.ID)
		var dueAt time.Time
		if item.WorkCycle != nil {
			dueAt = item.WorkCycle.DueAt
		}
		ok, err := s.Notify(ctx, &models.Notification{
			RecipientID: item.OwnerID,
			Type:        models.NotificationTypeReminder,
			Title:       "Deadline Approaching",
			Message:     fmt.Sprintf("Your work for '%s' is due on %s.", cycleTitle(item), dueAt.Format("Jan 02, 2006")),
			WorkItemID:  &item.ID,
			WorkCycleID: &item.WorkCycleID,
			DedupKey:    &key,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// NotifyMissedDeadlines alerts every active admin about open items past due; returns rows created
func (s *NotificationService) NotifyMissedDeadlines(ctx context.Context, now time.Time) (int, error) {
	items, err := s.workItems.ListOpenPastDue(now)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue items: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}
	admins, err := s.users.GetActiveByRoles(models.LoginRoleAdmin)
	if err != nil {
		return 0, fmt.Errorf("failed to list admins: %w", err)
	}

	created := 0
	for i := range items {
		item := &items[i]
		for _, admin := range admins {
			key := fmt.Sprintf("missed-deadline:%s:%s", item.ID, admin.ID)
			ok, err := s.Notify(ctx, &models.Notification{
				RecipientID: admin.ID,
				Type:        models.NotificationTypeReminder,
				Title:       "Missed Deadline",
				Message:     fmt.Sprintf("%s missed the deadline for '%s'.", ownerName(item), cycleTitle(item)),
				WorkItemID:  &item.ID,
				WorkCycleID: &item.WorkCycleID,
				DedupKey:    &key,
			})
			if err != nil {
				return created, err
			}
			if ok {
				created++
			}
		}
	}
	return created, nil
}

// NotifyCycleCompleted tells each owner that the cycle closed; returns rows created
func (s *NotificationService) NotifyCycleCompleted(ctx context.Context, cycle *models.WorkCycle, ownerIDs []uuid.UUID) (int, error) {
	created := 0
	for _, ownerID := range ownerIDs {
		key := fmt.Sprintf("cycle-completed:%s:%s", cycle.ID, ownerID)
		ok, err := s.Notify(ctx, &models.Notification{
			RecipientID: ownerID,
			Type:        models.NotificationTypeSystem,
			Title:       "Work Cycle Completed",
			Message:     fmt.Sprintf("The cycle '%s' is now completed.", cycle.Title),
			WorkCycleID: &cycle.ID,
			DedupKey:    &key,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// ListForUser lists a recipient's notifications, newest first
func (s *NotificationService) ListForUser(userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error) {
	rows, err := s.notifications.ListByRecipient(userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	responses := make([]NotificationResponse, len(rows))
	for i := range rows {
		responses[i] = toNotificationResponse(&rows[i])
	}
	return responses, nil
}

// MarkRead marks one of the recipient's notifications as read
func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	n, err := s.notifications.MarkRead(id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	n, err := s.notifications.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}

// notifyQuietly runs a post-commit notification and only logs a failure
func notifyQuietly(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("notification", what).Warn("Failed to send notification")
	}
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		WorkItemID:  n.WorkItemID,
		WorkCycleID: n.WorkCycleID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}

func ownerName(item *models.WorkItem) string {
	if item.Owner == nil {
		return item.OwnerID.String()
	}
	return item.Owner.FullName()
}

func cycleTitle(item *models.WorkItem) string {
	if item.WorkCycle == nil {
		return item.WorkCycleID.String()
	}
	return item.WorkCycle.Title
}
