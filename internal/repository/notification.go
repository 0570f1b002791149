package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Omit("Recipient", "WorkItem", "WorkCycle").Create(notification).Error
}

// CreateIfAbsent inserts the notification unless one with the same dedup key exists.
// It reports whether a row was written.
func (r *NotificationRepository) CreateIfAbsent(notification *models.Notification) (bool, error) {
	result := r.db.Omit("Recipient", "WorkItem", "WorkCycle").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(notification)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByRecipient retrieves the notifications of a user newest first
func (r *NotificationRepository) ListByRecipient(recipientID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one notification of a recipient as read
func (r *NotificationRepository) MarkRead(id, recipientID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// MarkAllRead marks every unread notification of a recipient as read
func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
