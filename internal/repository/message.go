package repository

import (
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for work item chat messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message
func (r *MessageRepository) Create(message *models.WorkItemMessage) error {
	return r.db.Omit("Sender").Create(message).Error
}

// ListByWorkItem retrieves the messages of an item oldest first
func (r *MessageRepository) ListByWorkItem(workItemID uuid.UUID) ([]models.WorkItemMessage, error) {
	var messages []models.WorkItemMessage
	err := r.db.Preload("Sender").
		Where("work_item_id = ?", workItemID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
