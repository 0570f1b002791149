package models

import (
	"github.com/google/uuid"
)

// Notification is an in-app message for a single recipient
type Notification struct {
	BaseModel
	RecipientID uuid.UUID        `json:"recipient_id" gorm:"type:uuid;not null;index:idx_notifications_recipient_read,priority:1"`
	Type        NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	Title       string           `json:"title" gorm:"size:255;not null"`
	Message     string           `json:"message" gorm:"type:text"`
	WorkItemID  *uuid.UUID       `json:"work_item_id,omitempty" gorm:"type:uuid;index"`
	WorkCycleID *uuid.UUID       `json:"workcycle_id,omitempty" gorm:"type:uuid;index"`
	IsRead      bool             `json:"is_read" gorm:"not null;index:idx_notifications_recipient_read,priority:2"`
	DedupKey    *string          `json:"-" gorm:"size:200;uniqueIndex"`

	Recipient *User      `json:"-" gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	WorkItem  *WorkItem  `json:"-" gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE"`
	WorkCycle *WorkCycle `json:"-" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
