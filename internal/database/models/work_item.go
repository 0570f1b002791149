package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkItem is one owner's instance of a work cycle
type WorkItem struct {
	BaseModel
	WorkCycleID    uuid.UUID      `json:"workcycle_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_items_cycle_owner,priority:1"`
	OwnerID        uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_items_cycle_owner,priority:2;index"`
	Status         WorkItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'not_started';index"`
	StatusLabel    string         `json:"status_label" gorm:"size:255"`
	ReviewDecision ReviewDecision `json:"review_decision" gorm:"type:varchar(20);not null;default:'pending'"`
	Message        string         `json:"message" gorm:"type:text"`
	SubmittedAt    *time.Time     `json:"submitted_at,omitempty"`
	IsActive       bool           `json:"is_active" gorm:"not null;index"`
	InactiveReason InactiveReason `json:"inactive_reason,omitempty" gorm:"type:varchar(20)"`
	InactiveAt     *time.Time     `json:"inactive_at,omitempty"`
	InactiveNote   string         `json:"inactive_note,omitempty" gorm:"type:text"`

	WorkCycle   *WorkCycle           `json:"workcycle,omitempty" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
	Owner       *User                `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Attachments []WorkItemAttachment `json:"attachments,omitempty" gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE"`
	Messages    []WorkItemMessage    `json:"-" gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkItem
func (WorkItem) TableName() string {
	return "work_items"
}

// NewWorkItem returns an active, not started item for owner
func NewWorkItem(workCycleID, ownerID uuid.UUID) *WorkItem {
	return &WorkItem{
		WorkCycleID:    workCycleID,
		OwnerID:        ownerID,
		Status:         WorkItemStatusNotStarted,
		ReviewDecision: ReviewDecisionPending,
		IsActive:       true,
	}
}

// Normalize keeps the status/submitted_at and is_active/inactive_* pairs consistent.
// It runs on every persist through BeforeSave.
func (w *WorkItem) Normalize(now time.Time) {
	if w.Status == WorkItemStatusDone {
		if w.SubmittedAt == nil {
			t := now
			w.SubmittedAt = &t
		}
	} else {
		w.SubmittedAt = nil
	}

	if w.IsActive {
		w.InactiveAt = nil
		w.InactiveReason = InactiveReasonNone
		w.InactiveNote = ""
	} else if w.InactiveAt == nil {
		t := now
		w.InactiveAt = &t
	}
}

// BeforeSave is the single normalization chokepoint for work items
func (w *WorkItem) BeforeSave(tx *gorm.DB) error {
	w.Normalize(time.Now())
	return nil
}

// Deactivate archives the item and resets its progress
func (w *WorkItem) Deactivate(reason InactiveReason, note string) {
	w.IsActive = false
	w.InactiveReason = reason
	w.InactiveNote = note
	w.Status = WorkItemStatusNotStarted
	w.ReviewDecision = ReviewDecisionPending
}

// Reactivate brings an archived item back as not started
func (w *WorkItem) Reactivate() {
	w.IsActive = true
	w.Status = WorkItemStatusNotStarted
	w.ReviewDecision = ReviewDecisionPending
}

// IsDone reports whether the item has been submitted
func (w *WorkItem) IsDone() bool {
	return w.Status == WorkItemStatusDone
}

// Timeliness classifies the item against the cycle due date
func (w *WorkItem) Timeliness(dueAt, now time.Time) Timeliness {
	if w.Status == WorkItemStatusDone {
		if w.SubmittedAt != nil && w.SubmittedAt.After(dueAt) {
			return TimelinessLate
		}
		return TimelinessComplete
	}
	if now.After(dueAt) {
		return TimelinessOverdue
	}
	if w.Status == WorkItemStatusWorkingOnIt {
		return TimelinessInProgress
	}
	return TimelinessPending
}

// WorkItemAttachment is a stored file owned by a work item
type WorkItemAttachment struct {
	BaseModel
	WorkItemID     uuid.UUID      `json:"work_item_id" gorm:"type:uuid;not null;index"`
	AttachmentType AttachmentType `json:"attachment_type" gorm:"type:varchar(20);not null;index"`
	FolderID       *uuid.UUID     `json:"folder_id,omitempty" gorm:"type:uuid;index"`
	FilePath       string         `json:"file_path" gorm:"size:500;not null"`
	OriginalName   string         `json:"original_name" gorm:"size:255;not null"`
	ContentType    string         `json:"content_type" gorm:"size:150"`
	Size           int64          `json:"size"`
	UploadedByID   *uuid.UUID     `json:"uploaded_by_id,omitempty" gorm:"type:uuid"`

	Folder     *DocumentFolder `json:"-" gorm:"foreignKey:FolderID;constraint:OnDelete:SET NULL"`
	UploadedBy *User           `json:"-" gorm:"foreignKey:UploadedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for WorkItemAttachment
func (WorkItemAttachment) TableName() string {
	return "work_item_attachments"
}

// WorkItemMessage is an append-only chat entry on a work item
type WorkItemMessage struct {
	BaseModel
	WorkItemID uuid.UUID `json:"work_item_id" gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID `json:"sender_id" gorm:"type:uuid;not null"`
	SenderRole LoginRole `json:"sender_role" gorm:"type:varchar(20);not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`

	Sender *User `json:"sender,omitempty" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkItemMessage
func (WorkItemMessage) TableName() string {
	return "work_item_messages"
}
