package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkCycle is a reporting task with a due date, fanned out to owners as work items
type WorkCycle struct {
	BaseModel
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	DueAt       time.Time  `json:"due_at" gorm:"not null;index"`
	CreatedByID *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
	IsActive    bool       `json:"is_active" gorm:"not null;index"`

	CreatedBy   *User            `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	Assignments []WorkAssignment `json:"assignments,omitempty" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkCycle
func (WorkCycle) TableName() string {
	return "work_cycles"
}

// Assignee is either a user or a team; the zero value is invalid
type Assignee struct {
	Type AssigneeType
	ID   uuid.UUID
}

// UserAssignee builds the user variant
func UserAssignee(id uuid.UUID) Assignee {
	return Assignee{Type: AssigneeTypeUser, ID: id}
}

// TeamAssignee builds the team variant
func TeamAssignee(id uuid.UUID) Assignee {
	return Assignee{Type: AssigneeTypeTeam, ID: id}
}

// WorkAssignment is the audit record of who a cycle was assigned to
type WorkAssignment struct {
	BaseModel
	WorkCycleID  uuid.UUID    `json:"workcycle_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_assignments_cycle_assignee,priority:1"`
	AssigneeType AssigneeType `json:"assignee_type" gorm:"type:varchar(10);not null;uniqueIndex:idx_work_assignments_cycle_assignee,priority:2;check:chk_work_assignments_assignee_type,assignee_type IN ('user','team')"`
	AssigneeID   uuid.UUID    `json:"assignee_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_assignments_cycle_assignee,priority:3;index"`
}

// TableName returns the table name for WorkAssignment
func (WorkAssignment) TableName() string {
	return "work_assignments"
}

// NewWorkAssignment records an assignee for a cycle
func NewWorkAssignment(workCycleID uuid.UUID, assignee Assignee) WorkAssignment {
	return WorkAssignment{
		WorkCycleID:  workCycleID,
		AssigneeType: assignee.Type,
		AssigneeID:   assignee.ID,
	}
}

