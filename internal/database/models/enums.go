package models

import "strings"

// LoginRole is the portal-wide role of a user
type LoginRole string

const (
	LoginRoleAdmin   LoginRole = "admin"
	LoginRoleManager LoginRole = "manager"
	LoginRoleUser    LoginRole = "user"
)

// IsValid checks if the LoginRole is valid
func (r LoginRole) IsValid() bool {
	switch r {
	case LoginRoleAdmin, LoginRoleManager, LoginRoleUser:
		return true
	}
	return false
}

// TeamType is the level of a team in the org chain
type TeamType string

const (
	TeamTypeDivision TeamType = "division"
	TeamTypeSection  TeamType = "section"
	TeamTypeService  TeamType = "service"
	TeamTypeUnit     TeamType = "unit"
)

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeDivision, TeamTypeSection, TeamTypeService, TeamTypeUnit:
		return true
	}
	return false
}

// Label returns the display name of the team type
func (t TeamType) Label() string {
	switch t {
	case TeamTypeDivision:
		return "Division"
	case TeamTypeSection:
		return "Section"
	case TeamTypeService:
		return "Service"
	case TeamTypeUnit:
		return "Unit"
	}
	return string(t)
}

// MembershipRole is the role of a user inside a team
type MembershipRole string

const (
	MembershipRoleLead   MembershipRole = "lead"
	MembershipRoleMember MembershipRole = "member"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	return r == MembershipRoleLead || r == MembershipRoleMember
}

// WorkItemStatus is the self-service progress axis of a work item
type WorkItemStatus string

const (
	WorkItemStatusNotStarted  WorkItemStatus = "not_started"
	WorkItemStatusWorkingOnIt WorkItemStatus = "working_on_it"
	WorkItemStatusDone        WorkItemStatus = "done"
)

// IsValid checks if the WorkItemStatus is valid
func (s WorkItemStatus) IsValid() bool {
	switch s {
	case WorkItemStatusNotStarted, WorkItemStatusWorkingOnIt, WorkItemStatusDone:
		return true
	}
	return false
}

// ReviewDecision is the review axis of a work item, meaningful once it is done
type ReviewDecision string

const (
	ReviewDecisionPending  ReviewDecision = "pending"
	ReviewDecisionApproved ReviewDecision = "approved"
	ReviewDecisionRevision ReviewDecision = "revision"
)

// IsValid checks if the ReviewDecision is valid
func (d ReviewDecision) IsValid() bool {
	switch d {
	case ReviewDecisionPending, ReviewDecisionApproved, ReviewDecisionRevision:
		return true
	}
	return false
}

// InactiveReason explains why a work item was archived
type InactiveReason string

const (
	InactiveReasonNone       InactiveReason = ""
	InactiveReasonReassigned InactiveReason = "reassigned"
	InactiveReasonArchived   InactiveReason = "archived"
	InactiveReasonManual     InactiveReason = "manual"
)

// AttachmentType classifies an uploaded file
type AttachmentType string

const (
	AttachmentTypeMatrixA AttachmentType = "matrix_a"
	AttachmentTypeMatrixB AttachmentType = "matrix_b"
	AttachmentTypeMOV     AttachmentType = "mov"
)

// IsValid checks if the AttachmentType is valid
func (t AttachmentType) IsValid() bool {
	switch t {
	case AttachmentTypeMatrixA, AttachmentTypeMatrixB, AttachmentTypeMOV:
		return true
	}
	return false
}

// Label returns the display name of the attachment type
func (t AttachmentType) Label() string {
	switch t {
	case AttachmentTypeMatrixA:
		return "Monthly Report Form – Matrix A"
	case AttachmentTypeMatrixB:
		return "Monthly Report Form – Matrix B"
	case AttachmentTypeMOV:
		return "Means of Verification (MOV)"
	}
	return string(t)
}

// CategoryFolderName is the name of the category folder holding this type
func (t AttachmentType) CategoryFolderName() string {
	return strings.ToUpper(string(t))
}

// FolderType is the node type of a document folder
type FolderType string

const (
	FolderTypeRoot       FolderType = "root"
	FolderTypeYear       FolderType = "year"
	FolderTypeCategory   FolderType = "category"
	FolderTypeWorkCycle  FolderType = "workcycle"
	FolderTypeDivision   FolderType = "division"
	FolderTypeSection    FolderType = "section"
	FolderTypeService    FolderType = "service"
	FolderTypeUnit       FolderType = "unit"
	FolderTypeAttachment FolderType = "attachment"
)

// IsValid checks if the FolderType is valid
func (t FolderType) IsValid() bool {
	_, ok := allowedFolderParents[t]
	return ok
}

// Label returns the display name of the folder type
func (t FolderType) Label() string {
	switch t {
	case FolderTypeRoot:
		return "Root"
	case FolderTypeYear:
		return "Year"
	case FolderTypeCategory:
		return "Category"
	case FolderTypeWorkCycle:
		return "Work Cycle"
	case FolderTypeDivision:
		return "Division"
	case FolderTypeSection:
		return "Section"
	case FolderTypeService:
		return "Service"
	case FolderTypeUnit:
		return "Unit"
	case FolderTypeAttachment:
		return "Attachment"
	}
	return string(t)
}

// FolderTypeForTeam maps an org level to its folder type
func FolderTypeForTeam(t TeamType) FolderType {
	return FolderType(t)
}

// NotificationType classifies an in-app notification
type NotificationType string

const (
	NotificationTypeChat     NotificationType = "chat"
	NotificationTypeReview   NotificationType = "review"
	NotificationTypeStatus   NotificationType = "status"
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeSystem   NotificationType = "system"
)

// AssigneeType tags the variant of a work assignment
type AssigneeType string

const (
	AssigneeTypeUser AssigneeType = "user"
	AssigneeTypeTeam AssigneeType = "team"
)

// Timeliness is the reporting classification of a work item against its due date
type Timeliness string

const (
	TimelinessPending    Timeliness = "pending"
	TimelinessInProgress Timeliness = "in_progress"
	TimelinessComplete   Timeliness = "complete"
	TimelinessLate       Timeliness = "late"
	TimelinessOverdue    Timeliness = "overdue"
)
