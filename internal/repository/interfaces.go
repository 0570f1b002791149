package repository

import (
	"time"

	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(role models.LoginRole) ([]models.User, error)
	GetActiveByRoles(roles ...models.LoginRole) ([]models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetBySiblingName(parentID *uuid.UUID, name string) (*models.Team, error)
	List(teamType models.TeamType, parentID *uuid.UUID) ([]models.Team, error)
	GetAll() ([]models.Team, error)
	GetChain(id uuid.UUID) ([]models.Team, error)
	CountChildren(id uuid.UUID) (int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// TeamMembershipRepositoryInterface defines the interface for team membership operations
type TeamMembershipRepositoryInterface interface {
	Create(membership *models.TeamMembership) error
	Get(teamID, userID uuid.UUID) (*models.TeamMembership, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMembership, error)
	GetMemberUserIDs(teamID uuid.UUID) ([]uuid.UUID, error)
	GetOldestByUser(userID uuid.UUID) (*models.TeamMembership, error)
	ListByUsers(userIDs []uuid.UUID) ([]models.TeamMembership, error)
	Delete(teamID, userID uuid.UUID) error
	DeleteByTeam(teamID uuid.UUID) error
}

// OrgAssignmentRepositoryInterface defines the interface for onboarding results
type OrgAssignmentRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.OrgAssignment, error)
	Upsert(assignment *models.OrgAssignment) error
}

// WorkCycleRepositoryInterface defines the interface for work cycle repository operations
type WorkCycleRepositoryInterface interface {
	Create(cycle *models.WorkCycle) error
	GetByID(id uuid.UUID) (*models.WorkCycle, error)
	GetWithAssignments(id uuid.UUID) (*models.WorkCycle, error)
	List(active *bool) ([]models.WorkCycle, error)
	Update(cycle *models.WorkCycle) error
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

// WorkAssignmentRepositoryInterface defines the interface for assignment audit rows
type WorkAssignmentRepositoryInterface interface {
	CreateBatch(assignments []models.WorkAssignment) error
	ListByWorkCycle(workCycleID uuid.UUID) ([]models.WorkAssignment, error)
	DeleteByWorkCycle(workCycleID uuid.UUID) error
	DeleteByAssignee(assignee models.Assignee) error
}

// WorkItemFilter narrows a work item listing; zero fields are ignored
type WorkItemFilter struct {
	OwnerID     *uuid.UUID
	WorkCycleID *uuid.UUID
	Status      models.WorkItemStatus
	ActiveOnly  bool
}

// CycleProgress is the done/total count of active items of one cycle
type CycleProgress struct {
	WorkCycleID uuid.UUID
	Total       int64
	Done        int64
}

// WorkItemRepositoryInterface defines the interface for work item repository operations
type WorkItemRepositoryInterface interface {
	Create(item *models.WorkItem) error
	GetByID(id uuid.UUID) (*models.WorkItem, error)
	GetWithRelations(id uuid.UUID) (*models.WorkItem, error)
	GetByCycleAndOwner(workCycleID, ownerID uuid.UUID) (*models.WorkItem, error)
	List(filter WorkItemFilter) ([]models.WorkItem, error)
	ListOpenDueBetween(from, to time.Time) ([]models.WorkItem, error)
	ListOpenPastDue(now time.Time) ([]models.WorkItem, error)
	ListCycleProgress() ([]CycleProgress, error)
	Save(item *models.WorkItem) error
}

// AttachmentRepositoryInterface defines the interface for work item attachments
type AttachmentRepositoryInterface interface {
	Create(attachment *models.WorkItemAttachment) error
	GetByID(id uuid.UUID) (*models.WorkItemAttachment, error)
	GetByIDs(ids []uuid.UUID) ([]models.WorkItemAttachment, error)
	ListByWorkItem(workItemID uuid.UUID, attachmentType models.AttachmentType) ([]models.WorkItemAttachment, error)
	ListByFolder(folderID uuid.UUID) ([]models.WorkItemAttachment, error)
	CountByWorkItem(workItemID uuid.UUID) (int64, error)
	CountByWorkItems(workItemIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CountByFolder(folderID uuid.UUID) (int64, error)
	ListWorkCycleIDsByFolder(folderID uuid.UUID) ([]uuid.UUID, error)
	UpdateFolder(id uuid.UUID, folderID uuid.UUID) error
	Update(attachment *models.WorkItemAttachment) error
	Delete(id uuid.UUID) error
}

// MessageRepositoryInterface defines the interface for work item chat messages
type MessageRepositoryInterface interface {
	Create(message *models.WorkItemMessage) error
	ListByWorkItem(workItemID uuid.UUID) ([]models.WorkItemMessage, error)
}

// FolderRepositoryInterface defines the interface for document folder operations
type FolderRepositoryInterface interface {
	Create(folder *models.DocumentFolder) error
	GetByID(id uuid.UUID) (*models.DocumentFolder, error)
	GetRoot() (*models.DocumentFolder, error)
	GetByParentAndName(parentID *uuid.UUID, name string) (*models.DocumentFolder, error)
	ListChildren(parentID uuid.UUID) ([]models.DocumentFolder, error)
	GetPath(id uuid.UUID) ([]models.DocumentFolder, error)
	CountChildren(id uuid.UUID) (int64, error)
	CountByWorkCycle(workCycleID uuid.UUID) (int64, error)
	Update(folder *models.DocumentFolder) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for in-app notifications
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	CreateIfAbsent(notification *models.Notification) (bool, error)
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListByRecipient(recipientID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id, recipientID uuid.UUID) (int64, error)
	MarkAllRead(recipientID uuid.UUID) (int64, error)
}

// AnalyticsRepositoryInterface defines the interface for analytics projections
type AnalyticsRepositoryInterface interface {
	UpsertWorkCycle(analytics *models.WorkCycleAnalytics) error
	UpsertTeamWorkCycle(analytics *models.TeamWorkCycleAnalytics) error
	CreateSnapshot(snapshot *models.WorkCycleAnalyticsSnapshot) error
	UpsertUser(analytics *models.UserSubmissionAnalytics) error
	GetWorkCycle(workCycleID uuid.UUID) (*models.WorkCycleAnalytics, error)
	ListTeamWorkCycle(workCycleID uuid.UUID) ([]models.TeamWorkCycleAnalytics, error)
	ListSnapshots(workCycleID uuid.UUID) ([]models.WorkCycleAnalyticsSnapshot, error)
	GetUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error)
}

// TransactionManagerInterface runs a unit of work against transaction-bound stores
type TransactionManagerInterface interface {
	WithinTransaction(fn func(stores *Stores) error) error
}
