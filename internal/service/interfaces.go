package service

import (
	"context"
	"time"

	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*CreateUserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(role models.LoginRole) ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List(teamType models.TeamType, parentID *uuid.UUID) ([]TeamResponse, error)
	Tree() ([]TeamNode, error)
	Chain(id uuid.UUID) ([]TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	RemoveMember(teamID, userID uuid.UUID) error
	ListMembers(teamID uuid.UUID) ([]MemberResponse, error)
}

// OnboardingServiceInterface defines the interface for the onboarding wizard
type OnboardingServiceInterface interface {
	State(ctx context.Context, userID uuid.UUID) (*OnboardingState, error)
	Restart(ctx context.Context, userID uuid.UUID) error
	SelectDivision(ctx context.Context, userID, divisionID uuid.UUID) (*OnboardingState, error)
	SelectSection(ctx context.Context, userID, sectionID uuid.UUID) (*OnboardingState, error)
	SelectService(ctx context.Context, userID uuid.UUID, serviceID *uuid.UUID) (*OnboardingState, error)
	SelectUnit(ctx context.Context, userID uuid.UUID, unitID *uuid.UUID) (*OnboardingState, error)
	Complete(ctx context.Context, userID uuid.UUID) (*models.OrgAssignment, error)
}

// WorkCycleServiceInterface defines the interface for work cycle service
type WorkCycleServiceInterface interface {
	CreateWithAssignments(ctx context.Context, actor Actor, req *CreateWorkCycleRequest) (*WorkCycleResponse, error)
	Reassign(ctx context.Context, actor Actor, id uuid.UUID, req *ReassignRequest) (*ReassignResult, error)
	GetByID(id uuid.UUID) (*WorkCycleResponse, error)
	List(active *bool) ([]WorkCycleResponse, error)
	ListItems(id uuid.UUID, includeInactive bool) ([]WorkItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateWorkCycleRequest) (*WorkCycleResponse, error)
	SetActive(id uuid.UUID, active bool) (*WorkCycleResponse, error)
	Delete(id uuid.UUID) error
	AutoCloseCompleted(ctx context.Context) (int, error)
}

// WorkItemServiceInterface defines the interface for work item service
type WorkItemServiceInterface interface {
	List(actor Actor, query ListWorkItemsQuery) ([]WorkItemResponse, error)
	Get(actor Actor, id uuid.UUID) (*WorkItemResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateStatusRequest) (*WorkItemResponse, error)
	UpdateContext(actor Actor, id uuid.UUID, req *UpdateContextRequest) (*WorkItemResponse, error)
	Submit(ctx context.Context, actor Actor, id uuid.UUID, req *SubmitRequest) (*WorkItemResponse, error)
	SetReviewDecision(ctx context.Context, actor Actor, id uuid.UUID, req *ReviewRequest) (*WorkItemResponse, error)
	PostMessage(ctx context.Context, actor Actor, id uuid.UUID, req *PostMessageRequest) (*MessageResponse, error)
	ListMessages(actor Actor, id uuid.UUID) ([]MessageResponse, error)
}

// AttachmentServiceInterface defines the interface for attachment service
type AttachmentServiceInterface interface {
	ResolveFolder(actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType) (*FolderResponse, error)
	Upload(ctx context.Context, actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType, files []UploadedFile) ([]AttachmentResponse, error)
	ListByWorkItem(actor Actor, workItemID uuid.UUID, attachmentType models.AttachmentType) ([]AttachmentResponse, error)
	Move(actor Actor, req *MoveAttachmentsRequest) error
	Rename(actor Actor, id uuid.UUID, req *RenameAttachmentRequest) (*AttachmentResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	Download(ctx context.Context, actor Actor, id uuid.UUID) (*Download, error)
}

// FolderServiceInterface defines the interface for folder service
type FolderServiceInterface interface {
	Root() (*FolderResponse, error)
	Contents(id uuid.UUID) (*FolderContents, error)
	GetPath(id uuid.UUID) ([]FolderResponse, error)
	Create(actor Actor, req *CreateFolderRequest) (*FolderResponse, error)
	Rename(actor Actor, id uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error)
	Move(actor Actor, id uuid.UUID, req *MoveFolderRequest) (*FolderResponse, error)
	Delete(actor Actor, id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Notify(ctx context.Context, n *models.Notification) (bool, error)
	NotifySubmission(ctx context.Context, item *models.WorkItem) error
	NotifyReview(ctx context.Context, item *models.WorkItem) error
	NotifyChat(ctx context.Context, item *models.WorkItem, msg *models.WorkItemMessage) error
	RemindDeadlineNear(ctx context.Context, now time.Time, days int) (int, error)
	NotifyMissedDeadlines(ctx context.Context, now time.Time) (int, error)
	NotifyCycleCompleted(ctx context.Context, cycle *models.WorkCycle, ownerIDs []uuid.UUID) (int, error)
	ListForUser(userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(id, userID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	RefreshWorkCycle(workCycleID uuid.UUID, snapshot bool) (*models.WorkCycleAnalytics, error)
	RefreshUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error)
	GetWorkCycle(workCycleID uuid.UUID) (*models.WorkCycleAnalytics, error)
	GetUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error)
	ListSnapshots(workCycleID uuid.UUID) ([]models.WorkCycleAnalyticsSnapshot, error)
	TeamBreakdown(workCycleID uuid.UUID) ([]TeamAnalyticsResponse, error)
	CompletedWorkSummary() ([]CycleSummary, error)
}
