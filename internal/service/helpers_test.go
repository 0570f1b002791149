package service_test

import (
	"time"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/mocks"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// repoMocks holds one mock per repository plus a transaction manager that runs
// callbacks against the same mocks
type repoMocks struct {
	users          *mocks.MockUserRepositoryInterface
	teams          *mocks.MockTeamRepositoryInterface
	memberships    *mocks.MockTeamMembershipRepositoryInterface
	orgAssignments *mocks.MockOrgAssignmentRepositoryInterface
	workCycles     *mocks.MockWorkCycleRepositoryInterface
	assignments    *mocks.MockWorkAssignmentRepositoryInterface
	workItems      *mocks.MockWorkItemRepositoryInterface
	attachments    *mocks.MockAttachmentRepositoryInterface
	messages       *mocks.MockMessageRepositoryInterface
	folders        *mocks.MockFolderRepositoryInterface
	notifications  *mocks.MockNotificationRepositoryInterface
	analytics      *mocks.MockAnalyticsRepositoryInterface
	tx             *mocks.MockTransactionManagerInterface
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	return &repoMocks{
		users:          mocks.NewMockUserRepositoryInterface(ctrl),
		teams:          mocks.NewMockTeamRepositoryInterface(ctrl),
		memberships:    mocks.NewMockTeamMembershipRepositoryInterface(ctrl),
		orgAssignments: mocks.NewMockOrgAssignmentRepositoryInterface(ctrl),
		workCycles:     mocks.NewMockWorkCycleRepositoryInterface(ctrl),
		assignments:    mocks.NewMockWorkAssignmentRepositoryInterface(ctrl),
		workItems:      mocks.NewMockWorkItemRepositoryInterface(ctrl),
		attachments:    mocks.NewMockAttachmentRepositoryInterface(ctrl),
		messages:       mocks.NewMockMessageRepositoryInterface(ctrl),
		folders:        mocks.NewMockFolderRepositoryInterface(ctrl),
		notifications:  mocks.NewMockNotificationRepositoryInterface(ctrl),
		analytics:      mocks.NewMockAnalyticsRepositoryInterface(ctrl),
		tx:             mocks.NewMockTransactionManagerInterface(ctrl),
	}
}

func (m *repoMocks) stores() *repository.Stores {
	return &repository.Stores{
		Users:          m.users,
		Teams:          m.teams,
		Memberships:    m.memberships,
		OrgAssignments: m.orgAssignments,
		WorkCycles:     m.workCycles,
		Assignments:    m.assignments,
		WorkItems:      m.workItems,
		Attachments:    m.attachments,
		Messages:       m.messages,
		Folders:        m.folders,
		Notifications:  m.notifications,
		Analytics:      m.analytics,
	}
}

// expectTransaction runs the next WithinTransaction callback against the mocks
func (m *repoMocks) expectTransaction() *gomock.Call {
	return m.tx.EXPECT().WithinTransaction(gomock.Any()).DoAndReturn(func(fn func(*repository.Stores) error) error {
		return fn(m.stores())
	})
}

func adminActor() service.Actor {
	return service.Actor{UserID: uuid.New(), Role: models.LoginRoleAdmin}
}

func userActor() service.Actor {
	return service.Actor{UserID: uuid.New(), Role: models.LoginRoleUser}
}

func newCycle(title string, dueAt time.Time) *models.WorkCycle {
	return &models.WorkCycle{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     title,
		DueAt:     dueAt,
		IsActive:  true,
	}
}

func newItem(cycle *models.WorkCycle, ownerID uuid.UUID) *models.WorkItem {
	item := models.NewWorkItem(cycle.ID, ownerID)
	item.ID = uuid.New()
	item.WorkCycle = cycle
	return item
}

func folder(name string, folderType models.FolderType, parent *models.DocumentFolder) models.DocumentFolder {
	f := models.DocumentFolder{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		Name:              name,
		FolderType:        folderType,
		IsSystemGenerated: true,
	}
	if parent != nil {
		f.ParentID = &parent.ID
	}
	return f
}
