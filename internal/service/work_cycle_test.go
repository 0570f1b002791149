package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/mocks"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkCycleServiceTestSuite defines the test suite for WorkCycleService
type WorkCycleServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	repos         *repoMocks
	analytics     *mocks.MockAnalyticsServiceInterface
	notifications *mocks.MockNotificationServiceInterface
	recorder      *events.Recorder
	service       *service.WorkCycleService
}

// SetupTest sets up the test suite
func (suite *WorkCycleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.analytics = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)
	suite.notifications = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.recorder = events.NewRecorder()
	suite.service = service.NewWorkCycleService(suite.repos.stores(), suite.repos.tx, suite.analytics, suite.notifications, suite.recorder, validator.New())
}

// TearDownTest cleans up after each test
func (suite *WorkCycleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkCycleServiceTestSuite) TestCreateWithAssignments_TeamFanOut() {
	teamID := uuid.New()
	memberA, memberB := uuid.New(), uuid.New()
	actor := adminActor()

	suite.repos.expectTransaction()
	suite.repos.teams.EXPECT().GetByID(teamID).Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil)
	suite.repos.memberships.EXPECT().GetMemberUserIDs(teamID).Return([]uuid.UUID{memberA, memberB}, nil)
	suite.repos.workCycles.EXPECT().Create(gomock.Any()).DoAndReturn(func(cycle *models.WorkCycle) error {
		cycle.ID = uuid.New()
		return nil
	})
	suite.repos.assignments.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rows []models.WorkAssignment) error {
		assert.Len(suite.T(), rows, 1)
		assert.Equal(suite.T(), models.AssigneeTypeTeam, rows[0].AssigneeType)
		assert.Equal(suite.T(), teamID, rows[0].AssigneeID)
		return nil
	})
	var owners []uuid.UUID
	suite.repos.workItems.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.WorkItem) error {
		assert.True(suite.T(), item.IsActive)
		assert.Equal(suite.T(), models.WorkItemStatusNotStarted, item.Status)
		owners = append(owners, item.OwnerID)
		return nil
	}).Times(2)
	suite.analytics.EXPECT().RefreshWorkCycle(gomock.Any(), false).Return(&models.WorkCycleAnalytics{}, nil)

	resp, err := suite.service.CreateWithAssignments(context.Background(), actor, &service.CreateWorkCycleRequest{
		Title:  "  Q3 Report ",
		DueAt:  time.Now().Add(72 * time.Hour),
		TeamID: &teamID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Q3 Report", resp.Title)
	assert.Equal(suite.T(), 2, resp.ItemCount)
	assert.Equal(suite.T(), &actor.UserID, resp.CreatedByID)
	assert.Len(suite.T(), resp.Assignments, 1)
	assert.ElementsMatch(suite.T(), []uuid.UUID{memberA, memberB}, owners)
	assert.Equal(suite.T(), []string{events.WorkCycleCreated}, suite.recorder.Types())
}

func (suite *WorkCycleServiceTestSuite) TestCreateWithAssignments_DeduplicatesOwners() {
	teamID := uuid.New()
	shared := uuid.New()

	suite.repos.expectTransaction()
	suite.repos.teams.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
	suite.repos.memberships.EXPECT().GetMemberUserIDs(teamID).Return([]uuid.UUID{shared}, nil)
	suite.repos.users.EXPECT().GetByID(shared).Return(&models.User{}, nil)
	suite.repos.workCycles.EXPECT().Create(gomock.Any()).Return(nil)
	suite.repos.assignments.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)
	suite.repos.workItems.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.analytics.EXPECT().RefreshWorkCycle(gomock.Any(), false).Return(nil, errors.New("analytics down"))

	resp, err := suite.service.CreateWithAssignments(context.Background(), adminActor(), &service.CreateWorkCycleRequest{
		Title:   "Audit",
		DueAt:   time.Now(),
		TeamID:  &teamID,
		UserIDs: []uuid.UUID{shared, shared},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.ItemCount)
}

func (suite *WorkCycleServiceTestSuite) TestCreateWithAssignments_NoAssignees() {
	_, err := suite.service.CreateWithAssignments(context.Background(), adminActor(), &service.CreateWorkCycleRequest{
		Title: "Empty",
		DueAt: time.Now(),
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "Assign the work cycle to at least one user or team.", apperrors.Message(err))
	assert.Empty(suite.T(), suite.recorder.Events())
}

func (suite *WorkCycleServiceTestSuite) TestCreateWithAssignments_UnknownUserRollsBack() {
	userID := uuid.New()

	suite.repos.expectTransaction()
	suite.repos.users.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.CreateWithAssignments(context.Background(), adminActor(), &service.CreateWorkCycleRequest{
		Title:   "Audit",
		DueAt:   time.Now(),
		UserIDs: []uuid.UUID{userID},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	assert.Empty(suite.T(), suite.recorder.Events())
}

func (suite *WorkCycleServiceTestSuite) TestReassign_AddsOnlyMissingOwners() {
	cycle := newCycle("Q3 Report", time.Now().Add(24*time.Hour))
	teamID := uuid.New()
	memberA, memberB, extra := uuid.New(), uuid.New(), uuid.New()
	existing := []models.WorkItem{*newItem(cycle, memberA), *newItem(cycle, memberB)}

	suite.repos.expectTransaction()
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.teams.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
	suite.repos.memberships.EXPECT().GetMemberUserIDs(teamID).Return([]uuid.UUID{memberA, memberB}, nil)
	suite.repos.users.EXPECT().GetByID(extra).Return(&models.User{}, nil)
	suite.repos.workItems.EXPECT().List(repository.WorkItemFilter{WorkCycleID: &cycle.ID}).Return(existing, nil)
	suite.repos.workItems.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.WorkItem) error {
		assert.Equal(suite.T(), extra, item.OwnerID)
		return nil
	}).Times(1)
	suite.repos.workItems.EXPECT().Save(gomock.Any()).Times(0)
	suite.repos.assignments.EXPECT().DeleteByWorkCycle(cycle.ID).Return(nil)
	suite.repos.assignments.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)
	suite.analytics.EXPECT().RefreshWorkCycle(cycle.ID, false).Return(&models.WorkCycleAnalytics{}, nil)

	result, err := suite.service.Reassign(context.Background(), adminActor(), cycle.ID, &service.ReassignRequest{
		TeamID:  &teamID,
		UserIDs: []uuid.UUID{extra},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &service.ReassignResult{Created: 1}, result)
}

func (suite *WorkCycleServiceTestSuite) TestReassign_SameSetIsNoOp() {
	cycle := newCycle("Q3 Report", time.Now().Add(24*time.Hour))
	owner := uuid.New()

	suite.repos.expectTransaction()
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.users.EXPECT().GetByID(owner).Return(&models.User{}, nil)
	suite.repos.workItems.EXPECT().List(gomock.Any()).Return([]models.WorkItem{*newItem(cycle, owner)}, nil)
	suite.repos.assignments.EXPECT().DeleteByWorkCycle(cycle.ID).Return(nil)
	suite.repos.assignments.EXPECT().CreateBatch(gomock.Len(1)).Return(nil)
	suite.analytics.EXPECT().RefreshWorkCycle(cycle.ID, false).Return(&models.WorkCycleAnalytics{}, nil)

	result, err := suite.service.Reassign(context.Background(), adminActor(), cycle.ID, &service.ReassignRequest{UserIDs: []uuid.UUID{owner}})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &service.ReassignResult{}, result)
}

func (suite *WorkCycleServiceTestSuite) TestReassign_ArchivesRemovedAndRestoresReturning() {
	cycle := newCycle("Q3 Report", time.Now().Add(24*time.Hour))
	kept, removed, returning := uuid.New(), uuid.New(), uuid.New()

	archived := newItem(cycle, returning)
	archived.Deactivate(models.InactiveReasonReassigned, "")
	done := newItem(cycle, removed)
	done.Status = models.WorkItemStatusDone
	existing := []models.WorkItem{*newItem(cycle, kept), *done, *archived}

	suite.repos.expectTransaction()
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.users.EXPECT().GetByID(gomock.Any()).Return(&models.User{}, nil).Times(2)
	suite.repos.workItems.EXPECT().List(gomock.Any()).Return(existing, nil)
	saved := map[uuid.UUID]models.WorkItem{}
	suite.repos.workItems.EXPECT().Save(gomock.Any()).DoAndReturn(func(item *models.WorkItem) error {
		saved[item.OwnerID] = *item
		return nil
	}).Times(2)
	suite.repos.assignments.EXPECT().DeleteByWorkCycle(cycle.ID).Return(nil)
	suite.repos.assignments.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	suite.analytics.EXPECT().RefreshWorkCycle(cycle.ID, false).Return(&models.WorkCycleAnalytics{}, nil)

	result, err := suite.service.Reassign(context.Background(), adminActor(), cycle.ID, &service.ReassignRequest{
		UserIDs: []uuid.UUID{kept, returning},
		Note:    "moved to another project",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &service.ReassignResult{Reactivated: 1, Deactivated: 1}, result)

	gone := saved[removed]
	assert.False(suite.T(), gone.IsActive)
	assert.Equal(suite.T(), models.InactiveReasonReassigned, gone.InactiveReason)
	assert.Equal(suite.T(), "moved to another project", gone.InactiveNote)
	assert.Equal(suite.T(), models.WorkItemStatusNotStarted, gone.Status)

	back := saved[returning]
	assert.True(suite.T(), back.IsActive)
	assert.Equal(suite.T(), models.WorkItemStatusNotStarted, back.Status)
	assert.Equal(suite.T(), []string{events.WorkCycleReassigned}, suite.recorder.Types())
}

func (suite *WorkCycleServiceTestSuite) TestReassign_CycleNotFound() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.workCycles.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Reassign(context.Background(), adminActor(), id, &service.ReassignRequest{UserIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkCycleNotFound)
}

func (suite *WorkCycleServiceTestSuite) TestDelete_WithFiledDocuments() {
	cycle := newCycle("Filed", time.Now())
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.folders.EXPECT().CountByWorkCycle(cycle.ID).Return(int64(1), nil)
	suite.repos.workCycles.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.service.Delete(cycle.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFolderNotEmpty)
	assert.Equal(suite.T(), "Work cycle has filed documents and cannot be deleted.", apperrors.Message(err))
}

func (suite *WorkCycleServiceTestSuite) TestSetActive_Unchanged() {
	cycle := newCycle("Open", time.Now())
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.workCycles.EXPECT().SetActive(gomock.Any(), gomock.Any()).Times(0)

	resp, err := suite.service.SetActive(cycle.ID, true)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IsActive)
}

func (suite *WorkCycleServiceTestSuite) TestAutoCloseCompleted() {
	complete := newCycle("Complete", time.Now().Add(-time.Hour))
	owner := uuid.New()
	item := newItem(complete, owner)
	item.Status = models.WorkItemStatusDone

	suite.repos.workItems.EXPECT().ListCycleProgress().Return([]repository.CycleProgress{
		{WorkCycleID: complete.ID, Total: 1, Done: 1},
		{WorkCycleID: uuid.New(), Total: 3, Done: 2},
		{WorkCycleID: uuid.New(), Total: 0, Done: 0},
	}, nil)
	suite.repos.workCycles.EXPECT().GetByID(complete.ID).Return(complete, nil)
	suite.repos.workItems.EXPECT().List(repository.WorkItemFilter{WorkCycleID: &complete.ID, ActiveOnly: true}).Return([]models.WorkItem{*item}, nil)
	suite.repos.workCycles.EXPECT().SetActive(complete.ID, false).Return(nil)
	suite.notifications.EXPECT().NotifyCycleCompleted(gomock.Any(), gomock.Any(), []uuid.UUID{owner}).Return(1, nil)
	suite.analytics.EXPECT().RefreshWorkCycle(complete.ID, true).Return(&models.WorkCycleAnalytics{}, nil)

	closed, err := suite.service.AutoCloseCompleted(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, closed)
	assert.Equal(suite.T(), []string{events.WorkCycleClosed}, suite.recorder.Types())
}

func (suite *WorkCycleServiceTestSuite) TestAutoCloseCompleted_CollectsErrors() {
	failing := uuid.New()
	suite.repos.workItems.EXPECT().ListCycleProgress().Return([]repository.CycleProgress{
		{WorkCycleID: failing, Total: 2, Done: 2},
	}, nil)
	suite.repos.workCycles.EXPECT().GetByID(failing).Return(nil, errors.New("connection reset"))

	closed, err := suite.service.AutoCloseCompleted(context.Background())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection reset")
	assert.Equal(suite.T(), 0, closed)
}

// TestWorkCycleServiceTestSuite runs the test suite
func TestWorkCycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkCycleServiceTestSuite))
}
