package service_test

import (
	"testing"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *repoMocks
	service *service.AnalyticsService
}

// SetupTest sets up the test suite
func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.service = service.NewAnalyticsService(suite.repos.analytics, suite.repos.workCycles, suite.repos.workItems, suite.repos.attachments, suite.repos.memberships, suite.repos.users)
}

// TearDownTest cleans up after each test
func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnalyticsServiceTestSuite) TestRefreshWorkCycle() {
	cycle := newCycle("Q3 Report", time.Now().Add(-time.Hour))
	teamA, teamB := uuid.New(), uuid.New()

	onTime := newItem(cycle, uuid.New())
	onTime.Status = models.WorkItemStatusDone
	early := cycle.DueAt.Add(-24 * time.Hour)
	onTime.SubmittedAt = &early
	onTime.ReviewDecision = models.ReviewDecisionApproved

	overdue := newItem(cycle, uuid.New())
	noTeam := newItem(cycle, uuid.New())
	items := []models.WorkItem{*onTime, *overdue, *noTeam}

	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.workItems.EXPECT().List(repository.WorkItemFilter{WorkCycleID: &cycle.ID, ActiveOnly: true}).Return(items, nil)
	suite.repos.attachments.EXPECT().CountByWorkItems([]uuid.UUID{onTime.ID, overdue.ID, noTeam.ID}).Return(map[uuid.UUID]int{onTime.ID: 3}, nil)
	suite.repos.analytics.EXPECT().UpsertWorkCycle(gomock.Any()).Return(nil)
	suite.repos.memberships.EXPECT().ListByUsers(gomock.Any()).Return([]models.TeamMembership{
		{TeamID: teamA, UserID: onTime.OwnerID},
		{TeamID: teamB, UserID: onTime.OwnerID},
		{TeamID: teamB, UserID: overdue.OwnerID},
	}, nil)
	teamRows := map[uuid.UUID]models.CycleStats{}
	suite.repos.analytics.EXPECT().UpsertTeamWorkCycle(gomock.Any()).DoAndReturn(func(row *models.TeamWorkCycleAnalytics) error {
		teamRows[row.TeamID] = row.CycleStats
		return nil
	}).Times(2)
	suite.repos.analytics.EXPECT().CreateSnapshot(gomock.Any()).Return(nil)

	row, err := suite.service.RefreshWorkCycle(cycle.ID, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, row.TotalItems)
	assert.Equal(suite.T(), 1, row.CompleteCount)
	assert.Equal(suite.T(), 2, row.OverdueCount)
	assert.Equal(suite.T(), 1, row.ApprovedCount)
	assert.Equal(suite.T(), 33.33, row.CompletionRate)
	assert.Equal(suite.T(), 3, row.TotalFiles)
	assert.Equal(suite.T(), 3.0, row.AvgFilesPerSubmission)

	assert.Equal(suite.T(), 1, teamRows[teamA].CompleteCount)
	assert.Equal(suite.T(), 1, teamRows[teamB].TotalItems)
	assert.Equal(suite.T(), 1, teamRows[teamB].OverdueCount)
}

func (suite *AnalyticsServiceTestSuite) TestRefreshWorkCycle_NotFound() {
	id := uuid.New()
	suite.repos.workCycles.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.RefreshWorkCycle(id, false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkCycleNotFound)
}

func (suite *AnalyticsServiceTestSuite) TestRefreshUser_TracksLatestSubmission() {
	userID := uuid.New()
	cycle := newCycle("Q3 Report", time.Now().Add(24*time.Hour))
	older, newer := time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour)
	first := newItem(cycle, userID)
	first.Status = models.WorkItemStatusDone
	first.SubmittedAt = &older
	second := newItem(newCycle("Q4 Report", time.Now().Add(48*time.Hour)), userID)
	second.Status = models.WorkItemStatusDone
	second.SubmittedAt = &newer

	suite.repos.users.EXPECT().GetByID(userID).Return(&models.User{}, nil)
	suite.repos.workItems.EXPECT().List(repository.WorkItemFilter{OwnerID: &userID, ActiveOnly: true}).Return([]models.WorkItem{*first, *second}, nil)
	suite.repos.attachments.EXPECT().CountByWorkItems(gomock.Any()).Return(map[uuid.UUID]int{}, nil)
	suite.repos.analytics.EXPECT().UpsertUser(gomock.Any()).Return(nil)

	row, err := suite.service.RefreshUser(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, row.CompleteCount)
	assert.Equal(suite.T(), 100.0, row.CompletionRate)
	assert.True(suite.T(), row.LastSubmittedAt.Equal(newer))
}

func (suite *AnalyticsServiceTestSuite) TestGetWorkCycle_ComputesOnFirstAccess() {
	cycle := newCycle("Fresh", time.Now().Add(time.Hour))
	suite.repos.analytics.EXPECT().GetWorkCycle(cycle.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.repos.workCycles.EXPECT().GetByID(cycle.ID).Return(cycle, nil)
	suite.repos.workItems.EXPECT().List(gomock.Any()).Return(nil, nil)
	suite.repos.attachments.EXPECT().CountByWorkItems(gomock.Any()).Return(map[uuid.UUID]int{}, nil)
	suite.repos.analytics.EXPECT().UpsertWorkCycle(gomock.Any()).Return(nil)
	suite.repos.memberships.EXPECT().ListByUsers(gomock.Any()).Return(nil, nil)

	row, err := suite.service.GetWorkCycle(cycle.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cycle.ID, row.WorkCycleID)
	assert.Zero(suite.T(), row.TotalItems)
}

func (suite *AnalyticsServiceTestSuite) TestTeamBreakdown() {
	cycleID := uuid.New()
	teamRow := models.TeamWorkCycleAnalytics{
		WorkCycleID: cycleID,
		TeamID:      uuid.New(),
		CycleStats:  models.CycleStats{TotalItems: 4},
		Team:        &models.Team{Name: "Logistics", TeamType: models.TeamTypeSection},
	}
	suite.repos.analytics.EXPECT().GetWorkCycle(cycleID).Return(&models.WorkCycleAnalytics{WorkCycleID: cycleID}, nil)
	suite.repos.analytics.EXPECT().ListTeamWorkCycle(cycleID).Return([]models.TeamWorkCycleAnalytics{teamRow}, nil)

	rows, err := suite.service.TeamBreakdown(cycleID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), "Logistics", rows[0].TeamName)
	assert.Equal(suite.T(), 4, rows[0].TotalItems)
}

func (suite *AnalyticsServiceTestSuite) TestCompletedWorkSummary() {
	cycle := newCycle("Q3 Report", time.Now())
	statuses := []struct {
		done     bool
		decision models.ReviewDecision
	}{
		{true, models.ReviewDecisionApproved},
		{true, models.ReviewDecisionApproved},
		{true, models.ReviewDecisionRevision},
		{true, models.ReviewDecisionPending},
		{false, models.ReviewDecisionPending},
		{false, models.ReviewDecisionPending},
	}
	items := make([]models.WorkItem, len(statuses))
	for i, s := range statuses {
		item := newItem(cycle, uuid.New())
		if s.done {
			item.Status = models.WorkItemStatusDone
		}
		item.ReviewDecision = s.decision
		items[i] = *item
	}

	active := true
	suite.repos.workCycles.EXPECT().List(&active).Return([]models.WorkCycle{*cycle}, nil)
	suite.repos.workItems.EXPECT().List(repository.WorkItemFilter{WorkCycleID: &cycle.ID, ActiveOnly: true}).Return(items, nil)

	summaries, err := suite.service.CompletedWorkSummary()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.CycleSummary{{
		WorkCycleID:   cycle.ID,
		Title:         "Q3 Report",
		DueAt:         cycle.DueAt,
		Total:         6,
		Done:          4,
		PendingReview: 1,
		Revision:      1,
		Approved:      2,
		ApprovalPct:   33.33,
	}}, summaries)
}

// TestAnalyticsServiceTestSuite runs the test suite
func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
