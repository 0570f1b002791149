//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WorkItemRepositoryTestSuite tests the WorkItemRepository with its cycle and attachment stores
type WorkItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	stores        *Stores
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.stores = NewStores(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkItemRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.stores.Users.Create(user))
	return user
}

func (suite *WorkItemRepositoryTestSuite) createCycle(dueAt time.Time) *models.WorkCycle {
	cycle := suite.factories.WorkCycle.WithDueAt(dueAt)
	suite.Require().NoError(suite.stores.WorkCycles.Create(cycle))
	return cycle
}

func (suite *WorkItemRepositoryTestSuite) createItem(cycle *models.WorkCycle, owner *models.User, status models.WorkItemStatus, active bool) *models.WorkItem {
	item := &models.WorkItem{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkCycleID: cycle.ID,
		OwnerID:     owner.ID,
		Status:      status,
		IsActive:    active,
	}
	suite.Require().NoError(suite.stores.WorkItems.Create(item))
	return item
}

func (suite *WorkItemRepositoryTestSuite) TestOneItemPerCycleAndOwner() {
	owner := suite.createUser()
	cycle := suite.createCycle(time.Now().Add(48 * time.Hour))
	suite.createItem(cycle, owner, models.WorkItemStatusNotStarted, true)

	err := suite.stores.WorkItems.Create(&models.WorkItem{WorkCycleID: cycle.ID, OwnerID: owner.ID, IsActive: true})

	suite.True(IsUniqueViolation(err))

	found, err := suite.stores.WorkItems.GetByCycleAndOwner(cycle.ID, owner.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ReviewDecisionPending, found.ReviewDecision)
}

func (suite *WorkItemRepositoryTestSuite) TestListFilters() {
	alice, bob := suite.createUser(), suite.createUser()
	cycle := suite.createCycle(time.Now().Add(48 * time.Hour))
	suite.createItem(cycle, alice, models.WorkItemStatusDone, true)
	suite.createItem(cycle, bob, models.WorkItemStatusWorkingOnIt, false)

	all, err := suite.stores.WorkItems.List(WorkItemFilter{WorkCycleID: &cycle.ID})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	active, err := suite.stores.WorkItems.List(WorkItemFilter{WorkCycleID: &cycle.ID, ActiveOnly: true})
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(alice.ID, active[0].OwnerID)
	suite.NotNil(active[0].WorkCycle)
	suite.NotNil(active[0].Owner)

	done, err := suite.stores.WorkItems.List(WorkItemFilter{OwnerID: &bob.ID, Status: models.WorkItemStatusDone})
	suite.Require().NoError(err)
	suite.Empty(done)
}

func (suite *WorkItemRepositoryTestSuite) TestOpenItemQueries() {
	now := time.Now()
	owner, other, finished, dropped := suite.createUser(), suite.createUser(), suite.createUser(), suite.createUser()

	soon := suite.createCycle(now.Add(36 * time.Hour))
	late := suite.createCycle(now.Add(-24 * time.Hour))
	archived := suite.createCycle(now.Add(-24 * time.Hour))
	suite.Require().NoError(suite.stores.WorkCycles.SetActive(archived.ID, false))

	dueSoon := suite.createItem(soon, owner, models.WorkItemStatusWorkingOnIt, true)
	suite.createItem(soon, finished, models.WorkItemStatusDone, true)
	suite.createItem(soon, dropped, models.WorkItemStatusNotStarted, false)
	pastDue := suite.createItem(late, other, models.WorkItemStatusNotStarted, true)
	suite.createItem(archived, owner, models.WorkItemStatusNotStarted, true)

	upcoming, err := suite.stores.WorkItems.ListOpenDueBetween(now, now.Add(3*24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	suite.Equal(dueSoon.ID, upcoming[0].ID)

	missed, err := suite.stores.WorkItems.ListOpenPastDue(now)
	suite.Require().NoError(err)
	suite.Require().Len(missed, 1)
	suite.Equal(pastDue.ID, missed[0].ID)
}

func (suite *WorkItemRepositoryTestSuite) TestListCycleProgress() {
	cycle := suite.createCycle(time.Now().Add(48 * time.Hour))
	suite.createItem(cycle, suite.createUser(), models.WorkItemStatusDone, true)
	suite.createItem(cycle, suite.createUser(), models.WorkItemStatusWorkingOnIt, true)
	suite.createItem(cycle, suite.createUser(), models.WorkItemStatusDone, false)
	suite.createItem(cycle, suite.createUser(), models.WorkItemStatusNotStarted, false)

	progress, err := suite.stores.WorkItems.ListCycleProgress()

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.Equal(cycle.ID, progress[0].WorkCycleID)
	suite.Equal(int64(2), progress[0].Total)
	suite.Equal(int64(1), progress[0].Done)
}

func (suite *WorkItemRepositoryTestSuite) TestAttachmentCounts() {
	cycle := suite.createCycle(time.Now().Add(48 * time.Hour))
	first := suite.createItem(cycle, suite.createUser(), models.WorkItemStatusNotStarted, true)
	second := suite.createItem(cycle, suite.createUser(), models.WorkItemStatusNotStarted, true)

	for i, itemID := range []uuid.UUID{first.ID, first.ID, second.ID} {
		suite.Require().NoError(suite.stores.Attachments.Create(&models.WorkItemAttachment{
			WorkItemID:     itemID,
			AttachmentType: models.AttachmentTypeMatrixA,
			FilePath:       uuid.NewString(),
			OriginalName:   []string{"a.xlsx", "b.xlsx", "c.xlsx"}[i],
		}))
	}

	count, err := suite.stores.Attachments.CountByWorkItem(first.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	counts, err := suite.stores.Attachments.CountByWorkItems([]uuid.UUID{first.ID, second.ID})
	suite.Require().NoError(err)
	suite.Equal(2, counts[first.ID])
	suite.Equal(1, counts[second.ID])

	listed, err := suite.stores.Attachments.ListByWorkItem(first.ID, models.AttachmentTypeMatrixA)
	suite.Require().NoError(err)
	suite.Len(listed, 2)
}

func (suite *WorkItemRepositoryTestSuite) TestListWorkCycleIDsByFolder() {
	cycleA := suite.createCycle(time.Now().Add(48 * time.Hour))
	cycleB := suite.createCycle(time.Now().Add(72 * time.Hour))
	itemA := suite.createItem(cycleA, suite.createUser(), models.WorkItemStatusNotStarted, true)
	otherA := suite.createItem(cycleA, suite.createUser(), models.WorkItemStatusNotStarted, true)
	itemB := suite.createItem(cycleB, suite.createUser(), models.WorkItemStatusNotStarted, true)

	root := suite.factories.Folder.System(models.RootFolderName, models.FolderTypeRoot, nil)
	year := suite.factories.Folder.System("2026", models.FolderTypeYear, root)
	category := suite.factories.Folder.System("MATRIX_A", models.FolderTypeCategory, year)
	cycleFolder := suite.factories.Folder.ForCycle(cycleA, category)
	shared := suite.factories.Folder.Manual("Shared", cycleFolder)
	for _, folder := range []*models.DocumentFolder{root, year, category, cycleFolder, shared} {
		suite.Require().NoError(suite.stores.Folders.Create(folder))
	}

	for _, itemID := range []uuid.UUID{itemA.ID, otherA.ID, itemB.ID} {
		suite.Require().NoError(suite.stores.Attachments.Create(&models.WorkItemAttachment{
			WorkItemID:     itemID,
			AttachmentType: models.AttachmentTypeMatrixA,
			FolderID:       &shared.ID,
			FilePath:       uuid.NewString(),
			OriginalName:   "report.xlsx",
		}))
	}

	ids, err := suite.stores.Attachments.ListWorkCycleIDsByFolder(shared.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{cycleA.ID, cycleB.ID}, ids)

	empty, err := suite.stores.Attachments.ListWorkCycleIDsByFolder(cycleFolder.ID)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

// TestWorkItemRepositoryTestSuite runs the test suite
func TestWorkItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemRepositoryTestSuite))
}
