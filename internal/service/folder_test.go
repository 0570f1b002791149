package service_test

import (
	"testing"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FolderServiceTestSuite defines the test suite for FolderService
type FolderServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *repoMocks
	service *service.FolderService
}

// SetupTest sets up the test suite
func (suite *FolderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.service = service.NewFolderService(suite.repos.folders, suite.repos.attachments, suite.repos.memberships, suite.repos.teams, validator.New())
}

// TearDownTest cleans up after each test
func (suite *FolderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func manualFolder(name string, parent *models.DocumentFolder) models.DocumentFolder {
	f := folder(name, models.FolderTypeAttachment, parent)
	f.IsSystemGenerated = false
	return f
}

func (suite *FolderServiceTestSuite) TestRoot_CreatedOnFirstUse() {
	suite.repos.folders.EXPECT().GetRoot().Return(nil, gorm.ErrRecordNotFound)
	suite.repos.folders.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.DocumentFolder) error {
		assert.Equal(suite.T(), models.RootFolderName, f.Name)
		assert.Nil(suite.T(), f.ParentID)
		f.ID = uuid.New()
		return nil
	})

	root, err := suite.service.Root()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.FolderTypeRoot, root.FolderType)
}

func (suite *FolderServiceTestSuite) TestRoot_ConcurrentCreateRereads() {
	existing := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	gomock.InOrder(
		suite.repos.folders.EXPECT().GetRoot().Return(nil, gorm.ErrRecordNotFound),
		suite.repos.folders.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey),
		suite.repos.folders.EXPECT().GetRoot().Return(&existing, nil),
	)

	root, err := suite.service.Root()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID, root.ID)
}

func (suite *FolderServiceTestSuite) TestContents() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)
	category := folder("MOV", models.FolderTypeCategory, &year)

	suite.repos.folders.EXPECT().GetPath(year.ID).Return([]models.DocumentFolder{root, year}, nil)
	suite.repos.folders.EXPECT().ListChildren(year.ID).Return([]models.DocumentFolder{category}, nil)
	suite.repos.attachments.EXPECT().ListByFolder(year.ID).Return(nil, nil)

	contents, err := suite.service.Contents(year.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), year.ID, contents.Folder.ID)
	assert.Len(suite.T(), contents.Breadcrumb, 2)
	assert.Equal(suite.T(), "Category", contents.Children[0].TypeLabel)
	assert.Empty(suite.T(), contents.Files)
}

func (suite *FolderServiceTestSuite) TestGetPath_CorruptTreeKeepsTypedError() {
	id := uuid.New()
	suite.repos.folders.EXPECT().GetPath(id).Return(nil, apperrors.NewRuleError(apperrors.ErrCycleDetected, "Folder tree contains a cycle."))

	_, err := suite.service.GetPath(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCycleDetected)
}

func (suite *FolderServiceTestSuite) TestCreate() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)

	suite.Run("manual folder under a year", func() {
		suite.repos.folders.EXPECT().GetPath(year.ID).Return([]models.DocumentFolder{root, year}, nil)
		suite.repos.folders.EXPECT().GetByParentAndName(&year.ID, "Archive").Return(nil, gorm.ErrRecordNotFound)
		suite.repos.folders.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.service.Create(adminActor(), &service.CreateFolderRequest{Name: " Archive ", ParentID: year.ID})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Archive", resp.Name)
		assert.False(suite.T(), resp.IsSystemGenerated)
	})

	suite.Run("manual folder directly under root", func() {
		suite.repos.folders.EXPECT().GetPath(root.ID).Return([]models.DocumentFolder{root}, nil)

		_, err := suite.service.Create(adminActor(), &service.CreateFolderRequest{Name: "Loose", ParentID: root.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrHierarchyViolation)
		assert.Equal(suite.T(), "Manual folders cannot be created directly under ROOT.", apperrors.Message(err))
	})

	suite.Run("sibling name taken", func() {
		taken := manualFolder("Archive", &year)
		suite.repos.folders.EXPECT().GetPath(year.ID).Return([]models.DocumentFolder{root, year}, nil)
		suite.repos.folders.EXPECT().GetByParentAndName(&year.ID, "Archive").Return(&taken, nil)

		_, err := suite.service.Create(adminActor(), &service.CreateFolderRequest{Name: "Archive", ParentID: year.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrFolderExists)
	})

	suite.Run("non-admin", func() {
		_, err := suite.service.Create(userActor(), &service.CreateFolderRequest{Name: "Archive", ParentID: year.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrPermissionDenied)
	})
}

func (suite *FolderServiceTestSuite) TestSystemFoldersAreProtected() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)
	suite.repos.folders.EXPECT().GetByID(year.ID).Return(&year, nil).Times(3)

	_, err := suite.service.Rename(adminActor(), year.ID, &service.RenameFolderRequest{Name: "2027"})
	assert.Equal(suite.T(), "System folders cannot be renamed.", apperrors.Message(err))

	_, err = suite.service.Move(adminActor(), year.ID, &service.MoveFolderRequest{ParentID: uuid.New()})
	assert.Equal(suite.T(), "System folders cannot be moved.", apperrors.Message(err))

	err = suite.service.Delete(adminActor(), year.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSystemFolderProtected)
	assert.Equal(suite.T(), "System folders cannot be deleted.", apperrors.Message(err))
}

func (suite *FolderServiceTestSuite) TestMove_IntoOwnSubtree() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)
	outer := manualFolder("Outer", &year)
	inner := manualFolder("Inner", &outer)

	suite.repos.folders.EXPECT().GetByID(outer.ID).Return(&outer, nil)
	suite.repos.folders.EXPECT().GetPath(inner.ID).Return([]models.DocumentFolder{root, year, outer, inner}, nil)
	suite.repos.folders.EXPECT().Update(gomock.Any()).Times(0)

	_, err := suite.service.Move(adminActor(), outer.ID, &service.MoveFolderRequest{ParentID: inner.ID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCycleDetected)
	assert.Equal(suite.T(), "Cannot move a folder inside itself.", apperrors.Message(err))
}

func (suite *FolderServiceTestSuite) TestMove_RevalidatesFilesInSubtree() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)
	category := folder("MATRIX_A", models.FolderTypeCategory, &year)
	cycleA, cycleB := uuid.New(), uuid.New()
	folderA := folder("Budget Review", models.FolderTypeWorkCycle, &category)
	folderA.WorkCycleID = &cycleA
	folderB := folder("Audit Prep", models.FolderTypeWorkCycle, &category)
	folderB.WorkCycleID = &cycleB
	shared := manualFolder("Shared", &folderA)
	drafts := manualFolder("Drafts", &shared)

	expectMove := func() {
		suite.repos.folders.EXPECT().GetByID(shared.ID).DoAndReturn(func(uuid.UUID) (*models.DocumentFolder, error) {
			moved := shared
			return &moved, nil
		})
		suite.repos.folders.EXPECT().GetPath(folderB.ID).Return([]models.DocumentFolder{root, year, category, folderB}, nil)
		suite.repos.folders.EXPECT().GetByParentAndName(&folderB.ID, "Shared").Return(nil, gorm.ErrRecordNotFound)
	}

	suite.Run("file of the old cycle", func() {
		expectMove()
		suite.repos.attachments.EXPECT().ListWorkCycleIDsByFolder(shared.ID).Return([]uuid.UUID{cycleA}, nil)
		suite.repos.folders.EXPECT().Update(gomock.Any()).Times(0)

		_, err := suite.service.Move(adminActor(), shared.ID, &service.MoveFolderRequest{ParentID: folderB.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPlacement)
		assert.Equal(suite.T(), "File does not belong to this work cycle.", apperrors.Message(err))
	})

	suite.Run("file in a nested subfolder", func() {
		expectMove()
		gomock.InOrder(
			suite.repos.attachments.EXPECT().ListWorkCycleIDsByFolder(shared.ID).Return(nil, nil),
			suite.repos.attachments.EXPECT().ListWorkCycleIDsByFolder(drafts.ID).Return([]uuid.UUID{cycleA}, nil),
		)
		suite.repos.folders.EXPECT().ListChildren(shared.ID).Return([]models.DocumentFolder{drafts}, nil)
		suite.repos.folders.EXPECT().Update(gomock.Any()).Times(0)

		_, err := suite.service.Move(adminActor(), shared.ID, &service.MoveFolderRequest{ParentID: folderB.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPlacement)
	})

	suite.Run("files of the new cycle", func() {
		expectMove()
		suite.repos.attachments.EXPECT().ListWorkCycleIDsByFolder(shared.ID).Return([]uuid.UUID{cycleB}, nil)
		suite.repos.attachments.EXPECT().ListWorkCycleIDsByFolder(drafts.ID).Return(nil, nil)
		suite.repos.folders.EXPECT().ListChildren(shared.ID).Return([]models.DocumentFolder{drafts}, nil)
		suite.repos.folders.EXPECT().ListChildren(drafts.ID).Return(nil, nil)
		suite.repos.folders.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *models.DocumentFolder) error {
			assert.Equal(suite.T(), folderB.ID, *f.ParentID)
			return nil
		})

		resp, err := suite.service.Move(adminActor(), shared.ID, &service.MoveFolderRequest{ParentID: folderB.ID})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), folderB.ID, *resp.ParentID)
	})
}

func (suite *FolderServiceTestSuite) TestDelete() {
	root := folder(models.RootFolderName, models.FolderTypeRoot, nil)
	year := folder("2026", models.FolderTypeYear, &root)
	target := manualFolder("Archive", &year)

	suite.Run("has subfolders", func() {
		suite.repos.folders.EXPECT().GetByID(target.ID).Return(&target, nil)
		suite.repos.folders.EXPECT().CountChildren(target.ID).Return(int64(2), nil)

		err := suite.service.Delete(adminActor(), target.ID)

		assert.ErrorIs(suite.T(), err, apperrors.ErrFolderNotEmpty)
		assert.Equal(suite.T(), "Folder must be empty. Remove subfolders first.", apperrors.Message(err))
	})

	suite.Run("has files", func() {
		suite.repos.folders.EXPECT().GetByID(target.ID).Return(&target, nil)
		suite.repos.folders.EXPECT().CountChildren(target.ID).Return(int64(0), nil)
		suite.repos.attachments.EXPECT().CountByFolder(target.ID).Return(int64(1), nil)

		err := suite.service.Delete(adminActor(), target.ID)

		assert.Equal(suite.T(), "Folder must be empty. Remove files first.", apperrors.Message(err))
	})

	suite.Run("empty", func() {
		suite.repos.folders.EXPECT().GetByID(target.ID).Return(&target, nil)
		suite.repos.folders.EXPECT().CountChildren(target.ID).Return(int64(0), nil)
		suite.repos.attachments.EXPECT().CountByFolder(target.ID).Return(int64(0), nil)
		suite.repos.folders.EXPECT().Delete(target.ID).Return(nil)

		assert.NoError(suite.T(), suite.service.Delete(adminActor(), target.ID))
	})

	suite.Run("missing", func() {
		id := uuid.New()
		suite.repos.folders.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(suite.T(), suite.service.Delete(adminActor(), id), apperrors.ErrFolderNotFound)
	})
}

// TestFolderServiceTestSuite runs the test suite
func TestFolderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FolderServiceTestSuite))
}
