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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *repoMocks
	service *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.service = service.NewTeamService(suite.repos.teams, suite.repos.memberships, suite.repos.users, suite.repos.tx, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func team(name string, teamType models.TeamType, parent *models.Team) models.Team {
	t := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name, TeamType: teamType}
	if parent != nil {
		t.ParentID = &parent.ID
	}
	return t
}

func (suite *TeamServiceTestSuite) TestCreate() {
	division := team("Operations", models.TeamTypeDivision, nil)
	section := team("Logistics", models.TeamTypeSection, &division)

	suite.Run("division at top level", func() {
		suite.repos.teams.EXPECT().GetBySiblingName(nil, "Finance").Return(nil, gorm.ErrRecordNotFound)
		suite.repos.teams.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.service.Create(&service.CreateTeamRequest{Name: "Finance", TeamType: models.TeamTypeDivision})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Division", resp.TypeLabel)
	})

	suite.Run("unit under a section", func() {
		suite.repos.teams.EXPECT().GetChain(section.ID).Return([]models.Team{division, section}, nil)
		suite.repos.teams.EXPECT().GetBySiblingName(&section.ID, "Stores").Return(nil, gorm.ErrRecordNotFound)
		suite.repos.teams.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.service.Create(&service.CreateTeamRequest{Name: "Stores", TeamType: models.TeamTypeUnit, ParentID: &section.ID})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), &section.ID, resp.ParentID)
	})

	suite.Run("unit under a division", func() {
		suite.repos.teams.EXPECT().GetChain(division.ID).Return([]models.Team{division}, nil)

		_, err := suite.service.Create(&service.CreateTeamRequest{Name: "Stores", TeamType: models.TeamTypeUnit, ParentID: &division.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrHierarchyViolation)
		assert.Equal(suite.T(), "Unit must belong under: Section, Service", apperrors.Message(err))
	})

	suite.Run("section without parent", func() {
		_, err := suite.service.Create(&service.CreateTeamRequest{Name: "Loose", TeamType: models.TeamTypeSection})

		assert.Equal(suite.T(), "Section must have a parent team.", apperrors.Message(err))
	})

	suite.Run("duplicate sibling", func() {
		existing := team("Logistics", models.TeamTypeSection, &division)
		suite.repos.teams.EXPECT().GetChain(division.ID).Return([]models.Team{division}, nil)
		suite.repos.teams.EXPECT().GetBySiblingName(&division.ID, "Logistics").Return(&existing, nil)

		_, err := suite.service.Create(&service.CreateTeamRequest{Name: "Logistics", TeamType: models.TeamTypeSection, ParentID: &division.ID})

		assert.ErrorIs(suite.T(), err, apperrors.ErrTeamExists)
	})

	suite.Run("invalid type", func() {
		_, err := suite.service.Create(&service.CreateTeamRequest{Name: "X", TeamType: "branch"})

		assert.Error(suite.T(), err)
		assert.Contains(suite.T(), err.Error(), "validation failed")
	})
}

func (suite *TeamServiceTestSuite) TestTree() {
	division := team("Operations", models.TeamTypeDivision, nil)
	section := team("Logistics", models.TeamTypeSection, &division)
	unit := team("Stores", models.TeamTypeUnit, &section)
	suite.repos.teams.EXPECT().GetAll().Return([]models.Team{unit, division, section}, nil)

	tree, err := suite.service.Tree()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tree, 1)
	assert.Equal(suite.T(), "Operations", tree[0].Name)
	assert.Equal(suite.T(), "Logistics", tree[0].Children[0].Name)
	assert.Equal(suite.T(), "Stores", tree[0].Children[0].Children[0].Name)
	assert.Empty(suite.T(), tree[0].Children[0].Children[0].Children)
}

func (suite *TeamServiceTestSuite) TestDelete() {
	id := uuid.New()

	suite.Run("with children", func() {
		suite.repos.expectTransaction()
		suite.repos.teams.EXPECT().GetByID(id).Return(&models.Team{}, nil)
		suite.repos.teams.EXPECT().CountChildren(id).Return(int64(1), nil)

		err := suite.service.Delete(id)

		assert.ErrorIs(suite.T(), err, apperrors.ErrTeamHasChildren)
		assert.Equal(suite.T(), "Remove child teams before deleting this team.", apperrors.Message(err))
	})

	suite.Run("leaf team drops memberships and assignments", func() {
		suite.repos.expectTransaction()
		suite.repos.teams.EXPECT().GetByID(id).Return(&models.Team{}, nil)
		suite.repos.teams.EXPECT().CountChildren(id).Return(int64(0), nil)
		suite.repos.memberships.EXPECT().DeleteByTeam(id).Return(nil)
		suite.repos.assignments.EXPECT().DeleteByAssignee(models.TeamAssignee(id)).Return(nil)
		suite.repos.teams.EXPECT().Delete(id).Return(nil)

		assert.NoError(suite.T(), suite.service.Delete(id))
	})
}

func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "jdoe", FirstName: "Jane", LastName: "Doe"}

	suite.Run("defaults to member", func() {
		suite.repos.teams.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
		suite.repos.users.EXPECT().GetByID(user.ID).Return(user, nil)
		suite.repos.memberships.EXPECT().Get(teamID, user.ID).Return(nil, gorm.ErrRecordNotFound)
		suite.repos.memberships.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.service.AddMember(teamID, &service.AddMemberRequest{UserID: user.ID})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), models.MembershipRoleMember, resp.Role)
		assert.Equal(suite.T(), "Jane Doe", resp.FullName)
	})

	suite.Run("already a member", func() {
		suite.repos.teams.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
		suite.repos.users.EXPECT().GetByID(user.ID).Return(user, nil)
		suite.repos.memberships.EXPECT().Get(teamID, user.ID).Return(&models.TeamMembership{}, nil)

		_, err := suite.service.AddMember(teamID, &service.AddMemberRequest{UserID: user.ID, Role: models.MembershipRoleLead})

		assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
	})
}

func (suite *TeamServiceTestSuite) TestRemoveMember_NotFound() {
	teamID, userID := uuid.New(), uuid.New()
	suite.repos.memberships.EXPECT().Delete(teamID, userID).Return(gorm.ErrRecordNotFound)

	err := suite.service.RemoveMember(teamID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
