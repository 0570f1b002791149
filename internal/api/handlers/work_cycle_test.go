package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workflow-portal-backend/internal/api/handlers"
	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/mocks"
	"workflow-portal-backend/internal/service"
	"workflow-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkCycleHandlerTestSuite defines the test suite for WorkCycleHandler
type WorkCycleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWorkCycleServiceInterface
	handler     *handlers.WorkCycleHandler
	httpSuite   *testutils.HTTPTestSuite
	adminID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkCycleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWorkCycleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkCycleHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.adminID = uuid.New()

	cycles := suite.httpSuite.Router.Group("/api/v1/workcycles")
	cycles.Use(testutils.AuthenticateAs(suite.adminID, models.LoginRoleAdmin))
	{
		cycles.GET("", suite.handler.ListWorkCycles)
		cycles.POST("", suite.handler.CreateWorkCycle)
		cycles.GET("/:id", suite.handler.GetWorkCycle)
		cycles.GET("/:id/items", suite.handler.ListItems)
		cycles.PUT("/:id", suite.handler.UpdateWorkCycle)
		cycles.DELETE("/:id", suite.handler.DeleteWorkCycle)
		cycles.POST("/:id/reassign", suite.handler.Reassign)
		cycles.POST("/:id/archive", suite.handler.Archive)
		cycles.POST("/:id/restore", suite.handler.Restore)
	}
	// Unauthenticated mount used to check the actor guard
	suite.httpSuite.Router.POST("/anonymous/workcycles", suite.handler.CreateWorkCycle)
}

// TearDownTest cleans up after each test
func (suite *WorkCycleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkCycleHandlerTestSuite) TestCreateWorkCycle() {
	dueAt := time.Date(2026, 11, 30, 17, 0, 0, 0, time.UTC)

	suite.T().Run("Success passes the acting admin", func(t *testing.T) {
		userID := uuid.New()
		suite.mockService.EXPECT().
			CreateWithAssignments(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, actor service.Actor, req *service.CreateWorkCycleRequest) (*service.WorkCycleResponse, error) {
				assert.Equal(t, suite.adminID, actor.UserID)
				assert.True(t, actor.IsAdmin())
				assert.Equal(t, "Q4 budget", req.Title)
				assert.True(t, dueAt.Equal(req.DueAt))
				require.Len(t, req.UserIDs, 1)
				assert.Equal(t, userID, req.UserIDs[0])
				return &service.WorkCycleResponse{ID: uuid.New(), Title: req.Title, DueAt: req.DueAt, IsActive: true, ItemCount: 1}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles", map[string]interface{}{
			"title":    "Q4 budget",
			"due_at":   dueAt.Format(time.RFC3339),
			"user_ids": []string{userID.String()},
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.WorkCycleResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Q4 budget", response.Title)
		assert.Equal(t, 1, response.ItemCount)
	})

	suite.T().Run("No assignees", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateWithAssignments(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("", "Assign the work cycle to at least one user or team."))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles", map[string]interface{}{
			"title":  "Q4 budget",
			"due_at": dueAt.Format(time.RFC3339),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Assign the work cycle to at least one user or team.")
	})

	suite.T().Run("Malformed due date", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles", map[string]interface{}{
			"title":  "Q4 budget",
			"due_at": "next friday",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("No actor", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anonymous/workcycles", map[string]interface{}{
			"title": "Q4 budget",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authentication required")
	})
}

func (suite *WorkCycleHandlerTestSuite) TestListWorkCycles() {
	suite.T().Run("Active filter", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(active *bool) ([]service.WorkCycleResponse, error) {
				require.NotNil(t, active)
				assert.False(t, *active)
				return []service.WorkCycleResponse{{Title: "Archived"}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles?active=false", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Archived")
	})

	suite.T().Run("No filter", func(t *testing.T) {
		suite.mockService.EXPECT().List(nil).Return([]service.WorkCycleResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	suite.T().Run("Invalid flag", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles?active=maybe", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid active flag")
	})
}

func (suite *WorkCycleHandlerTestSuite) TestGetWorkCycle() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles/abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid work cycle ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrWorkCycleNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "work cycle not found")
	})
}

func (suite *WorkCycleHandlerTestSuite) TestListItems() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ListItems(id, true).
		Return([]service.WorkItemResponse{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workcycles/"+id.String()+"/items?include_inactive=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var items []service.WorkItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &items)
	assert.Len(suite.T(), items, 2)
}

func (suite *WorkCycleHandlerTestSuite) TestDeleteWorkCycle() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/workcycles/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Filed documents block deletion", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Delete(id).
			Return(apperrors.NewRuleError(apperrors.ErrFolderNotEmpty, "Work cycle has filed documents and cannot be deleted."))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/workcycles/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "filed documents")
	})
}

func (suite *WorkCycleHandlerTestSuite) TestReassign() {
	id := uuid.New()
	teamID := uuid.New()
	suite.mockService.EXPECT().
		Reassign(gomock.Any(), gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, actor service.Actor, _ uuid.UUID, req *service.ReassignRequest) (*service.ReassignResult, error) {
			assert.Equal(suite.T(), suite.adminID, actor.UserID)
			require.NotNil(suite.T(), req.TeamID)
			assert.Equal(suite.T(), teamID, *req.TeamID)
			assert.Equal(suite.T(), "handover", req.Note)
			return &service.ReassignResult{Created: 2, Deactivated: 1}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles/"+id.String()+"/reassign", map[string]interface{}{
		"team_id": teamID.String(),
		"note":    "handover",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"created":2,"reactivated":0,"deactivated":1}`, recorder.Body.String())
}

func (suite *WorkCycleHandlerTestSuite) TestArchiveAndRestore() {
	id := uuid.New()

	suite.mockService.EXPECT().SetActive(id, false).Return(&service.WorkCycleResponse{ID: id, IsActive: false}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles/"+id.String()+"/archive", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"is_active":false`)

	suite.mockService.EXPECT().SetActive(id, true).Return(&service.WorkCycleResponse{ID: id, IsActive: true}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workcycles/"+id.String()+"/restore", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"is_active":true`)
}

// TestWorkCycleHandlerTestSuite runs the test suite
func TestWorkCycleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkCycleHandlerTestSuite))
}
