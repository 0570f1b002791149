package handlers_test

import (
	"net/http"
	"testing"

	"workflow-portal-backend/internal/api/handlers"
	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/mocks"
	"workflow-portal-backend/internal/service"
	"workflow-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	handler     *handlers.NotificationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	notifications := suite.httpSuite.Router.Group("/api/v1/notifications")
	notifications.Use(testutils.AuthenticateAs(suite.userID, models.LoginRoleUser))
	{
		notifications.GET("", suite.handler.ListNotifications)
		notifications.POST("/read-all", suite.handler.MarkAllRead)
		notifications.POST("/:id/read", suite.handler.MarkRead)
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.mockService.EXPECT().
		ListForUser(suite.userID, true).
		Return([]service.NotificationResponse{{Type: models.NotificationTypeReminder, Title: "Deadline approaching"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?unread_only=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.NotificationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), models.NotificationTypeReminder, response[0].Type)
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().MarkRead(id, suite.userID).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Someone else's notification", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().MarkRead(id, suite.userID).Return(apperrors.ErrNotificationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "notification not found")
	})
}

func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.mockService.EXPECT().MarkAllRead(suite.userID).Return(int64(3), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/read-all", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"updated":3}`, recorder.Body.String())
}

// TestNotificationHandlerTestSuite runs the test suite
func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
