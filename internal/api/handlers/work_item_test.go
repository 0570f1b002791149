package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

const testUploadLimit = 4 << 10

// WorkItemHandlerTestSuite defines the test suite for WorkItemHandler
type WorkItemHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockWorkItems   *mocks.MockWorkItemServiceInterface
	mockAttachments *mocks.MockAttachmentServiceInterface
	handler         *handlers.WorkItemHandler
	httpSuite       *testutils.HTTPTestSuite
	ownerID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkItemHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkItems = mocks.NewMockWorkItemServiceInterface(suite.ctrl)
	suite.mockAttachments = mocks.NewMockAttachmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkItemHandler(suite.mockWorkItems, suite.mockAttachments, testUploadLimit)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ownerID = uuid.New()

	items := suite.httpSuite.Router.Group("/api/v1/work-items")
	items.Use(testutils.AuthenticateAs(suite.ownerID, models.LoginRoleUser))
	{
		items.GET("", suite.handler.ListWorkItems)
		items.GET("/:id", suite.handler.GetWorkItem)
		items.PATCH("/:id/status", suite.handler.UpdateStatus)
		items.PATCH("/:id/context", suite.handler.UpdateContext)
		items.POST("/:id/submit", suite.handler.Submit)
		items.POST("/:id/review", suite.handler.Review)
		items.GET("/:id/messages", suite.handler.ListMessages)
		items.POST("/:id/messages", suite.handler.PostMessage)
		items.GET("/:id/attachments", suite.handler.ListAttachments)
		items.POST("/:id/attachments", suite.handler.UploadAttachments)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkItemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

type multipartFile struct {
	name    string
	content string
}

// postMultipart sends a multipart request with the given fields and "files" parts
func (suite *WorkItemHandlerTestSuite) postMultipart(url string, fields map[string]string, files []multipartFile) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(suite.T(), writer.WriteField(key, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.name)
		require.NoError(suite.T(), err)
		_, err = io.WriteString(part, f.content)
		require.NoError(suite.T(), err)
	}
	require.NoError(suite.T(), writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *WorkItemHandlerTestSuite) TestListWorkItems() {
	suite.T().Run("Passes filters and actor", func(t *testing.T) {
		cycleID := uuid.New()
		suite.mockWorkItems.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(actor service.Actor, query service.ListWorkItemsQuery) ([]service.WorkItemResponse, error) {
				assert.Equal(t, suite.ownerID, actor.UserID)
				assert.False(t, actor.IsStaff())
				require.NotNil(t, query.WorkCycleID)
				assert.Equal(t, cycleID, *query.WorkCycleID)
				assert.Nil(t, query.OwnerID)
				assert.Equal(t, models.WorkItemStatusDone, query.Status)
				assert.True(t, query.IncludeInactive)
				return []service.WorkItemResponse{{ID: uuid.New(), OwnerID: suite.ownerID}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/work-items?workcycle_id="+cycleID.String()+"&status=done&include_inactive=true", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid owner filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-items?owner_id=me", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid owner_id")
	})
}

func (suite *WorkItemHandlerTestSuite) TestGetWorkItem() {
	suite.T().Run("Foreign item", func(t *testing.T) {
		id := uuid.New()
		suite.mockWorkItems.EXPECT().Get(gomock.Any(), id).Return(nil, apperrors.ErrPermissionDenied)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-items/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "You do not have permission to perform this action.")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-items/x", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid work item ID")
	})
}

func (suite *WorkItemHandlerTestSuite) TestUpdateStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockWorkItems.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, &service.UpdateStatusRequest{Status: models.WorkItemStatusWorkingOnIt}).
			Return(&service.WorkItemResponse{ID: id, Status: models.WorkItemStatusWorkingOnIt}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-items/"+id.String()+"/status", map[string]interface{}{
			"status": "working_on_it",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"working_on_it"`)
	})

	suite.T().Run("Rejected transition", func(t *testing.T) {
		id := uuid.New()
		suite.mockWorkItems.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.NewRuleError(apperrors.ErrInvalidTransition, "Use submit to mark a work item as done."))

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-items/"+id.String()+"/status", map[string]interface{}{
			"status": "done",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Use submit")
	})
}

func (suite *WorkItemHandlerTestSuite) TestUpdateContext() {
	id := uuid.New()
	suite.mockWorkItems.EXPECT().
		UpdateContext(gomock.Any(), id, &service.UpdateContextRequest{StatusLabel: "Waiting on finance", Message: "eta friday"}).
		Return(&service.WorkItemResponse{ID: id, StatusLabel: "Waiting on finance"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-items/"+id.String()+"/context", map[string]interface{}{
		"status_label": "Waiting on finance",
		"message":      "eta friday",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *WorkItemHandlerTestSuite) TestSubmit() {
	suite.T().Run("Multipart with files", func(t *testing.T) {
		id := uuid.New()
		suite.mockWorkItems.EXPECT().
			Submit(gomock.Any(), gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, actor service.Actor, _ uuid.UUID, req *service.SubmitRequest) (*service.WorkItemResponse, error) {
				assert.Equal(t, suite.ownerID, actor.UserID)
				assert.Equal(t, models.AttachmentTypeMatrixB, req.AttachmentType)
				assert.Equal(t, "final numbers", req.Message)
				require.Len(t, req.Files, 2)
				assert.Equal(t, "report.xlsx", req.Files[0].Name)
				assert.Equal(t, int64(len("sheet-data")), req.Files[0].Size)

				rc, err := req.Files[0].Open()
				require.NoError(t, err)
				defer rc.Close()
				content, err := io.ReadAll(rc)
				require.NoError(t, err)
				assert.Equal(t, "sheet-data", string(content))

				return &service.WorkItemResponse{ID: id, Status: models.WorkItemStatusDone}, nil
			})

		recorder := suite.postMultipart("/api/v1/work-items/"+id.String()+"/submit",
			map[string]string{"attachment_type": "matrix_b", "message": "final numbers"},
			[]multipartFile{{name: "report.xlsx", content: "sheet-data"}, {name: "notes.pdf", content: "pdf"}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"done"`)
	})

	suite.T().Run("Without a multipart body", func(t *testing.T) {
		id := uuid.New()
		suite.mockWorkItems.EXPECT().
			Submit(gomock.Any(), gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, req *service.SubmitRequest) (*service.WorkItemResponse, error) {
				assert.Empty(t, req.Files)
				assert.Empty(t, req.AttachmentType)
				return nil, apperrors.NewValidationError("files", "Attach at least one file before submitting.")
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-items/"+id.String()+"/submit", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Attach at least one file")
	})

	suite.T().Run("Body over the upload limit", func(t *testing.T) {
		id := uuid.New()

		recorder := suite.postMultipart("/api/v1/work-items/"+id.String()+"/submit",
			map[string]string{"attachment_type": "mov"},
			[]multipartFile{{name: "big.bin", content: strings.Repeat("x", 2*testUploadLimit)}})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *WorkItemHandlerTestSuite) TestReview() {
	id := uuid.New()
	suite.mockWorkItems.EXPECT().
		SetReviewDecision(gomock.Any(), gomock.Any(), id, &service.ReviewRequest{Decision: models.ReviewDecisionRevision}).
		Return(&service.WorkItemResponse{ID: id, ReviewDecision: models.ReviewDecisionRevision}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-items/"+id.String()+"/review", map[string]interface{}{
		"decision": "revision",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"review_decision":"revision"`)
}

func (suite *WorkItemHandlerTestSuite) TestMessages() {
	id := uuid.New()

	suite.mockWorkItems.EXPECT().
		PostMessage(gomock.Any(), gomock.Any(), id, &service.PostMessageRequest{Message: "uploaded v2"}).
		Return(&service.MessageResponse{ID: uuid.New(), SenderID: suite.ownerID, Message: "uploaded v2"}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-items/"+id.String()+"/messages", map[string]interface{}{
		"message": "uploaded v2",
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	suite.mockWorkItems.EXPECT().
		ListMessages(gomock.Any(), id).
		Return([]service.MessageResponse{{Message: "hello"}, {Message: "uploaded v2"}}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-items/"+id.String()+"/messages", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var messages []service.MessageResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &messages)
	assert.Len(suite.T(), messages, 2)
}

func (suite *WorkItemHandlerTestSuite) TestAttachments() {
	id := uuid.New()

	suite.mockAttachments.EXPECT().
		ListByWorkItem(gomock.Any(), id, models.AttachmentTypeMatrixA).
		Return([]service.AttachmentResponse{{OriginalName: "a.xlsx"}}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-items/"+id.String()+"/attachments?attachment_type=matrix_a", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "a.xlsx")

	suite.mockAttachments.EXPECT().
		Upload(gomock.Any(), gomock.Any(), id, models.AttachmentTypeMOV, gomock.Len(1)).
		Return([]service.AttachmentResponse{{OriginalName: "minutes.pdf", AttachmentType: models.AttachmentTypeMOV}}, nil)
	recorder = suite.postMultipart("/api/v1/work-items/"+id.String()+"/attachments",
		map[string]string{"attachment_type": "mov"},
		[]multipartFile{{name: "minutes.pdf", content: "pdf"}})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "minutes.pdf")
}

// TestWorkItemHandlerTestSuite runs the test suite
func TestWorkItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemHandlerTestSuite))
}
