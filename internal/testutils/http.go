package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"workflow-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a gin router in test mode
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a bare router; handlers under test register their own routes
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// AuthenticateAs stands in for auth.RequireAuth and puts a fixed identity on the context
func AuthenticateAs(userID uuid.UUID, role models.LoginRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", "test-"+string(role))
		c.Set("login_role", role)
		c.Next()
	}
}

// MakeRequest serves a request with body encoded as JSON; a nil body sends none
func (suite *HTTPTestSuite) MakeRequest(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertErrorResponse checks the status and that the "error" field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// AssertStatusResponse checks a file manager envelope: {"status": ..., "message": ...}
func AssertStatusResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, status, message string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, status, body.Status)
	assert.Equal(t, message, body.Message)
}

// ParseJSONResponse decodes the response body into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
