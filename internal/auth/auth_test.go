package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/mocks"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-signing-key"

func newUser(t *testing.T, username, password string, role models.LoginRole, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: username, LoginRole: role, PasswordHash: string(hash), IsActive: active}
	user.ID = uuid.New()
	return user
}

func newService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := NewAuthService(users, testSecret, time.Hour)
	require.NoError(t, err)
	return svc, users
}

func TestNewAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewAuthService(nil, "", time.Hour)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("non-positive ttl defaults to one hour", func(t *testing.T) {
		svc, err := NewAuthService(nil, testSecret, 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.ttl)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		svc, users := newService(t)
		user := newUser(t, "jdoe", "s3cret-pass", models.LoginRoleManager, true)
		users.EXPECT().GetByUsername("jdoe").Return(user, nil)

		resp, err := svc.Login("jdoe", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresInSeconds)
		assert.Equal(t, models.LoginRoleManager, resp.LoginRole)

		claims, err := svc.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "jdoe", claims.Username)
		assert.Equal(t, models.LoginRoleManager, claims.LoginRole)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users := newService(t)
		users.EXPECT().GetByUsername("jdoe").Return(newUser(t, "jdoe", "s3cret-pass", models.LoginRoleUser, true), nil)

		_, err := svc.Login("jdoe", "nope")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users := newService(t)
		users.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login("ghost", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, users := newService(t)
		users.EXPECT().GetByUsername("old").Return(newUser(t, "old", "s3cret-pass", models.LoginRoleUser, false), nil)

		_, err := svc.Login("old", "s3cret-pass")
		assert.ErrorIs(t, err, apperrors.ErrInactiveUser)
	})
}

func TestValidateJWT(t *testing.T) {
	svc, _ := newService(t)
	user := newUser(t, "jdoe", "pw-123456", models.LoginRoleUser, true)

	t.Run("expired token", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		svc.now = time.Now

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := NewAuthService(nil, "another-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: user.ID})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(raw)
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := newService(t)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetLoginRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireRole(models.LoginRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	user := newUser(t, "jdoe", "pw-123456", models.LoginRoleUser, true)
	userToken, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	admin := newUser(t, "root", "pw-123456", models.LoginRoleAdmin, true)
	adminToken, err := svc.GenerateJWT(admin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"not a bearer header", "/me", "Token " + userToken, http.StatusUnauthorized},
		{"garbage token", "/me", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + userToken, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("context carries user id and role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["user_id"])
		assert.Equal(t, "user", body["role"])
	})
}

func TestHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	userService := mocks.NewMockUserServiceInterface(ctrl)
	svc, err := NewAuthService(users, testSecret, time.Hour)
	require.NoError(t, err)
	handler := NewAuthHandler(svc, userService)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/v1/me", mw.RequireAuth(), handler.Me)

	user := newUser(t, "jdoe", "s3cret-pass", models.LoginRoleUser, true)

	t.Run("login success", func(t *testing.T) {
		users.EXPECT().GetByUsername("jdoe").Return(user, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"jdoe","password":"s3cret-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.ID, resp.UserID)
	})

	t.Run("login missing password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"jdoe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login bad password", func(t *testing.T) {
		users.EXPECT().GetByUsername("jdoe").Return(user, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"jdoe","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid username or password")
	})

	t.Run("me", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		userService.EXPECT().GetByID(user.ID).Return(&service.UserResponse{ID: user.ID, Username: "jdoe"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"jdoe"`)
	})

	t.Run("me for deleted user", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		userService.EXPECT().GetByID(user.ID).Return(nil, apperrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
