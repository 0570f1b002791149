package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/session"
	"workflow-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestRouter wires the real router on a lazily connected database; the
// requests below are all rejected before any query runs.
func newTestRouter(t *testing.T) (*gin.Engine, *Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable"}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      "routes-test-secret",
		JWTTTLMinutes:  60,
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxUploadMB:    1,
	}
	svc, err := NewServices(db, cfg, Dependencies{
		Storage:   storage.NewLocalStorage(afero.NewMemMapFs()),
		Sessions:  session.NewMemoryStore(),
		Publisher: events.NewRecorder(),
	})
	require.NoError(t, err)

	return SetupRoutes(db, cfg, svc, nil), svc
}

func bearer(t *testing.T, svc *Services, role models.LoginRole) string {
	t.Helper()
	user := &models.User{Username: "router-" + string(role), LoginRole: role, IsActive: true}
	user.ID = uuid.New()
	token, err := svc.Auth.GenerateJWT(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouterGuards(t *testing.T) {
	router, svc := newTestRouter(t)
	userToken := bearer(t, svc, models.LoginRoleUser)
	managerToken := bearer(t, svc, models.LoginRoleManager)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"unknown endpoint", http.MethodGet, "/api/v2/nothing", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/auth/login", "", http.StatusMethodNotAllowed},
		{"no token", http.MethodGet, "/api/v1/workcycles", "", http.StatusUnauthorized},
		{"user on user admin", http.MethodGet, "/api/v1/users", userToken, http.StatusForbidden},
		{"user creating a cycle", http.MethodPost, "/api/v1/workcycles", userToken, http.StatusForbidden},
		{"user reviewing", http.MethodPost, "/api/v1/work-items/" + uuid.NewString() + "/review", userToken, http.StatusForbidden},
		{"user browsing folders", http.MethodGet, "/api/v1/folders/root", userToken, http.StatusForbidden},
		{"user reading analytics", http.MethodGet, "/api/v1/analytics/summary", userToken, http.StatusForbidden},
		{"manager managing teams", http.MethodDelete, "/api/v1/teams/" + uuid.NewString(), managerToken, http.StatusForbidden},
		{"malformed work item id", http.MethodGet, "/api/v1/work-items/not-a-uuid", userToken, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSwaggerIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
}
