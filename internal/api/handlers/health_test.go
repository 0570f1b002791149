package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"workflow-portal-backend/internal/api/handlers"
	"workflow-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB opens a lazily connecting handle whose pings always fail
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestHealthHandler(t *testing.T) {
	db := unreachableDB(t)
	handler := handlers.NewHealthHandler(db, map[string]handlers.Pinger{
		"redis": handlers.PingerFunc(func(context.Context) error { return nil }),
		"kafka": handlers.PingerFunc(func(context.Context) error { return errors.New("no brokers") }),
	})

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("Live ignores dependencies", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"alive":true`)
	})

	t.Run("Health reports each dependency", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		var response handlers.HealthResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "healthy", response.Services["redis"])
		assert.Equal(t, "error: no brokers", response.Services["kafka"])
		assert.Contains(t, response.Services["database"], "error")
	})

	t.Run("Ready is false while a dependency is down", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready":false`)
	})
}
