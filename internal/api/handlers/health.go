package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger is a dependency the readiness probe checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

// Ping calls f
func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db           *gorm.DB
	dependencies map[string]Pinger
}

// NewHealthHandler creates a new health handler. Extra dependencies are reported by name.
func NewHealthHandler(db *gorm.DB, dependencies map[string]Pinger) *HealthHandler {
	if dependencies == nil {
		dependencies = map[string]Pinger{}
	}
	return &HealthHandler{
		db:           db,
		dependencies: dependencies,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) check(ctx context.Context) (bool, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	healthy := true
	services := make(map[string]string)

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		healthy = false
		services["database"] = "error: " + err.Error()
	} else {
		services["database"] = "healthy"
	}

	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			healthy = false
			services[name] = "error: " + err.Error()
			continue
		}
		services[name] = "healthy"
	}
	return healthy, services
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	healthy, services := h.check(c.Request.Context())
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, services := h.check(c.Request.Context())

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
