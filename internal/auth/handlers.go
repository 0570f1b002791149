package auth

import (
	"errors"
	"net/http"

	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   service.UserServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange a username and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or inactive user"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			logger.WithContext(c).WithField("username", req.Username).Info("Login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/me
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
