package auth

import (
	"net/http"
	"strings"

	"workflow-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("login_role", claims.LoginRole)

		c.Next()
	}
}

// RequireRole rejects authenticated users whose login role is not listed
func (m *AuthMiddleware) RequireRole(roles ...models.LoginRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetLoginRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetLoginRole is a helper function to extract the login role from context
func GetLoginRole(c *gin.Context) (models.LoginRole, bool) {
	role, exists := c.Get("login_role")
	if !exists {
		return "", false
	}

	loginRole, ok := role.(models.LoginRole)
	return loginRole, ok
}

