package auth

import (
	"errors"
	"fmt"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const issuer = "workflow-portal-backend"

// AuthService provides password login and token validation
type AuthService struct {
	users     repository.UserRepositoryInterface
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    uuid.UUID        `json:"user_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Username  string           `json:"username" example:"jdoe"`
	LoginRole models.LoginRole `json:"login_role" example:"user"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// LoginResponse represents the response of a successful login
type LoginResponse struct {
	AccessToken      string           `json:"access_token"`
	TokenType        string           `json:"token_type" example:"bearer"`
	ExpiresInSeconds int64            `json:"expires_in_seconds" example:"3600"`
	UserID           uuid.UUID        `json:"user_id"`
	Username         string           `json:"username"`
	LoginRole        models.LoginRole `json:"login_role"`
}

// NewAuthService creates a new authentication service
func NewAuthService(users repository.UserRepositoryInterface, jwtSecret string, ttl time.Duration) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// Login checks the password of an active user and issues a signed token
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.ttl.Seconds()),
		UserID:           user.ID,
		Username:         user.Username,
		LoginRole:        user.LoginRole,
	}, nil
}

// GenerateJWT signs an HS256 token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:    user.ID,
		Username:  user.Username,
		LoginRole: user.LoginRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.UserID == uuid.Nil {
			return nil, fmt.Errorf("token has no user id")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
