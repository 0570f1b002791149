package handlers

import (
	"net/http"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users
// @Summary Create a user
// @Description Create a user account; the response carries the onboarding wizard URL
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} SuccessResponse{data=service.CreateUserResponse}
// @Failure 400 {object} SuccessResponse "Invalid request body"
// @Failure 409 {object} SuccessResponse "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: user})
}

// ListUsers handles GET /users
// @Summary List users
// @Description List users, optionally filtered by login role
// @Tags users
// @Produce json
// @Param role query string false "Login role (admin, manager, user)"
// @Success 200 {object} SuccessResponse{data=[]service.UserResponse}
// @Failure 400 {object} SuccessResponse "Invalid role"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(models.LoginRole(c.Query("role")))
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: users})
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.UserResponse}
// @Failure 400 {object} SuccessResponse "Invalid user ID"
// @Failure 404 {object} SuccessResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: user})
}

// UpdateUser handles PUT /users/:id
// @Summary Update a user
// @Description Update names, email, position, role or the active flag; omitted fields are kept
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=service.UserResponse}
// @Failure 400 {object} SuccessResponse "Invalid request"
// @Failure 404 {object} SuccessResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: user})
}
